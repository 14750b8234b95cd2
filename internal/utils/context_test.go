// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/sayansi-yathu/auth-service/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestSessionCtxKey(t *testing.T) {
	if SessionCtxKey.String() != "session" {
		t.Errorf("expected 'session', got '%s'", SessionCtxKey.String())
	}
}

func TestWithSession(t *testing.T) {
	student := &models.StudentIdentity{StudentID: "STU-2025-F1-0042"}
	ctx := WithSession(context.Background(), Session{
		User:    models.User{UserID: 7, Role: models.RoleStudent},
		Student: student,
	})

	s, ok := GetSessionFromContext(ctx)
	if !ok {
		t.Fatal("expected session in context")
	}
	if s.User.UserID != 7 || s.Student != student {
		t.Errorf("unexpected session %+v", s)
	}
}

func TestGetSessionFromContext_Missing(t *testing.T) {
	if _, ok := GetSessionFromContext(context.Background()); ok {
		t.Fatal("expected ok=false, got true")
	}
}

func TestGetSessionFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionCtxKey, "not-a-session")
	if _, ok := GetSessionFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}
