// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the service.
// Includes type-safe context keys, JSON response writing, client address
// extraction, bearer token parsing, the HTTP client and trace ID generation.
package utils

import (
	"context"

	"github.com/sayansi-yathu/auth-service/models"
)

// contextKey is a private type for context keys.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the authenticated session is stored.
var SessionCtxKey = contextKey("session")

// Session is the authenticated caller attached to a request context.
type Session struct {
	User    models.User
	Student *models.StudentIdentity
}

// WithSession stores s in ctx.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, s)
}

// GetSessionFromContext returns the session stored by WithSession.
func GetSessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(SessionCtxKey).(Session)
	return s, ok
}
