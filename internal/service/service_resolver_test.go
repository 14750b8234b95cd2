// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sayansi-yathu/auth-service/internal/mock"
	"github.com/sayansi-yathu/auth-service/internal/store"
	"github.com/sayansi-yathu/auth-service/models"
)

func newTestResolvers(ctrl *gomock.Controller) (IdentifierResolver, *mock.MockUserRepository, *mock.MockStudentRepository) {
	users := mock.NewMockUserRepository(ctrl)
	students := mock.NewMockStudentRepository(ctrl)

	chain := NewResolverChain(&store.Storages{UserRepository: users, StudentRepository: students})
	return chain, users, students
}

// ── student ID ──────────────────────────────────────────────────────────────

func TestResolverChain_StudentID(t *testing.T) {
	ctrl := gomock.NewController(t)
	chain, users, students := newTestResolvers(ctrl)
	ctx := context.Background()

	want := models.User{UserID: 8, Role: models.RoleStudent}
	gomock.InOrder(
		students.EXPECT().FindStudentByStudentID(ctx, "STU-2024-G10-001").
			Return(models.StudentIdentity{StudentID: "STU-2024-G10-001", LinkedUserID: 8}, nil),
		users.EXPECT().FindUserByID(ctx, int64(8)).Return(want, nil),
	)

	got, ok, err := chain.Resolve(ctx, "stu-2024-g10-001")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestResolverChain_StudentIDMissFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	chain, users, students := newTestResolvers(ctrl)
	ctx := context.Background()

	want := models.User{UserID: 3, Role: models.RoleTeacher}
	gomock.InOrder(
		students.EXPECT().FindStudentByStudentID(ctx, "STU-2024-F1-001").Return(models.StudentIdentity{}, store.ErrStudentNotFound),
		users.EXPECT().FindUserByEmailOrUsername(ctx, "stu-2024-f1-001").Return(want, nil),
	)

	got, ok, err := chain.Resolve(ctx, "stu-2024-f1-001")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(3), got.UserID)
}

func TestResolverChain_OrphanStudentFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	chain, users, students := newTestResolvers(ctrl)
	ctx := context.Background()

	students.EXPECT().FindStudentByStudentID(ctx, gomock.Any()).Return(models.StudentIdentity{LinkedUserID: 99}, nil)
	users.EXPECT().FindUserByID(ctx, int64(99)).Return(models.User{}, store.ErrNoUserWasFound)
	users.EXPECT().FindUserByEmailOrUsername(ctx, "STU-2024-G9-001").Return(models.User{}, store.ErrNoUserWasFound)

	_, ok, err := chain.Resolve(ctx, "STU-2024-G9-001")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolverChain_StudentLookupErrorFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	chain, users, students := newTestResolvers(ctrl)
	ctx := context.Background()

	students.EXPECT().FindStudentByStudentID(ctx, gomock.Any()).Return(models.StudentIdentity{}, errors.New("db down"))
	users.EXPECT().FindUserByEmailOrUsername(ctx, "STU-2024-G9-001").Return(models.User{UserID: 5}, nil)

	got, ok, err := chain.Resolve(ctx, "STU-2024-G9-001")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(5), got.UserID)
}

// ── email / username ────────────────────────────────────────────────────────

func TestResolverChain_EmailSkipsStudentLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	chain, users, _ := newTestResolvers(ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByEmailOrUsername(ctx, "t@x.com").Return(models.User{UserID: 1}, nil)

	_, ok, err := chain.Resolve(ctx, "t@x.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestResolverChain_PaddedStudentIDMatchedExactly(t *testing.T) {
	ctrl := gomock.NewController(t)
	chain, users, _ := newTestResolvers(ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByEmailOrUsername(ctx, " STU-2024-G9-001").Return(models.User{}, store.ErrNoUserWasFound)

	_, ok, err := chain.Resolve(ctx, " STU-2024-G9-001")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolverChain_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	chain, users, _ := newTestResolvers(ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByEmailOrUsername(ctx, "ghost").Return(models.User{}, store.ErrNoUserWasFound)

	_, ok, err := chain.Resolve(ctx, "ghost")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolverChain_LookupErrorIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	chain, users, _ := newTestResolvers(ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByEmailOrUsername(ctx, "amani").Return(models.User{}, errors.New("timeout"))

	_, ok, err := chain.Resolve(ctx, "amani")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolverChain_CustomStrategy(t *testing.T) {
	ctrl := gomock.NewController(t)
	phone := mock.NewMockIdentifierResolver(ctrl)
	email := mock.NewMockIdentifierResolver(ctrl)
	ctx := context.Background()

	phone.EXPECT().Resolve(ctx, "+255700000000").Return(models.User{}, false, errors.New("boom"))
	phone.EXPECT().Name().Return("phone")
	email.EXPECT().Resolve(ctx, "+255700000000").Return(models.User{UserID: 4}, true, nil)

	got, ok, err := resolverChain{phone, email}.Resolve(ctx, "+255700000000")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(4), got.UserID)
}

func TestResolverNames(t *testing.T) {
	assert.Equal(t, "student_id", NewStudentIDResolver(nil, nil).Name())
	assert.Equal(t, "email_or_username", NewEmailOrUsernameResolver(nil).Name())
	assert.Equal(t, "chain", resolverChain{}.Name())
}
