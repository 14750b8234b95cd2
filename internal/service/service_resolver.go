// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/sayansi-yathu/auth-service/internal/logger"
	"github.com/sayansi-yathu/auth-service/internal/store"
	"github.com/sayansi-yathu/auth-service/models"
)

// studentIDResolver resolves identifiers shaped like a student ID through
// the students table. Identifiers of any other shape are passed over.
type studentIDResolver struct {
	students store.StudentRepository
	users    store.UserRepository
}

// NewStudentIDResolver returns the resolver for STU-YYYY-CODE-NNN identifiers.
func NewStudentIDResolver(students store.StudentRepository, users store.UserRepository) IdentifierResolver {
	return &studentIDResolver{students: students, users: users}
}

func (r *studentIDResolver) Name() string {
	return "student_id"
}

func (r *studentIDResolver) Resolve(ctx context.Context, identifier string) (models.User, bool, error) {
	studentID, err := ParseStudentID(identifier)
	if err != nil {
		return models.User{}, false, nil
	}

	student, err := r.students.FindStudentByStudentID(ctx, studentID.Normalized)
	if errors.Is(err, store.ErrStudentNotFound) {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, err
	}

	user, err := r.users.FindUserByID(ctx, student.LinkedUserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, err
	}

	return user, true, nil
}

// emailOrUsernameResolver matches the identifier exactly against email or
// username.
type emailOrUsernameResolver struct {
	users store.UserRepository
}

func NewEmailOrUsernameResolver(users store.UserRepository) IdentifierResolver {
	return &emailOrUsernameResolver{users: users}
}

func (r *emailOrUsernameResolver) Name() string {
	return "email_or_username"
}

func (r *emailOrUsernameResolver) Resolve(ctx context.Context, identifier string) (models.User, bool, error) {
	user, err := r.users.FindUserByEmailOrUsername(ctx, identifier)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, err
	}

	return user, true, nil
}

// resolverChain tries each resolver in order; the first match wins. A
// resolver that fails is logged and skipped.
type resolverChain []IdentifierResolver

// NewResolverChain returns the default order: student ID, then email or
// username.
func NewResolverChain(storages *store.Storages) IdentifierResolver {
	return resolverChain{
		NewStudentIDResolver(storages.StudentRepository, storages.UserRepository),
		NewEmailOrUsernameResolver(storages.UserRepository),
	}
}

func (c resolverChain) Name() string {
	return "chain"
}

func (c resolverChain) Resolve(ctx context.Context, identifier string) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	for _, resolver := range c {
		user, ok, err := resolver.Resolve(ctx, identifier)
		if err != nil {
			log.Err(err).Str("func", "resolverChain.Resolve").Str("resolver", resolver.Name()).Msg("identifier lookup failed, trying next resolver")
			continue
		}
		if ok {
			return user, true, nil
		}
	}

	return models.User{}, false, nil
}
