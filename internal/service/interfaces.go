// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the authentication logic: token issuance and
// validation, identifier resolution, failed-attempt lockout, device trust,
// security event logging and the login, registration and session flows that
// compose them.
package service

import (
	"context"

	"github.com/sayansi-yathu/auth-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService is the entry point used by the transport layer.
type AuthService interface {
	// Login runs the full login protocol. Failures are reported as
	// [ErrInvalidDataProvided], [ErrInvalidCredentials] or [ErrAccountLocked].
	Login(ctx context.Context, req models.LoginRequest, client models.ClientInfo) (models.LoginResult, error)

	// Register creates a self-registered student or teacher account.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, *models.StudentIdentity, error)

	// Authenticate validates tokenString, reloads its user and, when roles
	// is non-empty, requires the user to hold one of them.
	Authenticate(ctx context.Context, tokenString string, roles ...models.Role) (models.User, *models.StudentIdentity, error)
}

// TokenService issues and validates signed bearer tokens.
type TokenService interface {
	Issue(ctx context.Context, user models.User) (models.Token, error)

	// Validate returns [ErrTokenIsExpired] for a well-formed token past its
	// expiry and [ErrTokenIsInvalid] for anything else that fails.
	Validate(ctx context.Context, tokenString string) (models.TokenClaims, error)
}

// IdentifierResolver is one strategy for turning a login identifier into an
// account. ok is false when the strategy does not apply or finds nothing.
type IdentifierResolver interface {
	Name() string
	Resolve(ctx context.Context, identifier string) (user models.User, ok bool, err error)
}

// LockoutTracker keeps the per-account failed attempt counter.
type LockoutTracker interface {
	// IsLocked reports whether any account reachable through identifier is
	// currently locked. Store failures count as not locked.
	IsLocked(ctx context.Context, identifier string) bool

	// RegisterFailure increments the user's counter and reports whether the
	// account is locked as a result.
	RegisterFailure(ctx context.Context, user models.User) (locked bool)

	// Reset clears the counter and the lock after a successful login.
	Reset(ctx context.Context, user models.User)
}

// DeviceTrustService records the devices a user logs in from.
type DeviceTrustService interface {
	// Track updates a known fingerprint or, when remember is set, stores a
	// new one. It reports whether the fingerprint was already known.
	Track(ctx context.Context, userID int64, fingerprint string, remember bool, client models.ClientInfo) (recognized bool)
}

// SecurityEventLogger appends login attempts to the audit trail.
type SecurityEventLogger interface {
	LoginSucceeded(ctx context.Context, userID int64, client models.ClientInfo, details models.SecurityDetails)

	// LoginFailed records a failed attempt. userID is nil when the identifier
	// did not resolve.
	LoginFailed(ctx context.Context, userID *int64, client models.ClientInfo, details models.SecurityDetails)
}

// AppInfoService reports build and readiness information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthResponse
}
