// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the authentication service's HTTP
// API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrAccountLocked]
// for 429, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/sayansi-yathu/auth-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/auth_client_mock.go -package=mock

// AuthClient talks to a running authentication service.
type AuthClient interface {
	// SetToken stores the bearer token attached to session requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Login posts the credentials to /api/auth/login. On success the
	// returned token is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Me resolves the stored token through /api/auth/me.
	Me(ctx context.Context) (models.SessionResponse, error)

	// Health fetches /api/health. The server answers 200 even when the
	// database is down; check the response body.
	Health(ctx context.Context) (models.HealthResponse, error)
}
