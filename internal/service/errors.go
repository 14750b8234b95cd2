// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Login and registration outcomes. Handlers map these onto HTTP statuses.
var (
	// ErrInvalidDataProvided is returned when a request is missing required
	// fields or fails validation.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers every failed credential check: unknown
	// identifier, wrong password, or a lookup that failed underneath.
	ErrInvalidCredentials = errors.New("invalid login credentials")

	// ErrAccountLocked is returned while an account's lock window is open,
	// including the attempt that opened it.
	ErrAccountLocked = errors.New("account is temporarily locked")

	ErrRegistrationRoleNotAllowed = errors.New("role is not allowed for self-registration")
	ErrInvalidStudentID           = errors.New("invalid student id")
	ErrStudentDetailsNotAllowed   = errors.New("student details are only accepted for role student")
)

// Token errors.
var (
	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")
)

var (
	// ErrForbiddenRole is returned when an authenticated user's role is not
	// among the roles a caller requires.
	ErrForbiddenRole = errors.New("role is not permitted")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
