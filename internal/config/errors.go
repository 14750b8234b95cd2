// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAuthConfigs indicates unusable token settings.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")

	// ErrMissingTokenSecret is returned when no signing secret is configured.
	ErrMissingTokenSecret = errors.New("token signing secret is not set")

	// ErrWeakTokenSecret is returned when the signing secret is shorter than
	// [MinSecretLength] bytes.
	ErrWeakTokenSecret = errors.New("token signing secret is too short")

	// ErrPlaceholderTokenSecret is returned when the signing secret is one of
	// the development placeholders published with the legacy backend.
	ErrPlaceholderTokenSecret = errors.New("token signing secret is a development placeholder")

	// ErrInvalidLockoutConfigs indicates a non-positive threshold or window.
	ErrInvalidLockoutConfigs = errors.New("invalid lockout configuration")

	// ErrInvalidStorageConfigs indicates an unknown driver or an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidServerConfigs indicates that no listener address is set.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level or bcrypt cost out of range).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
