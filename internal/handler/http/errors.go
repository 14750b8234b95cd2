// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading requests. Callers can match against
// them with [errors.Is].
var (
	// ErrNoSessionToken is returned when a request carries neither an
	// "Authorization: Bearer" header nor the session cookie.
	ErrNoSessionToken = errors.New("no session token provided")

	// ErrInvalidJSON is returned when the body is not a JSON object of the
	// expected shape, including unknown fields.
	ErrInvalidJSON = errors.New("invalid JSON payload")

	// ErrMultipleJSONValues is returned when the body holds trailing data
	// after the first JSON value.
	ErrMultipleJSONValues = errors.New("request body must contain a single JSON object")

	// ErrBodyTooLarge is returned when the body exceeds maxBodyBytes.
	ErrBodyTooLarge = errors.New("request body too large")
)
