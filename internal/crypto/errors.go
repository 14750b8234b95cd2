// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrEmptyPassword is returned by Hash for an empty password.
	ErrEmptyPassword = errors.New("password is empty")

	// ErrPasswordTooLong is returned by Hash for passwords longer than bcrypt
	// accepts (72 bytes).
	ErrPasswordTooLong = errors.New("password is too long")

	errMalformedArgon2Hash = errors.New("malformed argon2id hash")
)
