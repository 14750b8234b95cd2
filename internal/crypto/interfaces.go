// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto hashes and verifies account passwords.
//
// New hashes are bcrypt. Verification also accepts bcrypt hashes written by
// older systems ($2y$ prefix) and argon2id hashes in the PHC string
// format, so imported accounts keep working.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns passwords into storable hashes and checks candidates
// against them. Verification runs in constant time with respect to the
// candidate password.
type PasswordHasher interface {
	// Hash returns a salted hash of password.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. A malformed hash never
	// matches.
	Verify(password, hash string) bool
}
