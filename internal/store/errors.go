// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrStudentNotFound is returned when no student identity matches.
	ErrStudentNotFound = errors.New("student identity was not found")

	// ErrDeviceNotFound is returned when the user has no device with the
	// requested fingerprint.
	ErrDeviceNotFound = errors.New("device fingerprint was not found")

	// ErrAlreadyExists is the parent of every unique-constraint error below.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrEmailAlreadyExists is returned when registering an e-mail that is
	// already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUsernameAlreadyExists is returned when registering a username that is
	// already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrStudentIDAlreadyExists is returned when a student ID is already
	// linked to an account.
	ErrStudentIDAlreadyExists = errors.New("student id already exists")

	// ErrDeviceAlreadyExists is returned when the (user_id, device_hash) pair
	// is already stored.
	ErrDeviceAlreadyExists = errors.New("device fingerprint already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrEncodingDetails is returned when a security log payload cannot be
	// serialized.
	ErrEncodingDetails = errors.New("failed to encode security log details")

	// ErrUnsupportedDriver is returned by [NewConnect] for an unknown driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
