// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// uniqueConstraints maps a constraint to its domain error. Keys are the
// PostgreSQL constraint names declared in the migrations; the sqlite names
// are the "table.column" strings SQLite reports.
var uniqueConstraints = []struct {
	postgres string
	sqlite   string
	err      error
}{
	{postgres: "users_email_key", sqlite: "users.email", err: ErrEmailAlreadyExists},
	{postgres: "users_username_key", sqlite: "users.username", err: ErrUsernameAlreadyExists},
	{postgres: "students_student_id_key", sqlite: "students.student_id", err: ErrStudentIDAlreadyExists},
	{postgres: "device_fingerprints_user_device_key", sqlite: "device_fingerprints.user_id, device_fingerprints.device_hash", err: ErrDeviceAlreadyExists},
}

// postgresError returns the SQLSTATE code of err, if it is a PostgreSQL error.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// uniqueViolation translates a unique-constraint failure into one of the
// ErrXxxAlreadyExists sentinels (always wrapping [ErrAlreadyExists]). Any
// other error yields nil.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		for _, c := range uniqueConstraints {
			if pgErr.ConstraintName == c.postgres {
				return fmt.Errorf("%w: %w", ErrAlreadyExists, c.err)
			}
		}
		return ErrAlreadyExists
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) && liteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		msg := liteErr.Error()
		for _, c := range uniqueConstraints {
			if strings.Contains(msg, c.sqlite) {
				return fmt.Errorf("%w: %w", ErrAlreadyExists, c.err)
			}
		}
		return ErrAlreadyExists
	}

	return nil
}
