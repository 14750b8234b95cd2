// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "pg email", err: pgUniqueError("users_email_key"), want: ErrEmailAlreadyExists},
		{name: "pg username wrapped", err: fmt.Errorf("insert: %w", pgUniqueError("users_username_key")), want: ErrUsernameAlreadyExists},
		{name: "pg student id", err: pgUniqueError("students_student_id_key"), want: ErrStudentIDAlreadyExists},
		{name: "pg device", err: pgUniqueError("device_fingerprints_user_device_key"), want: ErrDeviceAlreadyExists},
		{name: "pg unknown constraint", err: pgUniqueError("other_key"), want: ErrAlreadyExists},
		{
			name: "sqlite unnamed",
			err:  sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique},
			want: ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := uniqueViolation(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, ErrAlreadyExists)
		})
	}
}

func TestUniqueViolation_NotUnique(t *testing.T) {
	assert.NoError(t, uniqueViolation(errors.New("plain")))
	assert.NoError(t, uniqueViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.NoError(t, uniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}))
}

func TestPostgresError(t *testing.T) {
	assert.Equal(t, pgerrcode.UniqueViolation, postgresError(pgUniqueError("x")))
	assert.Equal(t, "", postgresError(errors.New("plain")))
}
