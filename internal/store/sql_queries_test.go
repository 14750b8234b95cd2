// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sayansi-yathu/auth-service/internal/config"
	"github.com/sayansi-yathu/auth-service/internal/logger"
	"github.com/sayansi-yathu/auth-service/models"
)

var (
	pgBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	liteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func TestNewDB_PlaceholderPerDriver(t *testing.T) {
	tests := []struct {
		driver string
		want   string
	}{
		{driver: config.DriverPostgres, want: "SELECT id FROM users WHERE id = $1"},
		{driver: config.DriverSQLite, want: "SELECT id FROM users WHERE id = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			db := newDB(nil, tt.driver, logger.Nop())
			assert.Equal(t, tt.driver, db.Driver())

			query, _, err := db.builder.Select("id").From("users").Where(sq.Eq{"id": 1}).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
		})
	}
}

func TestBuildInsertUserQuery(t *testing.T) {
	username := "amani"
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := buildInsertUserQuery(pgBuilder, models.User{
		Name: "Amani", Email: "a@example.com", Username: &username, PasswordHash: "h", Role: models.RoleStudent, CreatedAt: created,
	})
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO users (name,email,username,password_hash,role,failed_attempts,created_at) VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id", query)
	assert.Equal(t, []any{"Amani", "a@example.com", &username, "h", "student", 0, created}, args)
}

func TestBuildSelectLockStatesQuery_SQLite(t *testing.T) {
	query, args, err := buildSelectLockStatesQuery(liteBuilder, "stu-2024-g9-001", "STU-2024-G9-001")
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT u.id, u.failed_attempts, u.locked_until FROM users u LEFT JOIN students s ON s.linked_user_id = u.id WHERE (u.email = ? OR u.username = ? OR s.student_id = ?)",
		query)
	assert.Equal(t, []any{"stu-2024-g9-001", "stu-2024-g9-001", "STU-2024-G9-001"}, args)
}

func TestBuildSelectUserByEmailOrUsernameQuery(t *testing.T) {
	query, args, err := buildSelectUserByEmailOrUsernameQuery(liteBuilder, "amani")
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, name, email, username, password_hash, role, failed_attempts, locked_until, created_at FROM users WHERE (email = ? OR username = ?) ORDER BY CASE WHEN email = ? THEN 0 ELSE 1 END LIMIT 1",
		query)
	assert.Equal(t, []any{"amani", "amani", "amani"}, args)
}

func TestBuildUpdateLoginAttemptsQuery(t *testing.T) {
	until := time.Date(2026, 1, 1, 0, 5, 0, 0, time.UTC)

	query, args, err := buildUpdateLoginAttemptsQuery(pgBuilder, 3, 5, &until)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE users SET failed_attempts = $1, locked_until = $2 WHERE id = $3", query)
	assert.Equal(t, []any{5, &until, int64(3)}, args)
}

func TestBuildStudentAndDeviceQueries(t *testing.T) {
	query, _, err := buildSelectStudentQuery(pgBuilder, sq.Eq{"student_id": "STU-2024-G10-001"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT student_id, grade_or_form, class, enrolled_year, linked_user_id FROM students WHERE student_id = $1", query)

	query, args, err := buildSelectDeviceQuery(pgBuilder, 2, "fp")
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, user_id, device_hash, is_verified, last_used_at, user_agent, ip_address, created_at FROM device_fingerprints WHERE device_hash = $1 AND user_id = $2", query)
	assert.Equal(t, []any{"fp", int64(2)}, args)

	query, _, err = buildTouchDeviceQuery(liteBuilder, 9, time.Now(), "ua", "ip")
	require.NoError(t, err)
	assert.Equal(t, "UPDATE device_fingerprints SET last_used_at = ?, user_agent = ?, ip_address = ? WHERE id = ?", query)
}

func TestBuildInsertSecurityLogQuery(t *testing.T) {
	query, args, err := buildInsertSecurityLogQuery(pgBuilder, models.SecurityLogEntry{EventType: models.EventLoginFailure, IPAddress: "unknown"}, "{}")
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO security_logs (user_id,event_type,ip_address,user_agent,details,created_at) VALUES ($1,$2,$3,$4,$5,$6)", query)
	assert.Nil(t, args[0])
	assert.Equal(t, "login_failure", args[1])
	assert.Equal(t, "{}", args[4])
}
