// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the persistence layer of the authentication service: the
// credential store (users, student identities, lockout counters), the device
// trust store and the security event log. PostgreSQL (pgx) and SQLite
// back the same repositories; queries are built with squirrel and scanned
// with sqlx.
package store

import (
	"context"
	"time"

	"github.com/sayansi-yathu/auth-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository reads and writes user accounts and their lockout counters.
type UserRepository interface {
	// CreateUser inserts user and, when student is non-nil, the linked
	// student identity in one transaction. Returns the stored user with its id.
	CreateUser(ctx context.Context, user models.User, student *models.StudentIdentity) (models.User, error)

	// FindUserByID returns [ErrNoUserWasFound] when no row matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// FindUserByEmailOrUsername matches identifier exactly against email or
	// username, preferring an email match.
	FindUserByEmailOrUsername(ctx context.Context, identifier string) (models.User, error)

	// FindLockStates returns the lockout snapshot of every account whose
	// email, username or linked student_id equals the given values.
	FindLockStates(ctx context.Context, identifier, studentID string) ([]models.LockState, error)

	// UpdateLoginAttempts stores the failed-attempt counter and lock expiry.
	UpdateLoginAttempts(ctx context.Context, userID int64, failedAttempts int, lockedUntil *time.Time) error
}

// StudentRepository reads student identities.
type StudentRepository interface {
	FindStudentByStudentID(ctx context.Context, studentID string) (models.StudentIdentity, error)
	FindStudentByUserID(ctx context.Context, userID int64) (models.StudentIdentity, error)
}

// DeviceRepository stores remembered device fingerprints.
type DeviceRepository interface {
	// FindDevice returns [ErrDeviceNotFound] when the user has no such device.
	FindDevice(ctx context.Context, userID int64, deviceHash string) (models.DeviceFingerprint, error)

	CreateDevice(ctx context.Context, device models.DeviceFingerprint) error

	// TouchDevice refreshes last_used_at, user_agent and ip_address.
	TouchDevice(ctx context.Context, deviceID int64, lastUsedAt time.Time, userAgent, ipAddress string) error
}

// SecurityLogRepository appends audit records. Entries are never updated.
type SecurityLogRepository interface {
	AppendSecurityLog(ctx context.Context, entry models.SecurityLogEntry) error
}

// HealthChecker reports whether the database answers.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}
