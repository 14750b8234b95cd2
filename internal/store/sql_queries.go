// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/sayansi-yathu/auth-service/models"
)

var (
	userColumns = []string{
		"id", "name", "email", "username", "password_hash", "role",
		"failed_attempts", "locked_until", "created_at",
	}

	studentColumns = []string{
		"student_id", "grade_or_form", "class", "enrolled_year", "linked_user_id",
	}

	deviceColumns = []string{
		"id", "user_id", "device_hash", "is_verified", "last_used_at",
		"user_agent", "ip_address", "created_at",
	}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert("users").
		Columns("name", "email", "username", "password_hash", "role", "failed_attempts", "created_at").
		Values(user.Name, user.Email, user.Username, user.PasswordHash, string(user.Role), 0, user.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildInsertStudentQuery(b sq.StatementBuilderType, student models.StudentIdentity) (string, []any, error) {
	return b.Insert("students").
		Columns(studentColumns...).
		Values(student.StudentID, student.GradeOrForm, student.Class, student.EnrolledYear, student.LinkedUserID).
		ToSql()
}

func buildSelectUserByIDQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// buildSelectUserByEmailOrUsernameQuery matches both columns exactly; an
// email match sorts first so one account's email always beats another
// account's identical username.
func buildSelectUserByEmailOrUsernameQuery(b sq.StatementBuilderType, identifier string) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		Where(sq.Or{sq.Eq{"email": identifier}, sq.Eq{"username": identifier}}).
		OrderByClause("CASE WHEN email = ? THEN 0 ELSE 1 END", identifier).
		Limit(1).
		ToSql()
}

func buildSelectLockStatesQuery(b sq.StatementBuilderType, identifier, studentID string) (string, []any, error) {
	return b.Select("u.id", "u.failed_attempts", "u.locked_until").
		From("users u").
		LeftJoin("students s ON s.linked_user_id = u.id").
		Where(sq.Or{
			sq.Eq{"u.email": identifier},
			sq.Eq{"u.username": identifier},
			sq.Eq{"s.student_id": studentID},
		}).
		ToSql()
}

func buildUpdateLoginAttemptsQuery(b sq.StatementBuilderType, userID int64, failedAttempts int, lockedUntil *time.Time) (string, []any, error) {
	return b.Update("users").
		Set("failed_attempts", failedAttempts).
		Set("locked_until", lockedUntil).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildSelectStudentQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(studentColumns...).
		From("students").
		Where(where).
		ToSql()
}

func buildSelectDeviceQuery(b sq.StatementBuilderType, userID int64, deviceHash string) (string, []any, error) {
	return b.Select(deviceColumns...).
		From("device_fingerprints").
		Where(sq.Eq{"user_id": userID, "device_hash": deviceHash}).
		ToSql()
}

func buildInsertDeviceQuery(b sq.StatementBuilderType, device models.DeviceFingerprint) (string, []any, error) {
	return b.Insert("device_fingerprints").
		Columns("user_id", "device_hash", "is_verified", "last_used_at", "user_agent", "ip_address", "created_at").
		Values(device.UserID, device.DeviceHash, device.IsVerified, device.LastUsedAt, device.UserAgent, device.IPAddress, device.CreatedAt).
		ToSql()
}

func buildTouchDeviceQuery(b sq.StatementBuilderType, deviceID int64, lastUsedAt time.Time, userAgent, ipAddress string) (string, []any, error) {
	return b.Update("device_fingerprints").
		Set("last_used_at", lastUsedAt).
		Set("user_agent", userAgent).
		Set("ip_address", ipAddress).
		Where(sq.Eq{"id": deviceID}).
		ToSql()
}

func buildInsertSecurityLogQuery(b sq.StatementBuilderType, entry models.SecurityLogEntry, details string) (string, []any, error) {
	return b.Insert("security_logs").
		Columns("user_id", "event_type", "ip_address", "user_agent", "details", "created_at").
		Values(entry.UserID, string(entry.EventType), entry.IPAddress, entry.UserAgent, details, entry.CreatedAt).
		ToSql()
}
