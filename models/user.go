// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique, immutable identifier of the user.
	UserID int64 `db:"id" json:"id"`

	// Name is the display name of the user.
	Name string `db:"name" json:"name"`

	// Email is the unique e-mail address of the user.
	Email string `db:"email" json:"email"`

	// Username is the optional unique login name.
	Username *string `db:"username" json:"username,omitempty"`

	// PasswordHash stores a bcrypt (or legacy argon2id) hash, never plaintext.
	PasswordHash string `db:"password_hash" json:"-"`

	// Role controls authorization and the dashboard route.
	Role Role `db:"role" json:"role"`

	// FailedAttempts counts consecutive failed logins. Reset to 0 on success.
	FailedAttempts int `db:"failed_attempts" json:"-"`

	// LockedUntil is non-nil while the account is (or was) locked.
	LockedUntil *time.Time `db:"locked_until" json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// IsLocked reports whether the account is locked at the given moment.
func (u User) IsLocked(now time.Time) bool {
	return u.LockedUntil != nil && u.LockedUntil.After(now)
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// LockState is the lockout snapshot of an account looked up by identifier.
type LockState struct {
	UserID         int64      `db:"id"`
	FailedAttempts int        `db:"failed_attempts"`
	LockedUntil    *time.Time `db:"locked_until"`
}

// IsLocked reports whether the snapshot describes an active lock at now.
func (s LockState) IsLocked(now time.Time) bool {
	return s.LockedUntil != nil && s.LockedUntil.After(now)
}

// UserSummary is the public projection of a [User] returned to clients.
type UserSummary struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Role           Role            `json:"role"`
	DashboardRoute string          `json:"dashboard_route"`
	Profile        *StudentProfile `json:"profile,omitempty"`
}

// NewUserSummary builds the public summary of u. student may be nil.
func NewUserSummary(u User, student *StudentIdentity) UserSummary {
	summary := UserSummary{
		ID:             u.UserID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		DashboardRoute: u.Role.DashboardRoute(),
	}
	if student != nil {
		profile := student.Profile()
		summary.Profile = &profile
	}
	return summary
}
