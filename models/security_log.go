// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SecurityEventType enumerates the audit events written by the login flow.
type SecurityEventType string

const (
	EventLoginSuccess SecurityEventType = "login_success"
	EventLoginFailure SecurityEventType = "login_failure"
)

// SecurityLogEntry is an append-only audit record of a login attempt.
// UserID is nil when the identifier did not resolve to an account.
type SecurityLogEntry struct {
	ID        int64             `db:"id"`
	UserID    *int64            `db:"user_id"`
	EventType SecurityEventType `db:"event_type"`
	IPAddress string            `db:"ip_address"`
	UserAgent string            `db:"user_agent"`
	Details   SecurityDetails   `db:"-"`
	CreatedAt time.Time         `db:"created_at"`
}

// SecurityDetails is the structured payload stored in the details column.
type SecurityDetails struct {
	Identifier string `json:"identifier"`
	Reason     string `json:"reason,omitempty"`
	Remembered bool   `json:"device_remembered,omitempty"`
	Recognized bool   `json:"device_recognized,omitempty"`
	Locked     bool   `json:"locked,omitempty"`
}

// Failure reasons recorded in [SecurityDetails.Reason].
const (
	ReasonUnknownIdentifier = "unknown_identifier"
	ReasonWrongPassword     = "wrong_password"
)

// TableName returns the name of the database table
// associated with the SecurityLogEntry model.
func (s SecurityLogEntry) TableName() string {
	return "security_logs"
}
