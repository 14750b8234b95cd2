// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MaxDeviceHashLength bounds the client-supplied device fingerprint.
const MaxDeviceHashLength = 255

// DeviceFingerprint is a device a user asked the platform to remember.
// DeviceHash is unique per user, not globally.
type DeviceFingerprint struct {
	ID         int64     `db:"id"`
	UserID     int64     `db:"user_id"`
	DeviceHash string    `db:"device_hash"`
	IsVerified bool      `db:"is_verified"`
	LastUsedAt time.Time `db:"last_used_at"`
	UserAgent  string    `db:"user_agent"`
	IPAddress  string    `db:"ip_address"`
	CreatedAt  time.Time `db:"created_at"`
}

// TableName returns the name of the database table
// associated with the DeviceFingerprint model.
func (d DeviceFingerprint) TableName() string {
	return "device_fingerprints"
}
