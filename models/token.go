// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the payload of a session token: iss, iat, exp, user_id, role.
type TokenClaims struct {
	UserID int64 `json:"user_id"`
	Role   Role  `json:"role"`
	jwt.RegisteredClaims
}

// Token is an issued session token.
type Token struct {
	// SignedString is the compact header.payload.signature form.
	SignedString string

	// Claims holds the decoded payload.
	Claims TokenClaims

	// ExpiresAt mirrors the exp claim.
	ExpiresAt time.Time

	// TTL is the configured lifetime the token was issued with.
	TTL time.Duration
}
