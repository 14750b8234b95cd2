// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sayansi-yathu/auth-service/internal/config"
	"github.com/sayansi-yathu/auth-service/internal/logger"
	"github.com/sayansi-yathu/auth-service/models"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestTokenService(t *testing.T, now *time.Time) *tokenService {
	t.Helper()

	svc, err := NewTokenService(config.Auth{Secret: testSecret, Issuer: "sayansi_yathu", TokenTTL: 30 * time.Minute}, logger.Nop())
	require.NoError(t, err)

	s := svc.(*tokenService)
	s.now = func() time.Time { return *now }
	return s
}

func TestNewTokenService_RejectsWeakConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Auth
	}{
		{name: "no secret", cfg: config.Auth{Issuer: "i", TokenTTL: time.Minute}},
		{name: "short secret", cfg: config.Auth{Secret: "short", Issuer: "i", TokenTTL: time.Minute}},
		{name: "no issuer", cfg: config.Auth{Secret: testSecret, TokenTTL: time.Minute}},
		{name: "no ttl", cfg: config.Auth{Secret: testSecret, Issuer: "i"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewTokenService(tt.cfg, logger.Nop())
			assert.Error(t, err)
			assert.Nil(t, svc)
		})
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestTokenService(t, &now)
	ctx := context.Background()

	token, err := svc.Issue(ctx, models.User{UserID: 42, Role: models.RoleHOD})
	require.NoError(t, err)
	assert.Equal(t, now.Add(30*time.Minute), token.ExpiresAt)
	assert.Equal(t, 30*time.Minute, token.TTL)
	assert.Len(t, strings.Split(token.SignedString, "."), 3)

	claims, err := svc.Validate(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, models.RoleHOD, claims.Role)
	assert.Equal(t, "sayansi_yathu", claims.Issuer)
	assert.Equal(t, now, claims.IssuedAt.Time.UTC())
}

func TestTokenService_WireFormat(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestTokenService(t, &now)

	token, err := svc.Issue(context.Background(), models.User{UserID: 7, Role: models.RoleStudent})
	require.NoError(t, err)

	parts := strings.Split(token.SignedString, ".")
	require.Len(t, parts, 3)

	header, err := base64.RawURLEncoding.DecodeString(parts[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"alg":"HS256","typ":"JWT"}`, string(header))

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal(payload, &fields))
	assert.Equal(t, "sayansi_yathu", fields["iss"])
	assert.EqualValues(t, 7, fields["user_id"])
	assert.Equal(t, "student", fields["role"])
	assert.EqualValues(t, now.Unix(), fields["iat"])
	assert.EqualValues(t, now.Add(30*time.Minute).Unix(), fields["exp"])

	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(parts[0] + "." + parts[1]))
	assert.Equal(t, base64.RawURLEncoding.EncodeToString(mac.Sum(nil)), parts[2])
}

func TestTokenService_Expired(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestTokenService(t, &now)
	ctx := context.Background()

	token, err := svc.Issue(ctx, models.User{UserID: 1, Role: models.RoleTeacher})
	require.NoError(t, err)

	now = now.Add(30 * time.Minute)
	_, err = svc.Validate(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestTokenService_TamperedSignature(t *testing.T) {
	now := time.Now()
	svc := newTestTokenService(t, &now)
	ctx := context.Background()

	token, err := svc.Issue(ctx, models.User{UserID: 1, Role: models.RoleTeacher})
	require.NoError(t, err)

	parts := strings.Split(token.SignedString, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.Validate(ctx, tampered)
	assert.ErrorIs(t, err, ErrTokenIsInvalid)
}

func TestTokenService_InvalidTokens(t *testing.T) {
	now := time.Now()
	svc := newTestTokenService(t, &now)
	ctx := context.Background()

	sign := func(method jwt.SigningMethod, key any, claims jwt.Claims) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	exp := jwt.NewNumericDate(now.Add(time.Hour))

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "two segments", token: "abc.def"},
		{name: "four segments", token: "a.b.c.d"},
		{name: "garbage", token: "not.a.token"},
		{name: "other secret", token: sign(jwt.SigningMethodHS256, []byte("another-secret-another-secret-xx"), models.TokenClaims{UserID: 1, RegisteredClaims: jwt.RegisteredClaims{Issuer: "sayansi_yathu", ExpiresAt: exp}})},
		{name: "other issuer", token: sign(jwt.SigningMethodHS256, []byte(testSecret), models.TokenClaims{UserID: 1, RegisteredClaims: jwt.RegisteredClaims{Issuer: "someone", ExpiresAt: exp}})},
		{name: "no exp", token: sign(jwt.SigningMethodHS256, []byte(testSecret), models.TokenClaims{UserID: 1, RegisteredClaims: jwt.RegisteredClaims{Issuer: "sayansi_yathu"}})},
		{name: "no user id", token: sign(jwt.SigningMethodHS256, []byte(testSecret), models.TokenClaims{RegisteredClaims: jwt.RegisteredClaims{Issuer: "sayansi_yathu", ExpiresAt: exp}})},
		{name: "wrong algorithm", token: sign(jwt.SigningMethodHS512, []byte(testSecret), models.TokenClaims{UserID: 1, RegisteredClaims: jwt.RegisteredClaims{Issuer: "sayansi_yathu", ExpiresAt: exp}})},
		{name: "none algorithm", token: sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, models.TokenClaims{UserID: 1, RegisteredClaims: jwt.RegisteredClaims{Issuer: "sayansi_yathu", ExpiresAt: exp}})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Validate(ctx, tt.token)
			assert.ErrorIs(t, err, ErrTokenIsInvalid)
		})
	}
}

func TestTokenService_IssueWithoutUser(t *testing.T) {
	now := time.Now()
	svc := newTestTokenService(t, &now)

	_, err := svc.Issue(context.Background(), models.User{})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
