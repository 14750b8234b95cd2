// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sayansi-yathu/auth-service/internal/config"
	"github.com/sayansi-yathu/auth-service/internal/logger"
	"github.com/sayansi-yathu/auth-service/models"
)

// tokenService is the HS256 implementation of TokenService.
type tokenService struct {
	// secret signs and verifies every token. At least
	// [config.MinSecretLength] bytes.
	secret []byte

	// issuer is written to and required in the "iss" claim.
	issuer string

	// ttl is the lifetime of an issued token.
	ttl time.Duration

	// now is the clock used for iat/exp and for validation.
	now func() time.Time

	logger *logger.Logger
}

// NewTokenService builds a TokenService from the validated auth config. It
// refuses to start without a usable secret.
func NewTokenService(cfg config.Auth, logger *logger.Logger) (TokenService, error) {
	if len(cfg.Secret) < config.MinSecretLength {
		return nil, fmt.Errorf("%w: secret must be at least %d bytes", config.ErrWeakTokenSecret, config.MinSecretLength)
	}
	if cfg.Issuer == "" || cfg.TokenTTL <= 0 {
		return nil, config.ErrInvalidAuthConfigs
	}

	return &tokenService{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    cfg.TokenTTL,
		now:    time.Now,
		logger: logger,
	}, nil
}

// Issue signs a token for user carrying its id and role.
func (s *tokenService) Issue(ctx context.Context, user models.User) (models.Token, error) {
	if user.UserID == 0 {
		return models.Token{}, fmt.Errorf("%w: empty user id", ErrTokenCreationFailed)
	}

	now := s.now().UTC()
	expiresAt := now.Add(s.ttl)
	claims := models.TokenClaims{
		UserID: user.UserID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.Issue").Msg("error signing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.Token{
		SignedString: signed,
		Claims:       claims,
		ExpiresAt:    claims.ExpiresAt.Time,
		TTL:          s.ttl,
	}, nil
}

// Validate checks the structure, signature, issuer and expiry of
// tokenString and returns its claims.
func (s *tokenService) Validate(ctx context.Context, tokenString string) (models.TokenClaims, error) {
	claims := models.TokenClaims{}

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*tokenService.Validate").Msg("token rejected")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.TokenClaims{}, ErrTokenIsExpired
		}
		return models.TokenClaims{}, ErrTokenIsInvalid
	}

	if claims.UserID <= 0 {
		return models.TokenClaims{}, ErrTokenIsInvalid
	}

	return claims, nil
}
