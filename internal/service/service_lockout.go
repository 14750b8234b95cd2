// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"time"

	"github.com/sayansi-yathu/auth-service/internal/config"
	"github.com/sayansi-yathu/auth-service/internal/logger"
	"github.com/sayansi-yathu/auth-service/internal/store"
	"github.com/sayansi-yathu/auth-service/models"
)

// lockoutTracker stores its state in the users table. Reads and writes are
// not serialized: concurrent failures may under-count.
type lockoutTracker struct {
	users store.UserRepository

	// threshold is the failed attempt count that triggers a lock.
	threshold int

	// duration is the length of the lock window.
	duration time.Duration

	now    func() time.Time
	logger *logger.Logger
}

func NewLockoutTracker(users store.UserRepository, cfg config.Lockout, logger *logger.Logger) LockoutTracker {
	return &lockoutTracker{
		users:     users,
		threshold: cfg.Threshold,
		duration:  cfg.Duration,
		now:       time.Now,
		logger:    logger,
	}
}

func (t *lockoutTracker) IsLocked(ctx context.Context, identifier string) bool {
	log := logger.FromContext(ctx)

	states, err := t.users.FindLockStates(ctx, identifier, strings.ToUpper(identifier))
	if err != nil {
		log.Err(err).Str("func", "*lockoutTracker.IsLocked").Str("identifier", identifier).Msg("lock state lookup failed")
		return false
	}

	now := t.now()
	for _, state := range states {
		if state.IsLocked(now) {
			return true
		}
	}

	return false
}

// RegisterFailure writes failed_attempts+1 and, once the threshold is
// reached, a lock expiring duration from now.
func (t *lockoutTracker) RegisterFailure(ctx context.Context, user models.User) bool {
	log := logger.FromContext(ctx)

	attempts := user.FailedAttempts + 1
	lockedUntil := user.LockedUntil
	locked := false

	if attempts >= t.threshold {
		until := t.now().UTC().Add(t.duration)
		lockedUntil = &until
		locked = true
	}

	if err := t.users.UpdateLoginAttempts(ctx, user.UserID, attempts, lockedUntil); err != nil {
		log.Err(err).Str("func", "*lockoutTracker.RegisterFailure").Int64("user_id", user.UserID).Msg("failed to store login attempt")
	}

	if locked {
		log.Warn().Int64("user_id", user.UserID).Int("failed_attempts", attempts).Time("locked_until", *lockedUntil).Msg("account locked")
	}

	return locked
}

func (t *lockoutTracker) Reset(ctx context.Context, user models.User) {
	if err := t.users.UpdateLoginAttempts(ctx, user.UserID, 0, nil); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*lockoutTracker.Reset").Int64("user_id", user.UserID).Msg("failed to reset login attempts")
	}
}
