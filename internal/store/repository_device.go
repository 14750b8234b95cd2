// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sayansi-yathu/auth-service/internal/logger"
	"github.com/sayansi-yathu/auth-service/models"
)

type deviceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDeviceRepository constructs a [DeviceRepository] over the
// "device_fingerprints" table.
func NewDeviceRepository(db *DB, logger *logger.Logger) DeviceRepository {
	logger.Debug().Msg("creating device repository")
	return &deviceRepository{
		db:     db,
		logger: logger,
	}
}

func (r *deviceRepository) FindDevice(ctx context.Context, userID int64, deviceHash string) (models.DeviceFingerprint, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDeviceQuery(r.db.builder, userID, deviceHash)
	if err != nil {
		return models.DeviceFingerprint{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var device models.DeviceFingerprint
	if err = r.db.GetContext(ctx, &device, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DeviceFingerprint{}, ErrDeviceNotFound
		}
		log.Err(err).Str("func", "*deviceRepository.FindDevice").Int64("user_id", userID).Msg("error selecting device")
		return models.DeviceFingerprint{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return device, nil
}

// CreateDevice inserts a fingerprint. A duplicate (user_id, device_hash)
// yields [ErrDeviceAlreadyExists].
func (r *deviceRepository) CreateDevice(ctx context.Context, device models.DeviceFingerprint) error {
	log := logger.FromContext(ctx)

	if device.CreatedAt.IsZero() {
		device.CreatedAt = device.LastUsedAt
	}

	query, args, err := buildInsertDeviceQuery(r.db.builder, device)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*deviceRepository.CreateDevice").Int64("user_id", device.UserID).Msg("error inserting device")
		if conflict := uniqueViolation(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *deviceRepository) TouchDevice(ctx context.Context, deviceID int64, lastUsedAt time.Time, userAgent, ipAddress string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildTouchDeviceQuery(r.db.builder, deviceID, lastUsedAt, userAgent, ipAddress)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*deviceRepository.TouchDevice").Int64("device_id", deviceID).Msg("error updating device")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
