// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/sayansi-yathu/auth-service/internal/logger"
	"github.com/sayansi-yathu/auth-service/internal/store"
	"github.com/sayansi-yathu/auth-service/models"
)

type deviceTrustService struct {
	devices store.DeviceRepository
	now     func() time.Time
	logger  *logger.Logger
}

func NewDeviceTrustService(devices store.DeviceRepository, logger *logger.Logger) DeviceTrustService {
	return &deviceTrustService{
		devices: devices,
		now:     time.Now,
		logger:  logger,
	}
}

// Track never fails the login: store errors are logged and reported as an
// unrecognized device.
func (s *deviceTrustService) Track(ctx context.Context, userID int64, fingerprint string, remember bool, client models.ClientInfo) bool {
	if fingerprint == "" || len(fingerprint) > models.MaxDeviceHashLength {
		return false
	}

	log := logger.FromContext(ctx)
	now := s.now().UTC()

	device, err := s.devices.FindDevice(ctx, userID, fingerprint)
	switch {
	case err == nil:
		if err = s.devices.TouchDevice(ctx, device.ID, now, client.UserAgent, client.IPAddress); err != nil {
			log.Err(err).Str("func", "*deviceTrustService.Track").Int64("device_id", device.ID).Msg("failed to update device")
		}
		return true
	case !errors.Is(err, store.ErrDeviceNotFound):
		log.Err(err).Str("func", "*deviceTrustService.Track").Int64("user_id", userID).Msg("device lookup failed")
		return false
	}

	if !remember {
		return false
	}

	err = s.devices.CreateDevice(ctx, models.DeviceFingerprint{
		UserID:     userID,
		DeviceHash: fingerprint,
		IsVerified: false,
		LastUsedAt: now,
		UserAgent:  client.UserAgent,
		IPAddress:  client.IPAddress,
		CreatedAt:  now,
	})
	if err != nil && !errors.Is(err, store.ErrDeviceAlreadyExists) {
		log.Err(err).Str("func", "*deviceTrustService.Track").Int64("user_id", userID).Msg("failed to remember device")
	}

	return false
}
