// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/sayansi-yathu/auth-service/internal/config"
	"github.com/sayansi-yathu/auth-service/internal/logger"
	"github.com/sayansi-yathu/auth-service/internal/store"
	"github.com/sayansi-yathu/auth-service/models"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "sayansi-yathu-auth"

// healthPingTimeout bounds the database ping of a health check.
const healthPingTimeout = 2 * time.Second

type appInfoService struct {
	appVersion string
	db         store.HealthChecker
	now        func() time.Time

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, db store.HealthChecker, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		db:         db,
		now:        time.Now,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Health pings the database. A failed ping degrades the status, it never
// errors.
func (s *appInfoService) Health(ctx context.Context) models.HealthResponse {
	resp := models.HealthResponse{
		Status:   "ok",
		Service:  ServiceName,
		Version:  s.appVersion,
		Time:     s.now().UTC().Format(time.RFC3339),
		Database: "up",
	}

	pingCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if s.db == nil {
		resp.Status, resp.Database = "degraded", "down"
		return resp
	}
	if err := s.db.PingContext(pingCtx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*appInfoService.Health").Msg("database ping failed")
		resp.Status, resp.Database = "degraded", "down"
	}

	return resp
}
