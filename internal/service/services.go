// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/sayansi-yathu/auth-service/internal/config"
	"github.com/sayansi-yathu/auth-service/internal/crypto"
	"github.com/sayansi-yathu/auth-service/internal/logger"
	"github.com/sayansi-yathu/auth-service/internal/store"
)

// Services is the set of services exposed to the transport layer.
type Services struct {
	AuthService    AuthService
	TokenService   TokenService
	AppInfoService AppInfoService
}

// NewServices wires every service over storages. The AuthService is wrapped
// with request validation.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	tokens, err := NewTokenService(cfg.Auth, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating token service: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, storages.HealthChecker, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	auth := newAuthService(authDependencies{
		Users:    storages.UserRepository,
		Students: storages.StudentRepository,
		Resolver: NewResolverChain(storages),
		Tokens:   tokens,
		Lockout:  NewLockoutTracker(storages.UserRepository, cfg.Lockout, logger),
		Devices:  NewDeviceTrustService(storages.DeviceRepository, logger),
		Events:   NewSecurityEventLogger(storages.SecurityLogRepository, logger),
		Hasher:   crypto.NewPasswordHasher(cfg.App.PasswordCost),
	}, logger)

	return &Services{
		AuthService:    NewAuthValidationService().Wrap(auth),
		TokenService:   tokens,
		AppInfoService: appInfo,
	}, nil
}
