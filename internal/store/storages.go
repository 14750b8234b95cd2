// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/sayansi-yathu/auth-service/internal/logger"

// Storages bundles every repository built on one database connection.
type Storages struct {
	UserRepository        UserRepository
	StudentRepository     StudentRepository
	DeviceRepository      DeviceRepository
	SecurityLogRepository SecurityLogRepository
	HealthChecker         HealthChecker
}

// NewStorages builds all repositories on db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(db, logger),
		StudentRepository:     NewStudentRepository(db, logger),
		DeviceRepository:      NewDeviceRepository(db, logger),
		SecurityLogRepository: NewSecurityLogRepository(db, logger),
		HealthChecker:         db,
	}
}
