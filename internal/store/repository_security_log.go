// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sayansi-yathu/auth-service/internal/logger"
	"github.com/sayansi-yathu/auth-service/models"
)

type securityLogRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSecurityLogRepository constructs a [SecurityLogRepository] over the
// "security_logs" table.
func NewSecurityLogRepository(db *DB, logger *logger.Logger) SecurityLogRepository {
	logger.Debug().Msg("creating security log repository")
	return &securityLogRepository{
		db:     db,
		logger: logger,
	}
}

// AppendSecurityLog inserts entry with its details serialized as JSON.
func (r *securityLogRepository) AppendSecurityLog(ctx context.Context, entry models.SecurityLogEntry) error {
	log := logger.FromContext(ctx)

	details, err := json.Marshal(entry.Details)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingDetails, err)
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildInsertSecurityLogQuery(r.db.builder, entry, string(details))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*securityLogRepository.AppendSecurityLog").Str("event_type", string(entry.EventType)).Msg("error inserting security log")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
