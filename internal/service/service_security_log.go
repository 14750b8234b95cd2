// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/sayansi-yathu/auth-service/internal/logger"
	"github.com/sayansi-yathu/auth-service/internal/store"
	"github.com/sayansi-yathu/auth-service/models"
)

// securityEventLogger writes the audit trail. A failed write is logged and
// dropped.
type securityEventLogger struct {
	logs   store.SecurityLogRepository
	now    func() time.Time
	logger *logger.Logger
}

func NewSecurityEventLogger(logs store.SecurityLogRepository, logger *logger.Logger) SecurityEventLogger {
	return &securityEventLogger{
		logs:   logs,
		now:    time.Now,
		logger: logger,
	}
}

func (l *securityEventLogger) LoginSucceeded(ctx context.Context, userID int64, client models.ClientInfo, details models.SecurityDetails) {
	l.append(ctx, models.SecurityLogEntry{
		UserID:    &userID,
		EventType: models.EventLoginSuccess,
		IPAddress: client.IPAddress,
		UserAgent: client.UserAgent,
		Details:   details,
	})
}

func (l *securityEventLogger) LoginFailed(ctx context.Context, userID *int64, client models.ClientInfo, details models.SecurityDetails) {
	l.append(ctx, models.SecurityLogEntry{
		UserID:    userID,
		EventType: models.EventLoginFailure,
		IPAddress: client.IPAddress,
		UserAgent: client.UserAgent,
		Details:   details,
	})
}

func (l *securityEventLogger) append(ctx context.Context, entry models.SecurityLogEntry) {
	entry.CreatedAt = l.now().UTC()

	if err := l.logs.AppendSecurityLog(ctx, entry); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*securityEventLogger.append").
			Str("event_type", string(entry.EventType)).
			Str("identifier", entry.Details.Identifier).
			Msg("failed to write security log")
	}
}
