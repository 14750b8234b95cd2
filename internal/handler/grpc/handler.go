// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard grpc.health.v1 service for the
// authentication service.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/sayansi-yathu/auth-service/internal/logger"
	"github.com/sayansi-yathu/auth-service/internal/service"
)

// HealthServiceName is the service name reported by the health endpoint in
// addition to the overall ("") status.
const HealthServiceName = "sayansi.auth"

// Handler is the root gRPC transport handler.
//
// It owns the health status of the process. A handler instance is created
// once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Every service starts as NOT_SERVING
// until [Handler.SetServing] is called.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing marks the process ready.
func (h *Handler) SetServing() {
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
	h.logger.Info().Str("service", HealthServiceName).Msg("gRPC health set to SERVING")
}

// Shutdown marks every service NOT_SERVING. Later status updates are
// ignored.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
	h.logger.Info().Str("service", HealthServiceName).Msg("gRPC health set to NOT_SERVING")
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(HealthServiceName, status)
}
