// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"net"

	"google.golang.org/grpc"

	"github.com/sayansi-yathu/auth-service/internal/config"
	myGRPC "github.com/sayansi-yathu/auth-service/internal/handler/grpc"
	"github.com/sayansi-yathu/auth-service/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	address         string
	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

// RunServer listens on the configured address unless a listener was set,
// reports SERVING and blocks in Serve.
func (g *grpcServer) RunServer() {
	if g.gRPCNetListener == nil {
		lis, err := net.Listen("tcp", g.address)
		if err != nil {
			g.logger.Err(err).Str("address", g.address).Msg("gRPC server Listen")
			return
		}
		g.gRPCNetListener = lis
	}

	g.handler.SetServing()
	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")

	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Err(err).Msg("gRPC server Serve")
	}
}

// Shutdown reports NOT_SERVING before draining in-flight calls.
func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
