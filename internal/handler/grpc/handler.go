// Package grpc exposes the standard gRPC health service and server
// reflection for the bootstrap server.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/orbit-bootstrap/internal/logger"
	"github.com/MKhiriev/orbit-bootstrap/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

// InitConfigServiceName is the health service name reported for the init
// config endpoint, next to the overall "" entry.
const InitConfigServiceName = "orbit.bootstrap.InitConfig"

// Handler is the root gRPC transport handler.
//
// It owns the health server whose statuses follow the process lifecycle:
// SERVING once registered, NOT_SERVING from Shutdown on. The init config
// entry stays NOT_SERVING while no InitConfigService is wired.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register attaches the health and reflection services to server, marks the
// server as SERVING and reports the init config readiness.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
	reflection.Register(server)

	initConfig := healthpb.HealthCheckResponse_NOT_SERVING
	if h.initConfigReady() {
		initConfig = healthpb.HealthCheckResponse_SERVING
	}

	h.setStatus("", healthpb.HealthCheckResponse_SERVING)
	h.setStatus(InitConfigServiceName, initConfig)
}

// Shutdown marks every service as NOT_SERVING so that load balancers drain
// the instance before the listener closes.
func (h *Handler) Shutdown() {
	h.setStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	h.setStatus(InitConfigServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	h.health.Shutdown()
}

func (h *Handler) initConfigReady() bool {
	return h.services != nil && h.services.InitConfigService != nil
}

func (h *Handler) setStatus(name string, s healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus(name, s)
	h.logger.Info().Str("service", name).Str("status", s.String()).Msg("gRPC health status changed")
}

// UnaryLogging logs every unary call with its method, status code and
// duration.
func (h *Handler) UnaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := next(ctx, req)

	h.logger.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
