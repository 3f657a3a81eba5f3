package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/MKhiriev/orbit-bootstrap/internal/config"
	myGRPC "github.com/MKhiriev/orbit-bootstrap/internal/handler/grpc"
	"github.com/MKhiriev/orbit-bootstrap/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

// newGRPCServer opens the listener right away so that a bad address fails
// at startup.
func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	lis, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("%w on %s: %w", ErrListenGRPC, cfg.GRPCAddress, err)
	}

	server := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.UnaryLogging))
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: lis,
		logger:          logger,
	}, nil
}

func (g *grpcServer) serve() error {
	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("launching gRPC server")

	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		return errors.Join(ErrServeGRPC, err)
	}

	return nil
}

// shutdown reports NOT_SERVING before draining in-flight calls. Calls still
// running when ctx expires are cancelled.
func (g *grpcServer) shutdown(ctx context.Context) {
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		g.logger.Warn().Msg("gRPC graceful stop timed out")
		g.server.Stop()
	}
}
