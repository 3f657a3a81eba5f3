package grpc

import (
	"bytes"
	"context"
	"net"
	"testing"

	"github.com/MKhiriev/orbit-bootstrap/internal/logger"
	"github.com/MKhiriev/orbit-bootstrap/internal/mock"
	"github.com/MKhiriev/orbit-bootstrap/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1024 * 1024

// startServer serves h over an in-memory listener and returns a connected
// client.
func startServer(t *testing.T, h *Handler) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(bufSize)
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(h.UnaryLogging))
	h.Register(server)

	go func() {
		_ = server.Serve(lis)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

// readyServices wires a mocked InitConfigService; the health checks never
// call it.
func readyServices(t *testing.T) *service.Services {
	t.Helper()
	ctrl := gomock.NewController(t)
	return &service.Services{
		InitConfigService: mock.NewMockInitConfigService(ctrl),
		AppInfoService:    mock.NewMockAppInfoService(ctrl),
	}
}

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, logger.Nop())

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.NotNil(t, h.health)
}

func TestHealth_Serving(t *testing.T) {
	client := healthpb.NewHealthClient(startServer(t, NewHandler(readyServices(t), logger.Nop())))

	for _, name := range []string{"", InitConfigServiceName} {
		t.Run(name, func(t *testing.T) {
			resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})

			require.NoError(t, err)
			assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
		})
	}
}

func TestHealth_InitConfigNotReady(t *testing.T) {
	tests := []struct {
		name     string
		services *service.Services
	}{
		{name: "nil services", services: nil},
		{name: "no init config service", services: &service.Services{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := healthpb.NewHealthClient(startServer(t, NewHandler(tt.services, logger.Nop())))

			resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: InitConfigServiceName})
			require.NoError(t, err)
			assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())

			resp, err = client.Check(context.Background(), &healthpb.HealthCheckRequest{})
			require.NoError(t, err)
			assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
		})
	}
}

func TestHealth_NotServingAfterShutdown(t *testing.T) {
	h := NewHandler(readyServices(t), logger.Nop())
	client := healthpb.NewHealthClient(startServer(t, h))

	h.Shutdown()

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: InitConfigServiceName})

	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestHealth_UnknownService(t *testing.T) {
	client := healthpb.NewHealthClient(startServer(t, NewHandler(&service.Services{}, logger.Nop())))

	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "unknown"})

	require.Error(t, err)
}

func TestReflection_ListsHealthService(t *testing.T) {
	client := reflectionpb.NewServerReflectionClient(startServer(t, NewHandler(&service.Services{}, logger.Nop())))

	stream, err := client.ServerReflectionInfo(context.Background())
	require.NoError(t, err)

	require.NoError(t, stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_ListServices{},
	}))
	resp, err := stream.Recv()
	require.NoError(t, err)

	var names []string
	for _, s := range resp.GetListServicesResponse().GetService() {
		names = append(names, s.GetName())
	}
	assert.Contains(t, names, "grpc.health.v1.Health")
}

func TestUnaryLogging(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&service.Services{}, &logger.Logger{Logger: zerolog.New(&buf)})
	client := healthpb.NewHealthClient(startServer(t, h))

	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"method":"/grpc.health.v1.Health/Check"`)
	assert.Contains(t, buf.String(), `"code":"OK"`)
}
