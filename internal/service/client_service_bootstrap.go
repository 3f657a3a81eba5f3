package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/orbit-bootstrap/internal/adapter"
	"github.com/MKhiriev/orbit-bootstrap/internal/logger"
	"github.com/MKhiriev/orbit-bootstrap/models"
)

type clientBootstrapService struct {
	serverAdapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientBootstrapService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientBootstrapService {
	return &clientBootstrapService{
		serverAdapter: serverAdapter,
		logger:        logger,
	}
}

func (s *clientBootstrapService) InitConfig(ctx context.Context, pathname, acceptLanguage string) (models.AppInitConfigView, error) {
	if pathname == "" {
		pathname = DefaultBaseURL
	}

	view, err := s.serverAdapter.FetchInitConfig(ctx, pathname, acceptLanguage)
	if err != nil {
		return models.AppInitConfigView{}, fmt.Errorf("fetch init config: %w", mapAdapterError(err))
	}

	return view, nil
}

func (s *clientBootstrapService) Version(ctx context.Context) (string, models.BuildInfoResponse, error) {
	version, err := s.serverAdapter.FetchVersion(ctx)
	if err != nil {
		return "", models.BuildInfoResponse{}, fmt.Errorf("fetch version: %w", mapAdapterError(err))
	}

	info, err := s.serverAdapter.FetchBuildInfo(ctx)
	if err != nil {
		return "", models.BuildInfoResponse{}, fmt.Errorf("fetch build info: %w", mapAdapterError(err))
	}

	return version, info, nil
}

func (s *clientBootstrapService) Gateway(ctx context.Context, nameOrID string) (models.GatewayResponse, error) {
	gw, err := s.serverAdapter.ResolveCanisterGateway(ctx, nameOrID)
	if err == nil {
		return gw, nil
	}

	err = mapAdapterError(err)
	if !errors.Is(err, ErrCanisterNotConfigured) {
		return models.GatewayResponse{}, fmt.Errorf("resolve canister gateway: %w", err)
	}

	s.logger.Debug().Str("value", nameOrID).Msg("not a configured canister name, resolving as id")

	gw, err = s.serverAdapter.ResolveGateway(ctx, nameOrID)
	if err != nil {
		return models.GatewayResponse{}, fmt.Errorf("resolve gateway: %w", mapAdapterError(err))
	}

	return gw, nil
}
