package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/orbit-bootstrap/internal/config"
	"github.com/MKhiriev/orbit-bootstrap/internal/logger"
	"github.com/MKhiriev/orbit-bootstrap/models"
)

type Services struct {
	InitConfigService InitConfigService
	AppInfoService    AppInfoService
}

func NewServices(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	initConfigService := NewInitConfigService(cfg, logger)

	appInfoService, err := NewAppInfoService(initConfigService.InitConfig(context.Background(), DefaultBaseURL).Version(), buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		InitConfigService: initConfigService,
		AppInfoService:    appInfoService,
	}, nil
}
