package service

import (
	"context"

	"github.com/MKhiriev/orbit-bootstrap/internal/logger"
	"github.com/MKhiriev/orbit-bootstrap/models"
)

type appInfoService struct {
	appVersion string
	buildInfo  models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService returns an AppInfoService reporting appVersion, the
// wallet version of the init config, and the build info of this binary.
func NewAppInfoService(appVersion string, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if appVersion == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: appVersion,
		buildInfo:  buildInfo,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}
