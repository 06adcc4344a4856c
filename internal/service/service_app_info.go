package service

import (
	"context"

	"github.com/MKhiriev/go-project-keeper/internal/logger"
	"github.com/MKhiriev/go-project-keeper/models"
)

type appInfoService struct {
	version models.VersionResponse

	logger *logger.Logger
}

// NewAppInfoService reports version as the application version. When
// version is empty the build version is used; both empty is an error.
func NewAppInfoService(version string, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	resp := buildInfo.VersionResponse(version)
	if resp.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		version: resp,
		logger:  logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) models.VersionResponse {
	return s.version
}
