package service

import (
	"github.com/MKhiriev/go-project-keeper/internal/config"
	"github.com/MKhiriev/go-project-keeper/internal/logger"
	"github.com/MKhiriev/go-project-keeper/internal/store"
	"github.com/MKhiriev/go-project-keeper/models"
)

type Services struct {
	ProjectService ProjectService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.Version, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	projects := NewProjectValidationService().Wrap(NewProjectService(storages.ProjectRepository, logger))

	return &Services{
		ProjectService: projects,
		AppInfoService: appInfo,
	}, nil
}
