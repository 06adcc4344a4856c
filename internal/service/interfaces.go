package service

import (
	"context"

	"github.com/MKhiriev/go-project-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ProjectService is the remote collection served by cmd/server.
type ProjectService interface {
	ListProjects(ctx context.Context, publicOnly bool) ([]models.Project, error)
	GetProject(ctx context.Context, id string) (models.Project, error)
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}

// ProjectServiceWrapper defines middleware composition for ProjectService.
// Implementations wrap an existing ProjectService to add behavior such as
// validation.
type ProjectServiceWrapper interface {
	Wrap(ProjectService) ProjectService
}
