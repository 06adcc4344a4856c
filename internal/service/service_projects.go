package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-project-keeper/internal/logger"
	"github.com/MKhiriev/go-project-keeper/internal/store"
	"github.com/MKhiriev/go-project-keeper/internal/utils"
	"github.com/MKhiriev/go-project-keeper/models"
)

type projectService struct {
	projectRepository store.ProjectRepository
	ids               *utils.UUIDGenerator
	now               func() time.Time

	logger *logger.Logger
}

func NewProjectService(projectRepository store.ProjectRepository, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		ids:               utils.NewUUIDGenerator(),
		now:               time.Now,
		logger:            logger,
	}
}

func (p *projectService) ListProjects(ctx context.Context, publicOnly bool) ([]models.Project, error) {
	return p.projectRepository.ListProjects(ctx, publicOnly)
}

func (p *projectService) GetProject(ctx context.Context, id string) (models.Project, error) {
	project, err := p.projectRepository.GetProject(ctx, id)
	return project, mapStoreError(err)
}

// CreateProject assigns the server id. created_at sent by the client is
// kept verbatim so that reconciliation can match it later.
func (p *projectService) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	project = project.Clone()
	project.ID = p.ids.Generate()
	project.LegacyImage = nil

	if project.CreatedAt == "" {
		project.CreatedAt = models.Timestamp(p.now())
	}
	if project.Public == nil {
		project.Public = models.Bool(true)
	}

	created, err := p.projectRepository.CreateProject(ctx, project)
	if err != nil {
		return models.Project{}, fmt.Errorf("create project: %w", err)
	}

	return created, nil
}

func (p *projectService) UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error) {
	existing, err := p.projectRepository.GetProject(ctx, id)
	if err != nil {
		return models.Project{}, mapStoreError(err)
	}

	if update.UpdatedAt == "" {
		update.UpdatedAt = models.Timestamp(p.now())
	}

	updated, err := p.projectRepository.UpdateProject(ctx, update.ApplyTo(existing))
	if err != nil {
		return models.Project{}, mapStoreError(err)
	}

	return updated, nil
}

func (p *projectService) DeleteProject(ctx context.Context, id string) error {
	return mapStoreError(p.projectRepository.DeleteProject(ctx, id))
}
