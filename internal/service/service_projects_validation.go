package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-project-keeper/internal/validators"
	"github.com/MKhiriev/go-project-keeper/models"
)

type ProjectValidationService struct {
	inner     ProjectService
	validator validators.Validator
}

func NewProjectValidationService() ProjectServiceWrapper {
	return &ProjectValidationService{
		validator: validators.NewProjectValidator(),
	}
}

func (v *ProjectValidationService) ListProjects(ctx context.Context, publicOnly bool) ([]models.Project, error) {
	return v.inner.ListProjects(ctx, publicOnly)
}

func (v *ProjectValidationService) GetProject(ctx context.Context, id string) (models.Project, error) {
	if id == "" {
		return models.Project{}, fmt.Errorf("%w: project id is required", ErrInvalidArgument)
	}

	return v.inner.GetProject(ctx, id)
}

func (v *ProjectValidationService) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	if err := v.validator.Validate(ctx, project); err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.CreateProject(ctx, project)
}

func (v *ProjectValidationService) UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error) {
	if id == "" {
		return models.Project{}, fmt.Errorf("%w: project id is required", ErrInvalidArgument)
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.UpdateProject(ctx, id, update)
}

func (v *ProjectValidationService) DeleteProject(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: project id is required", ErrInvalidArgument)
	}

	return v.inner.DeleteProject(ctx, id)
}

func (v *ProjectValidationService) Wrap(wrapped ProjectService) ProjectService {
	v.inner = wrapped
	return v
}
