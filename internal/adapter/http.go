package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-project-keeper/internal/config"
	"github.com/MKhiriev/go-project-keeper/internal/logger"
	"github.com/MKhiriev/go-project-keeper/internal/utils"
	"github.com/MKhiriev/go-project-keeper/models"
)

const projectsPath = "/api/projects"

type httpRemoteCollection struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPRemoteCollection constructs the REST implementation of
// [RemoteCollection] against the server at cfg.HTTPAddress. The address may
// omit the scheme, in which case http is assumed.
func NewHTTPRemoteCollection(cfg config.ClientAdapter, logger *logger.Logger) (RemoteCollection, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpRemoteCollection{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetByID implements [RemoteCollection] via GET /api/projects/{id}.
func (h *httpRemoteCollection) GetByID(ctx context.Context, id string) (models.Project, error) {
	var project models.Project

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&project).
		Get(projectsPath + "/{id}")
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: get project: %w", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	return project, nil
}

// List implements [RemoteCollection] via GET /api/projects.
func (h *httpRemoteCollection) List(ctx context.Context) ([]models.Project, error) {
	var body models.ProjectsResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&body).
		Get(projectsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: list projects: %w", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if body.Projects == nil {
		return nil, fmt.Errorf("%w: list projects: no projects field", ErrMalformedResponse)
	}

	return body.Projects, nil
}

// Create implements [RemoteCollection] via POST /api/projects.
func (h *httpRemoteCollection) Create(ctx context.Context, payload models.Project) (models.Project, error) {
	var created models.Project

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&created).
		Post(projectsPath)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: create project: %w", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	if created.ID == "" {
		return models.Project{}, fmt.Errorf("%w: create project: empty id", ErrMalformedResponse)
	}

	return created, nil
}

// Update implements [RemoteCollection] via PUT /api/projects/{id}.
func (h *httpRemoteCollection) Update(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error) {
	var updated models.Project

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(update).
		SetResult(&updated).
		Put(projectsPath + "/{id}")
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: update project: %w", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	return updated, nil
}

// Delete implements [RemoteCollection] via DELETE /api/projects/{id}.
func (h *httpRemoteCollection) Delete(ctx context.Context, id string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete(projectsPath + "/{id}")
	if err != nil {
		return fmt.Errorf("%w: delete project: %w", ErrRemoteUnavailable, err)
	}

	return mapHTTPError(resp)
}
