// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-project-keeper/internal/adapter"
	"github.com/MKhiriev/go-project-keeper/internal/logger"
	"github.com/MKhiriev/go-project-keeper/internal/store"
	"github.com/MKhiriev/go-project-keeper/internal/utils"
	"github.com/MKhiriev/go-project-keeper/models"
)

// StoreOptions configures a [ProjectStore]. Remote is resolved once per
// process; nil means the remote collection is not available.
type StoreOptions struct {
	Remote  adapter.RemoteCollection
	Records store.RecordStore

	// Notifier receives ProjectsUpdated after every local write.
	// A new one is created when nil.
	Notifier *Notifier

	// OwnerOverride, when set, owns every project regardless of author.
	OwnerOverride string

	IDs    IDGenerator
	Now    func() time.Time
	Logger *logger.Logger
}

type projectStore struct {
	backend  *fallbackBackend
	notifier *Notifier

	ownerOverride string
	now           func() time.Time
	logger        *logger.Logger
}

func NewProjectStore(opts StoreOptions) ProjectStore {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Notifier == nil {
		opts.Notifier = NewNotifier(opts.Logger)
	}
	if opts.IDs == nil {
		opts.IDs = utils.NewLocalIDGenerator()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &projectStore{
		backend: newFallbackBackend(
			newRemoteBackend(opts.Remote),
			newLocalBackend(opts.Records, opts.IDs, opts.Notifier),
		),
		notifier:      opts.Notifier,
		ownerOverride: strings.TrimSpace(opts.OwnerOverride),
		now:           opts.Now,
		logger:        opts.Logger,
	}
}

func (s *projectStore) ListProjects(ctx context.Context, filter models.ListFilter) []models.Project {
	ctx = s.withLogger(ctx)

	projects, source, err := s.backend.List(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "projectStore.ListProjects").Msg("both backends failed to list projects")
		return []models.Project{}
	}

	if filter.PublicOnly {
		projects = models.FilterPublic(projects)
	}

	s.logger.Debug().Str("func", "projectStore.ListProjects").
		Str("source", string(source)).
		Int("projects", len(projects)).
		Msg("projects listed")
	return projects
}

func (s *projectStore) GetProject(ctx context.Context, id string) (models.ProjectResult, error) {
	if id == "" {
		return models.ProjectResult{}, fmt.Errorf("%w: project id is required", ErrInvalidArgument)
	}

	return s.backend.Get(s.withLogger(ctx), id)
}

func (s *projectStore) CreateProject(ctx context.Context, payload models.Project) models.ProjectResult {
	ctx = s.withLogger(ctx)

	payload = payload.Clone()
	if payload.CreatedAt == "" {
		payload.CreatedAt = models.Timestamp(s.now())
	}

	result, err := s.backend.Create(ctx, payload)
	if err != nil {
		// the local backend does not fail creates
		s.logger.Err(err).Str("func", "projectStore.CreateProject").Msg("failed to create project")
		return models.ProjectResult{Project: payload, Source: models.SourceLocal}
	}

	return result
}

func (s *projectStore) UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) (models.ProjectResult, error) {
	if id == "" {
		return models.ProjectResult{}, fmt.Errorf("%w: project id is required", ErrInvalidArgument)
	}

	update.UpdatedAt = models.Timestamp(s.now())
	return s.backend.Update(s.withLogger(ctx), id, update)
}

func (s *projectStore) DeleteProject(ctx context.Context, id string) (models.Source, error) {
	if id == "" {
		return "", fmt.Errorf("%w: project id is required", ErrInvalidArgument)
	}

	return s.backend.Delete(s.withLogger(ctx), id)
}

func (s *projectStore) TogglePublic(ctx context.Context, id string, makePublic bool) (models.ProjectResult, error) {
	return s.UpdateProject(ctx, id, models.ProjectUpdate{Public: models.Bool(makePublic)})
}

func (s *projectStore) IsOwner(record models.Project, identity string) bool {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return false
	}

	if s.ownerOverride != "" && strings.EqualFold(identity, s.ownerOverride) {
		return true
	}

	author := strings.TrimSpace(record.Author)
	if author == "" {
		return false
	}
	return strings.EqualFold(author, identity)
}

func (s *projectStore) Subscribe(buffer int) (<-chan models.Event, func()) {
	return s.notifier.Subscribe(buffer)
}

func (s *projectStore) withLogger(ctx context.Context) context.Context {
	return s.logger.EnsureContext(ctx)
}
