package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-project-keeper/internal/adapter"
	"github.com/MKhiriev/go-project-keeper/internal/logger"
	"github.com/MKhiriev/go-project-keeper/internal/store"
	"github.com/MKhiriev/go-project-keeper/models"
)

// ── remote ───────────────────────────────────────────────────────────────────

// remoteBackend serves projects from the remote collection. A nil collection
// means the capability is absent; every call then fails with
// adapter.ErrRemoteUnavailable.
type remoteBackend struct {
	remote adapter.RemoteCollection
}

func newRemoteBackend(remote adapter.RemoteCollection) *remoteBackend {
	return &remoteBackend{remote: remote}
}

func (b *remoteBackend) Source() models.Source { return models.SourceRemote }

func (b *remoteBackend) collection() (adapter.RemoteCollection, error) {
	if b.remote == nil {
		return nil, adapter.ErrRemoteUnavailable
	}
	return b.remote, nil
}

func (b *remoteBackend) List(ctx context.Context) ([]models.Project, error) {
	remote, err := b.collection()
	if err != nil {
		return nil, err
	}

	projects, err := remote.List(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return projects, nil
}

func (b *remoteBackend) Get(ctx context.Context, id string) (models.Project, error) {
	remote, err := b.collection()
	if err != nil {
		return models.Project{}, err
	}

	project, err := remote.GetByID(ctx, id)
	if err != nil {
		return models.Project{}, mapAdapterError(err)
	}
	return project, nil
}

func (b *remoteBackend) Create(ctx context.Context, payload models.Project) (models.Project, error) {
	remote, err := b.collection()
	if err != nil {
		return models.Project{}, err
	}

	created, err := remote.Create(ctx, payload)
	if err != nil {
		return models.Project{}, mapAdapterError(err)
	}
	return created, nil
}

func (b *remoteBackend) Update(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error) {
	remote, err := b.collection()
	if err != nil {
		return models.Project{}, err
	}

	updated, err := remote.Update(ctx, id, update)
	if err != nil {
		return models.Project{}, mapAdapterError(err)
	}
	return updated, nil
}

func (b *remoteBackend) Delete(ctx context.Context, id string) error {
	remote, err := b.collection()
	if err != nil {
		return err
	}

	return mapAdapterError(remote.Delete(ctx, id))
}

// ── local ────────────────────────────────────────────────────────────────────

// localBackend serves projects from the local record store. Every write is
// a read-modify-write of the whole collection and is followed by a
// ProjectsUpdated notification.
type localBackend struct {
	records  store.RecordStore
	ids      IDGenerator
	notifier *Notifier
}

func newLocalBackend(records store.RecordStore, ids IDGenerator, notifier *Notifier) *localBackend {
	return &localBackend{records: records, ids: ids, notifier: notifier}
}

func (b *localBackend) Source() models.Source { return models.SourceLocal }

func (b *localBackend) List(ctx context.Context) ([]models.Project, error) {
	projects, err := b.records.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read local projects: %w", err)
	}
	return projects, nil
}

func (b *localBackend) Get(ctx context.Context, id string) (models.Project, error) {
	projects, err := b.List(ctx)
	if err != nil {
		return models.Project{}, err
	}

	i := indexByID(projects, id)
	if i < 0 {
		return models.Project{}, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	return projects[i], nil
}

// Create never fails. When the collection cannot be read or written the
// record is returned anyway and the failure is only logged.
func (b *localBackend) Create(ctx context.Context, payload models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	record := payload.Clone()
	record.ID = b.ids.Generate()
	if record.Public == nil {
		record.Public = models.Bool(true)
	}

	projects, err := b.records.ReadAll(ctx)
	if err != nil {
		log.Warn().Err(err).Str("func", "localBackend.Create").Str("project_id", record.ID).
			Msg("local collection unreadable, record kept in memory only")
		return record, nil
	}

	projects = slices.Insert(projects, 0, record)
	b.persist(ctx, "localBackend.Create", projects)

	return record, nil
}

func (b *localBackend) Update(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error) {
	projects, err := b.List(ctx)
	if err != nil {
		return models.Project{}, err
	}

	i := indexByID(projects, id)
	if i < 0 {
		return models.Project{}, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}

	projects[i] = update.ApplyTo(projects[i])
	b.persist(ctx, "localBackend.Update", projects)

	return projects[i], nil
}

func (b *localBackend) Delete(ctx context.Context, id string) error {
	projects, err := b.List(ctx)
	if err != nil {
		return err
	}

	i := indexByID(projects, id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}

	projects = slices.Delete(projects, i, i+1)
	b.persist(ctx, "localBackend.Delete", projects)

	return nil
}

// persist writes projects and publishes them. A failed write is logged as a
// warning; the caller still reports success.
func (b *localBackend) persist(ctx context.Context, fn string, projects []models.Project) {
	if err := b.records.WriteAll(ctx, projects); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", fn).
			Int("projects", len(projects)).
			Msg("failed to persist local projects")
	}
	b.notifier.Publish(models.ProjectsUpdated(projects))
}

func indexByID(projects []models.Project, id string) int {
	return slices.IndexFunc(projects, func(p models.Project) bool { return p.ID == id })
}

// ── fallback ─────────────────────────────────────────────────────────────────

// fallbackBackend tries primary and, on any error, secondary. The secondary
// answer, including its error, is final.
type fallbackBackend struct {
	primary   ProjectBackend
	secondary ProjectBackend
}

func newFallbackBackend(primary, secondary ProjectBackend) *fallbackBackend {
	return &fallbackBackend{primary: primary, secondary: secondary}
}

func (b *fallbackBackend) List(ctx context.Context) ([]models.Project, models.Source, error) {
	projects, err := b.primary.List(ctx)
	if err == nil {
		return projects, b.primary.Source(), nil
	}
	b.logFallback(ctx, "List", "", err)

	projects, secondaryErr := b.secondary.List(ctx)
	if secondaryErr != nil {
		return nil, b.secondary.Source(), errors.Join(err, secondaryErr)
	}
	return projects, b.secondary.Source(), nil
}

func (b *fallbackBackend) Get(ctx context.Context, id string) (models.ProjectResult, error) {
	project, err := b.primary.Get(ctx, id)
	if err == nil {
		return models.ProjectResult{Project: project, Source: b.primary.Source()}, nil
	}
	b.logFallback(ctx, "Get", id, err)

	project, err = b.secondary.Get(ctx, id)
	if err != nil {
		return models.ProjectResult{}, err
	}
	return models.ProjectResult{Project: project, Source: b.secondary.Source()}, nil
}

func (b *fallbackBackend) Create(ctx context.Context, payload models.Project) (models.ProjectResult, error) {
	created, err := b.primary.Create(ctx, payload)
	if err == nil {
		return models.ProjectResult{Project: created, Source: b.primary.Source()}, nil
	}
	b.logFallback(ctx, "Create", "", err)

	created, err = b.secondary.Create(ctx, payload)
	if err != nil {
		return models.ProjectResult{}, err
	}
	return models.ProjectResult{Project: created, Source: b.secondary.Source()}, nil
}

func (b *fallbackBackend) Update(ctx context.Context, id string, update models.ProjectUpdate) (models.ProjectResult, error) {
	updated, err := b.primary.Update(ctx, id, update)
	if err == nil {
		return models.ProjectResult{Project: updated, Source: b.primary.Source()}, nil
	}
	b.logFallback(ctx, "Update", id, err)

	updated, err = b.secondary.Update(ctx, id, update)
	if err != nil {
		return models.ProjectResult{}, err
	}
	return models.ProjectResult{Project: updated, Source: b.secondary.Source()}, nil
}

func (b *fallbackBackend) Delete(ctx context.Context, id string) (models.Source, error) {
	err := b.primary.Delete(ctx, id)
	if err == nil {
		return b.primary.Source(), nil
	}
	b.logFallback(ctx, "Delete", id, err)

	if err = b.secondary.Delete(ctx, id); err != nil {
		return "", err
	}
	return b.secondary.Source(), nil
}

func (b *fallbackBackend) logFallback(ctx context.Context, op, id string, err error) {
	logger.FromContext(ctx).Debug().Err(err).
		Str("func", "fallbackBackend."+op).
		Str("project_id", id).
		Str("from", string(b.primary.Source())).
		Str("to", string(b.secondary.Source())).
		Msg("primary backend failed, falling back")
}
