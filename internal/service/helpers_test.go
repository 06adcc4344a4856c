package service

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-project-keeper/internal/adapter"
	"github.com/MKhiriev/go-project-keeper/internal/store"
	"github.com/MKhiriev/go-project-keeper/models"
)

// seqIDs выдаёт предсказуемые локальные идентификаторы: local-1, local-2, ...
type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s%d", models.LocalIDPrefix, g.n)
}

// memRemote — удалённая коллекция в памяти; down=true имитирует недоступность.
type memRemote struct {
	mu       sync.Mutex
	projects []models.Project
	nextID   int
	down     bool
	failOn   map[string]bool // title → Create fails
	creates  []models.Project
}

var _ adapter.RemoteCollection = (*memRemote)(nil)

func (m *memRemote) GetByID(_ context.Context, id string) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.down {
		return models.Project{}, adapter.ErrRemoteUnavailable
	}
	for _, p := range m.projects {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return models.Project{}, adapter.ErrNotFound
}

func (m *memRemote) List(_ context.Context) ([]models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.down {
		return nil, adapter.ErrRemoteUnavailable
	}
	out := make([]models.Project, len(m.projects))
	copy(out, m.projects)
	return out, nil
}

func (m *memRemote) Create(_ context.Context, payload models.Project) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.down {
		return models.Project{}, adapter.ErrRemoteUnavailable
	}
	if m.failOn[payload.Title] {
		return models.Project{}, adapter.ErrInternalServerError
	}
	m.creates = append(m.creates, payload.Clone())

	m.nextID++
	created := payload.Clone()
	created.ID = fmt.Sprintf("remote-%d", m.nextID)
	if created.Public == nil {
		created.Public = models.Bool(true)
	}
	m.projects = slices.Insert(m.projects, 0, created)
	return created.Clone(), nil
}

func (m *memRemote) Update(_ context.Context, id string, update models.ProjectUpdate) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.down {
		return models.Project{}, adapter.ErrRemoteUnavailable
	}
	for i, p := range m.projects {
		if p.ID == id {
			m.projects[i] = update.ApplyTo(p)
			return m.projects[i].Clone(), nil
		}
	}
	return models.Project{}, adapter.ErrNotFound
}

func (m *memRemote) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.down {
		return adapter.ErrRemoteUnavailable
	}
	for i, p := range m.projects {
		if p.ID == id {
			m.projects = slices.Delete(m.projects, i, i+1)
			return nil
		}
	}
	return adapter.ErrNotFound
}

func (m *memRemote) setDown(down bool) {
	m.mu.Lock()
	m.down = down
	m.mu.Unlock()
}

// newFileStorages собирает клиентские хранилища поверх JSON-файла во временном каталоге.
func newFileStorages(t *testing.T) *store.ClientStorages {
	t.Helper()
	slots, err := store.NewFileSlotStore(filepath.Join(t.TempDir(), "slots.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = slots.Close() })
	return store.NewClientStoragesFromSlots(slots)
}

func fixedNow() time.Time {
	return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func readLocal(t *testing.T, records store.RecordStore) []models.Project {
	t.Helper()
	projects, err := records.ReadAll(context.Background())
	require.NoError(t, err)
	return projects
}
