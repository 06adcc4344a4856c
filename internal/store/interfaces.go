package store

import (
	"context"

	"github.com/MKhiriev/go-project-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SlotStore is a durable key/value store of named slots. Each slot holds one
// serialized document. Get returns [ErrSlotNotFound] for a missing slot.
type SlotStore interface {
	Get(ctx context.Context, name string) ([]byte, error)
	Put(ctx context.Context, name string, value []byte) error
	Delete(ctx context.Context, name string) error
	Close() error
}

// RecordStore is the local record store: the whole project collection is
// read and written as one ordered sequence, newest first.
type RecordStore interface {
	ReadAll(ctx context.Context) ([]models.Project, error)
	WriteAll(ctx context.Context, projects []models.Project) error
}

// AccountStore keeps local accounts and the current session marker.
type AccountStore interface {
	GetAccounts(ctx context.Context) (map[string]models.Account, error)
	SaveAccounts(ctx context.Context, accounts map[string]models.Account) error
	GetSession(ctx context.Context) (*models.Session, error)
	SaveSession(ctx context.Context, session models.Session) error
	DeleteSession(ctx context.Context) error
}

// ProjectRepository is the server-side Postgres repository behind the
// remote collection.
type ProjectRepository interface {
	ListProjects(ctx context.Context, publicOnly bool) ([]models.Project, error)
	GetProject(ctx context.Context, id string) (models.Project, error)
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	UpdateProject(ctx context.Context, project models.Project) (models.Project, error)
	DeleteProject(ctx context.Context, id string) error
}
