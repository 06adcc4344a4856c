package service

import (
	"context"

	"github.com/MKhiriev/go-project-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ProjectStore is the dual-backend project store. Every call tries the remote
// collection first and answers from the local record store when the remote
// fails for any reason. Callers never see which backend is unavailable.
type ProjectStore interface {
	// ListProjects returns the remote collection when it answers, else the
	// local one (newest first). It never fails; when both backends fail the
	// result is empty.
	ListProjects(ctx context.Context, filter models.ListFilter) []models.Project

	// GetProject returns the record and the backend that served it.
	// Returns ErrInvalidArgument for an empty id and ErrProjectNotFound when
	// neither backend has the record.
	GetProject(ctx context.Context, id string) (models.ProjectResult, error)

	// CreateProject stores payload and always succeeds. When the remote
	// create fails the record gets a local id and is kept locally.
	CreateProject(ctx context.Context, payload models.Project) models.ProjectResult

	// UpdateProject merges update over the record with id and stamps
	// updated_at. Returns ErrProjectNotFound when the backend finally
	// consulted has no such record.
	UpdateProject(ctx context.Context, id string, update models.ProjectUpdate) (models.ProjectResult, error)

	// DeleteProject removes the record and reports which backend removed it.
	DeleteProject(ctx context.Context, id string) (models.Source, error)

	// TogglePublic sets the public flag of the record with id.
	TogglePublic(ctx context.Context, id string, makePublic bool) (models.ProjectResult, error)

	// IsOwner reports whether identity owns record.
	IsOwner(record models.Project, identity string) bool

	// Subscribe registers a listener for store notifications.
	Subscribe(buffer int) (<-chan models.Event, func())
}

// ProjectBackend is one of the two places a project can live.
type ProjectBackend interface {
	Source() models.Source
	List(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id string) (models.Project, error)
	Create(ctx context.Context, payload models.Project) (models.Project, error)
	Update(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error)
	Delete(ctx context.Context, id string) error
}

// Normalizer migrates the stored local collection to the current record
// shape. It runs once at start-up, before reconciliation.
type Normalizer interface {
	// Normalize backfills ids and visibility flags, drops the legacy image
	// field, persists the collection when anything changed and always
	// publishes the resulting collection.
	Normalize(ctx context.Context) ([]models.Project, error)
}

// ReconcileService pushes records that only exist locally to the remote
// collection.
type ReconcileService interface {
	// Reconcile runs one pass. Records already present remotely, matched by
	// id or by title and created_at, are skipped. Local records are never
	// modified.
	Reconcile(ctx context.Context) (models.SyncReport, error)
}

// AccountService manages local accounts and the current session.
// Passwords are opaque strings compared verbatim.
type AccountService interface {
	CreateUser(ctx context.Context, username, password string) error
	SignIn(ctx context.Context, username, password string) error
	SignOut(ctx context.Context) error

	// CurrentUser returns the signed-in username or "" when nobody is.
	CurrentUser(ctx context.Context) (string, error)
}

// IDGenerator mints identifiers for records created locally.
type IDGenerator interface {
	Generate() string
}
