package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-project-keeper/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	ProjectRepository ProjectRepository

	db *DB
}

// NewServerStorages connects to Postgres at dsn and builds the repositories.
func NewServerStorages(ctx context.Context, dsn string, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, dsn, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	return &Storages{
		ProjectRepository: NewProjectRepository(db, log),
		db:                db,
	}, nil
}

func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
