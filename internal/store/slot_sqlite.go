package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-project-keeper/internal/logger"
	"github.com/MKhiriev/go-project-keeper/models"
)

// sqliteSlotStore keeps slots as rows of the "slots" table.
type sqliteSlotStore struct {
	*DB
	now func() time.Time
}

// NewSQLiteSlotStore returns a [SlotStore] over an open client database.
func NewSQLiteSlotStore(db *DB) SlotStore {
	return &sqliteSlotStore{DB: db, now: time.Now}
}

func (s *sqliteSlotStore) Get(ctx context.Context, name string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSlotQuery(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "sqliteSlotStore.Get").Str("slot", name).Msg("failed to read slot")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return []byte(value), nil
}

func (s *sqliteSlotStore) Put(ctx context.Context, name string, value []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := buildPutSlotQuery(name, value, models.Timestamp(s.now()))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqliteSlotStore.Put").Str("slot", name).Msg("failed to write slot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteSlotStore) Delete(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSlotQuery(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqliteSlotStore.Delete").Str("slot", name).Msg("failed to delete slot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteSlotStore) Close() error {
	return s.DB.Close()
}
