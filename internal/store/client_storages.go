package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-project-keeper/internal/config"
	"github.com/MKhiriev/go-project-keeper/internal/logger"
)

// ClientStorages groups the client-side stores built over one [SlotStore].
type ClientStorages struct {
	Slots    SlotStore
	Records  RecordStore
	Accounts AccountStore
}

// NewClientStorages opens the slot store selected by cfg.Driver: an SQLite
// database at cfg.DSN or a JSON file at cfg.FilePath.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	var slots SlotStore
	switch cfg.Driver {
	case config.StorageDriverFile:
		fileSlots, err := NewFileSlotStore(cfg.FilePath)
		if err != nil {
			return nil, fmt.Errorf("file slot store error: %w", err)
		}
		slots = fileSlots
	default:
		db, err := NewConnectSQLite(ctx, cfg.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		slots = NewSQLiteSlotStore(db)
	}

	return NewClientStoragesFromSlots(slots), nil
}

// NewClientStoragesFromSlots wires the client stores over an existing slot
// store.
func NewClientStoragesFromSlots(slots SlotStore) *ClientStorages {
	return &ClientStorages{
		Slots:    slots,
		Records:  NewRecordStore(slots),
		Accounts: NewAccountStore(slots),
	}
}

// Close releases the underlying slot store.
func (s *ClientStorages) Close() error {
	return s.Slots.Close()
}
