package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-project-keeper/internal/logger"
)

// slotStoreFactories builds every SlotStore implementation over a fresh
// temporary location, so the same contract is checked for both.
func slotStoreFactories(t *testing.T) map[string]func() SlotStore {
	t.Helper()

	return map[string]func() SlotStore{
		"sqlite": func() SlotStore {
			db, err := NewConnectSQLite(context.Background(), filepath.Join(t.TempDir(), "client.db"), logger.Nop())
			require.NoError(t, err)
			s := NewSQLiteSlotStore(db)
			t.Cleanup(func() { _ = s.Close() })
			return s
		},
		"file": func() SlotStore {
			s, err := NewFileSlotStore(filepath.Join(t.TempDir(), "slots.json"))
			require.NoError(t, err)
			return s
		},
	}
}

func TestSlotStore_Contract(t *testing.T) {
	ctx := context.Background()

	for name, newStore := range slotStoreFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := newStore()

			_, err := s.Get(ctx, "projects")
			assert.ErrorIs(t, err, ErrSlotNotFound)

			require.NoError(t, s.Put(ctx, "projects", []byte(`[{"id":"1"}]`)))
			got, err := s.Get(ctx, "projects")
			require.NoError(t, err)
			assert.JSONEq(t, `[{"id":"1"}]`, string(got))

			// overwrite
			require.NoError(t, s.Put(ctx, "projects", []byte(`[]`)))
			got, err = s.Get(ctx, "projects")
			require.NoError(t, err)
			assert.JSONEq(t, `[]`, string(got))

			require.NoError(t, s.Delete(ctx, "projects"))
			_, err = s.Get(ctx, "projects")
			assert.ErrorIs(t, err, ErrSlotNotFound)

			// deleting a missing slot is not an error
			require.NoError(t, s.Delete(ctx, "projects"))
		})
	}
}

// ── sqlite ────────────────────────────────────────────────────────────────────

func TestSQLiteSlotStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "client.db")

	db, err := NewConnectSQLite(ctx, path, logger.Nop())
	require.NoError(t, err)
	s := NewSQLiteSlotStore(db)
	require.NoError(t, s.Put(ctx, "users", []byte(`{"alice":{}}`)))
	require.NoError(t, s.Close())

	db, err = NewConnectSQLite(ctx, path, logger.Nop())
	require.NoError(t, err)
	s = NewSQLiteSlotStore(db)
	defer s.Close()

	got, err := s.Get(ctx, "users")
	require.NoError(t, err)
	assert.JSONEq(t, `{"alice":{}}`, string(got))
}

func TestSQLiteSlotStore_DBErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := &sqliteSlotStore{DB: &DB{DB: db, logger: logger.Nop()}, now: func() time.Time { return time.Unix(0, 0) }}
	ctx := context.Background()

	mock.ExpectQuery("SELECT value FROM slots").WithArgs("projects").WillReturnError(errors.New("disk I/O error"))
	_, err = s.Get(ctx, "projects")
	assert.ErrorIs(t, err, ErrExecutingQuery)

	mock.ExpectExec("INSERT INTO slots").
		WithArgs("projects", "[]", "1970-01-01T00:00:00Z").
		WillReturnError(errors.New("database is locked"))
	err = s.Put(ctx, "projects", []byte(`[]`))
	assert.ErrorIs(t, err, ErrExecutingStatement)

	mock.ExpectExec("DELETE FROM slots").WithArgs("currentUser").WillReturnError(errors.New("readonly"))
	err = s.Delete(ctx, "currentUser")
	assert.ErrorIs(t, err, ErrExecutingStatement)

	require.NoError(t, mock.ExpectationsWereMet())
}

// ── file ──────────────────────────────────────────────────────────────────────

func TestFileSlotStore_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "slots.json")

	s, err := NewFileSlotStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, "currentUser", []byte(`{"username":"alice"}`)))

	reopened, err := NewFileSlotStore(path)
	require.NoError(t, err)

	got, err := reopened.Get(ctx, "currentUser")
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"alice"}`, string(got))
}

func TestFileSlotStore_RejectsNonJSON(t *testing.T) {
	s, err := NewFileSlotStore(filepath.Join(t.TempDir(), "slots.json"))
	require.NoError(t, err)

	err = s.Put(context.Background(), "projects", []byte("not json"))
	assert.ErrorIs(t, err, ErrCorruptedSlot)
}

func TestFileSlotStore_CorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slots.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	_, err := NewFileSlotStore(path)
	assert.ErrorIs(t, err, ErrCorruptedSlot)
}

func TestFileSlotStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slots.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	s, err := NewFileSlotStore(path)
	require.NoError(t, err)

	_, err = s.Get(context.Background(), "projects")
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestFileSlotStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileSlotStore(filepath.Join(t.TempDir(), "slots.json"))
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, "projects", []byte(`[1]`)))

	got, err := s.Get(ctx, "projects")
	require.NoError(t, err)
	got[1] = '2'

	again, err := s.Get(ctx, "projects")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(again))
}
