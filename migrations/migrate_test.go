// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateServer_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_ = mock // не используем напрямую, goose сам будет ходить в DB

	err = MigrateServer(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	assert.ErrorIs(t, MigrateClient(db), errNilDB)
	assert.ErrorIs(t, MigrateServer(db), errNilDB)
}

func TestMigrateClient_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, MigrateClient(db))
	// повторный прогон ничего не ломает
	require.NoError(t, MigrateClient(db))

	_, err = db.Exec(`INSERT INTO slots (name, value) VALUES ('projects', '[]')`)
	require.NoError(t, err)

	var value string
	require.NoError(t, db.QueryRow(`SELECT value FROM slots WHERE name = 'projects'`).Scan(&value))
	assert.Equal(t, "[]", value)
}

func TestEmbeddedMigrations(t *testing.T) {
	client, err := embedMigrations.ReadDir("client")
	require.NoError(t, err)
	assert.NotEmpty(t, client)

	server, err := embedMigrations.ReadDir("server")
	require.NoError(t, err)
	assert.NotEmpty(t, server)
}
