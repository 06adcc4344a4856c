package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllSections(t *testing.T) {
	t.Setenv("APP_VERSION", "0.3.0")
	t.Setenv("APP_OWNER_OVERRIDE", "admin")
	t.Setenv("STORAGE_DRIVER", "file")
	t.Setenv("STORAGE_FILES_PATH", "/tmp/slots.json")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/projects")
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "3s")
	t.Setenv("ADAPTER_KIND", "redis")
	t.Setenv("ADAPTER_REDIS_ADDRESS", "localhost:6379")
	t.Setenv("ADAPTER_REDIS_DB", "2")
	t.Setenv("SYNC_DISABLED", "true")
	t.Setenv("SYNC_SKIP_PRIVATE", "true")
	t.Setenv("SYNC_DEPLOYMENT_HOST", "hub")
	t.Setenv("SYNC_DEPLOYMENT_AUTHOR", "Ondrej Sika")
	t.Setenv("SYNC_TIMEOUT", "45s")
	t.Setenv("CONFIG", "/etc/project-keeper.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "0.3.0", cfg.App.Version)
	assert.Equal(t, "admin", cfg.App.OwnerOverride)
	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, "/tmp/slots.json", cfg.Storage.Files.Path)
	assert.Equal(t, "postgres://localhost/projects", cfg.Storage.DB.DSN)
	assert.Equal(t, ":9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "redis", cfg.Adapter.Kind)
	assert.Equal(t, "localhost:6379", cfg.Adapter.RedisAddress)
	assert.Equal(t, 2, cfg.Adapter.RedisDB)
	assert.True(t, cfg.Sync.Disabled)
	assert.True(t, cfg.Sync.SkipPrivate)
	assert.Equal(t, "hub", cfg.Sync.DeploymentHost)
	assert.Equal(t, "Ondrej Sika", cfg.Sync.DeploymentAuthor)
	assert.Equal(t, 45*time.Second, cfg.Sync.Timeout)
	assert.Equal(t, "/etc/project-keeper.json", cfg.JSONFilePath)
}

func TestParseEnv_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Empty(t, cfg.Adapter.Kind)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SYNC_TIMEOUT", "soon")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidInt(t *testing.T) {
	t.Setenv("ADAPTER_REDIS_DB", "zero")
	require.Error(t, parseEnv(&StructuredConfig{}))
}
