package config

import (
	"fmt"
	"time"
)

// Supported client slot store drivers.
const (
	StorageDriverSQLite = "sqlite"
	StorageDriverFile   = "file"
)

// Supported remote collection kinds.
const (
	AdapterKindNone  = "none"
	AdapterKindHTTP  = "http"
	AdapterKindRedis = "redis"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// LogFile is the file the client logger appends to.
	LogFile string
	// OwnerOverride owns every project regardless of authorship when set.
	OwnerOverride string
}

// ClientAdapter holds the remote collection settings used by the client.
type ClientAdapter struct {
	// Kind is one of AdapterKindNone, AdapterKindHTTP or AdapterKindRedis.
	Kind string
	// HTTPAddress is the base address of the remote collection server.
	HTTPAddress string
	// RedisAddress is the host:port of the Redis collection.
	RedisAddress string
	// RedisPassword authenticates against Redis.
	RedisPassword string
	// RedisDB selects the Redis logical database.
	RedisDB int
	// RequestTimeout is the default timeout for outbound remote calls.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Driver is StorageDriverSQLite or StorageDriverFile.
	Driver string
	// DSN is the SQLite database file.
	DSN string
	// FilePath is the JSON slot file.
	FilePath string
}

// ClientSync contains reconciliation settings.
type ClientSync struct {
	Disabled         bool
	DeploymentHost   string
	DeploymentAuthor string
	SkipPrivate      bool
	Timeout          time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Sync    ClientSync
}

// RemoteEnabled reports whether a remote collection is configured.
func (cfg *ClientConfig) RemoteEnabled() bool {
	return cfg.Adapter.Kind != "" && cfg.Adapter.Kind != AdapterKindNone
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogFile:       cfg.App.LogFile,
			OwnerOverride: cfg.App.OwnerOverride,
		},
		Adapter: ClientAdapter{
			Kind:           cfg.Adapter.Kind,
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RedisAddress:   cfg.Adapter.RedisAddress,
			RedisPassword:  cfg.Adapter.RedisPassword,
			RedisDB:        cfg.Adapter.RedisDB,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Driver:   cfg.Storage.Driver,
			DSN:      cfg.Storage.DB.DSN,
			FilePath: cfg.Storage.Files.Path,
		},
		Sync: ClientSync{
			Disabled:         cfg.Sync.Disabled,
			DeploymentHost:   cfg.Sync.DeploymentHost,
			DeploymentAuthor: cfg.Sync.DeploymentAuthor,
			SkipPrivate:      cfg.Sync.SkipPrivate,
			Timeout:          cfg.Sync.Timeout,
		},
	}
}
