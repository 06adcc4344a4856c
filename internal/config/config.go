// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// project client and the remote collection server. It is populated by
// merging defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds persistence settings: the local slot store on the
	// client, the Postgres connection on the server.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the remote collection server listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter selects and configures the remote collection client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds reconciliation settings.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string exposed by /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is the client log file path. Empty means a "logs" file next
	// to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// OwnerOverride is an identity that owns every project regardless of
	// authorship. Empty disables the override.
	// Env: APP_OWNER_OVERRIDE
	OwnerOverride string `env:"OWNER_OVERRIDE"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// Driver selects the client slot store: "sqlite" or "file".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the JSON file slot store settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the database backend.
type DB struct {
	// DSN is the SQLite file path on the client and the PostgreSQL
	// connection string on the server.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds settings for the JSON file slot store.
type Files struct {
	// Path is the file holding all slots as one JSON document.
	// Env: STORAGE_FILES_PATH
	Path string `env:"PATH"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the remote collection client settings.
type Adapter struct {
	// Kind is "http", "redis" or "none". "none" (or empty) runs the client
	// with the remote capability absent.
	// Env: ADAPTER_KIND
	Kind string `env:"KIND"`

	// HTTPAddress is the remote collection server base address.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RedisAddress is the host:port of the Redis collection.
	// Env: ADAPTER_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS"`

	// RedisPassword is passed to the Redis client verbatim.
	// Env: ADAPTER_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`

	// RedisDB selects the Redis logical database.
	// Env: ADAPTER_REDIS_DB
	RedisDB int `env:"REDIS_DB"`

	// RequestTimeout bounds every outbound remote call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds reconciliation settings.
type Sync struct {
	// Disabled turns the start-up reconciliation off.
	// Env: SYNC_DISABLED
	Disabled bool `env:"DISABLED"`

	// DeploymentHost is the one host name for which DeploymentAuthor is used
	// as the default author of pushed records.
	// Env: SYNC_DEPLOYMENT_HOST
	DeploymentHost string `env:"DEPLOYMENT_HOST"`

	// DeploymentAuthor is the default author on DeploymentHost.
	// Env: SYNC_DEPLOYMENT_AUTHOR
	DeploymentAuthor string `env:"DEPLOYMENT_AUTHOR"`

	// SkipPrivate excludes private local records from reconciliation
	// instead of publishing them.
	// Env: SYNC_SKIP_PRIVATE
	SkipPrivate bool `env:"SKIP_PRIVATE"`

	// Timeout bounds the whole reconciliation pass.
	// Env: SYNC_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// GetStructuredConfig loads and merges the configuration from all sources in
// the following priority order (later sources win for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
