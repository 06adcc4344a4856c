package config

import "errors"

// Validation errors returned by the client and server config views when
// required configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid remote collection settings
	// (for example, an unknown kind or a missing address for the chosen kind).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unknown driver or an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid listener settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidSyncConfigs indicates invalid reconciliation settings.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
