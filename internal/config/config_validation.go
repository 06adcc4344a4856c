// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

func (cfg *ClientConfig) validate() error {
	switch cfg.Storage.Driver {
	case StorageDriverSQLite:
		if cfg.Storage.DSN == "" || strings.Contains(cfg.Storage.DSN, "memory") {
			return ErrInvalidStorageConfigs
		}
	case StorageDriverFile:
		if cfg.Storage.FilePath == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrInvalidStorageConfigs
	}

	switch cfg.Adapter.Kind {
	case "", AdapterKindNone:
	case AdapterKindHTTP:
		if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
			return ErrInvalidAdapterConfigs
		}
	case AdapterKindRedis:
		if cfg.Adapter.RedisAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
			return ErrInvalidAdapterConfigs
		}
	default:
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.Timeout <= 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if !strings.HasPrefix(cfg.DSN, "postgres://") && !strings.HasPrefix(cfg.DSN, "postgresql://") {
		return ErrInvalidStorageConfigs
	}

	return nil
}
