// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerConfig is the configuration of the remote collection server.
type ServerConfig struct {
	// Version is reported by GET /api/version.
	Version string
	// HTTPAddress is the listen address.
	HTTPAddress string
	// RequestTimeout bounds a single request.
	RequestTimeout time.Duration
	// DSN is the PostgreSQL connection string.
	DSN string
}

// GetServerConfig builds and validates the server config view from the merged
// structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		Version:        cfg.App.Version,
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		DSN:            cfg.Storage.DB.DSN,
	}
}
