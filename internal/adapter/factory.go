package adapter

import (
	"fmt"
	"io"

	"github.com/MKhiriev/go-project-keeper/internal/config"
	"github.com/MKhiriev/go-project-keeper/internal/logger"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewRemoteCollection builds the collection selected by cfg.Kind. For
// [config.AdapterKindNone] it returns a nil collection: the remote capability
// is absent and callers work locally.
func NewRemoteCollection(cfg config.ClientAdapter, log *logger.Logger) (RemoteCollection, io.Closer, error) {
	switch cfg.Kind {
	case "", config.AdapterKindNone:
		log.Info().Msg("remote collection disabled")
		return nil, nopCloser{}, nil
	case config.AdapterKindHTTP:
		collection, err := NewHTTPRemoteCollection(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("address", cfg.HTTPAddress).Msg("using http remote collection")
		return collection, nopCloser{}, nil
	case config.AdapterKindRedis:
		collection, client := NewRedisRemoteCollection(cfg, log)
		log.Info().Str("address", cfg.RedisAddress).Msg("using redis remote collection")
		return collection, client, nil
	default:
		return nil, nil, fmt.Errorf("unknown remote collection kind %q", cfg.Kind)
	}
}
