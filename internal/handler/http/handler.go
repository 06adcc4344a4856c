package http

import (
	"github.com/MKhiriev/go-project-keeper/internal/logger"
	"github.com/MKhiriev/go-project-keeper/internal/metrics"
	"github.com/MKhiriev/go-project-keeper/internal/service"
)

// maxBodyBytes bounds a create or update payload.
const maxBodyBytes = 1 << 20

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	logger *logger.Logger
}

// NewHandler returns the REST handler. m may be nil, in which case no
// metrics are recorded and /metrics is not served.
func NewHandler(services *service.Services, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  m,
		logger:   logger,
	}
}
