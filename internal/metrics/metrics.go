// Package metrics holds the prometheus collectors of the remote collection
// server.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds the server collectors.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	ProjectWritesTotal *prometheus.CounterVec
}

// NewMetrics registers the collectors with the default registry once and
// returns the shared instance.
//
// Metrics:
//   - project_keeper_http_requests_total{method,route,status}
//   - project_keeper_http_request_duration_seconds{method,route}
//   - project_keeper_project_writes_total{op,result}
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			RequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "project_keeper_http_requests_total",
					Help: "Total number of HTTP requests served",
				},
				[]string{"method", "route", "status"},
			),

			RequestDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "project_keeper_http_request_duration_seconds",
					Help:    "Duration of HTTP requests in seconds",
					Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~2s
				},
				[]string{"method", "route"},
			),

			ProjectWritesTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "project_keeper_project_writes_total",
					Help: "Total number of project writes by operation and result",
				},
				[]string{"op", "result"}, // op: create|update|delete, result: ok|error
			),
		}
	})

	return globalMetrics
}

// ObserveRequest records one served request. An empty route is reported as
// "unmatched".
func (m *Metrics) ObserveRequest(method, route string, status int, took time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(took.Seconds())
}

// RecordProjectWrite counts a create, update or delete.
func (m *Metrics) RecordProjectWrite(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.ProjectWritesTotal.WithLabelValues(op, result).Inc()
}

// Handler exposes the default registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.Handler()
}
