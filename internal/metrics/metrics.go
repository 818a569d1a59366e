// Package metrics provides Prometheus metrics for the healthlog service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "healthlog"
	subsystem = "api"
)

// Manager owns the Prometheus registry and all collectors for the service.
type Manager struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	eventsRecorded      *prometheus.CounterVec
	trendQueries        *prometheus.CounterVec
}

// NewManager builds a Manager with its own registry so the default Go
// collector noise stays out of scrape output.
func NewManager() *Manager {
	m := &Manager{registry: prometheus.NewRegistry()}
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method", "status_code"},
	)

	m.eventsRecorded = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "events_recorded_total",
			Help:      "Total number of health events recorded, by event type",
		},
		[]string{"event_type"},
	)

	m.trendQueries = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "trend_queries_total",
			Help:      "Total number of trend computations served, by report kind",
		},
		[]string{"report"},
	)

	return m
}

// RecordHTTPRequest records one completed HTTP request.
func (m *Manager) RecordHTTPRequest(route, method, statusCode string, seconds float64) {
	m.httpRequests.WithLabelValues(route, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(route, method, statusCode).Observe(seconds)
}

// RecordEvent counts a successfully stored health event.
func (m *Manager) RecordEvent(eventType string) {
	m.eventsRecorded.WithLabelValues(eventType).Inc()
}

// RecordTrendQuery counts a served trend report: "weekly", "actions" or
// "migraines".
func (m *Manager) RecordTrendQuery(report string) {
	m.trendQueries.WithLabelValues(report).Inc()
}

// Handler returns the scrape endpoint handler for this registry.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}
