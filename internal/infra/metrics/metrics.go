// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "estate"

// Operation outcomes used as the "outcome" label.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics owns a private registry and the collectors recorded by the HTTP
// layer and the use cases. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	requestDuration     *prometheus.HistogramVec
	requestTotal        *prometheus.CounterVec
	accountOperations   *prometheus.CounterVec
	favoriteOperations  *prometheus.CounterVec
	propertyOperations  *prometheus.CounterVec
	rateLimitRejections *prometheus.CounterVec
}

// New builds the collectors on a fresh registry that also carries the Go
// runtime and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return NewWithRegistry(registry)
}

// NewWithRegistry builds the collectors on the given registry.
func NewWithRegistry(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		accountOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "account_operations_total",
				Help:      "Registrations and logins by outcome",
			},
			[]string{"operation", "outcome"},
		),
		favoriteOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "favorite_operations_total",
				Help:      "Favorite list, add and remove operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		propertyOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "property_operations_total",
				Help:      "Property operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		rateLimitRejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limit_rejections_total",
				Help:      "Requests rejected by the rate limiter",
			},
			[]string{"route"},
		),
	}

	registry.MustRegister(
		m.requestDuration,
		m.requestTotal,
		m.accountOperations,
		m.favoriteOperations,
		m.propertyOperations,
		m.rateLimitRejections,
	)

	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RegisterDBStats exports connection pool statistics for db.
func (m *Metrics) RegisterDBStats(db *sql.DB, dbName string) error {
	if m == nil || db == nil {
		return nil
	}

	return errors.Wrap(m.registry.Register(collectors.NewDBStatsCollector(db, dbName)), "failed to register db stats collector")
}

func (m *Metrics) RecordRequest(method, route, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, route, status).Inc()
}

func (m *Metrics) RecordAccountOperation(operation, outcome string) {
	if m == nil {
		return
	}
	m.accountOperations.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) RecordFavoriteOperation(operation, outcome string) {
	if m == nil {
		return
	}
	m.favoriteOperations.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) RecordPropertyOperation(operation, outcome string) {
	if m == nil {
		return
	}
	m.propertyOperations.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) RecordRateLimitRejection(route string) {
	if m == nil {
		return
	}
	m.rateLimitRejections.WithLabelValues(route).Inc()
}
