// Package metrics holds the Prometheus instruments of the habit-sync server.
//
// Every Registry owns its own prometheus.Registry, so tests and multiple
// servers in one process never collide on metric registration.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "habit_sync"

// Result label values for SyncOperations.
const (
	ResultOK          = "ok"
	ResultNotFound    = "not_found"
	ResultConflict    = "conflict"
	ResultUnavailable = "unavailable"
	ResultError       = "error"
)

// Registry holds all application metrics.
type Registry struct {
	registry *prometheus.Registry

	// Request metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Sync metrics
	SyncOperations *prometheus.CounterVec

	// Link metrics
	LinksCreated prometheus.Counter
	LinksExpired prometheus.Counter
}

// NewRegistry creates a registry with the Go runtime and process collectors
// and all application instruments registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		SyncOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "operations_total",
			Help:      "Sync service calls by operation and result.",
		}, []string{"operation", "result"}),
		LinksCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "links",
			Name:      "created_total",
			Help:      "Pairing links created.",
		}),
		LinksExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "links",
			Name:      "expired_total",
			Help:      "Pairing links removed by the background sweeper.",
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.RequestsTotal,
		r.RequestDuration,
		r.SyncOperations,
		r.LinksCreated,
		r.LinksExpired,
	)

	return r
}

// RegisterLinksActive exposes the current size of the link table, sampled
// on every scrape.
func (r *Registry) RegisterLinksActive(count func() int) {
	r.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "links",
		Name:      "active",
		Help:      "Pairing links currently held in memory, including expired ones not yet evicted.",
	}, func() float64 {
		return float64(count())
	}))
}

// Handler returns the /metrics handler for this registry. Compression is
// left to the HTTP middleware.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry, DisableCompression: true})
}
