// Package metrics provides the Prometheus registry of the service: HTTP RED
// metrics, catalog search metrics and Go runtime collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry owns the collectors and exposes them over HTTP.
// Each Registry has its own collectors, so tests can build as many as they need.
type Registry struct {
	registry *prometheus.Registry

	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestsInFlight prometheus.Gauge

	searchTotal   *prometheus.CounterVec
	searchResults *prometheus.HistogramVec
}

// NewRegistry creates a registry with HTTP, search and runtime collectors.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Current number of HTTP requests being processed",
			},
		),
		searchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_search_total",
				Help: "Catalog searches by query classification",
			},
			[]string{"classification", "windowed"},
		),
		searchResults: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "catalog_search_results",
				Help:    "Total match count per catalog search",
				Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 1000},
			},
			[]string{"classification"},
		),
	}

	r.registry.MustRegister(
		r.httpRequestDuration,
		r.httpRequestsTotal,
		r.httpRequestsInFlight,
		r.searchTotal,
		r.searchResults,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// RecordHTTPMetrics updates the duration histogram and request counter.
// path should be the route template, not the raw URL.
func (r *Registry) RecordHTTPMetrics(method, path string, status int, duration time.Duration) {
	statusStr := strconv.Itoa(status)
	r.httpRequestDuration.WithLabelValues(method, path, statusStr).Observe(duration.Seconds())
	r.httpRequestsTotal.WithLabelValues(method, path, statusStr).Inc()
}

// IncrementInFlight increments the in-flight requests gauge.
func (r *Registry) IncrementInFlight() {
	r.httpRequestsInFlight.Inc()
}

// DecrementInFlight decrements the in-flight requests gauge.
func (r *Registry) DecrementInFlight() {
	r.httpRequestsInFlight.Dec()
}

// ObserveSearch records one executed search.
func (r *Registry) ObserveSearch(classification string, windowed bool, totalCount int64) {
	r.searchTotal.WithLabelValues(classification, strconv.FormatBool(windowed)).Inc()
	r.searchResults.WithLabelValues(classification).Observe(float64(totalCount))
}

// Handler exposes the metrics in Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Gatherer returns the underlying prometheus.Gatherer.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
