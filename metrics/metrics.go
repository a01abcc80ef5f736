// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so several routers (tests) can coexist
// without duplicate registration panics.
type Metrics struct {
	registry *prometheus.Registry

	requests       *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	statusCategory *prometheus.CounterVec
	transactions   *prometheus.CounterVec
}

// New creates the collectors for one service and registers them
func New(service string) *Metrics {
	labels := prometheus.Labels{"service": service}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: labels,
			},
			[]string{"method", "path", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "Duration of HTTP requests in seconds",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: labels,
			},
			[]string{"method", "path", "status"},
		),
		statusCategory: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_status_category_total",
				Help:        "Total number of responses by status category (2xx, 4xx, 5xx)",
				ConstLabels: labels,
			},
			[]string{"category", "method", "path"},
		),
		transactions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "db_transactions_total",
				Help:        "Database transactions by operation and outcome",
				ConstLabels: labels,
			},
			[]string{"op", "outcome"},
		),
	}

	m.registry.MustRegister(
		m.requests,
		m.duration,
		m.statusCategory,
		m.transactions,
		prometheus.NewGoCollector(),
	)
	return m
}

// statusRecorder captures the status code written by the wrapped handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records request count, duration and status category for a route.
// path should be the route pattern, not the raw URL, to keep label cardinality bounded.
func (m *Metrics) Middleware(path string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next(rec, r)

		status := strconv.Itoa(rec.status)
		m.requests.WithLabelValues(r.Method, path, status).Inc()
		m.duration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
		if category := statusCategory(rec.status); category != "" {
			m.statusCategory.WithLabelValues(category, r.Method, path).Inc()
		}
	}
}

func statusCategory(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500 && status < 600:
		return "5xx"
	}
	return ""
}

// ObserveTx counts one finished database transaction
func (m *Metrics) ObserveTx(op, outcome string) {
	m.transactions.WithLabelValues(op, outcome).Inc()
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
