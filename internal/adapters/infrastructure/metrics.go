package infrastructure

import (
	"net/http"
	"strconv"
	"time"

	"farmerassist.app/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "farmerassist"

// PrometheusMetrics implements CacheMetrics and the store latency observer on
// a private registry, so separate instances never collide on registration
type PrometheusMetrics struct {
	registry       *prometheus.Registry
	outcomes       *prometheus.CounterVec
	fetchDuration  *prometheus.HistogramVec
	entries        *prometheus.GaugeVec
	swept          prometheus.Counter
	storeLatency   *prometheus.HistogramVec
	requests       *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

func NewPrometheusMetrics() *PrometheusMetrics {
	registry := prometheus.NewRegistry()

	m := &PrometheusMetrics{
		registry: registry,
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "cache_outcomes_total",
				Help:      "Orchestration outcomes per integration (hit, miss, fallback, error)",
			},
			[]string{"integration", "outcome"},
		),
		fetchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "remote_fetch_duration_seconds",
				Help:      "Remote fetch duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"integration", "result"},
		),
		entries: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "cache_entries",
				Help:      "Raw number of cache entries per namespace, including unswept expired ones",
			},
			[]string{"namespace"},
		),
		swept: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "cache_swept_entries_total",
				Help:      "Total number of entries evicted by the sweeper",
			},
		),
		storeLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "cache_operation_duration_seconds",
				Help:      "Cache store operation duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"cache_type", "operation"},
		),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	registry.MustRegister(
		m.outcomes,
		m.fetchDuration,
		m.entries,
		m.swept,
		m.storeLatency,
		m.requests,
		m.requestLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *PrometheusMetrics) RecordOutcome(integration, outcome string) {
	m.outcomes.WithLabelValues(integration, outcome).Inc()
}

func (m *PrometheusMetrics) RecordFetch(integration string, success bool, duration time.Duration) {
	result := "success"
	if !success {
		result = "failure"
	}
	m.fetchDuration.WithLabelValues(integration, result).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordSweep(evicted int) {
	m.swept.Add(float64(evicted))
}

func (m *PrometheusMetrics) SetEntries(ns ports.CacheNamespace, entries int) {
	m.entries.WithLabelValues(ns.String()).Set(float64(entries))
}

// ObserveCacheOperation records the latency of a single store operation
func (m *PrometheusMetrics) ObserveCacheOperation(cacheType, operation string, duration time.Duration) {
	m.storeLatency.WithLabelValues(cacheType, operation).Observe(duration.Seconds())
}

// ObserveRequest records one served HTTP request
func (m *PrometheusMetrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler exposes the registry in the Prometheus text format
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry
func (m *PrometheusMetrics) Registry() *prometheus.Registry {
	return m.registry
}
