// Package metrics provides Prometheus metrics for the faceoff trade
// analysis service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the faceoff service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Ingestion metrics
	rostersIngested prometheus.Counter
	rostersRejected *prometheus.CounterVec
	ingestDuration  prometheus.Histogram

	// Roster state gauges
	rosterPlayers prometheus.Gauge
	rosterScored  prometheus.Gauge

	// Aggregation and comparison metrics
	aggregations        prometheus.Counter
	aggregateCacheHits  prometheus.Counter
	aggregateCacheMiss  prometheus.Counter
	comparisons         *prometheus.CounterVec
	exports             prometheus.Counter
	aggregationDuration prometheus.Histogram

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error metrics
	errorRateByType     *prometheus.CounterVec
	errorRateByEndpoint *prometheus.CounterVec
	errorLatency        *prometheus.HistogramVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "faceoff",
		subsystem:        "trade",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		metricPrefix:     "",
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	// Ingestion metrics
	m.rostersIngested = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rosters_ingested_total",
		Help:      "Total number of roster tables successfully ingested",
	})

	m.rostersRejected = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rosters_rejected_total",
		Help:      "Total number of roster uploads rejected, by reason",
	}, []string{"reason"})

	m.ingestDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ingest_duration_milliseconds",
		Help:      "Histogram of the sanitize-ingest-normalize pipeline duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	// Roster state gauges
	m.rosterPlayers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_players",
		Help:      "Number of players on the active roster",
	})

	m.rosterScored = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_scored_players",
		Help:      "Number of active-roster players with a parseable score",
	})

	// Aggregation and comparison metrics
	m.aggregations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "aggregations_total",
		Help:      "Total number of group aggregations computed or served",
	})

	m.aggregateCacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "aggregate_cache_hits_total",
		Help:      "Total number of group aggregations served from the memo cache",
	})

	m.aggregateCacheMiss = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "aggregate_cache_misses_total",
		Help:      "Total number of group aggregations recomputed on cache miss",
	})

	m.comparisons = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "comparisons_total",
		Help:      "Total number of trade comparisons, by winner",
	}, []string{"winner"})

	m.exports = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "exports_total",
		Help:      "Total number of plain-text trade reports rendered",
	})

	m.aggregationDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "aggregation_duration_milliseconds",
		Help:      "Histogram of group aggregation duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	// HTTP performance metrics
	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint, method, and status",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "Histogram of HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})

	// Error metrics
	m.errorRateByType = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_type_total",
		Help:      "Total number of errors by type and severity",
	}, []string{"error_type", "severity"})

	m.errorRateByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_endpoint_total",
		Help:      "Total number of errors by endpoint and method",
	}, []string{"endpoint", "method", "error_type"})

	m.errorLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "error_latency_milliseconds",
		Help:      "Histogram of latency for requests that ended in an error",
		Buckets:   m.histogramBuckets,
	}, []string{"component", "error_type"})

	// System metrics
	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})
}

// RecordRosterIngested increments the ingested rosters counter.
func RecordRosterIngested() {
	globalManager.rostersIngested.Inc()
}

// RecordRosterRejected increments the rejected uploads counter for a reason.
func RecordRosterRejected(reason string) {
	globalManager.rostersRejected.WithLabelValues(reason).Inc()
}

// RecordIngestDuration records pipeline duration in milliseconds.
func RecordIngestDuration(latencyMs float64) {
	globalManager.ingestDuration.Observe(latencyMs)
}

// UpdateRosterPlayers sets the active roster size gauge.
func UpdateRosterPlayers(count int) {
	globalManager.rosterPlayers.Set(float64(count))
}

// UpdateRosterScored sets the scored-players gauge.
func UpdateRosterScored(count int) {
	globalManager.rosterScored.Set(float64(count))
}

// RecordAggregation increments the aggregations counter.
func RecordAggregation() {
	globalManager.aggregations.Inc()
}

// RecordAggregateCacheHit increments the memo cache hit counter.
func RecordAggregateCacheHit() {
	globalManager.aggregateCacheHits.Inc()
}

// RecordAggregateCacheMiss increments the memo cache miss counter.
func RecordAggregateCacheMiss() {
	globalManager.aggregateCacheMiss.Inc()
}

// RecordComparison increments the comparison counter for a winner.
func RecordComparison(winner string) {
	globalManager.comparisons.WithLabelValues(winner).Inc()
}

// RecordExport increments the rendered reports counter.
func RecordExport() {
	globalManager.exports.Inc()
}

// RecordAggregationDuration records aggregation duration in milliseconds.
func RecordAggregationDuration(latencyMs float64) {
	globalManager.aggregationDuration.Observe(latencyMs)
}

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByType increments error count by type and severity.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint increments error count by endpoint and method.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorLatency records latency for requests that ended in an error.
func RecordErrorLatency(component, errorType string, latencyMs float64) {
	globalManager.errorLatency.WithLabelValues(component, errorType).Observe(latencyMs)
}

// UpdateSystemMemoryUsage sets the memory usage gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine count gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by the global
// manager, for serving /healthz.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
