package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for depreciation runs.
const (
	RunSucceeded = "success"
	RunDuplicate = "duplicate_period"
	RunFailed    = "failed"
)

// Metrics holds all service metrics on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Depreciation metrics
	DepreciationRunsTotal   *prometheus.CounterVec
	DepreciationAssetsTotal *prometheus.CounterVec
	DepreciationRunDuration prometheus.Histogram
	LastProcessedPeriod     prometheus.Gauge
}

// Config holds metrics configuration
type Config struct {
	Namespace string
}

// DefaultConfig returns default metrics configuration
func DefaultConfig() *Config {
	return &Config{Namespace: "asset_ledger"}
}

// New creates a new Metrics instance
func New(config *Config) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	m.DepreciationRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "depreciation_runs_total",
			Help:      "Monthly depreciation batch runs by outcome",
		},
		[]string{"outcome"},
	)

	m.DepreciationAssetsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "depreciation_assets_total",
			Help:      "Assets handled by depreciation runs, processed or skipped",
		},
		[]string{"result"},
	)

	m.DepreciationRunDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "depreciation_run_duration_seconds",
			Help:      "Duration of a depreciation batch transaction",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	m.LastProcessedPeriod = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: config.Namespace,
			Name:      "depreciation_last_period",
			Help:      "Last successfully generated period encoded as YYYYMM",
		},
	)

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DepreciationRunsTotal,
		m.DepreciationAssetsTotal,
		m.DepreciationRunDuration,
		m.LastProcessedPeriod,
	)

	return m
}

// Handler returns the HTTP handler serving the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordHTTPRequest records one served request.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordDepreciationRun records the outcome of one batch run.
func (m *Metrics) RecordDepreciationRun(outcome string, year, month, processed, skipped int, duration time.Duration) {
	if m == nil {
		return
	}
	m.DepreciationRunsTotal.WithLabelValues(outcome).Inc()
	m.DepreciationRunDuration.Observe(duration.Seconds())
	if outcome != RunSucceeded {
		return
	}
	m.DepreciationAssetsTotal.WithLabelValues("processed").Add(float64(processed))
	m.DepreciationAssetsTotal.WithLabelValues("skipped").Add(float64(skipped))
	m.LastProcessedPeriod.Set(float64(year*100 + month))
}
