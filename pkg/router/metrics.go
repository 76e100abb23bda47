package router

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the engine's Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "appdir").
	Namespace string

	// Subsystem is the metrics subsystem (default: "router").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for build duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the engine's Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithMetricsNamespace sets the metrics namespace.
func WithMetricsNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithMetricsSubsystem sets the metrics subsystem.
func WithMetricsSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithMetricsConstLabels sets constant labels for all metrics.
func WithMetricsConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithMetricsBuckets sets the build-duration histogram buckets.
func WithMetricsBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithMetricsRegistry sets the Prometheus registry.
func WithMetricsRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "appdir",
		Subsystem: "router",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics instruments table builds and matches. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	buildDuration *prometheus.HistogramVec
	buildsTotal   *prometheus.CounterVec
	routes        *prometheus.GaugeVec
	matchesTotal  *prometheus.CounterVec
}

// NewMetrics creates and registers the engine metrics.
func NewMetrics(opts ...MetricsOption) *Metrics {
	cfg := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	factory := promauto.With(cfg.Registry)

	return &Metrics{
		buildDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "build_duration_seconds",
			Help:        "Route table build duration.",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}, []string{"root"}),
		buildsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "builds_total",
			Help:        "Route table builds by status.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"root", "status"}),
		routes: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "routes",
			Help:        "Routes in the most recently built table.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"root"}),
		matchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "matches_total",
			Help:        "Match attempts by outcome.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"root", "outcome"}),
	}
}

func (m *Metrics) observeBuild(root string, elapsed time.Duration, routes int, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.buildsTotal.WithLabelValues(root, status).Inc()
	if err == nil {
		m.buildDuration.WithLabelValues(root).Observe(elapsed.Seconds())
		m.routes.WithLabelValues(root).Set(float64(routes))
	}
}

func (m *Metrics) observeMatch(root string, matched bool) {
	if m == nil {
		return
	}
	outcome := "miss"
	if matched {
		outcome = "hit"
	}
	m.matchesTotal.WithLabelValues(root, outcome).Inc()
}
