// Package metrics provides Prometheus metrics for the fit scoring and
// ranking engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the engine.
type Manager struct {
	namespace string
	subsystem string
	registry  prometheus.Registerer

	// Scoring metrics.
	applicationsScored prometheus.Counter
	scoringErrors      prometheus.Counter
	scoringDuration    prometheus.Histogram

	// Semantic-judge metrics.
	judgeCalls    *prometheus.CounterVec
	judgeFailures *prometheus.CounterVec
	judgeLatency  prometheus.Histogram

	// Ranking metrics.
	rankRequests       prometheus.Counter
	rankDuration       prometheus.Histogram
	applicationsRanked prometheus.Gauge
	aboveThreshold     prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "fitrank",
		subsystem: "engine",
		registry:  prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	factory := promauto.With(m.registry)

	m.applicationsScored = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "applications_scored_total",
		Help:      "Total number of applications scored.",
	})
	m.scoringErrors = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_errors_total",
		Help:      "Total number of application scoring failures.",
	})
	m.scoringDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_duration_seconds",
		Help:      "Time spent scoring one application.",
		Buckets:   prometheus.DefBuckets,
	})

	m.judgeCalls = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "judge_calls_total",
		Help:      "Semantic judge calls by dimension.",
	}, []string{"dimension"})
	m.judgeFailures = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "judge_failures_total",
		Help:      "Semantic judge failures by dimension.",
	}, []string{"dimension"})
	m.judgeLatency = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "judge_latency_seconds",
		Help:      "Latency of semantic judge calls.",
		Buckets:   prometheus.DefBuckets,
	})

	m.rankRequests = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rank_requests_total",
		Help:      "Total number of project ranking requests.",
	})
	m.rankDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rank_duration_seconds",
		Help:      "Time spent ranking one project.",
		Buckets:   prometheus.DefBuckets,
	})
	m.applicationsRanked = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "applications_ranked",
		Help:      "Applications returned by the most recent ranking.",
	})
	m.aboveThreshold = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "applications_above_threshold",
		Help:      "Above-threshold applications in the most recent ranking.",
	})
}

// Registry returns the registry the global manager registers into.
func Registry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers against the global manager.

// RecordApplicationScored increments the scored-application counter.
func RecordApplicationScored(d time.Duration) {
	globalManager.applicationsScored.Inc()
	globalManager.scoringDuration.Observe(d.Seconds())
}

// RecordScoringError increments the scoring-failure counter.
func RecordScoringError() {
	globalManager.scoringErrors.Inc()
}

// RecordJudgeCall observes one semantic judge round trip.
func RecordJudgeCall(dimension string, d time.Duration) {
	globalManager.judgeCalls.WithLabelValues(dimension).Inc()
	globalManager.judgeLatency.Observe(d.Seconds())
}

// RecordJudgeFailure increments the judge-failure counter for a dimension.
func RecordJudgeFailure(dimension string) {
	globalManager.judgeFailures.WithLabelValues(dimension).Inc()
}

// RecordRank records the outcome of one project ranking.
func RecordRank(d time.Duration, applications, aboveThreshold int) {
	globalManager.rankRequests.Inc()
	globalManager.rankDuration.Observe(d.Seconds())
	globalManager.applicationsRanked.Set(float64(applications))
	globalManager.aboveThreshold.Set(float64(aboveThreshold))
}
