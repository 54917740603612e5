package search

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRecorder records search enrichment metrics. The interface keeps the
// client testable without a live Prometheus registry.
type MetricsRecorder interface {
	// RecordFailure increments the enrichment failure counter for a reason
	// ("request", "status", "decode").
	RecordFailure(reason string)

	// RecordDuration records the time taken by one search call.
	RecordDuration(duration time.Duration)
}

// PrometheusMetrics implements MetricsRecorder on the default registry.
type PrometheusMetrics struct {
	failureCounter    *prometheus.CounterVec
	durationHistogram prometheus.Histogram
}

var (
	prometheusMetricsInstance *PrometheusMetrics
	prometheusMetricsOnce     sync.Once
)

// NewPrometheusMetrics returns the process-wide metrics recorder. Collectors
// register once; later calls reuse the same instance.
func NewPrometheusMetrics() *PrometheusMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusMetrics{
			failureCounter: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "search_enrichment_failures_total",
				Help: "Total number of search enrichment failures by reason.",
			}, []string{"reason"}),
			durationHistogram: promauto.NewHistogram(prometheus.HistogramOpts{
				Name:    "search_request_duration_seconds",
				Help:    "Duration of search API calls in seconds.",
				Buckets: prometheus.DefBuckets,
			}),
		}
	})
	return prometheusMetricsInstance
}

func (m *PrometheusMetrics) RecordFailure(reason string) {
	m.failureCounter.WithLabelValues(reason).Inc()
}

func (m *PrometheusMetrics) RecordDuration(duration time.Duration) {
	m.durationHistogram.Observe(duration.Seconds())
}

// NoOpMetrics discards all recordings. Used in tests and the CLI.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordFailure(string)         {}
func (NoOpMetrics) RecordDuration(time.Duration) {}
