package scoreservice

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetrics implements Metrics on a prometheus registry.
type PrometheusMetrics struct {
	attempts  *prometheus.CounterVec
	successes *prometheus.CounterVec
	failures  *prometheus.CounterVec
	durations *prometheus.HistogramVec
	batchSize prometheus.Histogram
}

// NewPrometheusMetrics builds and registers the score metric set.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scorekeeper",
			Subsystem: "score",
			Name:      "operation_attempts_total",
			Help:      "Number of score operations started.",
		}, []string{"operation"}),
		successes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scorekeeper",
			Subsystem: "score",
			Name:      "operation_successes_total",
			Help:      "Number of score operations completed successfully.",
		}, []string{"operation"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "scorekeeper",
			Subsystem: "score",
			Name:      "operation_failures_total",
			Help:      "Number of score operations that failed.",
		}, []string{"operation"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "scorekeeper",
			Subsystem: "score",
			Name:      "operation_duration_seconds",
			Help:      "Duration of score operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		batchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "scorekeeper",
			Subsystem: "score",
			Name:      "submission_batch_size",
			Help:      "Number of entries per score submission.",
			Buckets:   []float64{1, 2, 5, 10, 25, 50},
		}),
	}

	reg.MustRegister(m.attempts, m.successes, m.failures, m.durations, m.batchSize)
	return m
}

func (m *PrometheusMetrics) RecordOperationAttempt(_ context.Context, operation string) {
	m.attempts.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationSuccess(_ context.Context, operation string) {
	m.successes.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationFailure(_ context.Context, operation string) {
	m.failures.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationDuration(_ context.Context, operation string, d time.Duration) {
	m.durations.WithLabelValues(operation).Observe(d.Seconds())
}

func (m *PrometheusMetrics) RecordBatchSize(_ context.Context, size int) {
	m.batchSize.Observe(float64(size))
}

// NoOpMetrics is a Metrics implementation that records nothing.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string) {}

func (NoOpMetrics) RecordOperationSuccess(context.Context, string) {}

func (NoOpMetrics) RecordOperationFailure(context.Context, string) {}

func (NoOpMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}

func (NoOpMetrics) RecordBatchSize(context.Context, int) {}
