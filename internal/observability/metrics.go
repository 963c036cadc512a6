package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OperationMetrics records per-operation counters and latency for the
// application services. All methods are nil-safe so tests can pass a nil
// receiver.
type OperationMetrics struct {
	attempts *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewOperationMetrics registers the operation metrics on the given registerer.
func NewOperationMetrics(reg prometheus.Registerer, subsystem string) *OperationMetrics {
	m := &OperationMetrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "event_service",
			Subsystem: subsystem,
			Name:      "operation_attempts_total",
			Help:      "Number of service operation invocations.",
		}, []string{"operation"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "event_service",
			Subsystem: subsystem,
			Name:      "operation_failures_total",
			Help:      "Number of service operations that returned an error.",
		}, []string{"operation"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "event_service",
			Subsystem: subsystem,
			Name:      "operation_duration_seconds",
			Help:      "Service operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	reg.MustRegister(m.attempts, m.failures, m.duration)
	return m
}

// RecordAttempt counts an operation invocation.
func (m *OperationMetrics) RecordAttempt(operation string) {
	if m == nil {
		return
	}
	m.attempts.WithLabelValues(operation).Inc()
}

// RecordFailure counts a failed operation.
func (m *OperationMetrics) RecordFailure(operation string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(operation).Inc()
}

// RecordDuration records an operation's latency.
func (m *OperationMetrics) RecordDuration(operation string, d time.Duration) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(operation).Observe(d.Seconds())
}
