package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cache lookup outcomes.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// Metrics provides observability for the forecast module.
type Metrics struct {
	// Latency of each service operation, cached or computed.
	OperationLatency *prometheus.HistogramVec

	// Cache lookups by operation and outcome (hit, miss, error).
	CacheLookups *prometheus.CounterVec

	// Failed operations by error code.
	OperationErrors *prometheus.CounterVec
}

// New creates a Metrics instance registered on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		OperationLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "foresight_forecast_operation_duration_seconds",
			Help:    "Duration of forecast service operations",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}, []string{"operation"}),

		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "foresight_forecast_cache_lookups_total",
			Help: "Derived metric cache lookups by operation and result",
		}, []string{"operation", "result"}),

		OperationErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "foresight_forecast_operation_errors_total",
			Help: "Failed forecast operations by error code",
		}, []string{"operation", "code"}),
	}
}

// ObserveOperation records how long an operation took.
func (m *Metrics) ObserveOperation(operation string, d time.Duration) {
	if m != nil {
		m.OperationLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}

// IncrementCacheLookup records a cache lookup outcome.
func (m *Metrics) IncrementCacheLookup(operation, result string) {
	if m != nil {
		m.CacheLookups.WithLabelValues(operation, result).Inc()
	}
}

// IncrementError records a failed operation.
func (m *Metrics) IncrementError(operation, code string) {
	if m != nil {
		m.OperationErrors.WithLabelValues(operation, code).Inc()
	}
}
