package metrics

import (
	"strconv"
	"time"

	apperrors "foundation-registry/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels
const (
	OutcomeSuccess            = "success"
	OutcomeValidation         = "validation_error"
	OutcomeDuplicate          = "duplicate_key"
	OutcomeNotFound           = "not_found"
	OutcomeStorageUnavailable = "storage_unavailable"
	OutcomeError              = "error"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	// Registry operations, labeled by operation and outcome
	Operations *prometheus.CounterVec
	// HTTP latency, labeled by method, route and status
	RequestLatency *prometheus.HistogramVec
	RateLimited    prometheus.Counter
}

// New creates the metrics and registers them on reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "foundation_registry_operations_total",
			Help: "Total number of foundation registry operations, labeled by operation and outcome",
		}, []string{"operation", "outcome"}),
		RequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "foundation_registry_http_request_duration_seconds",
			Help:    "Latency of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		RateLimited: factory.NewCounter(prometheus.CounterOpts{
			Name: "foundation_registry_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		}),
	}
}

// ObserveOperation counts one registry operation. Safe on a nil receiver.
func (m *Metrics) ObserveOperation(operation string, err error) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(operation, Outcome(err)).Inc()
}

// ObserveRequest records the latency of one HTTP request. Safe on a nil receiver.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.RequestLatency.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// IncRateLimited counts a rejected request. Safe on a nil receiver.
func (m *Metrics) IncRateLimited() {
	if m == nil {
		return
	}
	m.RateLimited.Inc()
}

// Outcome classifies err into an outcome label
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case apperrors.IsValidation(err):
		return OutcomeValidation
	case apperrors.IsAlreadyExists(err):
		return OutcomeDuplicate
	case apperrors.IsNotFound(err):
		return OutcomeNotFound
	case apperrors.IsStorageUnavailable(err):
		return OutcomeStorageUnavailable
	default:
		return OutcomeError
	}
}
