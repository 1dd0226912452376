package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for lookup results.
const (
	OutcomeUnavailable = "unavailable"
	OutcomeMissingID   = "missing_id"
	OutcomeNotFound    = "not_found"
	OutcomeRedacted    = "redacted"
	OutcomeDetail      = "detail"
	OutcomeFault       = "fault"
)

// Metrics provides observability for the lookup module.
type Metrics struct {
	// Lookup outcomes by class
	LookupOutcome *prometheus.CounterVec

	// Full lookup latency including store load on first call
	LookupLatency prometheus.Histogram
}

// New creates a new Metrics instance with all lookup module metrics registered.
func New() *Metrics {
	return &Metrics{
		LookupOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "defensoria_lookup_outcomes_total",
			Help: "Total case lookups by outcome",
		}, []string{"outcome"}),

		LookupLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "defensoria_lookup_duration_seconds",
			Help:    "Duration of case lookups including response composition",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// IncrementOutcome records a lookup outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.LookupOutcome.WithLabelValues(outcome).Inc()
	}
}

// ObserveLookupDuration records the duration of a full lookup.
func (m *Metrics) ObserveLookupDuration(d time.Duration) {
	if m != nil {
		m.LookupLatency.Observe(d.Seconds())
	}
}
