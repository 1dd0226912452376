package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the relay module.
type Metrics struct {
	// Chat requests by result: ok, empty_message, upstream_error, rate_limited
	ChatRequests *prometheus.CounterVec

	// Round-trip latency to the dialogue backend
	BotLatency prometheus.Histogram
}

// New creates a new Metrics instance with all relay module metrics registered.
func New() *Metrics {
	return &Metrics{
		ChatRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "defensoria_chat_requests_total",
			Help: "Total chat requests by result",
		}, []string{"result"}),

		BotLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "defensoria_bot_roundtrip_duration_seconds",
			Help:    "Duration of dialogue backend round trips",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 8},
		}),
	}
}

// IncrementChatRequests records a chat request result.
func (m *Metrics) IncrementChatRequests(result string) {
	if m != nil {
		m.ChatRequests.WithLabelValues(result).Inc()
	}
}

// ObserveBotLatency records a backend round-trip duration.
func (m *Metrics) ObserveBotLatency(d time.Duration) {
	if m != nil {
		m.BotLatency.Observe(d.Seconds())
	}
}
