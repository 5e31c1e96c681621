// Package metrics defines the Prometheus collectors exported by tofunames.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values
const (
	OutcomeSuccess        = "success"
	OutcomeRegistrarError = "registrar_error"
	OutcomeTransportError = "transport_error"
)

// RegistrarMetrics counts and times registrar API calls.
// A nil *RegistrarMetrics is valid and records nothing.
type RegistrarMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewRegistrarMetrics registers the registrar collectors with reg
func NewRegistrarMetrics(reg prometheus.Registerer) *RegistrarMetrics {
	factory := promauto.With(reg)

	return &RegistrarMetrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "tofunames",
				Subsystem: "registrar",
				Name:      "requests_total",
				Help:      "Registrar API calls by provider, command and outcome.",
			},
			[]string{"provider", "command", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "tofunames",
				Subsystem: "registrar",
				Name:      "request_duration_seconds",
				Help:      "Registrar API call latency.",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"provider", "command"},
		),
	}
}

// Observe records one call that started at start
func (m *RegistrarMetrics) Observe(provider, command, outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(provider, command, outcome).Inc()
	m.duration.WithLabelValues(provider, command).Observe(time.Since(start).Seconds())
}
