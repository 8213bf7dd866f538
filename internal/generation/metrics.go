package generation

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// Metrics counts generation attempts per model and outcome.
type Metrics struct {
	attempts *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers generation collectors with reg.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	m := &Metrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_attempts_total",
			Help:      "Model attempts by model and outcome.",
		}, []string{"model", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Latency of individual model attempts.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60, 120},
		}, []string{"model"}),
	}
	reg.MustRegister(m.attempts, m.duration)
	return m
}

func (m *Metrics) observe(model string, result attemptResult, elapsed time.Duration) {
	if m == nil {
		return
	}

	outcome := outcomeFailure
	if _, ok := result.(success); ok {
		outcome = outcomeSuccess
	}

	m.attempts.WithLabelValues(model, outcome).Inc()
	m.duration.WithLabelValues(model).Observe(elapsed.Seconds())
}
