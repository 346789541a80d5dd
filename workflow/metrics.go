package workflow

import (
	"time"

	"github.com/armon/go-metrics"
	"github.com/cosmos/cosmos-sdk/telemetry"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "macid"

// Metrics records step outcomes and fee grant polling
type Metrics struct {
	stepDuration  *prometheus.HistogramVec
	stepOutcomes  *prometheus.CounterVec
	feegrantPolls prometheus.Counter
}

// NewMetrics creates the workflow metrics and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		stepDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "workflow",
			Name:      "step_duration_seconds",
			Help:      "Duration of workflow steps.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"step"}),
		stepOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "workflow",
			Name:      "step_outcomes_total",
			Help:      "Number of finished workflow steps by outcome.",
		}, []string{"step", "outcome"}),
		feegrantPolls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "workflow",
			Name:      "feegrant_polls_total",
			Help:      "Number of fee grant checks issued while waiting for sign up.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.stepDuration, m.stepOutcomes, m.feegrantPolls)
	}

	return m
}

func (m *Metrics) observeStep(step Step, outcome string, elapsed time.Duration) {
	m.stepDuration.WithLabelValues(string(step)).Observe(elapsed.Seconds())
	m.stepOutcomes.WithLabelValues(string(step), outcome).Inc()

	telemetry.IncrCounterWithLabels(
		[]string{metricsNamespace, "workflow", "step"},
		1,
		[]metrics.Label{
			telemetry.NewLabel("step", string(step)),
			telemetry.NewLabel("outcome", outcome),
		})
}

func (m *Metrics) observeFeegrantPoll() {
	m.feegrantPolls.Inc()
}
