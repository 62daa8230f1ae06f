package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/cellfn/pkg/pipeline"
)

// Metrics counts calls by outcome, implementation faults and broadcast cells.
type Metrics struct {
	registry  *prometheus.Registry
	calls     *prometheus.CounterVec
	faults    *prometheus.CounterVec
	broadcast *prometheus.CounterVec
}

// NewMetrics creates the collectors on a dedicated prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cellfn_function_calls_total",
				Help: "Total number of wrapped function calls, by outcome",
			},
			[]string{"function", "outcome"},
		),
		faults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cellfn_function_faults_total",
				Help: "Total number of implementation errors caught by the pipeline",
			},
			[]string{"function"},
		),
		broadcast: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cellfn_broadcast_cells_total",
				Help: "Total number of output cells produced by broadcasting",
			},
			[]string{"function"},
		),
	}
	m.registry.MustRegister(m.calls, m.faults, m.broadcast)
	return m
}

// ObserveCall implements pipeline.Observer.
func (m *Metrics) ObserveCall(function string, outcome pipeline.Outcome) {
	m.calls.WithLabelValues(function, string(outcome)).Inc()
	if outcome == pipeline.OutcomeImplementationError {
		m.faults.WithLabelValues(function).Inc()
	}
}

// ObserveBroadcast implements pipeline.Observer.
func (m *Metrics) ObserveBroadcast(function string, cells int) {
	m.broadcast.WithLabelValues(function).Add(float64(cells))
}

// Registry returns the prometheus registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
