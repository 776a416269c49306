// Package metrics exposes prometheus collectors for the calculator API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for Calculations.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics groups the collectors registered by the server.
type Metrics struct {
	registry     *prometheus.Registry
	calculations *prometheus.CounterVec
	saved        *prometheus.CounterVec
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "remont",
			Name:      "calculations_total",
			Help:      "Calculator invocations by calculator and outcome.",
		}, []string{"calculator", "outcome"}),
		saved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "remont",
			Name:      "saved_calculations_total",
			Help:      "Calculations snapshotted for sharing.",
		}, []string{"calculator"}),
	}
	reg.MustRegister(
		m.calculations,
		m.saved,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveCalculation counts one calculator call.
func (m *Metrics) ObserveCalculation(calculator, outcome string) {
	m.calculations.WithLabelValues(calculator, outcome).Inc()
}

// ObserveSaved counts one saved snapshot.
func (m *Metrics) ObserveSaved(calculator string) {
	m.saved.WithLabelValues(calculator).Inc()
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
