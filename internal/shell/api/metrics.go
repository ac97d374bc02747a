package api

import (
	"net/http"

	"github.com/artpar/gardencenter/internal/core/validation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// =============================================================================
// Metrics
// =============================================================================

// Metrics holds the Prometheus collectors for the API. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	registry  *prometheus.Registry
	decisions *prometheus.CounterVec
}

// NewMetrics creates collectors on a private registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	decisions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gardencenter",
		Name:      "gate_decisions_total",
		Help:      "Mutation gate decisions by entity, mode and result (accepted or the rejection kind).",
	}, []string{"entity", "mode", "result"})
	reg.MustRegister(decisions)

	return &Metrics{registry: reg, decisions: decisions}
}

// ObserveDecision counts one gate decision.
func (m *Metrics) ObserveDecision(entity string, mode validation.Mode, d validation.Decision) {
	if m == nil {
		return
	}
	result := "accepted"
	if !d.Accepted() {
		result = d.Rejection.Kind.String()
	}
	m.decisions.WithLabelValues(entity, mode.String(), result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
