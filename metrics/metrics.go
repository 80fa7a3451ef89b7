package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Visit outcome labels.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Metrics holds the Prometheus collectors used by the service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry    *prometheus.Registry
	visitsTotal *prometheus.CounterVec
}

// New creates a registry with Go/process collectors and the visit counter.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	visitsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "visit_logger_visits_total",
			Help: "Total number of homepage visits by append outcome.",
		},
		[]string{"status"},
	)
	reg.MustRegister(visitsTotal)

	return &Metrics{
		registry:    reg,
		visitsTotal: visitsTotal,
	}
}

// IncVisit increments the visits counter for the given status
// ("success" or "error").
func (m *Metrics) IncVisit(status string) {
	if m == nil {
		return
	}
	m.visitsTotal.WithLabelValues(status).Inc()
}

// Gatherer exposes the underlying registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// Handler returns the /metrics HTTP handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
