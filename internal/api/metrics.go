package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	ClassifiedTotal   *prometheus.CounterVec
	GateRejectedTotal *prometheus.CounterVec
	HistoryQueries    *prometheus.CounterVec
	ClassifyDuration  prometheus.Histogram
}

// NewMetrics creates and registers the collectors on a fresh registry
// so tests can build handlers independently.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		ClassifiedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tenderagent_classified_total",
			Help: "Tenders classified, by fit label.",
		}, []string{"fit_label"}),
		GateRejectedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tenderagent_gate_rejected_total",
			Help: "Tenders rejected by the IT gate, by reason.",
		}, []string{"reason"}),
		HistoryQueries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tenderagent_history_queries_total",
			Help: "History queries served, by view.",
		}, []string{"view"}),
		ClassifyDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "tenderagent_classify_duration_seconds",
			Help:    "Time spent classifying one tender.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Registry exposes the underlying registry for the /metrics endpoint.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
