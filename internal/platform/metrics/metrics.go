package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector exposes simulation counters on a private registry so the
// default process collectors of other libraries stay out of the scrape.
type MetricsCollector struct {
	registry              *prometheus.Registry
	simulationsTotal      *prometheus.CounterVec
	simulationDuration    prometheus.Histogram
	riskScoreDistribution prometheus.Histogram
}

// NewMetricsCollector creates the collector and registers its series.
func NewMetricsCollector() *MetricsCollector {
	registry := prometheus.NewRegistry()

	return &MetricsCollector{
		registry: registry,
		simulationsTotal: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "simulations_total",
			Help: "Simulation requests by outcome",
		}, []string{"outcome"}),
		simulationDuration: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "simulation_duration_seconds",
			Help:    "Time taken to run one simulation",
			Buckets: prometheus.DefBuckets,
		}),
		riskScoreDistribution: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "customer_risk_score_distribution",
			Help:    "Distribution of recomputed customer risk scores",
			Buckets: []float64{0, 20, 40, 60, 80, 100},
		}),
	}
}

// RecordSimulation registers one finished simulation. The risk score is only
// observed for successful runs; failed runs never produce a score.
func (m *MetricsCollector) RecordSimulation(duration time.Duration, riskScore int, outcome string) {
	m.simulationsTotal.WithLabelValues(outcome).Inc()
	m.simulationDuration.Observe(duration.Seconds())
	if outcome == "ok" {
		m.riskScoreDistribution.Observe(float64(riskScore))
	}
}

// Handler serves the registry in the prometheus text format.
func (m *MetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
