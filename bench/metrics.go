package bench

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the harness's Prometheus collectors.
type Metrics struct {
	compute  *prometheus.HistogramVec
	load     *prometheus.HistogramVec
	failures *prometheus.CounterVec
	weight   *prometheus.GaugeVec
}

// NewMetrics registers the collectors on reg. A nil reg yields unregistered
// collectors, which is convenient in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		compute: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "forestbench_compute_seconds",
			Help:    "Compute duration of measured runs",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12),
		}, []string{"algorithm", "graph"}),
		load: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "forestbench_load_seconds",
			Help:    "Graph load duration per run",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12),
		}, []string{"algorithm", "graph"}),
		failures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "forestbench_failures_total",
			Help: "Failed (algorithm, graph) pairs by reason",
		}, []string{"algorithm", "reason"}),
		weight: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "forestbench_forest_weight",
			Help: "Weight of the last computed forest",
		}, []string{"algorithm", "graph"}),
	}
}
