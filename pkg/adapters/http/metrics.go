package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics are the generation counters exported on /metrics.
type Metrics struct {
	Generations     *prometheus.CounterVec
	ConflictingRows prometheus.Gauge
	Duration        *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// NewMetrics registers the collectors on a fresh registry so several
// handlers (tests, embedded servers) can coexist in one process.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Generations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fsmgen_generations_total",
				Help: "Total number of Verilog generations",
			},
			[]string{"encoding"},
		),
		ConflictingRows: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "fsmgen_conflicting_rows",
				Help: "Conflicting transition rows in the most recent generation",
			},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fsmgen_generate_duration_seconds",
				Help:    "Duration of the generation pipeline",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"endpoint"},
		),
		gatherer: reg,
	}
	reg.MustRegister(m.Generations, m.ConflictingRows, m.Duration)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
