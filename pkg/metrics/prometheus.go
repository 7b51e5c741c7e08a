package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain/service.Metrics using Prometheus.
type Recorder struct {
	quotesFetched *prometheus.CounterVec
	dispatches    *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
	latency       *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		quotesFetched: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qfpo_quotes_fetched_total",
				Help: "Total number of per-symbol quote fetches",
			},
			[]string{"provider", "outcome"},
		),
		dispatches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qfpo_optimizations_total",
				Help: "Total number of optimization dispatches",
			},
			[]string{"mode", "outcome"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qfpo_pipeline_errors_total",
				Help: "Total number of pipeline errors by kind",
			},
			[]string{"kind"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "qfpo_operation_duration_seconds",
				Help:    "Duration of pipeline operations in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 30, 60, 120},
			},
			[]string{"operation"},
		),
	}
}

// RecordQuoteFetch records the outcome of one per-symbol quote fetch.
func (r *Recorder) RecordQuoteFetch(provider, outcome string) {
	r.quotesFetched.WithLabelValues(provider, outcome).Inc()
}

// RecordDispatch records an optimization dispatch outcome.
func (r *Recorder) RecordDispatch(mode, outcome string) {
	r.dispatches.WithLabelValues(mode, outcome).Inc()
}

// RecordError records a classified pipeline error.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
