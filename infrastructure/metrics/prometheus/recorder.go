// ABOUTME: Prometheus implementation of the aggregation Recorder
// ABOUTME: Counts per-target outcomes, absorbed source errors and run results on a dedicated registry

package prometheus

import (
	"net/http"
	"time"

	"newsagg-api/core/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "newsagg"

// Recorder implements interfaces.Recorder with Prometheus collectors
type Recorder struct {
	registry *prometheus.Registry

	targetOutcomes *prometheus.CounterVec
	targetRecords  *prometheus.CounterVec
	sourceErrors   *prometheus.CounterVec
	runs           *prometheus.CounterVec
	runDuration    prometheus.Histogram
	runRecords     prometheus.Histogram
}

// NewRecorder creates a recorder with its own registry, including Go and process collectors
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return newRecorder(registry)
}

func newRecorder(registry *prometheus.Registry) *Recorder {
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		targetOutcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "target_outcomes_total",
				Help:      "Resolutions of fetch targets by outcome (ok, timeout, error)",
			},
			[]string{"target", "outcome"},
		),
		targetRecords: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "target_records_total",
				Help:      "Records contributed by each fetch target",
			},
			[]string{"target"},
		),
		sourceErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "source_errors_total",
				Help:      "Source failures absorbed by the fetcher, by kind",
			},
			[]string{"target", "kind"},
		),
		runs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Aggregation runs by status (completed, interrupted, rejected)",
			},
			[]string{"status"},
		),
		runDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "Duration of aggregation runs in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
		runRecords: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_records",
				Help:      "Distribution of records returned per completed run",
				Buckets:   []float64{0, 10, 25, 50, 100, 250, 500, 1000},
			},
		),
	}
}

// ObserveOutcome records the resolution of one target
func (r *Recorder) ObserveOutcome(target string, outcome interfaces.Outcome, records int) {
	r.targetOutcomes.WithLabelValues(target, string(outcome)).Inc()
	if records > 0 {
		r.targetRecords.WithLabelValues(target).Add(float64(records))
	}
}

// ObserveSourceError records an absorbed source failure
func (r *Recorder) ObserveSourceError(target string, kind string) {
	r.sourceErrors.WithLabelValues(target, kind).Inc()
}

// ObserveRun records one aggregation run
func (r *Recorder) ObserveRun(status string, records int, duration time.Duration) {
	r.runs.WithLabelValues(status).Inc()
	r.runDuration.Observe(duration.Seconds())
	if status == interfaces.RunCompleted {
		r.runRecords.Observe(float64(records))
	}
}

// Registry exposes the underlying registry
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
