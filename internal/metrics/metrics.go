// Package metrics exposes pipeline counters through a prometheus registry.
package metrics

import (
	"context"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/ib-77/sieve/pkg/sieve"
)

// Metrics holds the sieve collectors.
type Metrics struct {
	registry *prometheus.Registry

	StagesCreated prometheus.Counter
	StagesActive  prometheus.Gauge
	PrimesFound   prometheus.Counter
	Runs          prometheus.Counter
	RunDuration   prometheus.Histogram
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		StagesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "sieve_stages_created_total",
			Help: "Total number of filter stages started",
		}),
		StagesActive: factory.NewGauge(prometheus.GaugeOpts{
			Name: "sieve_stages_active",
			Help: "Number of filter stages currently running",
		}),
		PrimesFound: factory.NewCounter(prometheus.CounterOpts{
			Name: "sieve_primes_found_total",
			Help: "Total number of primes reported by stages",
		}),
		Runs: factory.NewCounter(prometheus.CounterOpts{
			Name: "sieve_runs_total",
			Help: "Total number of completed pipeline runs",
		}),
		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "sieve_run_duration_seconds",
			Help:    "Wall-clock time from first candidate to full shutdown",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5},
		}),
	}
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handlers feeds stage lifecycle events into the collectors.
func (m *Metrics) Handlers() sieve.Handlers {
	return sieve.Handlers{
		OnPrime: func(context.Context, int) {
			m.PrimesFound.Inc()
		},
		OnStageStart: func(context.Context, sieve.StageInfo) {
			m.StagesCreated.Inc()
			m.StagesActive.Inc()
		},
		OnStageStop: func(context.Context, sieve.StageInfo) {
			m.StagesActive.Dec()
		},
	}
}

// ObserveRun records a finished run.
func (m *Metrics) ObserveRun(elapsed time.Duration) {
	m.Runs.Inc()
	m.RunDuration.Observe(elapsed.Seconds())
}

// WriteText dumps every metric family in the prometheus text format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
