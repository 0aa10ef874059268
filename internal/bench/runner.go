package bench

import (
	"context"
	"errors"

	"github.com/ib-77/sieve/pkg/sieve"
)

var ErrNoLimits = errors.New("no limits to benchmark")

// Runner invokes the pipeline once per limit.
type Runner struct {
	Recorder Recorder
	// Handlers are attached to every run, e.g. metrics or logging.
	Handlers sieve.Handlers
	// OnMeasurement is called after each run, before the next one starts.
	OnMeasurement func(ctx context.Context, m Measurement, r sieve.Report)
}

// Run benchmarks limits in order. It stops at the first recorder error.
func (r Runner) Run(ctx context.Context, limits []int) ([]Measurement, error) {
	if len(limits) == 0 {
		return nil, ErrNoLimits
	}

	results := make([]Measurement, 0, len(limits))
	for _, limit := range limits {
		report := sieve.Run(ctx, limit, r.Handlers)

		m := Measurement{
			Limit:   limit,
			Primes:  report.Primes,
			Stages:  len(report.Stages),
			Elapsed: report.Elapsed,
		}
		results = append(results, m)

		if r.OnMeasurement != nil {
			r.OnMeasurement(ctx, m, report)
		}
		if r.Recorder != nil {
			if err := r.Recorder.Record(m); err != nil {
				return results, err
			}
		}
	}
	return results, nil
}
