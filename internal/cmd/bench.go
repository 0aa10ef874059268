package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ib-77/sieve/internal/bench"
	"github.com/ib-77/sieve/internal/logging"
	"github.com/ib-77/sieve/internal/metrics"
	"github.com/ib-77/sieve/pkg/sieve"
)

func newBenchCommand(a *app) *cobra.Command {
	var (
		limits      []int
		output      string
		dumpMetrics bool
	)

	c := &cobra.Command{
		Use:   "bench",
		Short: "Time full pipeline runs over a list of limits and write a CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(limits) == 0 {
				limits = a.cfg.Bench.Limits
			}
			if output == "" {
				output = a.cfg.Bench.Output
			}
			for _, l := range limits {
				if l < 0 {
					return fmt.Errorf("%w: %d", sieve.ErrInvalidLimit, l)
				}
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			defer f.Close()

			m := metrics.New()
			runner := bench.Runner{
				Recorder: bench.NewCSVRecorder(f),
				Handlers: sieve.Compose(logging.Handlers(a.logger), m.Handlers()),
				OnMeasurement: func(_ context.Context, meas bench.Measurement, r sieve.Report) {
					m.ObserveRun(meas.Elapsed)
					a.logger.Info("benchmark run",
						zap.String("run_id", r.RunID.String()),
						zap.Int("limit", meas.Limit),
						zap.Int("primes", meas.Primes),
						zap.Duration("elapsed", meas.Elapsed))
				},
			}

			ctx := sieve.WithQueueCapacity(cmd.Context(), a.cfg.Pipeline.QueueCapacity)
			results, err := runner.Run(ctx, limits)
			if err != nil {
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to close %s: %w", output, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d results saved to %s\n", len(results), output)
			if dumpMetrics {
				return m.WriteText(cmd.ErrOrStderr())
			}
			return nil
		},
	}

	c.Flags().IntSliceVar(&limits, "limits", nil, "comma-separated limits (default from config)")
	c.Flags().StringVarP(&output, "out", "o", "", "CSV output path (default experiment_results.csv)")
	c.Flags().BoolVar(&dumpMetrics, "metrics", false, "write prometheus metrics to stderr after the sweep")
	return c
}
