package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ib-77/sieve/internal/logging"
	"github.com/ib-77/sieve/internal/metrics"
	"github.com/ib-77/sieve/pkg/sieve"
)

func newRunCommand(a *app) *cobra.Command {
	var dumpMetrics bool

	c := &cobra.Command{
		Use:   "run <limit>",
		Short: "Print every prime up to limit, one per line, as it is found",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := sieve.ParseLimit(args[0])
			if err != nil {
				return err
			}

			ctx := sieve.WithQueueCapacity(cmd.Context(), a.cfg.Pipeline.QueueCapacity)
			m := metrics.New()
			out := cmd.OutOrStdout()

			var writeErr error
			printer := sieve.Handlers{
				OnPrime: func(_ context.Context, prime int) {
					if writeErr == nil {
						_, writeErr = fmt.Fprintln(out, prime)
					}
				},
			}

			report := sieve.Run(ctx, limit, sieve.Compose(printer, logging.Handlers(a.logger), m.Handlers()))
			m.ObserveRun(report.Elapsed)
			logging.Report(a.logger, report)

			if writeErr != nil {
				return fmt.Errorf("failed to write primes: %w", writeErr)
			}
			if dumpMetrics {
				return m.WriteText(cmd.ErrOrStderr())
			}
			return nil
		},
	}

	c.Flags().BoolVar(&dumpMetrics, "metrics", false, "write prometheus metrics to stderr after the run")
	return c
}
