// Package cmd wires the sieve command line: cobra commands, viper-backed
// configuration, zap logging and prometheus metrics around the pipeline.
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ib-77/sieve/internal/config"
	"github.com/ib-77/sieve/internal/logging"
	"github.com/ib-77/sieve/pkg/sieve/queue"
)

type app struct {
	v      *viper.Viper
	cfg    *config.Config
	logger *logging.Logger
}

// NewRootCommand builds the command tree writing primes to out.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{v: config.NewViper()}

	root := &cobra.Command{
		Use:   "sieve",
		Short: "Concurrent pipeline prime sieve",
		Long: `sieve finds primes with a chain of concurrent filter stages. Each stage
owns one prime, drops its multiples and spawns its successor on demand.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "config file (yaml)")
	flags.Int("capacity", queue.DefaultCapacity, "inter-stage queue capacity")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.Bool("log-dev", false, "human-readable console logs")

	_ = a.v.BindPFlag("config", flags.Lookup("config"))
	_ = a.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("logging.development", flags.Lookup("log-dev"))
	_ = a.v.BindPFlag("pipeline.queue_capacity", flags.Lookup("capacity"))

	root.AddCommand(newRunCommand(a), newBenchCommand(a))
	return root
}

// Execute runs the command line against os.Args.
func Execute(out, errOut io.Writer) error {
	return NewRootCommand(out, errOut).Execute()
}

func (a *app) init() error {
	if err := config.ReadFile(a.v, a.v.GetString("config")); err != nil {
		return err
	}

	cfg, err := config.Get(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.logger = logger
	return nil
}
