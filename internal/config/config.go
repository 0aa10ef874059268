// Package config loads sieve settings from defaults, an optional YAML file,
// SIEVE_* environment variables and bound command-line flags through viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/ib-77/sieve/pkg/sieve/queue"
)

// DefaultLimits are the limits the benchmark sweeps when none are given.
var DefaultLimits = []int{10, 20, 50, 100, 200, 300, 500, 800, 1000, 2000, 3000, 5000}

// Config represents the complete sieve configuration
type Config struct {
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Bench    BenchConfig    `mapstructure:"bench"`
}

// PipelineConfig controls the filter chain
type PipelineConfig struct {
	// QueueCapacity is the buffer size of every inter-stage queue (default: 100)
	QueueCapacity int `mapstructure:"queue_capacity"`
}

// LoggingConfig controls log output
type LoggingConfig struct {
	// Level is one of debug, info, warn, error (default: info)
	Level string `mapstructure:"level"`
	// Development switches to colored console output
	Development bool `mapstructure:"development"`
}

// BenchConfig controls the benchmark harness
type BenchConfig struct {
	// Output is the CSV file written by `sieve bench` (default: experiment_results.csv)
	Output string `mapstructure:"output"`
	// Limits are swept in order
	Limits []int `mapstructure:"limits"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Pipeline: PipelineConfig{QueueCapacity: queue.DefaultCapacity},
		Logging:  LoggingConfig{Level: "info"},
		Bench: BenchConfig{
			Output: "experiment_results.csv",
			Limits: append([]int(nil), DefaultLimits...),
		},
	}
}

// SetDefaults registers the defaults on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("pipeline.queue_capacity", d.Pipeline.QueueCapacity)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.development", d.Logging.Development)
	v.SetDefault("bench.output", d.Bench.Output)
	v.SetDefault("bench.limits", d.Bench.Limits)
}

// NewViper returns a viper instance with defaults and SIEVE_ env binding,
// e.g. SIEVE_PIPELINE_QUEUE_CAPACITY for pipeline.queue_capacity.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("SIEVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile loads path into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// Get decodes v into a Config and validates it.
func Get(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var (
	ErrInvalidCapacity = errors.New("pipeline.queue_capacity must be at least 1")
	ErrInvalidLimits   = errors.New("bench.limits must be non-negative")
)

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Pipeline.QueueCapacity < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, c.Pipeline.QueueCapacity)
	}
	for _, l := range c.Bench.Limits {
		if l < 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidLimits, l)
		}
	}
	return nil
}
