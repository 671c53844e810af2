// Package config loads lpclique settings from defaults, an optional YAML file
// and LPCLIQUE_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/lpclique/logger"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full configuration tree.
type Config struct {
	Search  SearchConfig  `koanf:"search"`
	Solver  SolverConfig  `koanf:"solver"`
	Log     logger.Config `koanf:"log"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// SearchConfig tunes the branch-and-bound run.
type SearchConfig struct {
	TimeLimit  time.Duration `koanf:"time_limit"`
	Workers    int           `koanf:"workers"`
	GreedySeed bool          `koanf:"greedy_seed"`
	Epsilon    float64       `koanf:"epsilon"` // 0 = derive from solver tolerance
}

// SolverConfig tunes the LP backend.
type SolverConfig struct {
	Tolerance float64 `koanf:"tolerance"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr"`
	Path    string `koanf:"path"`
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	switch {
	case c.Search.TimeLimit <= 0:
		return fmt.Errorf("%w: search.time_limit must be positive, got %s", ErrInvalid, c.Search.TimeLimit)
	case c.Search.Workers < 1:
		return fmt.Errorf("%w: search.workers must be >= 1, got %d", ErrInvalid, c.Search.Workers)
	case c.Search.Epsilon < 0 || c.Search.Epsilon >= 0.5:
		return fmt.Errorf("%w: search.epsilon must be in [0, 0.5), got %g", ErrInvalid, c.Search.Epsilon)
	case c.Solver.Tolerance <= 0:
		return fmt.Errorf("%w: solver.tolerance must be positive, got %g", ErrInvalid, c.Solver.Tolerance)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	switch c.Log.Output {
	case "stdout", "stderr", "file":
	default:
		return fmt.Errorf("%w: log.output %q", ErrInvalid, c.Log.Output)
	}
	if c.Metrics.Enabled && (c.Metrics.Addr == "" || c.Metrics.Path == "") {
		return fmt.Errorf("%w: metrics.addr and metrics.path are required when metrics are enabled", ErrInvalid)
	}

	return nil
}
