// Package config holds the runtime configuration for the bondcalc tools and
// the active solver parameters used by the bond package.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Config is the root configuration. Fields are populated from a TOML file and
// then optionally overridden by BONDCALC_* environment variables.
type Config struct {
	Env      string `toml:"env"`
	LogLevel string `toml:"log_level"`
	Solver   Solver `toml:"solver"`
	Output   Output `toml:"output"`
	Batch    Batch  `toml:"batch"`
}

// Output controls how results are rounded for display.
type Output struct {
	// Precision is the number of decimals kept in rendered tables.
	Precision int32 `toml:"precision"`
}

// Batch controls concurrent processing of array inputs.
type Batch struct {
	Workers int `toml:"workers"`
}

// Defaults returns a Config populated with sensible defaults.
func Defaults() Config {
	return Config{
		Env:      "development",
		LogLevel: "info",
		Solver:   DefaultSolver,
		Output:   Output{Precision: 4},
		Batch:    Batch{Workers: 4},
	}
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks Config for obviously invalid values and returns a
// combined error describing every problem found.
func (c *Config) Validate() error {
	var errs []string

	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		errs = append(errs, fmt.Sprintf("unknown log_level %q (valid: debug, info, warn, error)", c.LogLevel))
	}
	if c.Solver.Tolerance <= 0 {
		errs = append(errs, "solver: tolerance must be positive")
	}
	if c.Solver.MaxIterations <= 0 {
		errs = append(errs, "solver: max_iterations must be positive")
	}
	if c.Solver.YieldFloor >= c.Solver.YieldCeiling {
		errs = append(errs, "solver: yield_floor must be below yield_ceiling")
	}
	if c.Output.Precision < 0 || c.Output.Precision > 12 {
		errs = append(errs, "output: precision must be between 0 and 12")
	}
	if c.Batch.Workers <= 0 {
		errs = append(errs, "batch: workers must be positive")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n  - " + strings.Join(errs, "\n  - "))
	}
	return nil
}
