package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load merges the TOML file at path (skipped when path is empty) on top of
// the built-in defaults and applies BONDCALC_* environment overrides. The
// returned Config has NOT been validated.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	setStr(&cfg.Env, "BONDCALC_ENV")
	setStr(&cfg.LogLevel, "BONDCALC_LOG_LEVEL")

	setFloat64(&cfg.Solver.Tolerance, "BONDCALC_SOLVER_TOLERANCE")
	setInt(&cfg.Solver.MaxIterations, "BONDCALC_SOLVER_MAX_ITERATIONS")
	setFloat64(&cfg.Solver.YieldFloor, "BONDCALC_SOLVER_YIELD_FLOOR")
	setFloat64(&cfg.Solver.YieldCeiling, "BONDCALC_SOLVER_YIELD_CEILING")

	var precision int
	if setInt(&precision, "BONDCALC_OUTPUT_PRECISION") {
		cfg.Output.Precision = int32(precision)
	}
	setInt(&cfg.Batch.Workers, "BONDCALC_BATCH_WORKERS")
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) bool {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
			return true
		}
	}
	return false
}

func setFloat64(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}
