package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	require.Equal(t, Defaults(), *cfg)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bondcalc.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
env = "production"
log_level = "debug"

[solver]
tolerance = 1e-8
max_iterations = 50

[output]
precision = 6
`), 0o600))

	t.Setenv("BONDCALC_LOG_LEVEL", "warn")
	t.Setenv("BONDCALC_BATCH_WORKERS", "8")
	t.Setenv("BONDCALC_OUTPUT_PRECISION", "2")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Equal(t, "production", cfg.Env)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, 1e-8, cfg.Solver.Tolerance)
	require.Equal(t, 50, cfg.Solver.MaxIterations)
	require.Equal(t, DefaultSolver.YieldCeiling, cfg.Solver.YieldCeiling)
	require.Equal(t, int32(2), cfg.Output.Precision)
	require.Equal(t, 8, cfg.Batch.Workers)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Defaults()
	cfg.LogLevel = "verbose"
	cfg.Solver.MaxIterations = 0
	cfg.Solver.YieldFloor = 1
	cfg.Output.Precision = -1
	cfg.Batch.Workers = 0

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"log_level", "max_iterations", "yield_floor", "precision", "workers"} {
		require.Contains(t, err.Error(), want)
	}
}

func TestSetSolver(t *testing.T) {
	t.Cleanup(func() { SetSolver(DefaultSolver) })

	s := DefaultSolver
	s.MaxIterations = 7
	SetSolver(s)
	require.Equal(t, 7, GetSolver().MaxIterations)
}
