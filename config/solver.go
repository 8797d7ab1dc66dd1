package config

import "sync"

// Solver holds the yield solver parameters.
type Solver struct {
	// Tolerance is the clean-price tolerance for Newton-Raphson convergence.
	Tolerance float64 `toml:"tolerance"`

	// MaxIterations is the maximum number of Newton steps.
	MaxIterations int `toml:"max_iterations"`

	// YieldFloor and YieldCeiling bracket the solved yield (decimal).
	YieldFloor   float64 `toml:"yield_floor"`
	YieldCeiling float64 `toml:"yield_ceiling"`

	// DerivativeThreshold is the minimum slope magnitude.
	// Below this, Newton iteration stops to avoid division by near-zero.
	DerivativeThreshold float64 `toml:"derivative_threshold"`
}

// DefaultSolver provides production-ready default values.
var DefaultSolver = Solver{
	Tolerance:           1e-10,
	MaxIterations:       100,
	YieldFloor:          -0.05,
	YieldCeiling:        0.50,
	DerivativeThreshold: 1e-15,
}

var (
	mu     sync.RWMutex
	solver = DefaultSolver
)

// SetSolver replaces the active solver configuration.
func SetSolver(s Solver) {
	mu.Lock()
	solver = s
	mu.Unlock()
}

// GetSolver returns the active solver configuration.
func GetSolver() Solver {
	mu.RLock()
	defer mu.RUnlock()
	return solver
}
