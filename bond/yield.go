package bond

import (
	"fmt"
	"math"

	"github.com/meenmo/bondcalc/config"
)

// YieldResult is the output of SolveYield.
type YieldResult struct {
	// Yield is the annualised yield in percent (e.g. 6.0).
	Yield float64
	// Iterations is the number of Newton-Raphson steps taken.
	Iterations int
	// Valuation is the full result at the solved yield.
	Valuation Result
}

// SolveYield finds the yield at which the bond's clean price equals
// cleanPrice, using the active solver configuration.
func SolveYield(b Bond, cleanPrice float64) (YieldResult, error) {
	return SolveYieldWith(b, cleanPrice, config.GetSolver())
}

// SolveYieldWith is SolveYield with an explicit solver configuration.
//
// The solver uses Newton-Raphson with the analytic slope
// dP/dy = −ModifiedDuration · DirtyPrice (y in decimal).
func SolveYieldWith(b Bond, cleanPrice float64, sc config.Solver) (YieldResult, error) {
	if err := b.Validate(); err != nil {
		return YieldResult{}, fmt.Errorf("SolveYield: %w", err)
	}
	if cleanPrice <= 0 || math.IsNaN(cleanPrice) {
		return YieldResult{}, fmt.Errorf("SolveYield: %w: clean price must be positive, got %v", ErrInvalidBond, cleanPrice)
	}

	// The floor must keep 1 + y/f positive for every supported frequency.
	floor := math.Max(sc.YieldFloor, -0.99)
	y := clamp(b.CouponRate/100.0, floor, sc.YieldCeiling)
	if y == 0 {
		y = 0.05
	}

	for iter := 0; iter < sc.MaxIterations; iter++ {
		trial := b
		trial.YieldRate = y * 100.0
		res, err := Calculate(trial)
		if err != nil {
			return YieldResult{}, fmt.Errorf("SolveYield: %w", err)
		}

		f := res.CleanPrice - cleanPrice
		if math.Abs(f) < sc.Tolerance {
			return YieldResult{Yield: y * 100.0, Iterations: iter + 1, Valuation: res}, nil
		}

		dPdy := -res.ModifiedDuration * res.DirtyPrice
		if math.Abs(dPdy) < sc.DerivativeThreshold {
			return YieldResult{}, fmt.Errorf("SolveYield: %w: derivative too small at iter %d", ErrNoConvergence, iter)
		}

		y = clamp(y-f/dPdy, floor, sc.YieldCeiling)
	}

	return YieldResult{}, fmt.Errorf("SolveYield: %w after %d iterations", ErrNoConvergence, sc.MaxIterations)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
