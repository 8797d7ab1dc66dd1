package curve

import (
	"fmt"
	"math"
)

// BootstrapSpotCurve solves annual zero rates from par yields.
//
// Each maturity Y is priced as a par bond paying an annual coupon equal to its
// par yield:
//
//	100 = Σ_{t<Y} C/(1+z_t)^t + (100+C)/(1+z_Y)^Y
//
// Only already-solved maturities contribute to the prior-coupon sum; a year
// missing from the input contributes nothing (no interpolation). When the
// prior coupons alone exceed par, the maturity is set to 0.
func BootstrapSpotCurve(par ParYieldCurve) (SpotCurve, error) {
	if len(par) == 0 {
		return nil, ErrEmptyCurve
	}

	years := par.Years()
	if years[0] <= 0 {
		return nil, fmt.Errorf("BootstrapSpotCurve: %w: %d", ErrInvalidMaturity, years[0])
	}

	spot := make(SpotCurve, len(years))
	for _, year := range years {
		coupon := 100.0 * (par[year] / 100.0)

		pvPrior := 0.0
		for t := 1; t < year; t++ {
			z, ok := spot[t]
			if !ok {
				continue
			}
			pvPrior += coupon / math.Pow(1+z/100.0, float64(t))
		}

		remaining := 100.0 - pvPrior
		if remaining <= 0 {
			spot[year] = 0
			continue
		}

		df := remaining / (100.0 + coupon)
		spot[year] = (math.Pow(1.0/df, 1.0/float64(year)) - 1.0) * 100.0
	}
	return spot, nil
}
