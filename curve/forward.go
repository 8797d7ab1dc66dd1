package curve

import (
	"fmt"
	"math"
)

// ForwardRate returns the annually compounded forward rate (percent) between
// t1 and t2 implied by zero rates r1 and r2 (percent):
//
//	f = [(1+r2)^t2 / (1+r1)^t1]^(1/(t2−t1)) − 1
//
// It returns 0 when t2 <= t1.
func ForwardRate(r1, t1, r2, t2 float64) float64 {
	if t2 <= t1 {
		return 0
	}
	factor := math.Pow(1+r2/100.0, t2) / math.Pow(1+r1/100.0, t1)
	return (math.Pow(factor, 1/(t2-t1)) - 1) * 100.0
}

// ForwardTable derives one forward rate per adjacent pair of spot maturities.
func ForwardTable(spot SpotCurve) []Forward {
	years := spot.Years()
	if len(years) < 2 {
		return []Forward{}
	}

	out := make([]Forward, 0, len(years)-1)
	for i := 0; i < len(years)-1; i++ {
		t1, t2 := years[i], years[i+1]
		out = append(out, Forward{
			From:  t1,
			To:    t2,
			Label: PeriodLabel(t1, t2),
			Rate:  ForwardRate(spot[t1], float64(t1), spot[t2], float64(t2)),
		})
	}
	return out
}

// PeriodLabel formats a forward period as "1Y→2Y".
func PeriodLabel(t1, t2 int) string {
	return fmt.Sprintf("%dY→%dY", t1, t2)
}

// Analyze bootstraps par and derives the forward table.
func Analyze(par ParYieldCurve) (Analysis, error) {
	spot, err := BootstrapSpotCurve(par)
	if err != nil {
		return Analysis{}, fmt.Errorf("Analyze: %w", err)
	}
	return Analysis{
		Years:    spot.Years(),
		Par:      par,
		Spot:     spot,
		Forwards: ForwardTable(spot),
	}, nil
}
