package main

import (
	"fmt"
	"time"

	"github.com/meenmo/bondcalc/bond"
	"github.com/meenmo/bondcalc/curve"
	"github.com/meenmo/bondcalc/market"
)

func main() {
	b := bond.Bond{
		FaceValue:      100,
		YieldRate:      6.0,
		CouponRate:     5.0,
		Frequency:      market.FreqAnnual,
		MaturityDate:   time.Date(2029, 1, 23, 0, 0, 0, 0, time.UTC),
		SettlementDate: time.Date(2026, 1, 27, 0, 0, 0, 0, time.UTC),
		DayCount:       market.Dc30360,
	}

	res, err := bond.Calculate(b)
	if err != nil {
		fmt.Println("Calculation error:", err)
		return
	}

	fmt.Printf("Dirty Price: %.4f\n", res.DirtyPrice)
	fmt.Printf("Clean Price: %.4f\n", res.CleanPrice)
	fmt.Printf("Accrued Interest: %.4f\n", res.AccruedInterest)
	fmt.Printf("Days Accrued: %d\n", res.DaysAccrued)
	fmt.Printf("Macaulay Duration: %.4f\n", res.MacaulayDuration)
	fmt.Printf("Modified Duration: %.4f\n", res.ModifiedDuration)
	fmt.Printf("Convexity: %.4f\n", res.Convexity)

	par := curve.ParYieldCurve{
		1:  5.0,
		2:  5.5,
		3:  5.8,
		5:  6.2,
		10: 6.5,
		30: 6.8,
	}

	analysis, err := curve.Analyze(par)
	if err != nil {
		fmt.Println("Analysis failed:", err)
		return
	}

	fmt.Println()
	for _, y := range analysis.Years {
		fmt.Printf("Spot %2dY: %.4f\n", y, analysis.Spot[y])
	}
	for _, f := range analysis.Forwards {
		fmt.Printf("Forward %s: %.4f\n", f.Label, f.Rate)
	}
}
