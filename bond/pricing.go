package bond

import (
	"fmt"
	"math"
	"time"

	"github.com/meenmo/bondcalc/market"
	"github.com/meenmo/bondcalc/utils"
)

// Validate checks the bond terms before any schedule is built.
func (b Bond) Validate() error {
	if b.FaceValue < 0 || math.IsNaN(b.FaceValue) {
		return fmt.Errorf("%w: face value must be non-negative, got %v", ErrInvalidBond, b.FaceValue)
	}
	if !b.Frequency.Valid() {
		return fmt.Errorf("%w: %d", market.ErrInvalidFrequency, int(b.Frequency))
	}
	if !b.DayCount.Valid() {
		return fmt.Errorf("%w: %q", market.ErrInvalidConvention, b.DayCount)
	}
	if b.MaturityDate.IsZero() || b.SettlementDate.IsZero() {
		return fmt.Errorf("%w: maturity and settlement dates are required", ErrInvalidBond)
	}
	if !utils.DateOnly(b.SettlementDate).Before(utils.DateOnly(b.MaturityDate)) {
		return fmt.Errorf("%w: settlement %s, maturity %s", ErrInvalidDateRange,
			b.SettlementDate.Format(utils.DateLayout), b.MaturityDate.Format(utils.DateLayout))
	}
	return nil
}

// Calculate prices the bond at its yield and returns the valuation record.
func Calculate(b Bond) (Result, error) {
	if err := b.Validate(); err != nil {
		return Result{}, fmt.Errorf("Calculate: %w", err)
	}

	coupon := b.CouponAmount()
	lastCoupon, err := LastCouponDate(b.MaturityDate, b.SettlementDate, b.Frequency)
	if err != nil {
		return Result{}, fmt.Errorf("Calculate: %w", err)
	}

	accrued, daysAccrued, err := AccruedInterest(lastCoupon, b.SettlementDate, coupon, b.Frequency, b.DayCount)
	if err != nil {
		return Result{}, fmt.Errorf("Calculate: %w", err)
	}

	cfs, err := GenerateCashflows(lastCoupon, b.MaturityDate, b.Frequency, coupon, b.FaceValue)
	if err != nil {
		return Result{}, fmt.Errorf("Calculate: %w", err)
	}

	risk, err := Discount(cfs, b.SettlementDate, b.YieldRate, b.Frequency, b.DayCount)
	if err != nil {
		return Result{}, fmt.Errorf("Calculate: %w", err)
	}

	res := Result{
		DirtyPrice:       risk.DirtyPrice,
		CleanPrice:       risk.DirtyPrice - accrued,
		AccruedInterest:  accrued,
		DaysAccrued:      daysAccrued,
		MacaulayDuration: risk.MacaulayDuration,
		ModifiedDuration: risk.ModifiedDuration,
		Convexity:        risk.Convexity,
		LastCouponDate:   lastCoupon,
		Cashflows:        cfs,
	}
	if len(cfs) > 0 {
		res.NextCouponDate = cfs[0].Date
	}
	return res, nil
}

// AccruedInterest returns the coupon earned from lastCoupon to settlement and
// the accrued day count.
//
// Period length: 360/f days for 30/360 and ACT/360, 365/f for ACT/365, and
// the actual calendar length of the current coupon period for ACT/ACT.
func AccruedInterest(lastCoupon, settlement time.Time, coupon float64, freq market.Frequency, dc market.DayCount) (float64, int, error) {
	if !freq.Valid() {
		return 0, 0, fmt.Errorf("AccruedInterest: %w: %d", market.ErrInvalidFrequency, int(freq))
	}

	days, err := utils.DayCountDays(lastCoupon, settlement, dc)
	if err != nil {
		return 0, 0, fmt.Errorf("AccruedInterest: %w", err)
	}

	var period float64
	switch dc {
	case market.Dc30360, market.Act360:
		period = 360.0 / float64(freq)
	case market.Act365:
		period = 365.0 / float64(freq)
	case market.ActAct:
		next := utils.AddMonthsClamp28(lastCoupon, freq.MonthsPerPeriod())
		period = float64(utils.ActualDays(lastCoupon, next))
	}

	return coupon * (float64(days) / period), days, nil
}

// Discount present-values the cash flows at yieldPct compounded freq times a
// year and returns price and risk measures.
//
//	t  = YearFraction(settlement, cf.Date)
//	n  = f·t                       (not rounded; settlement may fall mid-period)
//	PV = Σ CF / (1+y/f)^n
//	D  = Σ t·PV / PV               (Macaulay)
//	C  = Σ CF·n(n+1)/(1+y/f)^(n+2) / (PV·f²)
func Discount(cfs []Cashflow, settlement time.Time, yieldPct float64, freq market.Frequency, dc market.DayCount) (Risk, error) {
	if !freq.Valid() {
		return Risk{}, fmt.Errorf("Discount: %w: %d", market.ErrInvalidFrequency, int(freq))
	}

	f := float64(freq)
	base := 1 + yieldPct/100.0/f
	if base <= 0 || math.IsNaN(base) {
		return Risk{}, fmt.Errorf("Discount: %w: yield %v%% at frequency %d", ErrInvalidYield, yieldPct, int(freq))
	}

	var dirty, durationSum, convexitySum float64
	for _, cf := range cfs {
		t, err := utils.YearFraction(settlement, cf.Date, dc)
		if err != nil {
			return Risk{}, fmt.Errorf("Discount: %w", err)
		}
		n := f * t
		amt := cf.Amount()
		pv := amt / math.Pow(base, n)

		dirty += pv
		durationSum += t * pv
		convexitySum += amt * n * (n + 1) / math.Pow(base, n+2)
	}

	risk := Risk{DirtyPrice: dirty}
	if dirty != 0 {
		risk.MacaulayDuration = durationSum / dirty
		risk.Convexity = convexitySum / (dirty * f * f)
	}
	risk.ModifiedDuration = risk.MacaulayDuration / base
	return risk, nil
}
