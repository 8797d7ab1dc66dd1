package bond

import (
	"fmt"
	"time"

	"github.com/meenmo/bondcalc/market"
	"github.com/meenmo/bondcalc/utils"
)

// LastCouponDate walks back from maturity one coupon period at a time and
// returns the first date on or before settlement.
//
// Month-end dates follow utils.AddMonthsClamp28, so a 31st maturity rolls to
// the 28th in shorter months and stays there.
func LastCouponDate(maturity, settlement time.Time, freq market.Frequency) (time.Time, error) {
	if !freq.Valid() {
		return time.Time{}, fmt.Errorf("LastCouponDate: %w: %d", market.ErrInvalidFrequency, int(freq))
	}
	maturity, settlement = utils.DateOnly(maturity), utils.DateOnly(settlement)
	if !settlement.Before(maturity) {
		return time.Time{}, fmt.Errorf("LastCouponDate: %w: settlement %s, maturity %s",
			ErrInvalidDateRange, settlement.Format(utils.DateLayout), maturity.Format(utils.DateLayout))
	}

	step := freq.MonthsPerPeriod()
	candidate := maturity
	for candidate.After(settlement) {
		candidate = utils.AddMonthsClamp28(candidate, -step)
	}
	return candidate, nil
}

// GenerateCashflows lists the coupons paid after lastCoupon up to and
// including maturity. The maturity cash flow carries the face value as
// principal.
//
// When the day-28 clamp leaves the schedule short of the exact maturity date
// (a 31st maturity stepped through February), the final coupon is moved onto
// maturity so redemption is never dropped.
func GenerateCashflows(lastCoupon, maturity time.Time, freq market.Frequency, coupon, face float64) ([]Cashflow, error) {
	if !freq.Valid() {
		return nil, fmt.Errorf("GenerateCashflows: %w: %d", market.ErrInvalidFrequency, int(freq))
	}
	lastCoupon, maturity = utils.DateOnly(lastCoupon), utils.DateOnly(maturity)
	if !lastCoupon.Before(maturity) {
		return nil, fmt.Errorf("GenerateCashflows: %w: last coupon %s, maturity %s",
			ErrInvalidDateRange, lastCoupon.Format(utils.DateLayout), maturity.Format(utils.DateLayout))
	}

	step := freq.MonthsPerPeriod()
	cfs := make([]Cashflow, 0, 12/step*(maturity.Year()-lastCoupon.Year()+1))
	principalPaid := false
	for d := utils.AddMonthsClamp28(lastCoupon, step); !d.After(maturity); d = utils.AddMonthsClamp28(d, step) {
		cf := Cashflow{Date: d, Coupon: coupon}
		if d.Equal(maturity) {
			cf.Principal = face
			principalPaid = true
		}
		cfs = append(cfs, cf)
	}

	if !principalPaid && len(cfs) > 0 {
		last := &cfs[len(cfs)-1]
		last.Date = maturity
		last.Principal = face
	}
	return cfs, nil
}
