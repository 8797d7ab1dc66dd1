package bond

import (
	"errors"
	"time"

	"github.com/meenmo/bondcalc/market"
)

var (
	// ErrInvalidDateRange is returned when settlement is not before maturity.
	ErrInvalidDateRange = errors.New("settlement date must be before maturity date")
	// ErrInvalidYield is returned when 1 + yield/frequency is not positive.
	ErrInvalidYield = errors.New("yield produces a non-positive discount base")
	// ErrInvalidBond is returned for bond terms that cannot be priced.
	ErrInvalidBond = errors.New("invalid bond")
	// ErrNoConvergence is returned when the yield solver gives up.
	ErrNoConvergence = errors.New("yield solver did not converge")
)

// Bond holds the terms of a fixed-coupon bond for a single valuation.
//
// YieldRate and CouponRate are in percent (6.0 == 6%).
type Bond struct {
	FaceValue      float64
	YieldRate      float64
	CouponRate     float64
	Frequency      market.Frequency
	MaturityDate   time.Time
	SettlementDate time.Time
	DayCount       market.DayCount
}

// CouponAmount is the periodic coupon in currency units.
func (b Bond) CouponAmount() float64 {
	return b.FaceValue * (b.CouponRate / 100.0) / float64(b.Frequency)
}

// Cashflow is a single dated cash payment for a bond.
//
// Amounts are in currency units, not price-per-100.
type Cashflow struct {
	Date      time.Time
	Coupon    float64
	Principal float64
}

func (c Cashflow) Amount() float64 {
	return c.Coupon + c.Principal
}

// Risk is the discounting output for a cash-flow schedule.
type Risk struct {
	DirtyPrice       float64
	MacaulayDuration float64
	ModifiedDuration float64
	Convexity        float64
}

// Result is the full valuation record for a bond.
type Result struct {
	DirtyPrice       float64
	CleanPrice       float64
	AccruedInterest  float64
	DaysAccrued      int
	MacaulayDuration float64
	ModifiedDuration float64
	Convexity        float64

	LastCouponDate time.Time
	NextCouponDate time.Time
	Cashflows      []Cashflow
}
