// Package report turns valuation and curve results into rounded rows for
// tabular or chart rendering.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/meenmo/bondcalc/bond"
	"github.com/meenmo/bondcalc/curve"
	"github.com/meenmo/bondcalc/utils"
)

// Pricing is the display form of bond.Result.
type Pricing struct {
	DirtyPrice       decimal.Decimal `json:"dirty_price"`
	CleanPrice       decimal.Decimal `json:"clean_price"`
	AccruedInterest  decimal.Decimal `json:"accrued_interest"`
	DaysAccrued      int             `json:"days_accrued"`
	MacaulayDuration decimal.Decimal `json:"macaulay_duration"`
	ModifiedDuration decimal.Decimal `json:"modified_duration"`
	Convexity        decimal.Decimal `json:"convexity"`
	LastCouponDate   string          `json:"last_coupon_date"`
	NextCouponDate   string          `json:"next_coupon_date,omitempty"`
	Cashflows        []CashflowRow   `json:"cashflows"`
}

// CashflowRow is one line of the remaining payment schedule.
type CashflowRow struct {
	Date      string          `json:"date"`
	Coupon    decimal.Decimal `json:"coupon"`
	Principal decimal.Decimal `json:"principal"`
	Amount    decimal.Decimal `json:"amount"`
}

// SpotRow is one line of the bootstrapped spot table.
type SpotRow struct {
	Term     int             `json:"term"`
	ParYield decimal.Decimal `json:"par_yield"`
	SpotRate decimal.Decimal `json:"spot_rate"`
}

// ForwardRow is one line of the implied forward table.
type ForwardRow struct {
	Period      string          `json:"period"`
	ForwardRate decimal.Decimal `json:"forward_rate"`
}

// CurveTables holds both curve tables in maturity order.
type CurveTables struct {
	Spot     []SpotRow    `json:"spot"`
	Forwards []ForwardRow `json:"forwards"`
}

// Reporter rounds every figure to a fixed number of decimals.
type Reporter struct {
	precision int32
}

// New returns a Reporter that keeps precision decimals.
func New(precision int32) Reporter {
	return Reporter{precision: precision}
}

func (r Reporter) round(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(r.precision)
}

// Pricing renders a valuation result.
func (r Reporter) Pricing(res bond.Result) Pricing {
	out := Pricing{
		DirtyPrice:       r.round(res.DirtyPrice),
		CleanPrice:       r.round(res.CleanPrice),
		AccruedInterest:  r.round(res.AccruedInterest),
		DaysAccrued:      res.DaysAccrued,
		MacaulayDuration: r.round(res.MacaulayDuration),
		ModifiedDuration: r.round(res.ModifiedDuration),
		Convexity:        r.round(res.Convexity),
		LastCouponDate:   res.LastCouponDate.Format(utils.DateLayout),
		Cashflows:        make([]CashflowRow, 0, len(res.Cashflows)),
	}
	if !res.NextCouponDate.IsZero() {
		out.NextCouponDate = res.NextCouponDate.Format(utils.DateLayout)
	}
	for _, cf := range res.Cashflows {
		out.Cashflows = append(out.Cashflows, CashflowRow{
			Date:      cf.Date.Format(utils.DateLayout),
			Coupon:    r.round(cf.Coupon),
			Principal: r.round(cf.Principal),
			Amount:    r.round(cf.Amount()),
		})
	}
	return out
}

// Curve renders a curve analysis.
func (r Reporter) Curve(a curve.Analysis) CurveTables {
	out := CurveTables{
		Spot:     make([]SpotRow, 0, len(a.Years)),
		Forwards: make([]ForwardRow, 0, len(a.Forwards)),
	}
	for _, y := range a.Years {
		out.Spot = append(out.Spot, SpotRow{
			Term:     y,
			ParYield: r.round(a.Par[y]),
			SpotRate: r.round(a.Spot[y]),
		})
	}
	for _, f := range a.Forwards {
		out.Forwards = append(out.Forwards, ForwardRow{
			Period:      f.Label,
			ForwardRate: r.round(f.Rate),
		})
	}
	return out
}
