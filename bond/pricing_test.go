package bond_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/meenmo/bondcalc/bond"
	"github.com/meenmo/bondcalc/market"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func referenceBond(dc market.DayCount) bond.Bond {
	return bond.Bond{
		FaceValue:      100,
		YieldRate:      6.0,
		CouponRate:     5.0,
		Frequency:      market.FreqAnnual,
		MaturityDate:   date(2029, 1, 23),
		SettlementDate: date(2026, 1, 27),
		DayCount:       dc,
	}
}

func assertClose(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s mismatch: got %.15f want %.15f", name, got, want)
	}
}

func TestCalculate_ReferenceBondGolden(t *testing.T) {
	t.Parallel()

	type golden struct {
		dirty, clean, accrued float64
		days                  int
		macaulay, modified    float64
		convexity             float64
	}

	cases := map[market.DayCount]golden{
		market.Dc30360: {97.39002109009095, 97.3344655345354, 0.05555555555555556, 4, 2.8462363241448463, 2.6851286076838172, 9.938172780711053},
		market.Act360:  {97.15083837418297, 97.09528281862741, 0.05555555555555556, 4, 2.8882362925275458, 2.724751219365609, 10.196289055018896},
		market.Act365:  {97.37507554138175, 97.3202810208338, 0.0547945205479452, 4, 2.8488495429715504, 2.6875939084637266, 9.954400311208392},
		market.ActAct:  {97.38613997853786, 97.33134545798991, 0.0547945205479452, 4, 2.8469083785341875, 2.685762621258667, 9.94255262612545},
	}

	for dc, want := range cases {
		dc, want := dc, want
		t.Run(string(dc), func(t *testing.T) {
			t.Parallel()

			res, err := bond.Calculate(referenceBond(dc))
			if err != nil {
				t.Fatalf("Calculate error: %v", err)
			}

			const tol = 1e-9
			assertClose(t, "DirtyPrice", res.DirtyPrice, want.dirty, tol)
			assertClose(t, "CleanPrice", res.CleanPrice, want.clean, tol)
			assertClose(t, "AccruedInterest", res.AccruedInterest, want.accrued, tol)
			assertClose(t, "MacaulayDuration", res.MacaulayDuration, want.macaulay, tol)
			assertClose(t, "ModifiedDuration", res.ModifiedDuration, want.modified, tol)
			assertClose(t, "Convexity", res.Convexity, want.convexity, tol)
			if res.DaysAccrued != want.days {
				t.Fatalf("DaysAccrued mismatch: got %d want %d", res.DaysAccrued, want.days)
			}
			if !res.LastCouponDate.Equal(date(2026, 1, 23)) {
				t.Fatalf("LastCouponDate mismatch: got %s", res.LastCouponDate.Format("2006-01-02"))
			}
			if !res.NextCouponDate.Equal(date(2027, 1, 23)) {
				t.Fatalf("NextCouponDate mismatch: got %s", res.NextCouponDate.Format("2006-01-02"))
			}
		})
	}
}

func TestCalculate_SemiAnnual(t *testing.T) {
	t.Parallel()

	b := referenceBond(market.Dc30360)
	b.Frequency = market.FreqSemi

	res, err := bond.Calculate(b)
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}

	const tol = 1e-9
	assertClose(t, "DirtyPrice", res.DirtyPrice, 97.35533232458675, tol)
	assertClose(t, "CleanPrice", res.CleanPrice, 97.2997767690312, tol)
	assertClose(t, "AccruedInterest", res.AccruedInterest, 0.05555555555555556, tol)
	assertClose(t, "MacaulayDuration", res.MacaulayDuration, 2.808891481476505, tol)
	assertClose(t, "ModifiedDuration", res.ModifiedDuration, 2.727079108229616, tol)
	assertClose(t, "Convexity", res.Convexity, 9.04515594221833, tol)
	if len(res.Cashflows) != 6 {
		t.Fatalf("expected 6 cash flows, got %d", len(res.Cashflows))
	}
}

func TestCalculate_ZeroCouponHasNoAccrued(t *testing.T) {
	t.Parallel()

	settlements := []time.Time{date(2026, 1, 24), date(2026, 7, 31), date(2028, 12, 31)}
	for _, dc := range []market.DayCount{market.Dc30360, market.Act360, market.Act365, market.ActAct} {
		for _, freq := range []market.Frequency{market.FreqAnnual, market.FreqSemi, market.FreqQuarterly, market.FreqMonthly} {
			for _, s := range settlements {
				b := referenceBond(dc)
				b.CouponRate = 0
				b.Frequency = freq
				b.SettlementDate = s

				res, err := bond.Calculate(b)
				if err != nil {
					t.Fatalf("Calculate(%s, %s, %s) error: %v", dc, freq, s.Format("2006-01-02"), err)
				}
				if res.AccruedInterest != 0 {
					t.Fatalf("AccruedInterest(%s, %s, %s) = %v, want 0", dc, freq, s.Format("2006-01-02"), res.AccruedInterest)
				}
				if res.CleanPrice != res.DirtyPrice {
					t.Fatalf("zero coupon clean %v != dirty %v", res.CleanPrice, res.DirtyPrice)
				}
			}
		}
	}
}

func TestCalculate_ZeroCouponDurationIsTimeToMaturity(t *testing.T) {
	t.Parallel()

	b := referenceBond(market.Act365)
	b.CouponRate = 0

	res, err := bond.Calculate(b)
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	wantT := float64(date(2029, 1, 23).Sub(date(2026, 1, 27)).Hours()/24) / 365.0
	assertClose(t, "MacaulayDuration", res.MacaulayDuration, wantT, 1e-12)
	assertClose(t, "DirtyPrice", res.DirtyPrice, 100/math.Pow(1.06, wantT), 1e-9)
}

func TestCalculate_DurationFallsAsCouponRises(t *testing.T) {
	t.Parallel()

	prev := math.Inf(1)
	for _, c := range []float64{0, 1, 2.5, 5, 8, 12, 20} {
		b := referenceBond(market.Dc30360)
		b.CouponRate = c
		b.Frequency = market.FreqSemi

		res, err := bond.Calculate(b)
		if err != nil {
			t.Fatalf("Calculate(coupon=%v) error: %v", c, err)
		}
		if !(res.MacaulayDuration < prev) {
			t.Fatalf("Macaulay duration not decreasing at coupon %v: %v >= %v", c, res.MacaulayDuration, prev)
		}
		prev = res.MacaulayDuration
	}
}

func TestCalculate_ZeroFaceValueReportsZeroRisk(t *testing.T) {
	t.Parallel()

	b := referenceBond(market.Dc30360)
	b.FaceValue = 0

	res, err := bond.Calculate(b)
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	if res.DirtyPrice != 0 || res.MacaulayDuration != 0 || res.ModifiedDuration != 0 || res.Convexity != 0 {
		t.Fatalf("expected all-zero result, got %+v", res)
	}
}

func TestCalculate_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*bond.Bond)
		want   error
	}{
		{"settlement equals maturity", func(b *bond.Bond) { b.SettlementDate = b.MaturityDate }, bond.ErrInvalidDateRange},
		{"settlement after maturity", func(b *bond.Bond) { b.SettlementDate = date(2030, 1, 1) }, bond.ErrInvalidDateRange},
		{"unknown convention", func(b *bond.Bond) { b.DayCount = market.DayCount("BUS/252") }, market.ErrInvalidConvention},
		{"unknown frequency", func(b *bond.Bond) { b.Frequency = market.Frequency(3) }, market.ErrInvalidFrequency},
		{"discount base zero", func(b *bond.Bond) { b.YieldRate = -100 }, bond.ErrInvalidYield},
		{"discount base negative", func(b *bond.Bond) { b.YieldRate = -150 }, bond.ErrInvalidYield},
		{"negative face value", func(b *bond.Bond) { b.FaceValue = -1 }, bond.ErrInvalidBond},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			b := referenceBond(market.Dc30360)
			tc.mutate(&b)
			_, err := bond.Calculate(b)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestAccruedInterest_ActActUsesActualPeriodLength(t *testing.T) {
	t.Parallel()

	last := date(2026, 1, 31)
	settlement := date(2026, 2, 14)
	ai, days, err := bond.AccruedInterest(last, settlement, 1.0, market.FreqMonthly, market.ActAct)
	if err != nil {
		t.Fatalf("AccruedInterest error: %v", err)
	}
	if days != 14 {
		t.Fatalf("days mismatch: got %d", days)
	}
	// Next coupon clamps to 2026-02-28: a 28-day period.
	assertClose(t, "AccruedInterest", ai, 14.0/28.0, 1e-15)
}

func TestAccruedInterest_PeriodBasis(t *testing.T) {
	t.Parallel()

	last := date(2025, 7, 23)
	settlement := date(2025, 10, 23)
	cases := []struct {
		dc   market.DayCount
		days int
		want float64
	}{
		{market.Dc30360, 90, 2.5 * 90.0 / 180.0},
		{market.Act360, 92, 2.5 * 92.0 / 180.0},
		{market.Act365, 92, 2.5 * 92.0 / 182.5},
		{market.ActAct, 92, 2.5 * 92.0 / 184.0},
	}
	for _, tc := range cases {
		ai, days, err := bond.AccruedInterest(last, settlement, 2.5, market.FreqSemi, tc.dc)
		if err != nil {
			t.Fatalf("%s: AccruedInterest error: %v", tc.dc, err)
		}
		if days != tc.days {
			t.Fatalf("%s: days mismatch: got %d want %d", tc.dc, days, tc.days)
		}
		assertClose(t, string(tc.dc), ai, tc.want, 1e-12)
	}
}

func TestDiscount_InvalidYield(t *testing.T) {
	t.Parallel()

	cfs := []bond.Cashflow{{Date: date(2027, 1, 1), Coupon: 5, Principal: 100}}
	// 1 + (-400%)/4 == 0
	_, err := bond.Discount(cfs, date(2026, 1, 1), -400, market.FreqQuarterly, market.Act365)
	if !errors.Is(err, bond.ErrInvalidYield) {
		t.Fatalf("expected ErrInvalidYield, got %v", err)
	}
}

func TestDiscount_EmptyScheduleIsZero(t *testing.T) {
	t.Parallel()

	risk, err := bond.Discount(nil, date(2026, 1, 1), 5, market.FreqAnnual, market.Act365)
	if err != nil {
		t.Fatalf("Discount error: %v", err)
	}
	if risk != (bond.Risk{}) {
		t.Fatalf("expected zero risk, got %+v", risk)
	}
}
