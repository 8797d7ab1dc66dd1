package utils

import (
	"fmt"
	"time"

	"github.com/meenmo/bondcalc/market"
)

// YearFraction computes year fraction between two dates using the specified day count convention.
// Supported conventions: 30/360, ACT/360, ACT/365, ACT/ACT (simplified).
func YearFraction(start, end time.Time, convention market.DayCount) (float64, error) {
	switch convention {
	case market.Dc30360:
		return float64(Days30360(start, end)) / 360.0, nil
	case market.Act360:
		return float64(ActualDays(start, end)) / 360.0, nil
	case market.Act365:
		return float64(ActualDays(start, end)) / 365.0, nil
	case market.ActAct:
		// Not ISDA: spans crossing a year boundary use a 365.25 divisor.
		days := float64(ActualDays(start, end))
		if start.Year() == end.Year() {
			return days / float64(DaysInYear(start.Year())), nil
		}
		return days / 365.25, nil
	default:
		return 0, fmt.Errorf("YearFraction: %w: %q", market.ErrInvalidConvention, convention)
	}
}

// DayCountDays returns the whole-day count between two dates: 30/360 days
// for the 30/360 convention, calendar days for every other convention.
func DayCountDays(start, end time.Time, convention market.DayCount) (int, error) {
	switch convention {
	case market.Dc30360:
		return Days30360(start, end), nil
	case market.Act360, market.Act365, market.ActAct:
		return ActualDays(start, end), nil
	default:
		return 0, fmt.Errorf("DayCountDays: %w: %q", market.ErrInvalidConvention, convention)
	}
}

// Days30360 counts days on the 30/360 bond basis.
// D1 is capped at 30; D2 is capped at 30 only when D1 (after capping) is 30.
func Days30360(start, end time.Time) int {
	y1, m1, d1 := start.Date()
	y2, m2, d2 := end.Date()
	if d1 == 31 {
		d1 = 30
	}
	if d2 == 31 && d1 == 30 {
		d2 = 30
	}
	return 360*(y2-y1) + 30*(int(m2)-int(m1)) + (d2 - d1)
}

// ActualDays returns the number of calendar days from start to end (ACT).
func ActualDays(start, end time.Time) int {
	return int(DateOnly(end).Sub(DateOnly(start)).Hours() / 24)
}

// IsLeapYear reports whether y is a Gregorian leap year.
func IsLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(y int) int {
	if IsLeapYear(y) {
		return 366
	}
	return 365
}
