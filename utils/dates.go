package utils

import (
	"fmt"
	"time"
)

// DateLayout is the ISO date format used on every input and output boundary.
const DateLayout = "2006-01-02"

// DateParser converts YYYY-MM-DD to a UTC midnight time.Time.
func DateParser(strDate string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("DateParser: %w", err)
	}
	return t, nil
}

// DateOnly drops the clock part of t, keeping its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonthsClamp28 shifts t by a whole number of months, keeping the day of
// month. When that day does not exist in the target month (29-31 landing in
// a shorter month) the result falls back to the 28th.
//
// This is not an end-of-month roll: 2025-01-31 + 1M is 2025-02-28, and
// 2025-02-28 + 1M stays on the 28th.
func AddMonthsClamp28(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	idx := int(m) - 1 + months
	y += floorDiv(idx, 12)
	month := time.Month(idx-floorDiv(idx, 12)*12 + 1)
	if d > DaysInMonth(y, month) {
		d = 28
	}
	return time.Date(y, month, d, 0, 0, 0, 0, time.UTC)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
