package market

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidConvention is returned for an unrecognized day-count token.
	ErrInvalidConvention = errors.New("invalid day count convention")
	// ErrInvalidFrequency is returned for an unrecognized coupon frequency.
	ErrInvalidFrequency = errors.New("invalid coupon frequency")
)

// DayCount enum.
type DayCount string

const (
	Dc30360 DayCount = "30/360"
	Act360  DayCount = "ACT/360"
	Act365  DayCount = "ACT/365"
	// ActAct is a simplified Actual/Actual: same-year spans use the actual
	// year length, cross-year spans divide by 365.25.
	ActAct DayCount = "ACT/ACT"
)

// Valid reports whether dc is one of the supported conventions.
func (dc DayCount) Valid() bool {
	switch dc {
	case Dc30360, Act360, Act365, ActAct:
		return true
	}
	return false
}

// ParseDayCount accepts both the short tokens (ACT/360) and the long
// spellings used by front ends (Actual/360).
func ParseDayCount(s string) (DayCount, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "30/360", "30U/360", "BOND BASIS":
		return Dc30360, nil
	case "ACT/360", "ACTUAL/360":
		return Act360, nil
	case "ACT/365", "ACTUAL/365", "ACT/365F", "ACTUAL/365 FIXED":
		return Act365, nil
	case "ACT/ACT", "ACTUAL/ACTUAL":
		return ActAct, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidConvention, s)
}

// Frequency is the number of coupon payments per year.
type Frequency int

const (
	FreqAnnual    Frequency = 1
	FreqSemi      Frequency = 2
	FreqQuarterly Frequency = 4
	FreqMonthly   Frequency = 12
)

// Valid reports whether f is one of the supported coupon frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case FreqAnnual, FreqSemi, FreqQuarterly, FreqMonthly:
		return true
	}
	return false
}

// MonthsPerPeriod returns the coupon period length in months.
func (f Frequency) MonthsPerPeriod() int {
	return 12 / int(f)
}

func (f Frequency) String() string {
	switch f {
	case FreqAnnual:
		return "annually"
	case FreqSemi:
		return "semi-annually"
	case FreqQuarterly:
		return "quarterly"
	case FreqMonthly:
		return "monthly"
	}
	return "Frequency(" + strconv.Itoa(int(f)) + ")"
}

// ParseFrequency accepts the named frequencies ("semi-annually") or the
// number of payments per year ("2").
func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "annually", "annual", "1":
		return FreqAnnual, nil
	case "semi-annually", "semiannually", "semi-annual", "2":
		return FreqSemi, nil
	case "quarterly", "4":
		return FreqQuarterly, nil
	case "monthly", "12":
		return FreqMonthly, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFrequency, s)
}
