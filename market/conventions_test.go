package market_test

import (
	"errors"
	"testing"

	"github.com/meenmo/bondcalc/market"
)

func TestParseDayCount(t *testing.T) {
	t.Parallel()

	cases := map[string]market.DayCount{
		"30/360":        market.Dc30360,
		"Actual/360":    market.Act360,
		"ACT/360":       market.Act360,
		"Actual/365":    market.Act365,
		" act/365f ":    market.Act365,
		"Actual/Actual": market.ActAct,
		"ACT/ACT":       market.ActAct,
	}
	for in, want := range cases {
		got, err := market.ParseDayCount(in)
		if err != nil {
			t.Fatalf("ParseDayCount(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseDayCount(%q) = %q, want %q", in, got, want)
		}
		if !got.Valid() {
			t.Fatalf("%q should be valid", got)
		}
	}

	if _, err := market.ParseDayCount("Actual/364"); !errors.Is(err, market.ErrInvalidConvention) {
		t.Fatalf("expected ErrInvalidConvention, got %v", err)
	}
}

func TestParseFrequency(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in     string
		want   market.Frequency
		months int
	}{
		{"annually", market.FreqAnnual, 12},
		{"semi-annually", market.FreqSemi, 6},
		{"Quarterly", market.FreqQuarterly, 3},
		{"monthly", market.FreqMonthly, 1},
		{"2", market.FreqSemi, 6},
	}
	for _, tc := range cases {
		got, err := market.ParseFrequency(tc.in)
		if err != nil {
			t.Fatalf("ParseFrequency(%q) error: %v", tc.in, err)
		}
		if got != tc.want || got.MonthsPerPeriod() != tc.months {
			t.Fatalf("ParseFrequency(%q) = %d (%d months), want %d (%d months)", tc.in, got, got.MonthsPerPeriod(), tc.want, tc.months)
		}
	}

	for _, bad := range []string{"weekly", "3", ""} {
		if _, err := market.ParseFrequency(bad); !errors.Is(err, market.ErrInvalidFrequency) {
			t.Fatalf("ParseFrequency(%q): expected ErrInvalidFrequency, got %v", bad, err)
		}
	}
	if market.Frequency(6).Valid() {
		t.Fatalf("Frequency(6) should be invalid")
	}
	if s := market.FreqSemi.String(); s != "semi-annually" {
		t.Fatalf("String mismatch: %q", s)
	}
}
