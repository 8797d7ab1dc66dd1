package curve

import (
	"errors"
	"sort"
)

var (
	// ErrEmptyCurve is returned when a par-yield table has no points.
	ErrEmptyCurve = errors.New("par yield curve is empty")
	// ErrInvalidMaturity is returned for a maturity that is not a positive whole year.
	ErrInvalidMaturity = errors.New("invalid curve maturity")
)

// ParYieldCurve maps a maturity in whole years to a par yield in percent.
// Maturities need not be contiguous.
type ParYieldCurve map[int]float64

// SpotCurve maps a maturity in whole years to a zero rate in percent.
type SpotCurve map[int]float64

// Forward is the implied rate between two spot-curve points, in percent.
type Forward struct {
	From  int
	To    int
	Label string
	Rate  float64
}

// Analysis bundles the bootstrapped spot curve and its forward table.
type Analysis struct {
	Years    []int
	Par      ParYieldCurve
	Spot     SpotCurve
	Forwards []Forward
}

// Years returns the curve maturities in ascending order.
func (p ParYieldCurve) Years() []int {
	return sortedKeys(p)
}

// Years returns the curve maturities in ascending order.
func (s SpotCurve) Years() []int {
	return sortedKeys(s)
}

func sortedKeys(m map[int]float64) []int {
	years := make([]int, 0, len(m))
	for y := range m {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
