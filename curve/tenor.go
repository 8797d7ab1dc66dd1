package curve

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTenorYears converts tenor strings like "5", "5Y" or "60M" to whole years.
func ParseTenorYears(tenor string) (int, error) {
	s := strings.TrimSpace(strings.ToUpper(tenor))
	months := false
	switch {
	case strings.HasSuffix(s, "Y"):
		s = strings.TrimSuffix(s, "Y")
	case strings.HasSuffix(s, "M"):
		s = strings.TrimSuffix(s, "M")
		months = true
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMaturity, tenor)
	}
	if months {
		if v%12 != 0 {
			return 0, fmt.Errorf("%w: %q is not a whole number of years", ErrInvalidMaturity, tenor)
		}
		v /= 12
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMaturity, tenor)
	}
	return v, nil
}
