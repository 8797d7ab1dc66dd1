// Package apperr maps calculation failures to stable error codes so callers
// can display them without parsing messages.
package apperr

import (
	"errors"

	"github.com/meenmo/bondcalc/bond"
	"github.com/meenmo/bondcalc/curve"
	"github.com/meenmo/bondcalc/market"
)

// AppError represents a structured error with a code, a human-readable
// message and the underlying error.
type AppError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Internal error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the sentinel's code wrapping an internal
// error. The message is taken from the internal error so context is kept.
func Wrap(sentinel *AppError, internal error) *AppError {
	msg := sentinel.Message
	if internal != nil {
		msg = internal.Error()
	}
	return &AppError{
		Code:     sentinel.Code,
		Message:  msg,
		Internal: internal,
	}
}

// Calculation errors.
var (
	ErrInvalidInput      = &AppError{Code: "INVALID_INPUT", Message: "Invalid input"}
	ErrInvalidDateRange  = &AppError{Code: "INVALID_DATE_RANGE", Message: "Settlement date must be before maturity date"}
	ErrInvalidConvention = &AppError{Code: "INVALID_CONVENTION", Message: "Unsupported day count convention"}
	ErrInvalidFrequency  = &AppError{Code: "INVALID_FREQUENCY", Message: "Unsupported coupon frequency"}
	ErrInvalidYield      = &AppError{Code: "INVALID_YIELD", Message: "Yield produces a non-positive discount base"}
	ErrNoConvergence     = &AppError{Code: "NO_CONVERGENCE", Message: "Yield solver did not converge"}
	ErrEmptyCurve        = &AppError{Code: "EMPTY_CURVE", Message: "At least one maturity / yield pair is required"}
	ErrInvalidMaturity   = &AppError{Code: "INVALID_MATURITY", Message: "Curve maturities must be positive whole years"}
	ErrInternal          = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred"}
)

var mapping = []struct {
	target   error
	sentinel *AppError
}{
	{bond.ErrInvalidDateRange, ErrInvalidDateRange},
	{market.ErrInvalidConvention, ErrInvalidConvention},
	{market.ErrInvalidFrequency, ErrInvalidFrequency},
	{bond.ErrInvalidYield, ErrInvalidYield},
	{bond.ErrNoConvergence, ErrNoConvergence},
	{bond.ErrInvalidBond, ErrInvalidInput},
	{curve.ErrEmptyCurve, ErrEmptyCurve},
	{curve.ErrInvalidMaturity, ErrInvalidMaturity},
}

// FromError classifies err. An AppError passes through unchanged; known
// sentinels get their code; anything else is INTERNAL_ERROR.
func FromError(err error) *AppError {
	if err == nil {
		return nil
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	for _, m := range mapping {
		if errors.Is(err, m.target) {
			return Wrap(m.sentinel, err)
		}
	}
	return Wrap(ErrInternal, err)
}
