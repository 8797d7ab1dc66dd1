// Package request decodes and validates the JSON inputs accepted by the
// command-line tools and converts them into bond and curve values.
package request

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/meenmo/bondcalc/bond"
	"github.com/meenmo/bondcalc/curve"
	"github.com/meenmo/bondcalc/internal/apperr"
	"github.com/meenmo/bondcalc/market"
	"github.com/meenmo/bondcalc/utils"
)

// BondRequest is one bond pricing task. When CleanPrice is set the task
// solves for the yield instead of pricing at YieldRate.
type BondRequest struct {
	TaskID         string   `json:"task_id,omitempty"`
	FaceValue      float64  `json:"face_value" validate:"gte=0"`
	YieldRate      float64  `json:"yield_rate" validate:"gt=-100,lt=1000"`
	CouponRate     float64  `json:"coupon_rate" validate:"gte=0,lt=1000"`
	Frequency      string   `json:"frequency" validate:"required"`
	MaturityDate   string   `json:"maturity_date" validate:"required,isodate"`
	SettlementDate string   `json:"settlement_date" validate:"required,isodate"`
	DayCount       string   `json:"day_count" validate:"required"`
	CleanPrice     *float64 `json:"clean_price,omitempty" validate:"omitempty,gt=0"`
}

// CurveRequest is one curve analysis task. Keys of ParYields are tenors
// such as "1", "5Y" or "120M".
type CurveRequest struct {
	TaskID    string             `json:"task_id,omitempty"`
	ParYields map[string]float64 `json:"par_yields" validate:"dive,keys,required,endkeys,gt=-100,lt=100"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("isodate", validateISODate)
	})
	return validate
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(utils.DateLayout, fl.Field().String())
	return err == nil
}

// Validate runs the struct-tag checks on r.
func (r BondRequest) Validate() error {
	if err := getValidator().Struct(r); err != nil {
		return apperr.Wrap(apperr.ErrInvalidInput, fmt.Errorf("bond request: %w", err))
	}
	return nil
}

// ToBond validates r and converts it into a bond.Bond.
func (r BondRequest) ToBond() (bond.Bond, error) {
	if err := r.Validate(); err != nil {
		return bond.Bond{}, err
	}

	freq, err := market.ParseFrequency(r.Frequency)
	if err != nil {
		return bond.Bond{}, err
	}
	dc, err := market.ParseDayCount(r.DayCount)
	if err != nil {
		return bond.Bond{}, err
	}
	maturity, err := utils.DateParser(r.MaturityDate)
	if err != nil {
		return bond.Bond{}, apperr.Wrap(apperr.ErrInvalidInput, fmt.Errorf("maturity_date: %w", err))
	}
	settlement, err := utils.DateParser(r.SettlementDate)
	if err != nil {
		return bond.Bond{}, apperr.Wrap(apperr.ErrInvalidInput, fmt.Errorf("settlement_date: %w", err))
	}

	return bond.Bond{
		FaceValue:      r.FaceValue,
		YieldRate:      r.YieldRate,
		CouponRate:     r.CouponRate,
		Frequency:      freq,
		MaturityDate:   maturity,
		SettlementDate: settlement,
		DayCount:       dc,
	}, nil
}

// Validate runs the struct-tag checks on r.
func (r CurveRequest) Validate() error {
	if err := getValidator().Struct(r); err != nil {
		return apperr.Wrap(apperr.ErrInvalidInput, fmt.Errorf("curve request: %w", err))
	}
	return nil
}

// ToCurve validates r and converts it into a curve.ParYieldCurve.
// An empty table is rejected here so the bootstrapper never sees it.
func (r CurveRequest) ToCurve() (curve.ParYieldCurve, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if len(r.ParYields) == 0 {
		return nil, curve.ErrEmptyCurve
	}

	par := make(curve.ParYieldCurve, len(r.ParYields))
	for tenor, y := range r.ParYields {
		years, err := curve.ParseTenorYears(tenor)
		if err != nil {
			return nil, err
		}
		if _, dup := par[years]; dup {
			return nil, apperr.Wrap(apperr.ErrInvalidInput, fmt.Errorf("duplicate maturity %dY (tenor %q)", years, tenor))
		}
		par[years] = y
	}
	return par, nil
}
