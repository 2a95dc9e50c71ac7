// Package investment implements investment analytics: CAGR, SIP projections
// and portfolio aggregation.
package investment

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/domain/calc/numeric"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

// sipAssumption documents the compounding convention behind SIP projections.
const sipAssumption = "assumes monthly compounding, ordinary annuity (contribution at period end)"

var (
	hundred    = decimal.NewFromInt(100)
	negHundred = decimal.NewFromInt(-100)
)

// CAGR computes the compound annual growth rate implied by an initial and
// final value over a number of years, as a percentage:
//
//	((final/initial)^(1/years) - 1) * 100
//
// initialValue must be > 0 and years > 0. A final value of zero is a total
// loss and returns exactly -100, not an error.
func CAGR(initialValue, finalValue, years decimal.Decimal) (decimal.Decimal, error) {
	if initialValue.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domainerror.NewCalculationError(
			domainerror.ErrCodeNonPositiveInitialValue,
			"initial value must be greater than zero",
			domainerror.ErrNonPositiveInitialValue,
		)
	}
	if finalValue.IsNegative() {
		return decimal.Zero, domainerror.NewCalculationError(
			domainerror.ErrCodeNegativeFinalValue,
			"final value must not be negative",
			domainerror.ErrNegativeFinalValue,
		)
	}
	if years.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domainerror.NewCalculationError(
			domainerror.ErrCodeNonPositiveYears,
			"years must be greater than zero",
			domainerror.ErrNonPositiveYears,
		)
	}

	if finalValue.IsZero() {
		return negHundred, nil
	}
	if finalValue.Equal(initialValue) {
		return decimal.Zero, nil
	}

	// Fractional exponent: the power step runs in float64, everything else
	// stays decimal.
	ratio := finalValue.Div(initialValue).InexactFloat64()
	growth := math.Pow(ratio, 1/years.InexactFloat64()) - 1
	return decimal.NewFromFloat(growth).Mul(hundred), nil
}

// SIPResult breaks down a systematic investment plan projection.
type SIPResult struct {
	MonthlyContribution decimal.Decimal
	AnnualRatePercent   decimal.Decimal
	Months              int
	TotalInvested       decimal.Decimal
	FutureValue         decimal.Decimal
	TotalReturns        decimal.Decimal
	// AbsoluteReturnPercent is undefined when nothing was invested.
	AbsoluteReturnPercent decimal.NullDecimal
	Assumption            string
}

// SIPFutureValue projects the future value of a fixed monthly contribution as
// an ordinary annuity compounded monthly.
func SIPFutureValue(monthlyContribution, annualRatePercent decimal.Decimal, months int) (*SIPResult, error) {
	if annualRatePercent.IsNegative() {
		return nil, domainerror.NewCalculationError(
			domainerror.ErrCodeNegativeRate,
			"SIP rate must not be negative",
			domainerror.ErrNegativeRate,
		)
	}

	fv, err := numeric.FutureValueOfAnnuity(monthlyContribution, numeric.MonthlyRate(annualRatePercent), months)
	if err != nil {
		return nil, err
	}

	invested := monthlyContribution.Mul(decimal.NewFromInt(int64(months)))
	returns := fv.Sub(invested)

	result := &SIPResult{
		MonthlyContribution: monthlyContribution,
		AnnualRatePercent:   annualRatePercent,
		Months:              months,
		TotalInvested:       numeric.RoundCurrency(invested),
		FutureValue:         numeric.RoundCurrency(fv),
		TotalReturns:        numeric.RoundCurrency(returns),
		Assumption:          sipAssumption,
	}
	if invested.IsPositive() {
		result.AbsoluteReturnPercent = decimal.NullDecimal{
			Decimal: numeric.RoundPercent(returns.Div(invested).Mul(hundred)),
			Valid:   true,
		}
	}
	return result, nil
}
