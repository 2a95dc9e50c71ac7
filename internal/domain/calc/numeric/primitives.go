// Package numeric provides the closed-form financial math primitives shared
// by the calculation engine: compound interest, annuity valuation, and the
// rate/rounding helpers built on top of them.
//
// All monetary arithmetic uses shopspring/decimal. Intermediate results keep
// full precision; rounding happens once, at the output boundary, via
// RoundCurrency or RoundPercent. Floating point is used only to evaluate
// fractional exponents, never to accumulate currency.
package numeric

import (
	"math"

	"github.com/shopspring/decimal"

	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

// currencyPlaces is the number of fractional digits guaranteed at the output
// boundary for currency amounts.
const currencyPlaces = 2

// percentPlaces is the number of fractional digits for percentage outputs.
const percentPlaces = 2

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// MonthlyRate converts an annual percentage rate to a monthly decimal rate
// (annual / 12 / 100).
func MonthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.Div(twelve).Div(hundred)
}

// RoundCurrency rounds an amount to 2 fractional digits, half up.
func RoundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(currencyPlaces)
}

// RoundPercent rounds a percentage to 2 fractional digits, half up.
func RoundPercent(d decimal.Decimal) decimal.Decimal {
	return d.Round(percentPlaces)
}

// CompoundFactor computes (1 + ratePerPeriod)^periods. Integer exponents are
// evaluated exactly in decimal arithmetic; fractional exponents fall back to
// float64 for the power step only.
func CompoundFactor(ratePerPeriod decimal.Decimal, periods decimal.Decimal) decimal.Decimal {
	base := decimal.NewFromInt(1).Add(ratePerPeriod)
	if periods.IsInteger() {
		return base.Pow(periods)
	}
	f := math.Pow(base.InexactFloat64(), periods.InexactFloat64())
	return decimal.NewFromFloat(f)
}

// CompoundInterest computes P * (1 + r/n)^(n*t) at full precision.
//
// principal must be >= 0, annualRatePercent >= 0, periodsPerYear > 0 and
// years >= 0. A zero rate collapses to the principal unchanged.
func CompoundInterest(principal, annualRatePercent decimal.Decimal, periodsPerYear int, years decimal.Decimal) (decimal.Decimal, error) {
	if principal.IsNegative() {
		return decimal.Zero, domainerror.NewCalculationError(
			domainerror.ErrCodeNegativePrincipal,
			"principal must not be negative",
			domainerror.ErrNegativePrincipal,
		)
	}
	if annualRatePercent.IsNegative() {
		return decimal.Zero, domainerror.NewCalculationError(
			domainerror.ErrCodeNegativeRate,
			"annual rate must not be negative",
			domainerror.ErrNegativeRate,
		)
	}
	if periodsPerYear <= 0 {
		return decimal.Zero, domainerror.NewCalculationError(
			domainerror.ErrCodeNonPositivePeriods,
			"compounding periods per year must be greater than zero",
			domainerror.ErrNonPositivePeriods,
		)
	}
	if years.IsNegative() {
		return decimal.Zero, domainerror.NewCalculationError(
			domainerror.ErrCodeNegativeYears,
			"years must not be negative",
			domainerror.ErrNegativeYears,
		)
	}

	if annualRatePercent.IsZero() {
		// Zero-rate identity: no growth, no division by zero.
		return principal, nil
	}

	n := decimal.NewFromInt(int64(periodsPerYear))
	ratePerPeriod := annualRatePercent.Div(hundred).Div(n)
	return principal.Mul(CompoundFactor(ratePerPeriod, n.Mul(years))), nil
}

// FutureValueOfAnnuity computes the future value of an ordinary annuity:
// payment * ((1+r)^n - 1) / r, with a zero-rate collapse to payment * n.
// ratePerPeriod is the per-period decimal rate (e.g. 0.01 for 1% per month).
func FutureValueOfAnnuity(payment, ratePerPeriod decimal.Decimal, periods int) (decimal.Decimal, error) {
	if err := validateAnnuity(payment, ratePerPeriod, periods); err != nil {
		return decimal.Zero, err
	}

	n := decimal.NewFromInt(int64(periods))
	if ratePerPeriod.IsZero() {
		return payment.Mul(n), nil
	}

	factor := CompoundFactor(ratePerPeriod, n)
	return payment.Mul(factor.Sub(decimal.NewFromInt(1))).Div(ratePerPeriod), nil
}

// PresentValueOfAnnuity computes the present value of an ordinary annuity:
// payment * (1 - (1+r)^-n) / r, with a zero-rate collapse to payment * n.
func PresentValueOfAnnuity(payment, ratePerPeriod decimal.Decimal, periods int) (decimal.Decimal, error) {
	if err := validateAnnuity(payment, ratePerPeriod, periods); err != nil {
		return decimal.Zero, err
	}

	n := decimal.NewFromInt(int64(periods))
	if ratePerPeriod.IsZero() {
		return payment.Mul(n), nil
	}

	one := decimal.NewFromInt(1)
	factor := CompoundFactor(ratePerPeriod, n)
	return payment.Mul(one.Sub(one.Div(factor))).Div(ratePerPeriod), nil
}

func validateAnnuity(payment, ratePerPeriod decimal.Decimal, periods int) error {
	if payment.IsNegative() {
		return domainerror.NewCalculationError(
			domainerror.ErrCodeNegativeContribution,
			"payment must not be negative",
			domainerror.ErrNegativeContribution,
		)
	}
	if ratePerPeriod.IsNegative() {
		return domainerror.NewCalculationError(
			domainerror.ErrCodeNegativeRate,
			"rate must not be negative",
			domainerror.ErrNegativeRate,
		)
	}
	if periods < 0 {
		return domainerror.NewCalculationError(
			domainerror.ErrCodeNegativeMonths,
			"periods must not be negative",
			domainerror.ErrNegativeMonths,
		)
	}
	return nil
}
