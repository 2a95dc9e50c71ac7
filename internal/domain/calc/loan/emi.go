// Package loan implements loan analytics: EMI calculation, amortization
// schedules, prepayment benefit analysis and affordability checks.
//
// Every function is a pure computation over its inputs; nothing reads the
// clock or touches storage.
package loan

import (
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/domain/calc/numeric"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

// emiAssumption documents the compounding convention behind every EMI figure.
const emiAssumption = "assumes monthly compounding at a fixed rate over the full term"

// EMIResult is the outcome of an EMI calculation. Monetary fields are rounded
// to 2 decimal places; the underlying schedule math keeps full precision.
type EMIResult struct {
	MonthlyEMI        decimal.Decimal
	Principal         decimal.Decimal
	AnnualRatePercent decimal.Decimal
	TermMonths        int
	TotalPayment      decimal.Decimal
	TotalInterest     decimal.Decimal
	Assumption        string
}

// CalculateEMI computes the fixed monthly installment for a loan:
//
//	EMI = P * r * (1+r)^n / ((1+r)^n - 1)
//
// where r is the monthly rate (annual/12/100) and n the term in months.
// A zero rate degenerates to an even principal split, principal/termMonths,
// with no division by zero.
func CalculateEMI(principal, annualRatePercent decimal.Decimal, termMonths int) (*EMIResult, error) {
	if principal.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewCalculationError(
			domainerror.ErrCodeNonPositivePrincipal,
			"loan principal must be greater than zero",
			domainerror.ErrNonPositivePrincipal,
		)
	}
	if annualRatePercent.IsNegative() {
		return nil, domainerror.NewCalculationError(
			domainerror.ErrCodeNegativeRate,
			"loan rate must not be negative",
			domainerror.ErrNegativeRate,
		)
	}
	if termMonths <= 0 {
		return nil, domainerror.NewCalculationError(
			domainerror.ErrCodeNonPositiveTerm,
			"loan term must be greater than zero months",
			domainerror.ErrNonPositiveTerm,
		)
	}

	emi := rawEMI(principal, annualRatePercent, termMonths)

	total := emi.Mul(decimal.NewFromInt(int64(termMonths)))
	return &EMIResult{
		MonthlyEMI:        numeric.RoundCurrency(emi),
		Principal:         principal,
		AnnualRatePercent: annualRatePercent,
		TermMonths:        termMonths,
		TotalPayment:      numeric.RoundCurrency(total),
		TotalInterest:     numeric.RoundCurrency(total.Sub(principal)),
		Assumption:        emiAssumption,
	}, nil
}

// rawEMI computes the installment at full precision. Inputs are assumed
// validated.
func rawEMI(principal, annualRatePercent decimal.Decimal, termMonths int) decimal.Decimal {
	n := decimal.NewFromInt(int64(termMonths))
	if annualRatePercent.IsZero() {
		return principal.Div(n)
	}

	r := numeric.MonthlyRate(annualRatePercent)
	factor := numeric.CompoundFactor(r, n)
	return principal.Mul(r).Mul(factor).Div(factor.Sub(decimal.NewFromInt(1)))
}
