package loan

import (
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/domain/calc/numeric"
)

// AffordabilityThresholdPercent is the maximum EMI-to-income ratio considered
// affordable.
var AffordabilityThresholdPercent = decimal.NewFromInt(40)

// AffordabilityResult reports whether a monthly EMI fits within income.
// EMIToIncomeRatio is undefined (Valid == false) when income is zero: zero
// income is a legitimate state, just one where the ratio is meaningless, and
// callers must branch on the sentinel instead of reading a fabricated number.
type AffordabilityResult struct {
	MonthlyEMI       decimal.Decimal
	MonthlyIncome    decimal.Decimal
	EMIToIncomeRatio decimal.NullDecimal
	IsAffordable     bool
	ThresholdPercent decimal.Decimal
}

// Affordability checks a monthly EMI against monthly income. The loan is
// affordable iff the EMI consumes at most AffordabilityThresholdPercent of
// income; with zero income nothing is affordable and the ratio is reported
// as undefined rather than raising.
func Affordability(monthlyEMI, monthlyIncome decimal.Decimal) AffordabilityResult {
	result := AffordabilityResult{
		MonthlyEMI:       monthlyEMI,
		MonthlyIncome:    monthlyIncome,
		ThresholdPercent: AffordabilityThresholdPercent,
	}

	if !monthlyIncome.IsPositive() {
		return result
	}

	ratio := numeric.RoundPercent(monthlyEMI.Div(monthlyIncome).Mul(decimal.NewFromInt(100)))
	result.EMIToIncomeRatio = decimal.NullDecimal{Decimal: ratio, Valid: true}
	result.IsAffordable = ratio.LessThanOrEqual(AffordabilityThresholdPercent)
	return result
}
