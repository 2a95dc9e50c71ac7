// Package cashflow implements income and expense analytics: savings rate,
// income stability scoring, category budget health and monthly aggregation.
package cashflow

import (
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/domain/calc/numeric"
)

var hundred = decimal.NewFromInt(100)

// SavingsRateResult reports the share of income kept as savings.
// SavingsRatePercent is undefined (Valid == false) when income is zero.
type SavingsRateResult struct {
	MonthlyIncome      decimal.Decimal
	MonthlyExpenses    decimal.Decimal
	Savings            decimal.Decimal
	SavingsRatePercent decimal.NullDecimal
}

// SavingsRate computes (income - expenses) / income * 100. With zero income
// the rate is reported as an undefined sentinel rather than a fabricated
// number; the savings amount itself is still returned.
func SavingsRate(monthlyIncome, monthlyExpenses decimal.Decimal) SavingsRateResult {
	savings := monthlyIncome.Sub(monthlyExpenses)
	result := SavingsRateResult{
		MonthlyIncome:   monthlyIncome,
		MonthlyExpenses: monthlyExpenses,
		Savings:         savings,
	}
	if monthlyIncome.IsPositive() {
		result.SavingsRatePercent = decimal.NullDecimal{
			Decimal: numeric.RoundPercent(savings.Div(monthlyIncome).Mul(hundred)),
			Valid:   true,
		}
	}
	return result
}

// CashFlowSummary breaks down a single month's money movement.
type CashFlowSummary struct {
	MonthlyIncome    decimal.Decimal
	MonthlyExpenses  decimal.Decimal
	EMIObligations   decimal.Decimal
	TotalOutflow     decimal.Decimal
	NetCashFlow      decimal.Decimal
	DisposableIncome decimal.Decimal
}

// SummarizeCashFlow computes outflow and disposable income for one month.
// NetCashFlow may be negative; DisposableIncome is floored at zero.
func SummarizeCashFlow(monthlyIncome, monthlyExpenses, emiTotal decimal.Decimal) CashFlowSummary {
	outflow := monthlyExpenses.Add(emiTotal)
	net := monthlyIncome.Sub(outflow)
	disposable := net
	if disposable.IsNegative() {
		disposable = decimal.Zero
	}
	return CashFlowSummary{
		MonthlyIncome:    monthlyIncome,
		MonthlyExpenses:  monthlyExpenses,
		EMIObligations:   emiTotal,
		TotalOutflow:     outflow,
		NetCashFlow:      net,
		DisposableIncome: disposable,
	}
}
