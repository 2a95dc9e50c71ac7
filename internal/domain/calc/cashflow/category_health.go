package cashflow

import (
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/domain/calc/numeric"
)

// CategoryStatus classifies budget compliance for an expense category.
type CategoryStatus string

const (
	CategoryStatusOK         CategoryStatus = "ok"
	CategoryStatusWarning    CategoryStatus = "warning"
	CategoryStatusCritical   CategoryStatus = "critical"
	CategoryStatusUnbudgeted CategoryStatus = "unbudgeted"
)

// Budget compliance thresholds, in percent of budget used.
var (
	CategoryWarningThresholdPercent  = decimal.NewFromInt(75)
	CategoryCriticalThresholdPercent = decimal.NewFromInt(90)
)

// CategoryHealthResult reports one category's spending against its budget.
// PercentUsed is undefined for unbudgeted categories and for a zero budget.
type CategoryHealthResult struct {
	Spent       decimal.Decimal
	Budget      decimal.Decimal
	PercentUsed decimal.NullDecimal
	Status      CategoryStatus
}

// CategoryHealth evaluates spending per category against budgets. A category
// missing from budgets is reported as unbudgeted rather than dividing by
// zero; budgeted categories with no spending are still included with an ok
// status so the caller sees full budget coverage.
func CategoryHealth(expensesByCategory, budgetByCategory map[string]decimal.Decimal) map[string]CategoryHealthResult {
	results := make(map[string]CategoryHealthResult, len(expensesByCategory))

	for category, spent := range expensesByCategory {
		budget, budgeted := budgetByCategory[category]
		if !budgeted {
			results[category] = CategoryHealthResult{
				Spent:  spent,
				Status: CategoryStatusUnbudgeted,
			}
			continue
		}
		results[category] = evaluateCategory(spent, budget)
	}

	for category, budget := range budgetByCategory {
		if _, seen := results[category]; seen {
			continue
		}
		results[category] = evaluateCategory(decimal.Zero, budget)
	}

	return results
}

func evaluateCategory(spent, budget decimal.Decimal) CategoryHealthResult {
	result := CategoryHealthResult{
		Spent:  spent,
		Budget: budget,
		Status: CategoryStatusOK,
	}

	if !budget.IsPositive() {
		// A zero budget means any spending at all busts it; the percentage
		// itself stays undefined.
		if spent.IsPositive() {
			result.Status = CategoryStatusCritical
		}
		return result
	}

	percent := numeric.RoundPercent(spent.Div(budget).Mul(hundred))
	result.PercentUsed = decimal.NullDecimal{Decimal: percent, Valid: true}

	switch {
	case percent.GreaterThanOrEqual(CategoryCriticalThresholdPercent):
		result.Status = CategoryStatusCritical
	case percent.GreaterThanOrEqual(CategoryWarningThresholdPercent):
		result.Status = CategoryStatusWarning
	}
	return result
}
