// Package goalplan implements savings-goal feasibility analysis and goal
// prioritization.
package goalplan

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/domain/calc/numeric"
	"github.com/finance-advisor/backend/internal/domain/entity"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

// FeasibilityResult reports whether a goal is reachable with the available
// monthly contribution capacity.
type FeasibilityResult struct {
	GoalID                      uuid.UUID
	TargetAmount                decimal.Decimal
	CurrentAmount               decimal.Decimal
	MonthsRemaining             int
	RequiredMonthlyContribution decimal.Decimal
	MonthlyCapacity             decimal.Decimal
	IsFeasible                  bool
	ProjectedShortfall          decimal.Decimal
}

// Feasibility computes the monthly contribution needed to reach the goal by
// its target date, judged against the caller's stated capacity.
//
// MonthsRemaining is the integer ceiling of the span from asOf to the target
// date, floored at 1: a goal whose date has passed still yields a finite,
// very large required contribution instead of infinity. A goal already fully
// funded requires 0 and is feasible regardless of capacity.
func Feasibility(goal entity.Goal, monthlyCapacity decimal.Decimal, asOf time.Time) (*FeasibilityResult, error) {
	if goal.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewCalculationError(
			domainerror.ErrCodeNonPositiveTarget,
			"goal target amount must be greater than zero",
			domainerror.ErrNonPositiveTarget,
		)
	}
	if goal.CurrentAmount.IsNegative() {
		return nil, domainerror.NewCalculationError(
			domainerror.ErrCodeNegativeCurrentAmount,
			"goal current amount must not be negative",
			domainerror.ErrNegativeCurrentAmount,
		)
	}

	months := MonthsRemaining(asOf, goal.TargetDate)

	gap := goal.TargetAmount.Sub(goal.CurrentAmount)
	var required decimal.Decimal
	if gap.IsPositive() {
		required = numeric.RoundCurrency(gap.Div(decimal.NewFromInt(int64(months))))
	}

	feasible := required.LessThanOrEqual(monthlyCapacity)
	var shortfall decimal.Decimal
	if !feasible {
		shortfall = numeric.RoundCurrency(required.Sub(monthlyCapacity).Mul(decimal.NewFromInt(int64(months))))
	}

	return &FeasibilityResult{
		GoalID:                      goal.ID,
		TargetAmount:                goal.TargetAmount,
		CurrentAmount:               goal.CurrentAmount,
		MonthsRemaining:             months,
		RequiredMonthlyContribution: required,
		MonthlyCapacity:             monthlyCapacity,
		IsFeasible:                  feasible,
		ProjectedShortfall:          shortfall,
	}, nil
}

// MonthsRemaining returns the ceiling of the span from asOf to target in
// calendar months, never less than 1. Only the date part is considered.
func MonthsRemaining(asOf, target time.Time) int {
	months := (target.Year()-asOf.Year())*12 + int(target.Month()) - int(asOf.Month())
	if target.Day() > asOf.Day() {
		months++
	}
	if months < 1 {
		months = 1
	}
	return months
}
