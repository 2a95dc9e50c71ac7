package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/application/adapter"
	"github.com/finance-advisor/backend/internal/domain/calc/cashflow"
	"github.com/finance-advisor/backend/internal/domain/calc/goalplan"
)

// GetGoalFeasibilityInput represents the input for goal feasibility analytics.
type GetGoalFeasibilityInput struct {
	UserID uuid.UUID
	AsOf   time.Time
}

// GetGoalFeasibilityOutput represents the output of goal feasibility analytics.
type GetGoalFeasibilityOutput struct {
	MonthlyCapacity decimal.Decimal
	Goals           []goalplan.FeasibilityResult
	Prioritized     []goalplan.PrioritizedGoal
}

// GetGoalFeasibilityUseCase evaluates every goal against the user's current
// monthly savings capacity and ranks them.
type GetGoalFeasibilityUseCase struct {
	goalRepo    adapter.GoalRepository
	incomeRepo  adapter.IncomeRepository
	expenseRepo adapter.ExpenseRepository
}

// NewGetGoalFeasibilityUseCase creates a new GetGoalFeasibilityUseCase instance.
func NewGetGoalFeasibilityUseCase(
	goalRepo adapter.GoalRepository,
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
) *GetGoalFeasibilityUseCase {
	return &GetGoalFeasibilityUseCase{
		goalRepo:    goalRepo,
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute performs the goal feasibility computation. Capacity is the current
// month's savings floored at zero; a deficit month means no contribution
// capacity, not a negative one.
func (uc *GetGoalFeasibilityUseCase) Execute(ctx context.Context, input GetGoalFeasibilityInput) (*GetGoalFeasibilityOutput, error) {
	asOf := input.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	incomes, err := uc.incomeRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load incomes: %w", err)
	}
	expenses, err := uc.expenseRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	monthIncome := cashflow.MonthTotalFor(cashflow.MonthlyIncomeTotals(incomes, asOf, 1), asOf)
	monthExpenses := cashflow.MonthTotalFor(cashflow.MonthlyExpenseTotals(expenses, asOf, 1), asOf)

	capacity := monthIncome.Sub(monthExpenses)
	if capacity.IsNegative() {
		capacity = decimal.Zero
	}

	output := &GetGoalFeasibilityOutput{
		MonthlyCapacity: capacity,
		Goals:           make([]goalplan.FeasibilityResult, 0, len(goals)),
		Prioritized:     goalplan.Prioritize(goals, asOf),
	}

	for _, g := range goals {
		result, err := goalplan.Feasibility(g, capacity, asOf)
		if err != nil {
			// Goals with invalid amounts are skipped.
			continue
		}
		output.Goals = append(output.Goals, *result)
	}

	return output, nil
}
