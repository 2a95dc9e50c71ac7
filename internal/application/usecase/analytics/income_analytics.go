package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/application/adapter"
	"github.com/finance-advisor/backend/internal/domain/calc/cashflow"
)

// trendWindowMonths is the trailing window shown in monthly trend charts.
const trendWindowMonths = 12

// GetIncomeAnalyticsInput represents the input for income analytics.
type GetIncomeAnalyticsInput struct {
	UserID uuid.UUID
	AsOf   time.Time
}

// GetIncomeAnalyticsOutput represents the output of income analytics.
type GetIncomeAnalyticsOutput struct {
	Stability      cashflow.StabilityResult
	IncomeTrend    []cashflow.MonthTotal
	ExpenseTrend   []cashflow.MonthTotal
	CategoryHealth map[string]cashflow.CategoryHealthResult
}

// GetIncomeAnalyticsUseCase computes income stability, trailing monthly
// trends and per-category budget health.
type GetIncomeAnalyticsUseCase struct {
	incomeRepo  adapter.IncomeRepository
	expenseRepo adapter.ExpenseRepository
	budgetRepo  adapter.BudgetRepository
}

// NewGetIncomeAnalyticsUseCase creates a new GetIncomeAnalyticsUseCase instance.
func NewGetIncomeAnalyticsUseCase(
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
	budgetRepo adapter.BudgetRepository,
) *GetIncomeAnalyticsUseCase {
	return &GetIncomeAnalyticsUseCase{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
		budgetRepo:  budgetRepo,
	}
}

// Execute performs the income analytics computation.
func (uc *GetIncomeAnalyticsUseCase) Execute(ctx context.Context, input GetIncomeAnalyticsInput) (*GetIncomeAnalyticsOutput, error) {
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
	budgets, err := uc.budgetRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	budgetByCategory := make(map[string]decimal.Decimal, len(budgets))
	for _, b := range budgets {
		budgetByCategory[b.Category] = b.LimitAmount
	}

	return &GetIncomeAnalyticsOutput{
		Stability:      cashflow.IncomeStability(incomes, asOf, cashflow.DefaultStabilityWindowMonths),
		IncomeTrend:    cashflow.MonthlyIncomeTotals(incomes, asOf, trendWindowMonths),
		ExpenseTrend:   cashflow.MonthlyExpenseTotals(expenses, asOf, trendWindowMonths),
		CategoryHealth: cashflow.CategoryHealth(cashflow.ExpensesByCategory(expenses, asOf), budgetByCategory),
	}, nil
}
