// Package dashboard assembles a user's records into a snapshot and computes
// the aggregated dashboard metrics from it.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-advisor/backend/internal/application/adapter"
	"github.com/finance-advisor/backend/internal/domain/entity"
)

// SnapshotAssembler loads every record collection for a user into one
// immutable snapshot anchored at the given as-of date.
type SnapshotAssembler struct {
	incomeRepo     adapter.IncomeRepository
	expenseRepo    adapter.ExpenseRepository
	investmentRepo adapter.InvestmentRepository
	loanRepo       adapter.LoanRepository
	insuranceRepo  adapter.InsuranceRepository
	goalRepo       adapter.GoalRepository
	budgetRepo     adapter.BudgetRepository
}

// NewSnapshotAssembler creates a new SnapshotAssembler instance.
func NewSnapshotAssembler(
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
	investmentRepo adapter.InvestmentRepository,
	loanRepo adapter.LoanRepository,
	insuranceRepo adapter.InsuranceRepository,
	goalRepo adapter.GoalRepository,
	budgetRepo adapter.BudgetRepository,
) *SnapshotAssembler {
	return &SnapshotAssembler{
		incomeRepo:     incomeRepo,
		expenseRepo:    expenseRepo,
		investmentRepo: investmentRepo,
		loanRepo:       loanRepo,
		insuranceRepo:  insuranceRepo,
		goalRepo:       goalRepo,
		budgetRepo:     budgetRepo,
	}
}

// Load builds the snapshot for a user at asOf.
func (a *SnapshotAssembler) Load(ctx context.Context, userID uuid.UUID, asOf time.Time) (*entity.FinancialSnapshot, error) {
	snapshot := entity.NewFinancialSnapshot(asOf)

	var err error
	if snapshot.Incomes, err = a.incomeRepo.FindByUserID(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to load incomes: %w", err)
	}
	if snapshot.Expenses, err = a.expenseRepo.FindByUserID(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	if snapshot.Investments, err = a.investmentRepo.FindByUserID(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to load investments: %w", err)
	}
	if snapshot.Loans, err = a.loanRepo.FindByUserID(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to load loans: %w", err)
	}
	if snapshot.Policies, err = a.insuranceRepo.FindByUserID(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to load insurance policies: %w", err)
	}
	if snapshot.Goals, err = a.goalRepo.FindByUserID(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}
	if snapshot.Budgets, err = a.budgetRepo.FindByUserID(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}
	return snapshot, nil
}
