// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/domain/entity"
)

// IncomeRepository defines the interface for income entry persistence.
type IncomeRepository interface {
	// Create creates a new income entry.
	Create(ctx context.Context, income *entity.IncomeEntry) error

	// FindByID retrieves an income entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.IncomeEntry, error)

	// FindByUserID retrieves all income entries for a user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.IncomeEntry, error)

	// FindByUserSince retrieves income entries dated on or after the given
	// date, up to and including the as-of date.
	FindByUserSince(ctx context.Context, userID uuid.UUID, since, until time.Time) ([]entity.IncomeEntry, error)

	// Delete removes an income entry.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExpenseRepository defines the interface for expense entry persistence.
type ExpenseRepository interface {
	// Create creates a new expense entry.
	Create(ctx context.Context, expense *entity.ExpenseEntry) error

	// FindByID retrieves an expense entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseEntry, error)

	// FindByUserID retrieves all expense entries for a user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.ExpenseEntry, error)

	// FindByUserSince retrieves expense entries dated on or after the given
	// date, up to and including the as-of date.
	FindByUserSince(ctx context.Context, userID uuid.UUID, since, until time.Time) ([]entity.ExpenseEntry, error)

	// Delete removes an expense entry.
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvestmentRepository defines the interface for investment persistence.
type InvestmentRepository interface {
	// Create creates a new investment holding.
	Create(ctx context.Context, investment *entity.Investment) error

	// FindByID retrieves an investment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Investment, error)

	// FindByUserID retrieves all investments for a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Investment, error)

	// UpdateCurrentValue updates the market value of a holding.
	UpdateCurrentValue(ctx context.Context, id uuid.UUID, currentValue decimal.Decimal) error

	// Delete removes an investment.
	Delete(ctx context.Context, id uuid.UUID) error
}

// LoanRepository defines the interface for loan persistence.
type LoanRepository interface {
	// Create creates a new loan.
	Create(ctx context.Context, loan *entity.Loan) error

	// FindByID retrieves a loan by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Loan, error)

	// FindByUserID retrieves all loans for a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Loan, error)

	// Update updates an existing loan.
	Update(ctx context.Context, loan *entity.Loan) error

	// Delete removes a loan.
	Delete(ctx context.Context, id uuid.UUID) error
}

// InsuranceRepository defines the interface for insurance policy persistence.
type InsuranceRepository interface {
	// Create creates a new insurance policy.
	Create(ctx context.Context, policy *entity.InsurancePolicy) error

	// FindByID retrieves a policy by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.InsurancePolicy, error)

	// FindByUserID retrieves all policies for a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.InsurancePolicy, error)

	// Delete removes a policy.
	Delete(ctx context.Context, id uuid.UUID) error
}

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByUserID retrieves all goals for a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Goal, error)

	// Update updates an existing goal.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal.
	Delete(ctx context.Context, id uuid.UUID) error
}

// BudgetRepository defines the interface for budget persistence.
type BudgetRepository interface {
	// Create creates a new monthly budget for a category.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByUserID retrieves all budgets for a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Budget, error)

	// FindByUserAndCategory retrieves the budget for a category, nil when absent.
	FindByUserAndCategory(ctx context.Context, userID uuid.UUID, category string) (*entity.Budget, error)

	// Update updates an existing budget.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget.
	Delete(ctx context.Context, id uuid.UUID) error
}
