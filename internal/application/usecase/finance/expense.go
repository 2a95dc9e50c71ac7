package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/application/adapter"
	"github.com/finance-advisor/backend/internal/domain/entity"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID   uuid.UUID
	Amount   decimal.Decimal
	Date     time.Time
	Category string
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.ExpenseEntry
}

// CreateExpenseUseCase handles expense entry creation.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	cache       adapter.MetricsCache
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository, cache adapter.MetricsCache) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		cache:       cache,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := validateRecordFields(input.Amount, input.Date, input.Category); err != nil {
		return nil, err
	}

	expense := entity.NewExpenseEntry(input.UserID, input.Amount, input.Date, input.Category)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense entry: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.UserID)

	return &CreateExpenseOutput{Expense: expense}, nil
}

// ListExpensesInput represents the input for listing expense entries.
type ListExpensesInput struct {
	UserID uuid.UUID
}

// ListExpensesOutput represents the output of listing expense entries.
type ListExpensesOutput struct {
	Expenses []entity.ExpenseEntry
}

// ListExpensesUseCase handles listing expense entries.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenseRepo: expenseRepo}
}

// Execute performs the expense listing.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	expenses, err := uc.expenseRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense entries: %w", err)
	}
	return &ListExpensesOutput{Expenses: expenses}, nil
}

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	UserID uuid.UUID
	ID     uuid.UUID
}

// DeleteExpenseUseCase handles expense entry deletion.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	cache       adapter.MetricsCache
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository, cache adapter.MetricsCache) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
		cache:       cache,
	}
}

// Execute performs the expense deletion.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}
	if expense.UserID != input.UserID {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeUnauthorizedRecordAccess,
			"record does not belong to user",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	if err := uc.expenseRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete expense entry: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.UserID)
	return nil
}
