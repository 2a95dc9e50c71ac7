package finance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/application/adapter"
	"github.com/finance-advisor/backend/internal/domain/entity"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID      uuid.UUID
	Category    string
	LimitAmount decimal.Decimal
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles monthly budget creation. Each category can
// carry at most one budget per user.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	cache      adapter.MetricsCache
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository, cache adapter.MetricsCache) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
		cache:      cache,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if strings.TrimSpace(input.Category) == "" {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeMissingCategory,
			"category is required",
			domainerror.ErrMissingCategory,
		)
	}
	if input.LimitAmount.IsNegative() {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeNegativeAmount,
			"limit amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}

	existing, err := uc.budgetRepo.FindByUserAndCategory(ctx, input.UserID, input.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to check budget existence: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeBudgetAlreadyExists,
			"a budget already exists for this category",
			domainerror.ErrBudgetAlreadyExists,
		)
	}

	budget := entity.NewBudget(input.UserID, input.Category, input.LimitAmount)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.UserID)

	return &CreateBudgetOutput{Budget: budget}, nil
}

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	UserID uuid.UUID
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []entity.Budget
}

// ListBudgetsUseCase handles listing budgets.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{budgetRepo: budgetRepo}
}

// Execute performs the budget listing.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return &ListBudgetsOutput{Budgets: budgets}, nil
}

// UpdateBudgetInput represents the input for a budget limit update.
type UpdateBudgetInput struct {
	UserID      uuid.UUID
	Category    string
	LimitAmount decimal.Decimal
}

// UpdateBudgetUseCase handles budget limit updates.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	cache      adapter.MetricsCache
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository, cache adapter.MetricsCache) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
		cache:      cache,
	}
}

// Execute updates the monthly limit for a category.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) error {
	if input.LimitAmount.IsNegative() {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeNegativeAmount,
			"limit amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}

	budget, err := uc.budgetRepo.FindByUserAndCategory(ctx, input.UserID, input.Category)
	if err != nil {
		return fmt.Errorf("failed to load budget: %w", err)
	}
	if budget == nil {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeRecordNotFound,
			"no budget exists for this category",
			domainerror.ErrRecordNotFound,
		)
	}

	budget.LimitAmount = input.LimitAmount
	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return fmt.Errorf("failed to update budget: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.UserID)
	return nil
}

// DeleteBudgetInput represents the input for budget deletion.
type DeleteBudgetInput struct {
	UserID   uuid.UUID
	Category string
}

// DeleteBudgetUseCase handles budget deletion.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	cache      adapter.MetricsCache
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(budgetRepo adapter.BudgetRepository, cache adapter.MetricsCache) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo: budgetRepo,
		cache:      cache,
	}
}

// Execute removes the budget for a category.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, input DeleteBudgetInput) error {
	budget, err := uc.budgetRepo.FindByUserAndCategory(ctx, input.UserID, input.Category)
	if err != nil {
		return fmt.Errorf("failed to load budget: %w", err)
	}
	if budget == nil {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeRecordNotFound,
			"no budget exists for this category",
			domainerror.ErrRecordNotFound,
		)
	}

	if err := uc.budgetRepo.Delete(ctx, budget.ID); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.UserID)
	return nil
}
