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

// CreateIncomeInput represents the input for income creation.
type CreateIncomeInput struct {
	UserID   uuid.UUID
	Amount   decimal.Decimal
	Date     time.Time
	Category string
	Source   string
}

// CreateIncomeOutput represents the output of income creation.
type CreateIncomeOutput struct {
	Income *entity.IncomeEntry
}

// CreateIncomeUseCase handles income entry creation.
type CreateIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
	cache      adapter.MetricsCache
}

// NewCreateIncomeUseCase creates a new CreateIncomeUseCase instance.
func NewCreateIncomeUseCase(incomeRepo adapter.IncomeRepository, cache adapter.MetricsCache) *CreateIncomeUseCase {
	return &CreateIncomeUseCase{
		incomeRepo: incomeRepo,
		cache:      cache,
	}
}

// Execute performs the income creation.
func (uc *CreateIncomeUseCase) Execute(ctx context.Context, input CreateIncomeInput) (*CreateIncomeOutput, error) {
	if err := validateRecordFields(input.Amount, input.Date, input.Category); err != nil {
		return nil, err
	}

	income := entity.NewIncomeEntry(input.UserID, input.Amount, input.Date, input.Category, input.Source)

	if err := uc.incomeRepo.Create(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create income entry: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.UserID)

	return &CreateIncomeOutput{Income: income}, nil
}

// ListIncomesInput represents the input for listing income entries.
type ListIncomesInput struct {
	UserID uuid.UUID
}

// ListIncomesOutput represents the output of listing income entries.
type ListIncomesOutput struct {
	Incomes []entity.IncomeEntry
}

// ListIncomesUseCase handles listing income entries.
type ListIncomesUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewListIncomesUseCase creates a new ListIncomesUseCase instance.
func NewListIncomesUseCase(incomeRepo adapter.IncomeRepository) *ListIncomesUseCase {
	return &ListIncomesUseCase{incomeRepo: incomeRepo}
}

// Execute performs the income listing.
func (uc *ListIncomesUseCase) Execute(ctx context.Context, input ListIncomesInput) (*ListIncomesOutput, error) {
	incomes, err := uc.incomeRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list income entries: %w", err)
	}
	return &ListIncomesOutput{Incomes: incomes}, nil
}

// DeleteIncomeInput represents the input for income deletion.
type DeleteIncomeInput struct {
	UserID uuid.UUID
	ID     uuid.UUID
}

// DeleteIncomeUseCase handles income entry deletion.
type DeleteIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
	cache      adapter.MetricsCache
}

// NewDeleteIncomeUseCase creates a new DeleteIncomeUseCase instance.
func NewDeleteIncomeUseCase(incomeRepo adapter.IncomeRepository, cache adapter.MetricsCache) *DeleteIncomeUseCase {
	return &DeleteIncomeUseCase{
		incomeRepo: incomeRepo,
		cache:      cache,
	}
}

// Execute performs the income deletion.
func (uc *DeleteIncomeUseCase) Execute(ctx context.Context, input DeleteIncomeInput) error {
	income, err := uc.incomeRepo.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}
	if income.UserID != input.UserID {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeUnauthorizedRecordAccess,
			"record does not belong to user",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	if err := uc.incomeRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete income entry: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.UserID)
	return nil
}
