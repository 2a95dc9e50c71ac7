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

// CreateInvestmentInput represents the input for investment creation.
type CreateInvestmentInput struct {
	UserID       uuid.UUID
	Principal    decimal.Decimal
	CurrentValue decimal.Decimal
	PurchaseDate time.Time
	Type         entity.InvestmentType
}

// CreateInvestmentOutput represents the output of investment creation.
type CreateInvestmentOutput struct {
	Investment *entity.Investment
}

// CreateInvestmentUseCase handles investment creation.
type CreateInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
	cache          adapter.MetricsCache
}

// NewCreateInvestmentUseCase creates a new CreateInvestmentUseCase instance.
func NewCreateInvestmentUseCase(investmentRepo adapter.InvestmentRepository, cache adapter.MetricsCache) *CreateInvestmentUseCase {
	return &CreateInvestmentUseCase{
		investmentRepo: investmentRepo,
		cache:          cache,
	}
}

// Execute performs the investment creation. A current value below the
// invested principal is a valid loss position and is stored as given.
func (uc *CreateInvestmentUseCase) Execute(ctx context.Context, input CreateInvestmentInput) (*CreateInvestmentOutput, error) {
	if !input.Principal.IsPositive() || input.CurrentValue.IsNegative() {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeNegativeAmount,
			"principal must be positive and current value must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}
	if input.PurchaseDate.IsZero() {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeMissingDate,
			"purchase date is required",
			domainerror.ErrMissingDate,
		)
	}
	if !isValidInvestmentType(input.Type) {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeMissingRecordFields,
			"unknown investment type",
			domainerror.ErrMissingCategory,
		)
	}

	investment := entity.NewInvestment(input.UserID, input.Principal, input.CurrentValue, input.PurchaseDate, input.Type)

	if err := uc.investmentRepo.Create(ctx, investment); err != nil {
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.UserID)

	return &CreateInvestmentOutput{Investment: investment}, nil
}

// isValidInvestmentType validates the investment type.
func isValidInvestmentType(t entity.InvestmentType) bool {
	switch t {
	case entity.InvestmentTypeStock,
		entity.InvestmentTypeMutualFund,
		entity.InvestmentTypeFixedInc,
		entity.InvestmentTypeGold,
		entity.InvestmentTypeRealEstate,
		entity.InvestmentTypeOther:
		return true
	}
	return false
}

// ListInvestmentsInput represents the input for listing investments.
type ListInvestmentsInput struct {
	UserID uuid.UUID
}

// ListInvestmentsOutput represents the output of listing investments.
type ListInvestmentsOutput struct {
	Investments []entity.Investment
}

// ListInvestmentsUseCase handles listing investments.
type ListInvestmentsUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewListInvestmentsUseCase creates a new ListInvestmentsUseCase instance.
func NewListInvestmentsUseCase(investmentRepo adapter.InvestmentRepository) *ListInvestmentsUseCase {
	return &ListInvestmentsUseCase{investmentRepo: investmentRepo}
}

// Execute performs the investment listing.
func (uc *ListInvestmentsUseCase) Execute(ctx context.Context, input ListInvestmentsInput) (*ListInvestmentsOutput, error) {
	investments, err := uc.investmentRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	return &ListInvestmentsOutput{Investments: investments}, nil
}

// UpdateInvestmentValueInput represents the input for a market value update.
type UpdateInvestmentValueInput struct {
	UserID       uuid.UUID
	ID           uuid.UUID
	CurrentValue decimal.Decimal
}

// UpdateInvestmentValueUseCase handles market value updates on a holding.
type UpdateInvestmentValueUseCase struct {
	investmentRepo adapter.InvestmentRepository
	cache          adapter.MetricsCache
}

// NewUpdateInvestmentValueUseCase creates a new UpdateInvestmentValueUseCase instance.
func NewUpdateInvestmentValueUseCase(investmentRepo adapter.InvestmentRepository, cache adapter.MetricsCache) *UpdateInvestmentValueUseCase {
	return &UpdateInvestmentValueUseCase{
		investmentRepo: investmentRepo,
		cache:          cache,
	}
}

// Execute updates the current market value of a holding.
func (uc *UpdateInvestmentValueUseCase) Execute(ctx context.Context, input UpdateInvestmentValueInput) error {
	if input.CurrentValue.IsNegative() {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeNegativeAmount,
			"current value must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}

	investment, err := uc.investmentRepo.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}
	if investment.UserID != input.UserID {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeUnauthorizedRecordAccess,
			"record does not belong to user",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	if err := uc.investmentRepo.UpdateCurrentValue(ctx, input.ID, input.CurrentValue); err != nil {
		return fmt.Errorf("failed to update investment value: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.UserID)
	return nil
}

// DeleteInvestmentInput represents the input for investment deletion.
type DeleteInvestmentInput struct {
	UserID uuid.UUID
	ID     uuid.UUID
}

// DeleteInvestmentUseCase handles investment deletion.
type DeleteInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
	cache          adapter.MetricsCache
}

// NewDeleteInvestmentUseCase creates a new DeleteInvestmentUseCase instance.
func NewDeleteInvestmentUseCase(investmentRepo adapter.InvestmentRepository, cache adapter.MetricsCache) *DeleteInvestmentUseCase {
	return &DeleteInvestmentUseCase{
		investmentRepo: investmentRepo,
		cache:          cache,
	}
}

// Execute performs the investment deletion.
func (uc *DeleteInvestmentUseCase) Execute(ctx context.Context, input DeleteInvestmentInput) error {
	investment, err := uc.investmentRepo.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}
	if investment.UserID != input.UserID {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeUnauthorizedRecordAccess,
			"record does not belong to user",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	if err := uc.investmentRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete investment: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.UserID)
	return nil
}
