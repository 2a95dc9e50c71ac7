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

// CreateInsuranceInput represents the input for insurance policy creation.
type CreateInsuranceInput struct {
	UserID    uuid.UUID
	Premium   decimal.Decimal
	Coverage  decimal.Decimal
	StartDate time.Time
	EndDate   time.Time
}

// CreateInsuranceOutput represents the output of insurance policy creation.
type CreateInsuranceOutput struct {
	Policy *entity.InsurancePolicy
}

// CreateInsuranceUseCase handles insurance policy creation.
type CreateInsuranceUseCase struct {
	insuranceRepo adapter.InsuranceRepository
	cache         adapter.MetricsCache
}

// NewCreateInsuranceUseCase creates a new CreateInsuranceUseCase instance.
func NewCreateInsuranceUseCase(insuranceRepo adapter.InsuranceRepository, cache adapter.MetricsCache) *CreateInsuranceUseCase {
	return &CreateInsuranceUseCase{
		insuranceRepo: insuranceRepo,
		cache:         cache,
	}
}

// Execute performs the insurance policy creation.
func (uc *CreateInsuranceUseCase) Execute(ctx context.Context, input CreateInsuranceInput) (*CreateInsuranceOutput, error) {
	if input.Premium.IsNegative() || input.Coverage.IsNegative() {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeNegativeAmount,
			"premium and coverage must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() || input.EndDate.Before(input.StartDate) {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeMissingDate,
			"policy period is invalid",
			domainerror.ErrMissingDate,
		)
	}

	policy := entity.NewInsurancePolicy(input.UserID, input.Premium, input.Coverage, input.StartDate, input.EndDate)

	if err := uc.insuranceRepo.Create(ctx, policy); err != nil {
		return nil, fmt.Errorf("failed to create insurance policy: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.UserID)

	return &CreateInsuranceOutput{Policy: policy}, nil
}

// ListInsuranceInput represents the input for listing insurance policies.
type ListInsuranceInput struct {
	UserID uuid.UUID
}

// ListInsuranceOutput represents the output of listing insurance policies.
type ListInsuranceOutput struct {
	Policies []entity.InsurancePolicy
}

// ListInsuranceUseCase handles listing insurance policies.
type ListInsuranceUseCase struct {
	insuranceRepo adapter.InsuranceRepository
}

// NewListInsuranceUseCase creates a new ListInsuranceUseCase instance.
func NewListInsuranceUseCase(insuranceRepo adapter.InsuranceRepository) *ListInsuranceUseCase {
	return &ListInsuranceUseCase{insuranceRepo: insuranceRepo}
}

// Execute performs the insurance policy listing.
func (uc *ListInsuranceUseCase) Execute(ctx context.Context, input ListInsuranceInput) (*ListInsuranceOutput, error) {
	policies, err := uc.insuranceRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list insurance policies: %w", err)
	}
	return &ListInsuranceOutput{Policies: policies}, nil
}

// DeleteInsuranceInput represents the input for insurance policy deletion.
type DeleteInsuranceInput struct {
	UserID uuid.UUID
	ID     uuid.UUID
}

// DeleteInsuranceUseCase handles insurance policy deletion.
type DeleteInsuranceUseCase struct {
	insuranceRepo adapter.InsuranceRepository
	cache         adapter.MetricsCache
}

// NewDeleteInsuranceUseCase creates a new DeleteInsuranceUseCase instance.
func NewDeleteInsuranceUseCase(insuranceRepo adapter.InsuranceRepository, cache adapter.MetricsCache) *DeleteInsuranceUseCase {
	return &DeleteInsuranceUseCase{
		insuranceRepo: insuranceRepo,
		cache:         cache,
	}
}

// Execute performs the insurance policy deletion.
func (uc *DeleteInsuranceUseCase) Execute(ctx context.Context, input DeleteInsuranceInput) error {
	policy, err := uc.insuranceRepo.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}
	if policy.UserID != input.UserID {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeUnauthorizedRecordAccess,
			"record does not belong to user",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	if err := uc.insuranceRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete insurance policy: %w", err)
	}

	invalidateDashboard(ctx, uc.cache, input.UserID)
	return nil
}
