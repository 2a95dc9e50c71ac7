// Package goal contains savings-goal use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/application/adapter"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

// UpdateGoalProgressInput represents the input for a goal progress update.
type UpdateGoalProgressInput struct {
	UserID        uuid.UUID
	ID            uuid.UUID
	CurrentAmount decimal.Decimal
}

// UpdateGoalProgressUseCase handles saved-amount updates on a goal.
// Overfunding is allowed; the current amount may exceed the target.
type UpdateGoalProgressUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalProgressUseCase creates a new UpdateGoalProgressUseCase instance.
func NewUpdateGoalProgressUseCase(goalRepo adapter.GoalRepository) *UpdateGoalProgressUseCase {
	return &UpdateGoalProgressUseCase{goalRepo: goalRepo}
}

// Execute updates the saved amount of a goal.
func (uc *UpdateGoalProgressUseCase) Execute(ctx context.Context, input UpdateGoalProgressInput) error {
	if input.CurrentAmount.IsNegative() {
		return domainerror.NewCalculationError(
			domainerror.ErrCodeNegativeCurrentAmount,
			"current amount must not be negative",
			domainerror.ErrNegativeCurrentAmount,
		)
	}

	goal, err := uc.goalRepo.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}
	if goal.UserID != input.UserID {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeUnauthorizedRecordAccess,
			"record does not belong to user",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	goal.CurrentAmount = input.CurrentAmount
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return fmt.Errorf("failed to update goal progress: %w", err)
	}
	return nil
}
