// Package goal contains savings-goal use cases.
package goal

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

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID        uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    time.Time
	Priority      *entity.GoalPriority // Optional, defaults to medium
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{goalRepo: goalRepo}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeMissingRecordFields,
			"goal name is required",
			domainerror.ErrMissingCategory,
		)
	}
	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewCalculationError(
			domainerror.ErrCodeNonPositiveTarget,
			"target amount must be positive",
			domainerror.ErrNonPositiveTarget,
		)
	}
	if input.CurrentAmount.IsNegative() {
		return nil, domainerror.NewCalculationError(
			domainerror.ErrCodeNegativeCurrentAmount,
			"current amount must not be negative",
			domainerror.ErrNegativeCurrentAmount,
		)
	}
	if input.TargetDate.IsZero() {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeMissingDate,
			"target date is required",
			domainerror.ErrMissingDate,
		)
	}

	priority := entity.GoalPriorityMedium
	if input.Priority != nil {
		if !isValidGoalPriority(*input.Priority) {
			return nil, domainerror.NewFinanceError(
				domainerror.ErrCodeMissingRecordFields,
				"priority must be 'high', 'medium', or 'low'",
				domainerror.ErrMissingCategory,
			)
		}
		priority = *input.Priority
	}

	goal := entity.NewGoal(
		input.UserID,
		input.Name,
		input.TargetAmount,
		input.CurrentAmount,
		input.TargetDate,
		priority,
	)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{Goal: goal}, nil
}

// isValidGoalPriority validates the goal priority.
func isValidGoalPriority(priority entity.GoalPriority) bool {
	return priority == entity.GoalPriorityHigh ||
		priority == entity.GoalPriorityMedium ||
		priority == entity.GoalPriorityLow
}
