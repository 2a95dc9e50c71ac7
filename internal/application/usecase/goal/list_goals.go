// Package goal contains savings-goal use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/application/adapter"
	"github.com/finance-advisor/backend/internal/domain/calc/numeric"
	"github.com/finance-advisor/backend/internal/domain/entity"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID uuid.UUID
}

// GoalOutput represents a single goal in the output, with completion
// computed against the target.
type GoalOutput struct {
	Goal              entity.Goal
	CompletionPercent decimal.NullDecimal
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []GoalOutput
}

// ListGoalsUseCase handles listing goals logic.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{goalRepo: goalRepo}
}

// Execute performs the goal listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	output := &ListGoalsOutput{
		Goals: make([]GoalOutput, 0, len(goals)),
	}
	for _, g := range goals {
		out := GoalOutput{Goal: g}
		if g.TargetAmount.IsPositive() {
			out.CompletionPercent = decimal.NullDecimal{
				Decimal: numeric.RoundPercent(g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100))),
				Valid:   true,
			}
		}
		output.Goals = append(output.Goals, out)
	}
	return output, nil
}
