// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/application/usecase/goal"
	"github.com/finance-advisor/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name          string          `json:"name" binding:"required,min=1,max=255"`
	TargetAmount  decimal.Decimal `json:"target_amount" binding:"required"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	TargetDate    string          `json:"target_date" binding:"required"`
	Priority      *string         `json:"priority,omitempty" binding:"omitempty,oneof=high medium low"`
}

// UpdateGoalProgressRequest represents the request body for a progress update.
type UpdateGoalProgressRequest struct {
	CurrentAmount decimal.Decimal `json:"current_amount"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	TargetAmount      string    `json:"target_amount"`
	CurrentAmount     string    `json:"current_amount"`
	TargetDate        string    `json:"target_date"`
	Priority          string    `json:"priority"`
	CompletionPercent *string   `json:"completion_percent"`
	CreatedAt         time.Time `json:"created_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:            g.ID.String(),
		Name:          g.Name,
		TargetAmount:  g.TargetAmount.String(),
		CurrentAmount: g.CurrentAmount.String(),
		TargetDate:    FormatDate(g.TargetDate),
		Priority:      string(g.Priority),
		CreatedAt:     g.CreatedAt,
	}
}

// ToGoalListResponse converts goal outputs to a GoalListResponse DTO.
func ToGoalListResponse(outputs []goal.GoalOutput) GoalListResponse {
	responses := make([]GoalResponse, 0, len(outputs))
	for i := range outputs {
		response := ToGoalResponse(&outputs[i].Goal)
		response.CompletionPercent = nullableAmount(outputs[i].CompletionPercent)
		responses = append(responses, response)
	}
	return GoalListResponse{Goals: responses}
}
