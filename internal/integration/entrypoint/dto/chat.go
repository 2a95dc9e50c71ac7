// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finance-advisor/backend/internal/application/usecase/chat"
)

// AskAdvisorRequest represents the request body for an advisor question.
type AskAdvisorRequest struct {
	Question string `json:"question" binding:"required,min=1,max=2000"`
}

// AdvisorFactResponse represents one grounding figure handed to the advisor.
type AdvisorFactResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// AskAdvisorResponse represents the advisor's grounded answer.
type AskAdvisorResponse struct {
	Answer string                `json:"answer"`
	Facts  []AdvisorFactResponse `json:"facts"`
}

// ToAskAdvisorResponse converts advisor output to its DTO.
func ToAskAdvisorResponse(output *chat.AskAdvisorOutput) AskAdvisorResponse {
	facts := make([]AdvisorFactResponse, 0, len(output.Facts))
	for _, fact := range output.Facts {
		facts = append(facts, AdvisorFactResponse{
			Label: fact.Label,
			Value: fact.Value,
		})
	}
	return AskAdvisorResponse{
		Answer: output.Answer,
		Facts:  facts,
	}
}
