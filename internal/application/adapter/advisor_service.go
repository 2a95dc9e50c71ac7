// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// AdvisorFact is a single deterministic figure handed to the advisor as
// grounding context. Values are pre-formatted; the advisor never computes.
type AdvisorFact struct {
	Label string
	Value string
}

// AdvisorRequest represents a question together with the computed facts the
// answer must be grounded on.
type AdvisorRequest struct {
	Question string
	Facts    []AdvisorFact
}

// AdvisorService defines the interface for the conversational advisor.
type AdvisorService interface {
	// Advise produces a natural-language answer grounded on the given facts.
	Advise(ctx context.Context, request *AdvisorRequest) (string, error)

	// IsAvailable checks if the advisor is available and properly configured.
	IsAvailable() bool
}
