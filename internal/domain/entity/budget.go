// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget represents a monthly spending limit for an expense category.
type Budget struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Category    string
	LimitAmount decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(userID uuid.UUID, category string, limitAmount decimal.Decimal) *Budget {
	now := time.Now().UTC()
	return &Budget{
		ID:          uuid.New(),
		UserID:      userID,
		Category:    category,
		LimitAmount: limitAmount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
