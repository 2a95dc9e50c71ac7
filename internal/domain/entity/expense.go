// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseEntry represents a single expense record supplied by the user.
type ExpenseEntry struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Amount   decimal.Decimal
	Date     time.Time
	Category string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewExpenseEntry creates a new ExpenseEntry entity.
func NewExpenseEntry(userID uuid.UUID, amount decimal.Decimal, date time.Time, category string) *ExpenseEntry {
	now := time.Now().UTC()
	return &ExpenseEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Amount:    amount,
		Date:      date,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
