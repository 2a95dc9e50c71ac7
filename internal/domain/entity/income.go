// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeEntry represents a single income record supplied by the user.
// Entries are immutable snapshots: the calculation engine never mutates them.
type IncomeEntry struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Amount   decimal.Decimal
	Date     time.Time
	Category string
	Source   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewIncomeEntry creates a new IncomeEntry entity.
func NewIncomeEntry(userID uuid.UUID, amount decimal.Decimal, date time.Time, category, source string) *IncomeEntry {
	now := time.Now().UTC()
	return &IncomeEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Amount:    amount,
		Date:      date,
		Category:  category,
		Source:    source,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
