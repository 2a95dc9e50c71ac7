// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvestmentType classifies an investment holding.
type InvestmentType string

const (
	InvestmentTypeStock      InvestmentType = "stock"
	InvestmentTypeMutualFund InvestmentType = "mutual_fund"
	InvestmentTypeFixedInc   InvestmentType = "fixed_income"
	InvestmentTypeGold       InvestmentType = "gold"
	InvestmentTypeRealEstate InvestmentType = "real_estate"
	InvestmentTypeOther      InvestmentType = "other"
)

// Investment represents a single investment holding.
// CurrentValue may legitimately be below Principal (an unrealized loss);
// nothing downstream may clamp it to zero.
type Investment struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Principal    decimal.Decimal
	CurrentValue decimal.Decimal
	PurchaseDate time.Time
	Type         InvestmentType

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewInvestment creates a new Investment entity.
func NewInvestment(userID uuid.UUID, principal, currentValue decimal.Decimal, purchaseDate time.Time, invType InvestmentType) *Investment {
	now := time.Now().UTC()
	return &Investment{
		ID:           uuid.New(),
		UserID:       userID,
		Principal:    principal,
		CurrentValue: currentValue,
		PurchaseDate: purchaseDate,
		Type:         invType,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
