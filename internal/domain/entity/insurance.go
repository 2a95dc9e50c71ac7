// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InsurancePolicy represents an insurance policy held by the user.
type InsurancePolicy struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Premium   decimal.Decimal
	Coverage  decimal.Decimal
	StartDate time.Time
	EndDate   time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewInsurancePolicy creates a new InsurancePolicy entity.
func NewInsurancePolicy(userID uuid.UUID, premium, coverage decimal.Decimal, startDate, endDate time.Time) *InsurancePolicy {
	now := time.Now().UTC()
	return &InsurancePolicy{
		ID:        uuid.New(),
		UserID:    userID,
		Premium:   premium,
		Coverage:  coverage,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsActive reports whether the policy is in force at the given date.
func (p *InsurancePolicy) IsActive(asOf time.Time) bool {
	return !asOf.Before(p.StartDate) && !asOf.After(p.EndDate)
}
