// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Loan represents an active loan.
//
// Callers must keep OutstandingPrincipal consistent with Principal
// (outstanding <= principal); the calculation engine documents this as a
// precondition and does not re-validate it on every formula.
type Loan struct {
	ID                        uuid.UUID
	UserID                    uuid.UUID
	Principal                 decimal.Decimal
	AnnualInterestRatePercent decimal.Decimal
	TermMonths                int
	OutstandingPrincipal      decimal.Decimal
	MonthlyEMI                decimal.Decimal
	StartDate                 time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewLoan creates a new Loan entity. The outstanding balance starts at the
// full principal.
func NewLoan(userID uuid.UUID, principal, annualRatePercent decimal.Decimal, termMonths int, monthlyEMI decimal.Decimal, startDate time.Time) *Loan {
	now := time.Now().UTC()
	return &Loan{
		ID:                        uuid.New(),
		UserID:                    userID,
		Principal:                 principal,
		AnnualInterestRatePercent: annualRatePercent,
		TermMonths:                termMonths,
		OutstandingPrincipal:      principal,
		MonthlyEMI:                monthlyEMI,
		StartDate:                 startDate,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}
}
