// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"
)

// FinancialSnapshot is the aggregate input to the calculation engine: flat,
// immutable collections of a user's records plus the reference date every
// relative-time computation is anchored to. Given the same snapshot and the
// same AsOf date, every engine output is bit-identical.
type FinancialSnapshot struct {
	Incomes     []IncomeEntry
	Expenses    []ExpenseEntry
	Investments []Investment
	Loans       []Loan
	Policies    []InsurancePolicy
	Goals       []Goal
	Budgets     []Budget
	AsOf        time.Time
}

// NewFinancialSnapshot creates a snapshot anchored at asOf. A zero asOf
// defaults to the current UTC time, recorded once so later calculations stay
// reproducible.
func NewFinancialSnapshot(asOf time.Time) *FinancialSnapshot {
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}
	return &FinancialSnapshot{AsOf: asOf}
}
