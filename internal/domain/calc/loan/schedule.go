package loan

import (
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/domain/calc/numeric"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

// ScheduleEntry is one month of an amortization schedule. Components are
// rounded to 2 decimal places at emission; the iterator's internal balance
// keeps full precision so rounding never drifts across months.
type ScheduleEntry struct {
	Month              int
	PrincipalComponent decimal.Decimal
	InterestComponent  decimal.Decimal
	RemainingBalance   decimal.Decimal
}

// Schedule is a finite, restartable amortization sequence. Consumers pull
// entries one at a time with Next and may stop after any prefix; Reset
// rewinds to the first month. The sequence ends when the balance reaches
// zero (clamped, never negative) or the term is exhausted, whichever comes
// first.
type Schedule struct {
	principal   decimal.Decimal
	monthlyRate decimal.Decimal
	emi         decimal.Decimal
	termMonths  int

	// lump sum applied to the balance after the payment of prepayMonth;
	// zero month means no prepayment.
	prepayAmount decimal.Decimal
	prepayMonth  int

	month   int
	balance decimal.Decimal
	done    bool
}

// NewSchedule builds an amortization schedule for the given loan terms.
func NewSchedule(principal, annualRatePercent decimal.Decimal, termMonths int) (*Schedule, error) {
	emi, err := CalculateEMI(principal, annualRatePercent, termMonths)
	if err != nil {
		return nil, err
	}
	s := &Schedule{
		principal:   principal,
		monthlyRate: numeric.MonthlyRate(annualRatePercent),
		emi:         rawEMI(principal, annualRatePercent, termMonths),
		termMonths:  emi.TermMonths,
	}
	s.Reset()
	return s, nil
}

// Reset rewinds the schedule to the first month.
func (s *Schedule) Reset() {
	s.month = 0
	s.balance = s.principal
	s.done = false
}

// Next produces the next monthly entry. It returns false once the loan is
// fully amortized or the term is exhausted.
func (s *Schedule) Next() (ScheduleEntry, bool) {
	if s.done || s.month >= s.termMonths || !s.balance.IsPositive() {
		s.done = true
		return ScheduleEntry{}, false
	}

	s.month++
	interest := s.balance.Mul(s.monthlyRate)
	principalPart := s.emi.Sub(interest)

	// Final payment clears the remaining balance exactly, never below zero.
	if principalPart.GreaterThanOrEqual(s.balance) || s.month == s.termMonths {
		principalPart = s.balance
	}
	s.balance = s.balance.Sub(principalPart)

	if s.prepayMonth > 0 && s.month == s.prepayMonth && s.balance.IsPositive() {
		applied := decimal.Min(s.prepayAmount, s.balance)
		s.balance = s.balance.Sub(applied)
	}

	if !s.balance.IsPositive() {
		s.balance = decimal.Zero
		s.done = true
	}

	return ScheduleEntry{
		Month:              s.month,
		PrincipalComponent: numeric.RoundCurrency(principalPart),
		InterestComponent:  numeric.RoundCurrency(interest),
		RemainingBalance:   numeric.RoundCurrency(s.balance),
	}, true
}

// Prefix collects at most n entries from the current position.
func (s *Schedule) Prefix(n int) []ScheduleEntry {
	entries := make([]ScheduleEntry, 0, n)
	for len(entries) < n {
		entry, ok := s.Next()
		if !ok {
			break
		}
		entries = append(entries, entry)
	}
	return entries
}

// All materializes every remaining entry.
func (s *Schedule) All() []ScheduleEntry {
	return s.Prefix(s.termMonths)
}

// totals runs the schedule to completion and reports the total interest paid
// and the month the loan closes in. Used by the prepayment analysis; the
// interest figure is kept at full precision.
func (s *Schedule) totals() (totalInterest decimal.Decimal, months int) {
	s.Reset()
	balance := s.principal
	for m := 1; m <= s.termMonths && balance.IsPositive(); m++ {
		interest := balance.Mul(s.monthlyRate)
		principalPart := s.emi.Sub(interest)
		if principalPart.GreaterThanOrEqual(balance) || m == s.termMonths {
			principalPart = balance
		}
		totalInterest = totalInterest.Add(interest)
		balance = balance.Sub(principalPart)
		if s.prepayMonth > 0 && m == s.prepayMonth && balance.IsPositive() {
			balance = balance.Sub(decimal.Min(s.prepayAmount, balance))
		}
		months = m
	}
	return totalInterest, months
}

// AmortizationSchedule is a convenience wrapper materializing the full
// schedule for the given loan terms.
func AmortizationSchedule(principal, annualRatePercent decimal.Decimal, termMonths int) ([]ScheduleEntry, error) {
	s, err := NewSchedule(principal, annualRatePercent, termMonths)
	if err != nil {
		return nil, err
	}
	return s.All(), nil
}

// validatePrepayment checks the prepayment inputs against the loan term.
func validatePrepayment(lumpSum decimal.Decimal, prepaymentMonth, termMonths int) error {
	if lumpSum.IsNegative() {
		return domainerror.NewCalculationError(
			domainerror.ErrCodeNegativeLumpSum,
			"prepayment lump sum must not be negative",
			domainerror.ErrNegativeLumpSum,
		)
	}
	if prepaymentMonth < 1 || prepaymentMonth > termMonths {
		return domainerror.NewCalculationError(
			domainerror.ErrCodeInvalidPrepaymentMonth,
			"prepayment month must fall within the loan term",
			domainerror.ErrInvalidPrepaymentMonth,
		)
	}
	return nil
}
