package loan

import (
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/domain/calc/numeric"
)

// PrepaymentResult compares a loan's amortization with and without a lump-sum
// prepayment applied at a given month.
type PrepaymentResult struct {
	LumpSum          decimal.Decimal
	PrepaymentMonth  int
	MonthsSaved      int
	InterestSaved    decimal.Decimal
	BaselineMonths   int
	BaselineInterest decimal.Decimal
}

// PrepaymentBenefit recomputes the amortization schedule with lumpSum applied
// to the balance right after the payment of prepaymentMonth, keeping the EMI
// unchanged, and reports the months and interest saved against the
// unmodified schedule.
func PrepaymentBenefit(principal, annualRatePercent decimal.Decimal, termMonths int, lumpSum decimal.Decimal, prepaymentMonth int) (*PrepaymentResult, error) {
	baseline, err := NewSchedule(principal, annualRatePercent, termMonths)
	if err != nil {
		return nil, err
	}
	if err := validatePrepayment(lumpSum, prepaymentMonth, termMonths); err != nil {
		return nil, err
	}

	baseInterest, baseMonths := baseline.totals()

	modified, err := NewSchedule(principal, annualRatePercent, termMonths)
	if err != nil {
		return nil, err
	}
	modified.prepayAmount = lumpSum
	modified.prepayMonth = prepaymentMonth
	modInterest, modMonths := modified.totals()

	return &PrepaymentResult{
		LumpSum:          lumpSum,
		PrepaymentMonth:  prepaymentMonth,
		MonthsSaved:      baseMonths - modMonths,
		InterestSaved:    numeric.RoundCurrency(baseInterest.Sub(modInterest)),
		BaselineMonths:   baseMonths,
		BaselineInterest: numeric.RoundCurrency(baseInterest),
	}, nil
}
