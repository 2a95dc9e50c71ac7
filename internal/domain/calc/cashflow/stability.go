package cashflow

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/domain/calc/numeric"
	"github.com/finance-advisor/backend/internal/domain/entity"
)

// DefaultStabilityWindowMonths is the trailing window for income stability
// when the caller does not specify one. With less history than the window,
// all available months are used instead.
const DefaultStabilityWindowMonths = 6

// StabilityResult scores how steady monthly income has been over the
// trailing window. CoefficientOfVariation is undefined when mean income is
// zero, in which case the score is 0.
type StabilityResult struct {
	Score                  decimal.Decimal
	MeanMonthlyIncome      decimal.Decimal
	CoefficientOfVariation decimal.NullDecimal
	MonthsObserved         int
}

// IncomeStability scores income steadiness 0-100 from the coefficient of
// variation of monthly totals: score = 100 * (1 - min(1, cv)). A perfectly
// steady income scores 100; variation at or beyond the mean scores 0.
// windowMonths <= 0 selects DefaultStabilityWindowMonths; the window shrinks
// to the months actually covered by the data when history is shorter.
func IncomeStability(entries []entity.IncomeEntry, asOf time.Time, windowMonths int) StabilityResult {
	if windowMonths <= 0 {
		windowMonths = DefaultStabilityWindowMonths
	}
	if available := monthsAvailable(entries, asOf); available < windowMonths {
		windowMonths = available
	}
	if windowMonths == 0 {
		return StabilityResult{Score: decimal.Zero}
	}

	totals := MonthlyIncomeTotals(entries, asOf, windowMonths)

	var sum decimal.Decimal
	for _, t := range totals {
		sum = sum.Add(t.Total)
	}
	mean := sum.Div(decimal.NewFromInt(int64(len(totals))))

	result := StabilityResult{
		MeanMonthlyIncome: numeric.RoundCurrency(mean),
		MonthsObserved:    len(totals),
	}
	if !mean.IsPositive() {
		return result
	}

	// Population standard deviation; the square root runs in float64.
	meanF := mean.InexactFloat64()
	var sumSq float64
	for _, t := range totals {
		d := t.Total.InexactFloat64() - meanF
		sumSq += d * d
	}
	cv := math.Sqrt(sumSq/float64(len(totals))) / meanF

	result.CoefficientOfVariation = decimal.NullDecimal{
		Decimal: decimal.NewFromFloat(cv).Round(4),
		Valid:   true,
	}

	score := 100 * (1 - math.Min(1, cv))
	result.Score = decimal.NewFromFloat(score).Round(2)
	return result
}

// monthsAvailable counts calendar months from the earliest entry at or
// before asOf up to the month of asOf, inclusive.
func monthsAvailable(entries []entity.IncomeEntry, asOf time.Time) int {
	var earliest time.Time
	for _, e := range entries {
		if e.Date.After(asOf) {
			continue
		}
		if earliest.IsZero() || e.Date.Before(earliest) {
			earliest = e.Date
		}
	}
	if earliest.IsZero() {
		return 0
	}
	months := (asOf.Year()-earliest.Year())*12 + int(asOf.Month()) - int(earliest.Month()) + 1
	if months < 1 {
		months = 1
	}
	return months
}
