package cashflow

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/domain/entity"
)

// MonthTotal is the summed amount for one calendar month.
type MonthTotal struct {
	Year  int
	Month time.Month
	Total decimal.Decimal
}

// monthKey identifies a calendar month.
type monthKey struct {
	year  int
	month time.Month
}

// MonthlyIncomeTotals sums income entries per calendar month over the
// trailing window ending at the month of asOf. Months with no entries are
// included with a zero total so variation measures see the gaps. windowMonths
// must be >= 1.
func MonthlyIncomeTotals(entries []entity.IncomeEntry, asOf time.Time, windowMonths int) []MonthTotal {
	amounts := make(map[monthKey]decimal.Decimal, len(entries))
	for _, e := range entries {
		k := monthKey{e.Date.Year(), e.Date.Month()}
		amounts[k] = amounts[k].Add(e.Amount)
	}
	return trailingWindow(amounts, asOf, windowMonths)
}

// MonthlyExpenseTotals sums expense entries per calendar month over the
// trailing window ending at the month of asOf.
func MonthlyExpenseTotals(entries []entity.ExpenseEntry, asOf time.Time, windowMonths int) []MonthTotal {
	amounts := make(map[monthKey]decimal.Decimal, len(entries))
	for _, e := range entries {
		k := monthKey{e.Date.Year(), e.Date.Month()}
		amounts[k] = amounts[k].Add(e.Amount)
	}
	return trailingWindow(amounts, asOf, windowMonths)
}

// MonthTotalFor picks the total for the calendar month containing date, or
// zero when that month is absent.
func MonthTotalFor(totals []MonthTotal, date time.Time) decimal.Decimal {
	for _, t := range totals {
		if t.Year == date.Year() && t.Month == date.Month() {
			return t.Total
		}
	}
	return decimal.Zero
}

// ExpensesByCategory sums expense entries per category for the calendar month
// containing asOf.
func ExpensesByCategory(entries []entity.ExpenseEntry, asOf time.Time) map[string]decimal.Decimal {
	byCategory := make(map[string]decimal.Decimal)
	for _, e := range entries {
		if e.Date.Year() != asOf.Year() || e.Date.Month() != asOf.Month() {
			continue
		}
		byCategory[e.Category] = byCategory[e.Category].Add(e.Amount)
	}
	return byCategory
}

// trailingWindow materializes the last windowMonths months ending at the
// month of asOf, oldest first, filling absent months with zero.
func trailingWindow(amounts map[monthKey]decimal.Decimal, asOf time.Time, windowMonths int) []MonthTotal {
	if windowMonths < 1 {
		windowMonths = 1
	}

	totals := make([]MonthTotal, 0, windowMonths)
	cursor := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(windowMonths - 1), 0)
	for i := 0; i < windowMonths; i++ {
		k := monthKey{cursor.Year(), cursor.Month()}
		totals = append(totals, MonthTotal{
			Year:  k.year,
			Month: k.month,
			Total: amounts[k],
		})
		cursor = cursor.AddDate(0, 1, 0)
	}

	sort.SliceStable(totals, func(i, j int) bool {
		if totals[i].Year != totals[j].Year {
			return totals[i].Year < totals[j].Year
		}
		return totals[i].Month < totals[j].Month
	})
	return totals
}
