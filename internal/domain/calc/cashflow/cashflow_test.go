package cashflow

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func income(amount string, year int, month time.Month) entity.IncomeEntry {
	return entity.IncomeEntry{
		ID:       uuid.New(),
		Amount:   dec(amount),
		Date:     time.Date(year, month, 15, 0, 0, 0, 0, time.UTC),
		Category: "salary",
		Source:   "employer",
	}
}

func expense(amount, category string, year int, month time.Month) entity.ExpenseEntry {
	return entity.ExpenseEntry{
		ID:       uuid.New(),
		Amount:   dec(amount),
		Date:     time.Date(year, month, 10, 0, 0, 0, 0, time.UTC),
		Category: category,
	}
}

func TestSavingsRate(t *testing.T) {
	t.Run("positive savings", func(t *testing.T) {
		result := SavingsRate(dec("50000"), dec("41000"))
		if !result.SavingsRatePercent.Valid {
			t.Fatal("expected defined rate")
		}
		if want := dec("18"); !result.SavingsRatePercent.Decimal.Equal(want) {
			t.Errorf("expected %s, got %s", want, result.SavingsRatePercent.Decimal)
		}
		if want := dec("9000"); !result.Savings.Equal(want) {
			t.Errorf("expected savings %s, got %s", want, result.Savings)
		}
	})

	t.Run("overspending yields a negative rate", func(t *testing.T) {
		result := SavingsRate(dec("40000"), dec("50000"))
		if want := dec("-25"); !result.SavingsRatePercent.Decimal.Equal(want) {
			t.Errorf("expected %s, got %s", want, result.SavingsRatePercent.Decimal)
		}
	})

	t.Run("zero income yields undefined rate", func(t *testing.T) {
		result := SavingsRate(decimal.Zero, dec("5000"))
		if result.SavingsRatePercent.Valid {
			t.Error("expected undefined rate for zero income")
		}
		if want := dec("-5000"); !result.Savings.Equal(want) {
			t.Errorf("expected savings %s, got %s", want, result.Savings)
		}
	})
}

func TestSummarizeCashFlow(t *testing.T) {
	summary := SummarizeCashFlow(dec("60000"), dec("35000"), dec("10000"))
	if want := dec("45000"); !summary.TotalOutflow.Equal(want) {
		t.Errorf("expected outflow %s, got %s", want, summary.TotalOutflow)
	}
	if want := dec("15000"); !summary.NetCashFlow.Equal(want) {
		t.Errorf("expected net %s, got %s", want, summary.NetCashFlow)
	}

	negative := SummarizeCashFlow(dec("30000"), dec("35000"), dec("10000"))
	if want := dec("-15000"); !negative.NetCashFlow.Equal(want) {
		t.Errorf("expected net %s, got %s", want, negative.NetCashFlow)
	}
	if !negative.DisposableIncome.IsZero() {
		t.Errorf("expected disposable income floored at zero, got %s", negative.DisposableIncome)
	}
}

func TestMonthlyIncomeTotals(t *testing.T) {
	asOf := time.Date(2026, time.June, 20, 0, 0, 0, 0, time.UTC)
	entries := []entity.IncomeEntry{
		income("50000", 2026, time.April),
		income("2000", 2026, time.April),
		income("50000", 2026, time.May),
		income("50000", 2026, time.June),
	}

	totals := MonthlyIncomeTotals(entries, asOf, 4)
	if len(totals) != 4 {
		t.Fatalf("expected 4 months, got %d", len(totals))
	}
	if totals[0].Month != time.March || !totals[0].Total.IsZero() {
		t.Errorf("expected empty March first, got %v %s", totals[0].Month, totals[0].Total)
	}
	if want := dec("52000"); !totals[1].Total.Equal(want) {
		t.Errorf("expected April total %s, got %s", want, totals[1].Total)
	}
	if totals[3].Month != time.June {
		t.Errorf("expected June last, got %v", totals[3].Month)
	}
}

func TestIncomeStability(t *testing.T) {
	asOf := time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)

	t.Run("perfectly steady income scores 100", func(t *testing.T) {
		var entries []entity.IncomeEntry
		for m := time.January; m <= time.June; m++ {
			entries = append(entries, income("50000", 2026, m))
		}
		result := IncomeStability(entries, asOf, 0)
		if want := dec("100"); !result.Score.Equal(want) {
			t.Errorf("expected score %s, got %s", want, result.Score)
		}
		if result.MonthsObserved != 6 {
			t.Errorf("expected 6 months observed, got %d", result.MonthsObserved)
		}
		if !result.CoefficientOfVariation.Valid || !result.CoefficientOfVariation.Decimal.IsZero() {
			t.Errorf("expected zero coefficient of variation, got %+v", result.CoefficientOfVariation)
		}
	})

	t.Run("erratic income scores lower than steady income", func(t *testing.T) {
		steady := IncomeStability([]entity.IncomeEntry{
			income("50000", 2026, time.April),
			income("50000", 2026, time.May),
			income("50000", 2026, time.June),
		}, asOf, 0)
		erratic := IncomeStability([]entity.IncomeEntry{
			income("10000", 2026, time.April),
			income("90000", 2026, time.May),
			income("20000", 2026, time.June),
		}, asOf, 0)
		if !erratic.Score.LessThan(steady.Score) {
			t.Errorf("expected erratic score %s below steady score %s", erratic.Score, steady.Score)
		}
	})

	t.Run("window shrinks to available history", func(t *testing.T) {
		result := IncomeStability([]entity.IncomeEntry{
			income("50000", 2026, time.May),
			income("50000", 2026, time.June),
		}, asOf, 0)
		if result.MonthsObserved != 2 {
			t.Errorf("expected 2 months observed, got %d", result.MonthsObserved)
		}
		if want := dec("100"); !result.Score.Equal(want) {
			t.Errorf("expected score %s for steady short history, got %s", want, result.Score)
		}
	})

	t.Run("no income yields zero score and undefined variation", func(t *testing.T) {
		result := IncomeStability(nil, asOf, 0)
		if !result.Score.IsZero() {
			t.Errorf("expected zero score, got %s", result.Score)
		}
		if result.CoefficientOfVariation.Valid {
			t.Error("expected undefined coefficient of variation")
		}
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		entries := []entity.IncomeEntry{
			income("41250.33", 2026, time.April),
			income("39000", 2026, time.May),
			income("47500.10", 2026, time.June),
		}
		a := IncomeStability(entries, asOf, 0)
		b := IncomeStability(entries, asOf, 0)
		if a.Score.String() != b.Score.String() {
			t.Errorf("expected identical scores, got %s and %s", a.Score, b.Score)
		}
	})
}

func TestCategoryHealth(t *testing.T) {
	budgets := map[string]decimal.Decimal{
		"food":      dec("10000"),
		"transport": dec("5000"),
		"rent":      dec("20000"),
		"misc":      dec("0"),
	}

	t.Run("statuses follow fixed thresholds", func(t *testing.T) {
		results := CategoryHealth(map[string]decimal.Decimal{
			"food":      dec("7400"),  // 74% -> ok
			"transport": dec("3750"),  // 75% -> warning
			"rent":      dec("19000"), // 95% -> critical
		}, budgets)

		if got := results["food"].Status; got != CategoryStatusOK {
			t.Errorf("food: expected ok, got %s", got)
		}
		if got := results["transport"].Status; got != CategoryStatusWarning {
			t.Errorf("transport: expected warning, got %s", got)
		}
		if got := results["rent"].Status; got != CategoryStatusCritical {
			t.Errorf("rent: expected critical, got %s", got)
		}
		if want := dec("95"); !results["rent"].PercentUsed.Decimal.Equal(want) {
			t.Errorf("rent: expected 95 percent used, got %s", results["rent"].PercentUsed.Decimal)
		}
	})

	t.Run("category without budget is unbudgeted", func(t *testing.T) {
		results := CategoryHealth(map[string]decimal.Decimal{"travel": dec("8000")}, budgets)
		r := results["travel"]
		if r.Status != CategoryStatusUnbudgeted {
			t.Errorf("expected unbudgeted, got %s", r.Status)
		}
		if r.PercentUsed.Valid {
			t.Error("expected undefined percent for unbudgeted category")
		}
	})

	t.Run("zero budget with spending is critical, percent undefined", func(t *testing.T) {
		results := CategoryHealth(map[string]decimal.Decimal{"misc": dec("10")}, budgets)
		r := results["misc"]
		if r.Status != CategoryStatusCritical {
			t.Errorf("expected critical, got %s", r.Status)
		}
		if r.PercentUsed.Valid {
			t.Error("expected undefined percent for zero budget")
		}
	})

	t.Run("budgeted category with no spending reports ok", func(t *testing.T) {
		results := CategoryHealth(nil, budgets)
		r, ok := results["food"]
		if !ok {
			t.Fatal("expected budgeted category to be present")
		}
		if r.Status != CategoryStatusOK || !r.Spent.IsZero() {
			t.Errorf("expected ok with zero spend, got %s spent %s", r.Status, r.Spent)
		}
	})
}

func TestExpensesByCategory(t *testing.T) {
	asOf := time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)
	byCategory := ExpensesByCategory([]entity.ExpenseEntry{
		expense("100", "food", 2026, time.June),
		expense("250", "food", 2026, time.June),
		expense("999", "food", 2026, time.May), // outside the month
		expense("80", "transport", 2026, time.June),
	}, asOf)

	if want := dec("350"); !byCategory["food"].Equal(want) {
		t.Errorf("expected food %s, got %s", want, byCategory["food"])
	}
	if want := dec("80"); !byCategory["transport"].Equal(want) {
		t.Errorf("expected transport %s, got %s", want, byCategory["transport"])
	}
}
