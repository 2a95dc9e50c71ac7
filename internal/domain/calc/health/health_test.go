package health

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

func defined(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: dec(s), Valid: true}
}

func TestHealthScore(t *testing.T) {
	undefined := decimal.NullDecimal{}

	t.Run("top tiers reach the maximum score", func(t *testing.T) {
		result := HealthScore(defined("35"), defined("18"))
		if !result.Score.Equal(dec("100")) {
			t.Errorf("expected score 100, got %s", result.Score)
		}
		if !result.Components.SavingsRate.Equal(dec("30")) || !result.Components.InvestmentReturn.Equal(dec("20")) {
			t.Errorf("unexpected components: %+v", result.Components)
		}
	})

	t.Run("mid tiers", func(t *testing.T) {
		result := HealthScore(defined("25"), defined("12"))
		if !result.Score.Equal(dec("85")) {
			t.Errorf("expected score 85, got %s", result.Score)
		}
	})

	t.Run("low tiers", func(t *testing.T) {
		result := HealthScore(defined("15"), defined("8"))
		if !result.Score.Equal(dec("70")) {
			t.Errorf("expected score 70, got %s", result.Score)
		}
	})

	t.Run("bottom bands", func(t *testing.T) {
		result := HealthScore(defined("7.5"), defined("3"))
		if !result.Components.SavingsRate.Equal(dec("7.5")) {
			t.Errorf("expected 7.5 savings points, got %s", result.Components.SavingsRate)
		}
		if !result.Components.InvestmentReturn.Equal(dec("5")) {
			t.Errorf("expected flat 5 return points, got %s", result.Components.InvestmentReturn)
		}
		if !result.Score.Equal(dec("62.5")) {
			t.Errorf("expected score 62.5, got %s", result.Score)
		}
	})

	t.Run("tier boundaries are exclusive", func(t *testing.T) {
		cases := []struct {
			name   string
			rate   string
			points string
		}{
			{"exactly 30 stays in the mid tier", "30", "20"},
			{"just above 30 earns the full tier", "30.01", "30"},
			{"exactly 20", "20", "10"},
			{"exactly 10 meets the proportional cap", "10", "10"},
			{"just above 10", "10.01", "10"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				result := HealthScore(defined(tc.rate), undefined)
				if !result.Components.SavingsRate.Equal(dec(tc.points)) {
					t.Errorf("rate %s: expected %s points, got %s", tc.rate, tc.points, result.Components.SavingsRate)
				}
			})
		}
	})

	t.Run("negative inputs earn no points", func(t *testing.T) {
		result := HealthScore(defined("-10"), defined("-25"))
		if !result.Score.Equal(dec("50")) {
			t.Errorf("expected base score 50, got %s", result.Score)
		}
	})

	t.Run("undefined inputs earn no points", func(t *testing.T) {
		result := HealthScore(undefined, undefined)
		if !result.Score.Equal(dec("50")) {
			t.Errorf("expected base score 50, got %s", result.Score)
		}
	})

	t.Run("score stays within bounds", func(t *testing.T) {
		rates := []string{"-100", "-1", "0", "0.01", "5", "10", "10.01", "20", "25", "30", "99", "1000"}
		for _, s := range rates {
			for _, r := range rates {
				result := HealthScore(defined(s), defined(r))
				if result.Score.IsNegative() || result.Score.GreaterThan(dec("100")) {
					t.Errorf("savings %s return %s: score %s out of bounds", s, r, result.Score)
				}
			}
		}
	})

	t.Run("score is monotonic in the savings rate", func(t *testing.T) {
		rates := []string{"-5", "0", "3", "9.99", "10", "10.01", "15", "20", "20.01", "29", "30.01", "50"}
		prev := decimal.NewFromInt(-1)
		for _, r := range rates {
			result := HealthScore(defined(r), defined("12"))
			if result.Score.LessThan(prev) {
				t.Fatalf("score decreased at rate %s: %s < %s", r, result.Score, prev)
			}
			prev = result.Score
		}
	})
}

func TestEvaluate(t *testing.T) {
	asOf := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()

	snapshot := entity.NewFinancialSnapshot(asOf)
	snapshot.Incomes = []entity.IncomeEntry{
		*entity.NewIncomeEntry(userID, dec("100000"), asOf, "salary", "employer"),
	}
	snapshot.Expenses = []entity.ExpenseEntry{
		*entity.NewExpenseEntry(userID, dec("75000"), asOf, "rent"),
	}
	snapshot.Investments = []entity.Investment{
		*entity.NewInvestment(userID, dec("100000"), dec("112000"), asOf.AddDate(-1, 0, 0), entity.InvestmentTypeMutualFund),
	}

	result := Evaluate(snapshot)

	// Savings rate 25% -> 20 points, portfolio return 12% -> 15 points.
	if !result.Score.Equal(dec("85")) {
		t.Errorf("expected score 85, got %s", result.Score)
	}
	if !result.SavingsRatePercent.Valid || !result.SavingsRatePercent.Decimal.Equal(dec("25")) {
		t.Errorf("unexpected savings rate input: %+v", result.SavingsRatePercent)
	}

	t.Run("empty snapshot scores the base only", func(t *testing.T) {
		result := Evaluate(entity.NewFinancialSnapshot(asOf))
		if !result.Score.Equal(dec("50")) {
			t.Errorf("expected score 50, got %s", result.Score)
		}
		if result.SavingsRatePercent.Valid || result.InvestmentReturnPercent.Valid {
			t.Error("expected undefined inputs for an empty snapshot")
		}
	})
}

func TestNetWorth(t *testing.T) {
	userID := uuid.New()
	purchased := time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC)

	investments := []entity.Investment{
		*entity.NewInvestment(userID, dec("100000"), dec("123000"), purchased, entity.InvestmentTypeStock),
		*entity.NewInvestment(userID, dec("50000"), dec("50000"), purchased, entity.InvestmentTypeGold),
	}
	loans := []entity.Loan{
		{OutstandingPrincipal: dec("400000")},
	}

	t.Run("assets minus liabilities", func(t *testing.T) {
		result := NetWorth(investments, loans, dec("80000"))
		if !result.TotalAssets.Equal(dec("253000")) {
			t.Errorf("expected assets 253000, got %s", result.TotalAssets)
		}
		if !result.NetWorth.Equal(dec("-147000")) {
			t.Errorf("expected net worth -147000, got %s", result.NetWorth)
		}
	})

	t.Run("negative net worth is not clamped", func(t *testing.T) {
		result := NetWorth(nil, loans, decimal.Zero)
		if !result.NetWorth.Equal(dec("-400000")) {
			t.Errorf("expected -400000, got %s", result.NetWorth)
		}
	})

	t.Run("no records", func(t *testing.T) {
		result := NetWorth(nil, nil, decimal.Zero)
		if !result.NetWorth.IsZero() {
			t.Errorf("expected zero net worth, got %s", result.NetWorth)
		}
	})
}

func TestInsuranceAdequacy(t *testing.T) {
	asOf := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()

	policy := func(coverage string, start, end time.Time) entity.InsurancePolicy {
		return *entity.NewInsurancePolicy(userID, dec("12000"), dec(coverage), start, end)
	}
	active := policy("5000000", asOf.AddDate(-1, 0, 0), asOf.AddDate(9, 0, 0))
	expired := policy("20000000", asOf.AddDate(-5, 0, 0), asOf.AddDate(-1, 0, 0))

	t.Run("under-covered", func(t *testing.T) {
		result := InsuranceAdequacy([]entity.InsurancePolicy{active}, dec("1200000"), asOf)
		if result.IsAdequate {
			t.Error("expected inadequate coverage")
		}
		if !result.RecommendedCoverage.Equal(dec("12000000")) {
			t.Errorf("expected recommended 12000000, got %s", result.RecommendedCoverage)
		}
		if !result.CoverageGap.Equal(dec("7000000")) {
			t.Errorf("expected gap 7000000, got %s", result.CoverageGap)
		}
		if !result.CoverageRatioPercent.Valid || !result.CoverageRatioPercent.Decimal.Equal(dec("41.67")) {
			t.Errorf("unexpected coverage ratio: %+v", result.CoverageRatioPercent)
		}
	})

	t.Run("adequate coverage floors the gap at zero", func(t *testing.T) {
		big := policy("15000000", asOf.AddDate(-1, 0, 0), asOf.AddDate(9, 0, 0))
		result := InsuranceAdequacy([]entity.InsurancePolicy{big}, dec("1200000"), asOf)
		if !result.IsAdequate {
			t.Error("expected adequate coverage")
		}
		if !result.CoverageGap.IsZero() {
			t.Errorf("expected zero gap, got %s", result.CoverageGap)
		}
	})

	t.Run("expired policies are excluded", func(t *testing.T) {
		result := InsuranceAdequacy([]entity.InsurancePolicy{active, expired}, dec("1200000"), asOf)
		if result.ActivePolicies != 1 {
			t.Errorf("expected 1 active policy, got %d", result.ActivePolicies)
		}
		if !result.ActiveCoverage.Equal(dec("5000000")) {
			t.Errorf("expected coverage 5000000, got %s", result.ActiveCoverage)
		}
	})

	t.Run("zero income leaves the ratio undefined", func(t *testing.T) {
		result := InsuranceAdequacy([]entity.InsurancePolicy{active}, decimal.Zero, asOf)
		if result.CoverageRatioPercent.Valid {
			t.Error("expected undefined coverage ratio")
		}
		if result.IsAdequate {
			t.Error("coverage cannot be adequate against an unknown income")
		}
	})
}
