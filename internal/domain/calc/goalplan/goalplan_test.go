package goalplan

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/domain/entity"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func goal(name, target, current string, targetDate time.Time, priority entity.GoalPriority) entity.Goal {
	return entity.Goal{
		ID:            uuid.New(),
		Name:          name,
		TargetAmount:  dec(target),
		CurrentAmount: dec(current),
		TargetDate:    targetDate,
		Priority:      priority,
	}
}

func TestMonthsRemaining(t *testing.T) {
	asOf := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		target time.Time
		want   int
	}{
		{"exactly six months", time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC), 6},
		{"six months and some days rounds up", time.Date(2026, time.July, 20, 0, 0, 0, 0, time.UTC), 7},
		{"less than one month still counts one", time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC), 1},
		{"past date clamps to one", time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), 1},
		{"same day clamps to one", asOf, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MonthsRemaining(asOf, tc.target); got != tc.want {
				t.Errorf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestFeasibility(t *testing.T) {
	asOf := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	sixMonthsOut := time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC)

	t.Run("reference scenario: 300000 target, 180000 saved, 6 months", func(t *testing.T) {
		result, err := Feasibility(goal("car", "300000", "180000", sixMonthsOut, entity.GoalPriorityHigh), dec("25000"), asOf)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.MonthsRemaining != 6 {
			t.Errorf("expected 6 months remaining, got %d", result.MonthsRemaining)
		}
		if want := dec("20000"); !result.RequiredMonthlyContribution.Equal(want) {
			t.Errorf("expected required %s, got %s", want, result.RequiredMonthlyContribution)
		}
		if !result.IsFeasible {
			t.Error("expected goal to be feasible with 25000 capacity")
		}
		if !result.ProjectedShortfall.IsZero() {
			t.Errorf("expected zero shortfall, got %s", result.ProjectedShortfall)
		}
	})

	t.Run("insufficient capacity reports shortfall over remaining months", func(t *testing.T) {
		result, err := Feasibility(goal("car", "300000", "180000", sixMonthsOut, entity.GoalPriorityHigh), dec("15000"), asOf)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsFeasible {
			t.Error("expected goal to be infeasible with 15000 capacity")
		}
		// (20000 - 15000) * 6
		if want := dec("30000"); !result.ProjectedShortfall.Equal(want) {
			t.Errorf("expected shortfall %s, got %s", want, result.ProjectedShortfall)
		}
	})

	t.Run("fully funded goal requires zero and is feasible", func(t *testing.T) {
		result, err := Feasibility(goal("done", "300000", "300000", sixMonthsOut, entity.GoalPriorityLow), decimal.Zero, asOf)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.RequiredMonthlyContribution.IsZero() {
			t.Errorf("expected zero required, got %s", result.RequiredMonthlyContribution)
		}
		if !result.IsFeasible {
			t.Error("expected fully funded goal to be feasible regardless of capacity")
		}
	})

	t.Run("overfunded goal behaves like fully funded", func(t *testing.T) {
		result, err := Feasibility(goal("over", "300000", "310000", sixMonthsOut, entity.GoalPriorityLow), decimal.Zero, asOf)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.RequiredMonthlyContribution.IsZero() {
			t.Errorf("expected zero required, got %s", result.RequiredMonthlyContribution)
		}
	})

	t.Run("past target date yields finite required contribution", func(t *testing.T) {
		past := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
		result, err := Feasibility(goal("late", "120000", "0", past, entity.GoalPriorityHigh), dec("10000"), asOf)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.MonthsRemaining != 1 {
			t.Errorf("expected 1 month remaining, got %d", result.MonthsRemaining)
		}
		if want := dec("120000"); !result.RequiredMonthlyContribution.Equal(want) {
			t.Errorf("expected required %s, got %s", want, result.RequiredMonthlyContribution)
		}
	})

	t.Run("invalid goals are rejected", func(t *testing.T) {
		if _, err := Feasibility(goal("bad", "0", "0", sixMonthsOut, entity.GoalPriorityLow), decimal.Zero, asOf); !errors.Is(err, domainerror.ErrNonPositiveTarget) {
			t.Errorf("expected ErrNonPositiveTarget, got %v", err)
		}
		if _, err := Feasibility(goal("bad", "100", "-1", sixMonthsOut, entity.GoalPriorityLow), decimal.Zero, asOf); !errors.Is(err, domainerror.ErrNegativeCurrentAmount) {
			t.Errorf("expected ErrNegativeCurrentAmount, got %v", err)
		}
	})
}

func TestPrioritize(t *testing.T) {
	asOf := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	in := func(months int) time.Time {
		return asOf.AddDate(0, months, 0)
	}

	t.Run("nearer high-priority goals rank first", func(t *testing.T) {
		urgent := goal("emergency fund", "100000", "10000", in(2), entity.GoalPriorityHigh)
		distant := goal("vacation", "100000", "10000", in(24), entity.GoalPriorityLow)

		ranked := Prioritize([]entity.Goal{distant, urgent}, asOf)
		if len(ranked) != 2 {
			t.Fatalf("expected 2 goals, got %d", len(ranked))
		}
		if ranked[0].Goal.Name != "emergency fund" {
			t.Errorf("expected emergency fund first, got %s", ranked[0].Goal.Name)
		}
	})

	t.Run("completion lowers the composite score", func(t *testing.T) {
		fresh := goal("a", "100000", "0", in(12), entity.GoalPriorityMedium)
		nearlyDone := goal("b", "100000", "95000", in(12), entity.GoalPriorityMedium)

		ranked := Prioritize([]entity.Goal{nearlyDone, fresh}, asOf)
		if ranked[0].Goal.Name != "a" {
			t.Errorf("expected the unfunded goal first, got %s", ranked[0].Goal.Name)
		}
	})

	t.Run("invalid goals are skipped", func(t *testing.T) {
		ranked := Prioritize([]entity.Goal{goal("bad", "0", "0", in(6), entity.GoalPriorityHigh)}, asOf)
		if len(ranked) != 0 {
			t.Errorf("expected no ranked goals, got %d", len(ranked))
		}
	})

	t.Run("ordering is deterministic across runs", func(t *testing.T) {
		goals := []entity.Goal{
			goal("a", "100000", "50000", in(6), entity.GoalPriorityMedium),
			goal("b", "100000", "50000", in(6), entity.GoalPriorityMedium),
		}
		first := Prioritize(goals, asOf)
		second := Prioritize(goals, asOf)
		for i := range first {
			if first[i].Goal.ID != second[i].Goal.ID {
				t.Fatalf("ordering changed between runs at index %d", i)
			}
		}
	})
}
