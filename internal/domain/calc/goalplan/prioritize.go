package goalplan

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/domain/calc/numeric"
	"github.com/finance-advisor/backend/internal/domain/entity"
)

// Priority weights for goal ranking.
var priorityWeights = map[entity.GoalPriority]int64{
	entity.GoalPriorityHigh:   3,
	entity.GoalPriorityMedium: 2,
	entity.GoalPriorityLow:    1,
}

// PrioritizedGoal is a goal annotated with its ranking signals.
type PrioritizedGoal struct {
	Goal              entity.Goal
	MonthsRemaining   int
	UrgencyScore      decimal.Decimal
	PriorityWeight    int64
	CompletionPercent decimal.Decimal
	CompositeScore    decimal.Decimal
}

// Prioritize ranks goals by a composite of urgency (nearer target dates rank
// higher), declared priority and how much remains unfunded. Goals with
// invalid targets are skipped rather than failing the whole ranking. Ordering
// is deterministic: ties break on goal name, then ID.
func Prioritize(goals []entity.Goal, asOf time.Time) []PrioritizedGoal {
	hundredD := decimal.NewFromInt(100)
	ten := decimal.NewFromInt(10)

	ranked := make([]PrioritizedGoal, 0, len(goals))
	for _, g := range goals {
		if !g.TargetAmount.IsPositive() {
			continue
		}

		months := MonthsRemaining(asOf, g.TargetDate)
		urgency := hundredD.Div(decimal.NewFromInt(int64(months)))

		weight, ok := priorityWeights[g.Priority]
		if !ok {
			weight = priorityWeights[entity.GoalPriorityMedium]
		}

		completion := g.CurrentAmount.Div(g.TargetAmount).Mul(hundredD)
		score := urgency.Mul(decimal.NewFromInt(weight)).Mul(ten).Sub(completion)

		ranked = append(ranked, PrioritizedGoal{
			Goal:              g,
			MonthsRemaining:   months,
			UrgencyScore:      numeric.RoundPercent(urgency),
			PriorityWeight:    weight,
			CompletionPercent: numeric.RoundPercent(completion),
			CompositeScore:    numeric.RoundPercent(score),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if !ranked[i].CompositeScore.Equal(ranked[j].CompositeScore) {
			return ranked[i].CompositeScore.GreaterThan(ranked[j].CompositeScore)
		}
		if ranked[i].Goal.Name != ranked[j].Goal.Name {
			return ranked[i].Goal.Name < ranked[j].Goal.Name
		}
		return ranked[i].Goal.ID.String() < ranked[j].Goal.ID.String()
	})
	return ranked
}
