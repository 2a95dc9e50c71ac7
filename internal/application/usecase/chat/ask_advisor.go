// Package chat contains the conversational advisor use case.
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/application/adapter"
	"github.com/finance-advisor/backend/internal/application/usecase/dashboard"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

// AskAdvisorInput represents the input for an advisor question.
type AskAdvisorInput struct {
	UserID   uuid.UUID
	Question string
	AsOf     time.Time
}

// AskAdvisorOutput represents the advisor's grounded answer.
type AskAdvisorOutput struct {
	Answer string
	Facts  []adapter.AdvisorFact
}

// AskAdvisorUseCase answers free-form questions. Every figure in the answer
// comes from the calculation engine; the language model only writes prose
// around facts it is handed and never computes numbers itself.
type AskAdvisorUseCase struct {
	assembler *dashboard.SnapshotAssembler
	advisor   adapter.AdvisorService
}

// NewAskAdvisorUseCase creates a new AskAdvisorUseCase instance.
func NewAskAdvisorUseCase(assembler *dashboard.SnapshotAssembler, advisor adapter.AdvisorService) *AskAdvisorUseCase {
	return &AskAdvisorUseCase{
		assembler: assembler,
		advisor:   advisor,
	}
}

// Execute performs the advisor round trip.
func (uc *AskAdvisorUseCase) Execute(ctx context.Context, input AskAdvisorInput) (*AskAdvisorOutput, error) {
	if strings.TrimSpace(input.Question) == "" {
		return nil, domainerror.NewChatError(
			domainerror.ErrCodeEmptyQuestion,
			"question must not be empty",
			domainerror.ErrEmptyQuestion,
		)
	}
	if uc.advisor == nil || !uc.advisor.IsAvailable() {
		return nil, domainerror.NewChatError(
			domainerror.ErrCodeAdvisorUnavailable,
			"advisor service is unavailable",
			domainerror.ErrAdvisorUnavailable,
		)
	}

	snapshot, err := uc.assembler.Load(ctx, input.UserID, input.AsOf)
	if err != nil {
		return nil, err
	}
	metrics := dashboard.Compute(snapshot)
	facts := buildFacts(metrics)

	answer, err := uc.advisor.Advise(ctx, &adapter.AdvisorRequest{
		Question: input.Question,
		Facts:    facts,
	})
	if err != nil {
		return nil, domainerror.NewChatError(
			domainerror.ErrCodeAdvisorUnavailable,
			"advisor request failed",
			err,
		)
	}

	return &AskAdvisorOutput{
		Answer: answer,
		Facts:  facts,
	}, nil
}

// buildFacts flattens the dashboard metrics into labeled figures.
func buildFacts(m *dashboard.GetDashboardOutput) []adapter.AdvisorFact {
	facts := []adapter.AdvisorFact{
		{Label: "net worth", Value: m.NetWorth.NetWorth.StringFixed(2)},
		{Label: "total assets", Value: m.NetWorth.TotalAssets.StringFixed(2)},
		{Label: "total liabilities", Value: m.NetWorth.TotalLiabilities.StringFixed(2)},
		{Label: "financial health score (0-100)", Value: m.Health.Score.String()},
		{Label: "monthly income", Value: m.Savings.MonthlyIncome.StringFixed(2)},
		{Label: "monthly expenses", Value: m.Savings.MonthlyExpenses.StringFixed(2)},
		{Label: "savings rate percent", Value: nullDecimalString(m.Savings.SavingsRatePercent)},
		{Label: "monthly EMI obligations", Value: m.CashFlow.EMIObligations.StringFixed(2)},
		{Label: "disposable income", Value: m.CashFlow.DisposableIncome.StringFixed(2)},
		{Label: "portfolio invested", Value: m.Portfolio.TotalInvested.StringFixed(2)},
		{Label: "portfolio current value", Value: m.Portfolio.TotalCurrentValue.StringFixed(2)},
		{Label: "portfolio gain/loss percent", Value: nullDecimalString(m.Portfolio.GainLossPercent)},
		{Label: "income stability score (0-100)", Value: m.Stability.Score.String()},
	}

	for _, g := range m.Goals {
		facts = append(facts, adapter.AdvisorFact{
			Label: fmt.Sprintf("goal %q completion percent", g.Goal.Name),
			Value: g.CompletionPercent.String(),
		})
	}
	return facts
}

// nullDecimalString renders an undefined ratio as "undefined" so the advisor
// cannot mistake it for zero.
func nullDecimalString(d decimal.NullDecimal) string {
	if !d.Valid {
		return "undefined"
	}
	return d.Decimal.String()
}
