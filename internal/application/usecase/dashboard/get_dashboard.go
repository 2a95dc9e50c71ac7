package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/application/adapter"
	"github.com/finance-advisor/backend/internal/domain/calc/cashflow"
	"github.com/finance-advisor/backend/internal/domain/calc/goalplan"
	"github.com/finance-advisor/backend/internal/domain/calc/health"
	"github.com/finance-advisor/backend/internal/domain/calc/investment"
	"github.com/finance-advisor/backend/internal/domain/entity"
)

// GetDashboardInput represents the input for the dashboard computation.
// A zero AsOf means "now"; only then is the cached payload consulted, since
// an explicit historical date must always be recomputed exactly.
type GetDashboardInput struct {
	UserID uuid.UUID
	AsOf   time.Time
}

// GetDashboardOutput aggregates every top-level metric for a user.
type GetDashboardOutput struct {
	AsOf           time.Time                                `json:"as_of"`
	NetWorth       health.NetWorthResult                    `json:"net_worth"`
	Health         health.HealthScoreResult                 `json:"health"`
	Savings        cashflow.SavingsRateResult               `json:"savings"`
	CashFlow       cashflow.CashFlowSummary                 `json:"cash_flow"`
	Portfolio      investment.PortfolioResult               `json:"portfolio"`
	Stability      cashflow.StabilityResult                 `json:"income_stability"`
	CategoryHealth map[string]cashflow.CategoryHealthResult `json:"category_health"`
	Goals          []goalplan.PrioritizedGoal               `json:"goals"`
	Insurance      health.InsuranceAdequacyResult           `json:"insurance"`
	FromCache      bool                                     `json:"-"`
}

// GetDashboardUseCase computes the aggregated dashboard for a user.
type GetDashboardUseCase struct {
	assembler *SnapshotAssembler
	cache     adapter.MetricsCache
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(assembler *SnapshotAssembler, cache adapter.MetricsCache) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		assembler: assembler,
		cache:     cache,
	}
}

// Execute computes the dashboard metrics from a snapshot of the user's
// records. The result is pure in the snapshot: the same records and the same
// as-of date always produce the same output.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	useCache := input.AsOf.IsZero() && uc.cache != nil

	if useCache {
		payload, err := uc.cache.GetDashboard(ctx, input.UserID)
		if err == nil {
			var cached GetDashboardOutput
			if err := json.Unmarshal(payload, &cached); err == nil {
				cached.FromCache = true
				return &cached, nil
			}
		} else if !errors.Is(err, adapter.ErrCacheMiss) {
			// Degrade to a fresh computation on cache failures.
			useCache = false
		}
	}

	snapshot, err := uc.assembler.Load(ctx, input.UserID, input.AsOf)
	if err != nil {
		return nil, err
	}

	output := Compute(snapshot)

	if useCache {
		if payload, err := json.Marshal(output); err == nil {
			if err := uc.cache.SetDashboard(ctx, input.UserID, payload); err != nil {
				return output, nil
			}
		}
	}
	return output, nil
}

// Compute derives every dashboard metric from a snapshot. Exposed separately
// so the scheduled refresher can reuse the exact same computation.
func Compute(snapshot *entity.FinancialSnapshot) *GetDashboardOutput {
	asOf := snapshot.AsOf

	monthIncome := cashflow.MonthTotalFor(cashflow.MonthlyIncomeTotals(snapshot.Incomes, asOf, 1), asOf)
	monthExpenses := cashflow.MonthTotalFor(cashflow.MonthlyExpenseTotals(snapshot.Expenses, asOf, 1), asOf)

	var emiTotal decimal.Decimal
	for _, l := range snapshot.Loans {
		emiTotal = emiTotal.Add(l.MonthlyEMI)
	}

	savings := cashflow.SavingsRate(monthIncome, monthExpenses)
	portfolio := investment.PortfolioAggregate(snapshot.Investments)

	budgets := make(map[string]decimal.Decimal, len(snapshot.Budgets))
	for _, b := range snapshot.Budgets {
		budgets[b.Category] = b.LimitAmount
	}

	annualIncome := monthIncome.Mul(decimal.NewFromInt(12))

	return &GetDashboardOutput{
		AsOf:           asOf,
		NetWorth:       health.NetWorth(snapshot.Investments, snapshot.Loans, decimal.Zero),
		Health:         health.HealthScore(savings.SavingsRatePercent, portfolio.GainLossPercent),
		Savings:        savings,
		CashFlow:       cashflow.SummarizeCashFlow(monthIncome, monthExpenses, emiTotal),
		Portfolio:      portfolio,
		Stability:      cashflow.IncomeStability(snapshot.Incomes, asOf, cashflow.DefaultStabilityWindowMonths),
		CategoryHealth: cashflow.CategoryHealth(cashflow.ExpensesByCategory(snapshot.Expenses, asOf), budgets),
		Goals:          goalplan.Prioritize(snapshot.Goals, asOf),
		Insurance:      health.InsuranceAdequacy(snapshot.Policies, annualIncome, asOf),
	}
}
