package health

import (
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/domain/calc/cashflow"
	"github.com/finance-advisor/backend/internal/domain/calc/investment"
	"github.com/finance-advisor/backend/internal/domain/entity"
)

// Health score weighting. The tier boundaries are a de facto contract
// carried over from the legacy scoring model; do not adjust them without a
// stakeholder decision, downstream consumers compare scores across releases.
var (
	// BaseScore is always included.
	BaseScore = decimal.NewFromInt(50)

	// Savings-rate tiers: rate > boundary earns the paired points, up to 30.
	// At or below the lowest boundary the points equal the rate itself,
	// floored at 0 (the "proportional" band).
	SavingsTierHighPercent = decimal.NewFromInt(30)
	SavingsTierMidPercent  = decimal.NewFromInt(20)
	SavingsTierLowPercent  = decimal.NewFromInt(10)
	SavingsPointsHigh      = decimal.NewFromInt(30)
	SavingsPointsMid       = decimal.NewFromInt(20)
	SavingsPointsLow       = decimal.NewFromInt(10)

	// Investment-return tiers, up to 20 points. Any positive return below
	// the lowest boundary earns a flat minimum.
	ReturnTierHighPercent = decimal.NewFromInt(15)
	ReturnTierMidPercent  = decimal.NewFromInt(10)
	ReturnTierLowPercent  = decimal.NewFromInt(5)
	ReturnPointsHigh      = decimal.NewFromInt(20)
	ReturnPointsMid       = decimal.NewFromInt(15)
	ReturnPointsLow       = decimal.NewFromInt(10)
	ReturnPointsMin       = decimal.NewFromInt(5)

	maxScore = decimal.NewFromInt(100)
)

// ScoreComponents itemizes the health score blend.
type ScoreComponents struct {
	Base             decimal.Decimal
	SavingsRate      decimal.Decimal
	InvestmentReturn decimal.Decimal
}

// HealthScoreResult is the composite 0-100 financial health score.
type HealthScoreResult struct {
	Score      decimal.Decimal
	Components ScoreComponents
	// Inputs echoed for traceability.
	SavingsRatePercent      decimal.NullDecimal
	InvestmentReturnPercent decimal.NullDecimal
}

// HealthScore blends the savings rate and portfolio return into a single
// 0-100 score: a base of 50 plus up to 30 points for the savings rate and up
// to 20 for investment returns, clamped into [0, 100]. Undefined inputs
// (zero income, empty portfolio) contribute no points — they neither help
// nor hurt beyond the base.
func HealthScore(savingsRatePercent, investmentReturnPercent decimal.NullDecimal) HealthScoreResult {
	components := ScoreComponents{Base: BaseScore}

	if savingsRatePercent.Valid {
		components.SavingsRate = savingsPoints(savingsRatePercent.Decimal)
	}
	if investmentReturnPercent.Valid {
		components.InvestmentReturn = returnPoints(investmentReturnPercent.Decimal)
	}

	score := components.Base.Add(components.SavingsRate).Add(components.InvestmentReturn)
	if score.GreaterThan(maxScore) {
		score = maxScore
	}
	if score.IsNegative() {
		score = decimal.Zero
	}

	return HealthScoreResult{
		Score:                   score,
		Components:              components,
		SavingsRatePercent:      savingsRatePercent,
		InvestmentReturnPercent: investmentReturnPercent,
	}
}

// savingsPoints: strictly above a boundary earns that tier's points; in the
// bottom band the rate itself is the score, floored at zero.
func savingsPoints(rate decimal.Decimal) decimal.Decimal {
	switch {
	case rate.GreaterThan(SavingsTierHighPercent):
		return SavingsPointsHigh
	case rate.GreaterThan(SavingsTierMidPercent):
		return SavingsPointsMid
	case rate.GreaterThan(SavingsTierLowPercent):
		return SavingsPointsLow
	case rate.IsPositive():
		return rate
	default:
		return decimal.Zero
	}
}

// returnPoints: tiered like savingsPoints, but any positive return below the
// lowest boundary earns the flat minimum rather than a proportional score.
func returnPoints(rate decimal.Decimal) decimal.Decimal {
	switch {
	case rate.GreaterThan(ReturnTierHighPercent):
		return ReturnPointsHigh
	case rate.GreaterThan(ReturnTierMidPercent):
		return ReturnPointsMid
	case rate.GreaterThan(ReturnTierLowPercent):
		return ReturnPointsLow
	case rate.IsPositive():
		return ReturnPointsMin
	default:
		return decimal.Zero
	}
}

// Evaluate computes the health score straight from a snapshot: the savings
// rate comes from the calendar month containing the snapshot's as-of date
// and the return figure from the aggregated portfolio.
func Evaluate(snapshot *entity.FinancialSnapshot) HealthScoreResult {
	asOf := snapshot.AsOf

	incomeTotals := cashflow.MonthlyIncomeTotals(snapshot.Incomes, asOf, 1)
	expenseTotals := cashflow.MonthlyExpenseTotals(snapshot.Expenses, asOf, 1)
	savings := cashflow.SavingsRate(
		cashflow.MonthTotalFor(incomeTotals, asOf),
		cashflow.MonthTotalFor(expenseTotals, asOf),
	)

	portfolio := investment.PortfolioAggregate(snapshot.Investments)

	return HealthScore(savings.SavingsRatePercent, portfolio.GainLossPercent)
}
