package investment

import (
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/domain/calc/numeric"
	"github.com/finance-advisor/backend/internal/domain/entity"
)

// PortfolioResult aggregates a set of investment holdings. GainLossPercent is
// undefined (Valid == false) when nothing was invested; TotalGainLoss may be
// negative and is never clamped.
type PortfolioResult struct {
	TotalInvested     decimal.Decimal
	TotalCurrentValue decimal.Decimal
	TotalGainLoss     decimal.Decimal
	GainLossPercent   decimal.NullDecimal
	Holdings          int
}

// PortfolioAggregate sums invested and current values across holdings. An
// empty portfolio yields zeros with an undefined gain/loss percentage, not an
// error.
func PortfolioAggregate(investments []entity.Investment) PortfolioResult {
	var invested, current decimal.Decimal
	for _, inv := range investments {
		invested = invested.Add(inv.Principal)
		current = current.Add(inv.CurrentValue)
	}

	gainLoss := current.Sub(invested)
	result := PortfolioResult{
		TotalInvested:     invested,
		TotalCurrentValue: current,
		TotalGainLoss:     gainLoss,
		Holdings:          len(investments),
	}
	if invested.IsPositive() {
		result.GainLossPercent = decimal.NullDecimal{
			Decimal: numeric.RoundPercent(gainLoss.Div(invested).Mul(hundred)),
			Valid:   true,
		}
	}
	return result
}
