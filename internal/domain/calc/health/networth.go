// Package health implements the top-level aggregations over a financial
// snapshot: net worth, the composite financial-health score and insurance
// adequacy. It sits on top of the cashflow and investment analytics.
package health

import (
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/domain/entity"
)

// NetWorthResult reports assets against liabilities. NetWorth may be
// negative and is never clamped.
type NetWorthResult struct {
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	CashEquivalent   decimal.Decimal
	NetWorth         decimal.Decimal
}

// NetWorth sums investment current values plus cash equivalents and
// subtracts outstanding loan principals.
func NetWorth(investments []entity.Investment, loans []entity.Loan, cashEquivalent decimal.Decimal) NetWorthResult {
	var assets decimal.Decimal
	for _, inv := range investments {
		assets = assets.Add(inv.CurrentValue)
	}

	var liabilities decimal.Decimal
	for _, l := range loans {
		liabilities = liabilities.Add(l.OutstandingPrincipal)
	}

	return NetWorthResult{
		TotalAssets:      assets.Add(cashEquivalent),
		TotalLiabilities: liabilities,
		CashEquivalent:   cashEquivalent,
		NetWorth:         assets.Add(cashEquivalent).Sub(liabilities),
	}
}
