package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/application/adapter"
	"github.com/finance-advisor/backend/internal/domain/calc/investment"
	"github.com/finance-advisor/backend/internal/domain/entity"
)

// HoldingReturn annotates one holding with its annualized return.
// AnnualizedReturnPercent is undefined for holdings younger than a year,
// where annualizing would inflate short-term noise.
type HoldingReturn struct {
	Investment              entity.Investment
	HeldYears               decimal.Decimal
	AnnualizedReturnPercent decimal.NullDecimal
}

// GetInvestmentAnalyticsInput represents the input for investment analytics.
type GetInvestmentAnalyticsInput struct {
	UserID uuid.UUID
	AsOf   time.Time
}

// GetInvestmentAnalyticsOutput represents the output of investment analytics.
type GetInvestmentAnalyticsOutput struct {
	Portfolio investment.PortfolioResult
	Holdings  []HoldingReturn
}

// GetInvestmentAnalyticsUseCase aggregates the portfolio and computes
// per-holding annualized returns.
type GetInvestmentAnalyticsUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewGetInvestmentAnalyticsUseCase creates a new GetInvestmentAnalyticsUseCase instance.
func NewGetInvestmentAnalyticsUseCase(investmentRepo adapter.InvestmentRepository) *GetInvestmentAnalyticsUseCase {
	return &GetInvestmentAnalyticsUseCase{investmentRepo: investmentRepo}
}

// Execute performs the investment analytics computation.
func (uc *GetInvestmentAnalyticsUseCase) Execute(ctx context.Context, input GetInvestmentAnalyticsInput) (*GetInvestmentAnalyticsOutput, error) {
	investments, err := uc.investmentRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load investments: %w", err)
	}

	asOf := input.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	output := &GetInvestmentAnalyticsOutput{
		Portfolio: investment.PortfolioAggregate(investments),
		Holdings:  make([]HoldingReturn, 0, len(investments)),
	}

	for _, inv := range investments {
		holding := HoldingReturn{
			Investment: inv,
			HeldYears:  heldYears(inv.PurchaseDate, asOf),
		}
		if holding.HeldYears.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			rate, err := investment.CAGR(inv.Principal, inv.CurrentValue, holding.HeldYears)
			if err == nil {
				holding.AnnualizedReturnPercent = decimal.NullDecimal{Decimal: rate, Valid: true}
			}
		}
		output.Holdings = append(output.Holdings, holding)
	}

	return output, nil
}

// heldYears measures the holding period in fractional years, floored at zero
// for purchase dates after the as-of date.
func heldYears(purchase, asOf time.Time) decimal.Decimal {
	if !purchase.Before(asOf) {
		return decimal.Zero
	}
	days := decimal.NewFromInt(int64(asOf.Sub(purchase).Hours() / 24))
	return days.Div(decimal.NewFromInt(365)).Round(4)
}
