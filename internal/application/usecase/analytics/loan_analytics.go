// Package analytics contains use cases for on-demand financial analytics.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/application/adapter"
	"github.com/finance-advisor/backend/internal/domain/calc/cashflow"
	calcloan "github.com/finance-advisor/backend/internal/domain/calc/loan"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

// defaultSchedulePrefixMonths bounds the schedule slice returned inline;
// the full schedule for long mortgages is paged by the caller.
const defaultSchedulePrefixMonths = 12

// GetLoanAnalyticsInput represents the input for loan analytics.
type GetLoanAnalyticsInput struct {
	UserID uuid.UUID
	LoanID uuid.UUID
	AsOf   time.Time

	// ScheduleMonths limits the amortization rows returned; zero applies
	// the default.
	ScheduleMonths int

	// Prepayment, when set, simulates a lump-sum prepayment at the given month.
	Prepayment *PrepaymentQuery
}

// PrepaymentQuery describes a lump-sum prepayment simulation.
type PrepaymentQuery struct {
	LumpSum decimal.Decimal
	Month   int
}

// GetLoanAnalyticsOutput represents the output of loan analytics.
type GetLoanAnalyticsOutput struct {
	EMI           *calcloan.EMIResult
	Affordability calcloan.AffordabilityResult
	Schedule      []calcloan.ScheduleEntry
	Prepayment    *calcloan.PrepaymentResult
}

// GetLoanAnalyticsUseCase computes EMI, affordability, an amortization
// schedule prefix and an optional prepayment simulation for one loan.
type GetLoanAnalyticsUseCase struct {
	loanRepo   adapter.LoanRepository
	incomeRepo adapter.IncomeRepository
}

// NewGetLoanAnalyticsUseCase creates a new GetLoanAnalyticsUseCase instance.
func NewGetLoanAnalyticsUseCase(loanRepo adapter.LoanRepository, incomeRepo adapter.IncomeRepository) *GetLoanAnalyticsUseCase {
	return &GetLoanAnalyticsUseCase{
		loanRepo:   loanRepo,
		incomeRepo: incomeRepo,
	}
}

// Execute performs the loan analytics computation.
func (uc *GetLoanAnalyticsUseCase) Execute(ctx context.Context, input GetLoanAnalyticsInput) (*GetLoanAnalyticsOutput, error) {
	loan, err := uc.loanRepo.FindByID(ctx, input.LoanID)
	if err != nil {
		return nil, err
	}
	if loan.UserID != input.UserID {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeUnauthorizedRecordAccess,
			"record does not belong to user",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	emi, err := calcloan.CalculateEMI(loan.Principal, loan.AnnualInterestRatePercent, loan.TermMonths)
	if err != nil {
		return nil, err
	}

	asOf := input.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	incomes, err := uc.incomeRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load incomes: %w", err)
	}
	monthIncome := cashflow.MonthTotalFor(cashflow.MonthlyIncomeTotals(incomes, asOf, 1), asOf)

	months := input.ScheduleMonths
	if months <= 0 {
		months = defaultSchedulePrefixMonths
	}
	schedule, err := calcloan.NewSchedule(loan.Principal, loan.AnnualInterestRatePercent, loan.TermMonths)
	if err != nil {
		return nil, err
	}

	output := &GetLoanAnalyticsOutput{
		EMI:           emi,
		Affordability: calcloan.Affordability(emi.MonthlyEMI, monthIncome),
		Schedule:      schedule.Prefix(months),
	}

	if input.Prepayment != nil {
		benefit, err := calcloan.PrepaymentBenefit(
			loan.Principal,
			loan.AnnualInterestRatePercent,
			loan.TermMonths,
			input.Prepayment.LumpSum,
			input.Prepayment.Month,
		)
		if err != nil {
			return nil, err
		}
		output.Prepayment = benefit
	}

	return output, nil
}
