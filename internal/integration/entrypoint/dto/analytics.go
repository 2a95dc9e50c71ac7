// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/application/usecase/analytics"
	"github.com/finance-advisor/backend/internal/domain/calc/cashflow"
	"github.com/finance-advisor/backend/internal/domain/calc/goalplan"
	calcloan "github.com/finance-advisor/backend/internal/domain/calc/loan"
)

// EMIResponse represents the EMI breakdown for a loan.
type EMIResponse struct {
	MonthlyEMI        string `json:"monthly_emi"`
	Principal         string `json:"principal"`
	AnnualRatePercent string `json:"annual_rate_percent"`
	TermMonths        int    `json:"term_months"`
	TotalPayment      string `json:"total_payment"`
	TotalInterest     string `json:"total_interest"`
	Assumption        string `json:"assumption,omitempty"`
}

// AffordabilityResponse represents the EMI affordability check.
type AffordabilityResponse struct {
	MonthlyEMI       string  `json:"monthly_emi"`
	MonthlyIncome    string  `json:"monthly_income"`
	EMIToIncomeRatio *string `json:"emi_to_income_ratio"`
	IsAffordable     bool    `json:"is_affordable"`
	ThresholdPercent string  `json:"threshold_percent"`
}

// ScheduleEntryResponse represents one amortization row.
type ScheduleEntryResponse struct {
	Month              int    `json:"month"`
	PrincipalComponent string `json:"principal_component"`
	InterestComponent  string `json:"interest_component"`
	RemainingBalance   string `json:"remaining_balance"`
}

// PrepaymentResponse represents a lump-sum prepayment simulation.
type PrepaymentResponse struct {
	LumpSum          string `json:"lump_sum"`
	PrepaymentMonth  int    `json:"prepayment_month"`
	MonthsSaved      int    `json:"months_saved"`
	InterestSaved    string `json:"interest_saved"`
	BaselineMonths   int    `json:"baseline_months"`
	BaselineInterest string `json:"baseline_interest"`
}

// LoanAnalyticsResponse represents the full loan analytics payload.
type LoanAnalyticsResponse struct {
	EMI           EMIResponse             `json:"emi"`
	Affordability AffordabilityResponse   `json:"affordability"`
	Schedule      []ScheduleEntryResponse `json:"schedule"`
	Prepayment    *PrepaymentResponse     `json:"prepayment,omitempty"`
}

// ToLoanAnalyticsResponse converts loan analytics output to its DTO.
func ToLoanAnalyticsResponse(output *analytics.GetLoanAnalyticsOutput) LoanAnalyticsResponse {
	response := LoanAnalyticsResponse{
		EMI: EMIResponse{
			MonthlyEMI:        output.EMI.MonthlyEMI.String(),
			Principal:         output.EMI.Principal.String(),
			AnnualRatePercent: output.EMI.AnnualRatePercent.String(),
			TermMonths:        output.EMI.TermMonths,
			TotalPayment:      output.EMI.TotalPayment.String(),
			TotalInterest:     output.EMI.TotalInterest.String(),
			Assumption:        output.EMI.Assumption,
		},
		Affordability: AffordabilityResponse{
			MonthlyEMI:       output.Affordability.MonthlyEMI.String(),
			MonthlyIncome:    output.Affordability.MonthlyIncome.String(),
			EMIToIncomeRatio: nullableAmount(output.Affordability.EMIToIncomeRatio),
			IsAffordable:     output.Affordability.IsAffordable,
			ThresholdPercent: output.Affordability.ThresholdPercent.String(),
		},
		Schedule: toScheduleResponse(output.Schedule),
	}

	if output.Prepayment != nil {
		response.Prepayment = &PrepaymentResponse{
			LumpSum:          output.Prepayment.LumpSum.String(),
			PrepaymentMonth:  output.Prepayment.PrepaymentMonth,
			MonthsSaved:      output.Prepayment.MonthsSaved,
			InterestSaved:    output.Prepayment.InterestSaved.String(),
			BaselineMonths:   output.Prepayment.BaselineMonths,
			BaselineInterest: output.Prepayment.BaselineInterest.String(),
		}
	}

	return response
}

func toScheduleResponse(entries []calcloan.ScheduleEntry) []ScheduleEntryResponse {
	responses := make([]ScheduleEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, ScheduleEntryResponse{
			Month:              entry.Month,
			PrincipalComponent: entry.PrincipalComponent.String(),
			InterestComponent:  entry.InterestComponent.String(),
			RemainingBalance:   entry.RemainingBalance.String(),
		})
	}
	return responses
}

// HoldingReturnResponse represents one holding with its annualized return.
type HoldingReturnResponse struct {
	Investment              InvestmentResponse `json:"investment"`
	HeldYears               string             `json:"held_years"`
	AnnualizedReturnPercent *string            `json:"annualized_return_percent"`
}

// InvestmentAnalyticsResponse represents the investment analytics payload.
type InvestmentAnalyticsResponse struct {
	Portfolio PortfolioResponse       `json:"portfolio"`
	Holdings  []HoldingReturnResponse `json:"holdings"`
}

// ToInvestmentAnalyticsResponse converts investment analytics output to its DTO.
func ToInvestmentAnalyticsResponse(output *analytics.GetInvestmentAnalyticsOutput) InvestmentAnalyticsResponse {
	holdings := make([]HoldingReturnResponse, 0, len(output.Holdings))
	for i := range output.Holdings {
		holdings = append(holdings, HoldingReturnResponse{
			Investment:              ToInvestmentResponse(&output.Holdings[i].Investment),
			HeldYears:               output.Holdings[i].HeldYears.String(),
			AnnualizedReturnPercent: nullableAmount(output.Holdings[i].AnnualizedReturnPercent),
		})
	}
	return InvestmentAnalyticsResponse{
		Portfolio: ToPortfolioResponse(output.Portfolio),
		Holdings:  holdings,
	}
}

// MonthTotalResponse represents a single month's summed amount.
type MonthTotalResponse struct {
	Month string `json:"month"`
	Total string `json:"total"`
}

// IncomeAnalyticsResponse represents the income analytics payload.
type IncomeAnalyticsResponse struct {
	Stability      StabilityResponse                 `json:"stability"`
	IncomeTrend    []MonthTotalResponse              `json:"income_trend"`
	ExpenseTrend   []MonthTotalResponse              `json:"expense_trend"`
	CategoryHealth map[string]CategoryHealthResponse `json:"category_health"`
}

// ToIncomeAnalyticsResponse converts income analytics output to its DTO.
func ToIncomeAnalyticsResponse(output *analytics.GetIncomeAnalyticsOutput) IncomeAnalyticsResponse {
	return IncomeAnalyticsResponse{
		Stability:      ToStabilityResponse(output.Stability),
		IncomeTrend:    toMonthTotalResponse(output.IncomeTrend),
		ExpenseTrend:   toMonthTotalResponse(output.ExpenseTrend),
		CategoryHealth: ToCategoryHealthResponse(output.CategoryHealth),
	}
}

func toMonthTotalResponse(totals []cashflow.MonthTotal) []MonthTotalResponse {
	responses := make([]MonthTotalResponse, 0, len(totals))
	for _, total := range totals {
		responses = append(responses, MonthTotalResponse{
			Month: fmt.Sprintf("%04d-%02d", total.Year, int(total.Month)),
			Total: total.Total.String(),
		})
	}
	return responses
}

// FeasibilityResponse represents one goal's feasibility verdict.
type FeasibilityResponse struct {
	GoalID                      string `json:"goal_id"`
	TargetAmount                string `json:"target_amount"`
	CurrentAmount               string `json:"current_amount"`
	MonthsRemaining             int    `json:"months_remaining"`
	RequiredMonthlyContribution string `json:"required_monthly_contribution"`
	MonthlyCapacity             string `json:"monthly_capacity"`
	IsFeasible                  bool   `json:"is_feasible"`
	ProjectedShortfall          string `json:"projected_shortfall"`
}

// GoalFeasibilityResponse represents the goal feasibility payload.
type GoalFeasibilityResponse struct {
	MonthlyCapacity string                    `json:"monthly_capacity"`
	Goals           []FeasibilityResponse     `json:"goals"`
	Prioritized     []PrioritizedGoalResponse `json:"prioritized"`
}

// ToGoalFeasibilityResponse converts goal feasibility output to its DTO.
func ToGoalFeasibilityResponse(output *analytics.GetGoalFeasibilityOutput) GoalFeasibilityResponse {
	goals := make([]FeasibilityResponse, 0, len(output.Goals))
	for _, result := range output.Goals {
		goals = append(goals, toFeasibilityResponse(result))
	}
	return GoalFeasibilityResponse{
		MonthlyCapacity: output.MonthlyCapacity.String(),
		Goals:           goals,
		Prioritized:     ToPrioritizedGoalResponses(output.Prioritized),
	}
}

func toFeasibilityResponse(result goalplan.FeasibilityResult) FeasibilityResponse {
	return FeasibilityResponse{
		GoalID:                      result.GoalID.String(),
		TargetAmount:                result.TargetAmount.String(),
		CurrentAmount:               result.CurrentAmount.String(),
		MonthsRemaining:             result.MonthsRemaining,
		RequiredMonthlyContribution: result.RequiredMonthlyContribution.String(),
		MonthlyCapacity:             result.MonthlyCapacity.String(),
		IsFeasible:                  result.IsFeasible,
		ProjectedShortfall:          result.ProjectedShortfall.String(),
	}
}

// ProjectSIPRequest represents the request body for a SIP projection.
type ProjectSIPRequest struct {
	MonthlyContribution decimal.Decimal `json:"monthly_contribution" binding:"required"`
	AnnualRatePercent   decimal.Decimal `json:"annual_rate_percent"`
	Months              int             `json:"months" binding:"required,gt=0"`
}

// ProjectSIPResponse represents the SIP projection payload.
type ProjectSIPResponse struct {
	MonthlyContribution   string  `json:"monthly_contribution"`
	AnnualRatePercent     string  `json:"annual_rate_percent"`
	Months                int     `json:"months"`
	TotalInvested         string  `json:"total_invested"`
	FutureValue           string  `json:"future_value"`
	TotalReturns          string  `json:"total_returns"`
	AbsoluteReturnPercent *string `json:"absolute_return_percent"`
	Assumption            string  `json:"assumption,omitempty"`
}

// ToProjectSIPResponse converts a SIP projection output to its DTO.
func ToProjectSIPResponse(output *analytics.ProjectSIPOutput) ProjectSIPResponse {
	return ProjectSIPResponse{
		MonthlyContribution:   output.SIP.MonthlyContribution.String(),
		AnnualRatePercent:     output.SIP.AnnualRatePercent.String(),
		Months:                output.SIP.Months,
		TotalInvested:         output.SIP.TotalInvested.String(),
		FutureValue:           output.SIP.FutureValue.String(),
		TotalReturns:          output.SIP.TotalReturns.String(),
		AbsoluteReturnPercent: nullableAmount(output.SIP.AbsoluteReturnPercent),
		Assumption:            output.SIP.Assumption,
	}
}

// CompoundInterestRequest represents the request body for a lump-sum projection.
type CompoundInterestRequest struct {
	Principal         decimal.Decimal `json:"principal" binding:"required"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	Years             decimal.Decimal `json:"years" binding:"required"`
	CompoundsPerYear  int             `json:"compounds_per_year"`
}

// CompoundInterestResponse represents the lump-sum projection payload.
type CompoundInterestResponse struct {
	FutureValue string `json:"future_value"`
	Growth      string `json:"growth"`
}

// ToCompoundInterestResponse converts a lump-sum projection output to its DTO.
func ToCompoundInterestResponse(output *analytics.CompoundInterestOutput) CompoundInterestResponse {
	return CompoundInterestResponse{
		FutureValue: output.FutureValue.String(),
		Growth:      output.Growth.String(),
	}
}
