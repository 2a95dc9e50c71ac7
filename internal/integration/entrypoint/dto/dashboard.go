// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-advisor/backend/internal/application/usecase/dashboard"
	"github.com/finance-advisor/backend/internal/domain/calc/cashflow"
	"github.com/finance-advisor/backend/internal/domain/calc/goalplan"
	"github.com/finance-advisor/backend/internal/domain/calc/health"
	"github.com/finance-advisor/backend/internal/domain/calc/investment"
)

// NetWorthResponse represents the net worth breakdown in API responses.
type NetWorthResponse struct {
	TotalAssets      string `json:"total_assets"`
	TotalLiabilities string `json:"total_liabilities"`
	CashEquivalent   string `json:"cash_equivalent"`
	NetWorth         string `json:"net_worth"`
}

// HealthScoreResponse represents the composite health score in API responses.
type HealthScoreResponse struct {
	Score                   string  `json:"score"`
	BasePoints              string  `json:"base_points"`
	SavingsRatePoints       string  `json:"savings_rate_points"`
	InvestmentReturnPoints  string  `json:"investment_return_points"`
	SavingsRatePercent      *string `json:"savings_rate_percent"`
	InvestmentReturnPercent *string `json:"investment_return_percent"`
}

// SavingsRateResponse represents the savings rate breakdown in API responses.
type SavingsRateResponse struct {
	MonthlyIncome      string  `json:"monthly_income"`
	MonthlyExpenses    string  `json:"monthly_expenses"`
	Savings            string  `json:"savings"`
	SavingsRatePercent *string `json:"savings_rate_percent"`
}

// CashFlowResponse represents a single month's money movement in API responses.
type CashFlowResponse struct {
	MonthlyIncome    string `json:"monthly_income"`
	MonthlyExpenses  string `json:"monthly_expenses"`
	EMIObligations   string `json:"emi_obligations"`
	TotalOutflow     string `json:"total_outflow"`
	NetCashFlow      string `json:"net_cash_flow"`
	DisposableIncome string `json:"disposable_income"`
}

// PortfolioResponse represents the aggregated portfolio in API responses.
type PortfolioResponse struct {
	TotalInvested     string  `json:"total_invested"`
	TotalCurrentValue string  `json:"total_current_value"`
	TotalGainLoss     string  `json:"total_gain_loss"`
	GainLossPercent   *string `json:"gain_loss_percent"`
	Holdings          int     `json:"holdings"`
}

// StabilityResponse represents income stability in API responses.
type StabilityResponse struct {
	Score                  string  `json:"score"`
	MeanMonthlyIncome      string  `json:"mean_monthly_income"`
	CoefficientOfVariation *string `json:"coefficient_of_variation"`
	MonthsObserved         int     `json:"months_observed"`
}

// CategoryHealthResponse represents budget compliance for one category.
type CategoryHealthResponse struct {
	Spent       string  `json:"spent"`
	Budget      string  `json:"budget"`
	PercentUsed *string `json:"percent_used"`
	Status      string  `json:"status"`
}

// PrioritizedGoalResponse represents a ranked goal in API responses.
type PrioritizedGoalResponse struct {
	Goal              GoalResponse `json:"goal"`
	MonthsRemaining   int          `json:"months_remaining"`
	UrgencyScore      string       `json:"urgency_score"`
	CompletionPercent string       `json:"completion_percent"`
	CompositeScore    string       `json:"composite_score"`
}

// InsuranceAdequacyResponse represents insurance adequacy in API responses.
type InsuranceAdequacyResponse struct {
	ActiveCoverage       string  `json:"active_coverage"`
	AnnualPremium        string  `json:"annual_premium"`
	RecommendedCoverage  string  `json:"recommended_coverage"`
	CoverageGap          string  `json:"coverage_gap"`
	CoverageRatioPercent *string `json:"coverage_ratio_percent"`
	IsAdequate           bool    `json:"is_adequate"`
	ActivePolicies       int     `json:"active_policies"`
}

// DashboardResponse aggregates every top-level metric for a user.
type DashboardResponse struct {
	AsOf           string                            `json:"as_of"`
	NetWorth       NetWorthResponse                  `json:"net_worth"`
	Health         HealthScoreResponse               `json:"health"`
	Savings        SavingsRateResponse               `json:"savings"`
	CashFlow       CashFlowResponse                  `json:"cash_flow"`
	Portfolio      PortfolioResponse                 `json:"portfolio"`
	Stability      StabilityResponse                 `json:"income_stability"`
	CategoryHealth map[string]CategoryHealthResponse `json:"category_health"`
	Goals          []PrioritizedGoalResponse         `json:"goals"`
	Insurance      InsuranceAdequacyResponse         `json:"insurance"`
}

// ToNetWorthResponse converts a NetWorthResult to its DTO.
func ToNetWorthResponse(result health.NetWorthResult) NetWorthResponse {
	return NetWorthResponse{
		TotalAssets:      result.TotalAssets.String(),
		TotalLiabilities: result.TotalLiabilities.String(),
		CashEquivalent:   result.CashEquivalent.String(),
		NetWorth:         result.NetWorth.String(),
	}
}

// ToHealthScoreResponse converts a HealthScoreResult to its DTO.
func ToHealthScoreResponse(result health.HealthScoreResult) HealthScoreResponse {
	return HealthScoreResponse{
		Score:                   result.Score.String(),
		BasePoints:              result.Components.Base.String(),
		SavingsRatePoints:       result.Components.SavingsRate.String(),
		InvestmentReturnPoints:  result.Components.InvestmentReturn.String(),
		SavingsRatePercent:      nullableAmount(result.SavingsRatePercent),
		InvestmentReturnPercent: nullableAmount(result.InvestmentReturnPercent),
	}
}

// ToSavingsRateResponse converts a SavingsRateResult to its DTO.
func ToSavingsRateResponse(result cashflow.SavingsRateResult) SavingsRateResponse {
	return SavingsRateResponse{
		MonthlyIncome:      result.MonthlyIncome.String(),
		MonthlyExpenses:    result.MonthlyExpenses.String(),
		Savings:            result.Savings.String(),
		SavingsRatePercent: nullableAmount(result.SavingsRatePercent),
	}
}

// ToCashFlowResponse converts a CashFlowSummary to its DTO.
func ToCashFlowResponse(summary cashflow.CashFlowSummary) CashFlowResponse {
	return CashFlowResponse{
		MonthlyIncome:    summary.MonthlyIncome.String(),
		MonthlyExpenses:  summary.MonthlyExpenses.String(),
		EMIObligations:   summary.EMIObligations.String(),
		TotalOutflow:     summary.TotalOutflow.String(),
		NetCashFlow:      summary.NetCashFlow.String(),
		DisposableIncome: summary.DisposableIncome.String(),
	}
}

// ToPortfolioResponse converts a PortfolioResult to its DTO.
func ToPortfolioResponse(result investment.PortfolioResult) PortfolioResponse {
	return PortfolioResponse{
		TotalInvested:     result.TotalInvested.String(),
		TotalCurrentValue: result.TotalCurrentValue.String(),
		TotalGainLoss:     result.TotalGainLoss.String(),
		GainLossPercent:   nullableAmount(result.GainLossPercent),
		Holdings:          result.Holdings,
	}
}

// ToStabilityResponse converts a StabilityResult to its DTO.
func ToStabilityResponse(result cashflow.StabilityResult) StabilityResponse {
	return StabilityResponse{
		Score:                  result.Score.String(),
		MeanMonthlyIncome:      result.MeanMonthlyIncome.String(),
		CoefficientOfVariation: nullableAmount(result.CoefficientOfVariation),
		MonthsObserved:         result.MonthsObserved,
	}
}

// ToCategoryHealthResponse converts per-category results to their DTO map.
func ToCategoryHealthResponse(results map[string]cashflow.CategoryHealthResult) map[string]CategoryHealthResponse {
	responses := make(map[string]CategoryHealthResponse, len(results))
	for category, result := range results {
		responses[category] = CategoryHealthResponse{
			Spent:       result.Spent.String(),
			Budget:      result.Budget.String(),
			PercentUsed: nullableAmount(result.PercentUsed),
			Status:      string(result.Status),
		}
	}
	return responses
}

// ToPrioritizedGoalResponses converts ranked goals to their DTOs.
func ToPrioritizedGoalResponses(goals []goalplan.PrioritizedGoal) []PrioritizedGoalResponse {
	responses := make([]PrioritizedGoalResponse, 0, len(goals))
	for i := range goals {
		responses = append(responses, PrioritizedGoalResponse{
			Goal:              ToGoalResponse(&goals[i].Goal),
			MonthsRemaining:   goals[i].MonthsRemaining,
			UrgencyScore:      goals[i].UrgencyScore.String(),
			CompletionPercent: goals[i].CompletionPercent.String(),
			CompositeScore:    goals[i].CompositeScore.String(),
		})
	}
	return responses
}

// ToInsuranceAdequacyResponse converts an InsuranceAdequacyResult to its DTO.
func ToInsuranceAdequacyResponse(result health.InsuranceAdequacyResult) InsuranceAdequacyResponse {
	return InsuranceAdequacyResponse{
		ActiveCoverage:       result.ActiveCoverage.String(),
		AnnualPremium:        result.AnnualPremium.String(),
		RecommendedCoverage:  result.RecommendedCoverage.String(),
		CoverageGap:          result.CoverageGap.String(),
		CoverageRatioPercent: nullableAmount(result.CoverageRatioPercent),
		IsAdequate:           result.IsAdequate,
		ActivePolicies:       result.ActivePolicies,
	}
}

// ToDashboardResponse converts the dashboard output to its DTO.
func ToDashboardResponse(output *dashboard.GetDashboardOutput) DashboardResponse {
	return DashboardResponse{
		AsOf:           output.AsOf.Format(time.RFC3339),
		NetWorth:       ToNetWorthResponse(output.NetWorth),
		Health:         ToHealthScoreResponse(output.Health),
		Savings:        ToSavingsRateResponse(output.Savings),
		CashFlow:       ToCashFlowResponse(output.CashFlow),
		Portfolio:      ToPortfolioResponse(output.Portfolio),
		Stability:      ToStabilityResponse(output.Stability),
		CategoryHealth: ToCategoryHealthResponse(output.CategoryHealth),
		Goals:          ToPrioritizedGoalResponses(output.Goals),
		Insurance:      ToInsuranceAdequacyResponse(output.Insurance),
	}
}
