package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/application/usecase/analytics"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/dto"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/middleware"
)

// AnalyticsController handles derived analytics and projection endpoints.
type AnalyticsController struct {
	loanAnalyticsUseCase       *analytics.GetLoanAnalyticsUseCase
	investmentAnalyticsUseCase *analytics.GetInvestmentAnalyticsUseCase
	incomeAnalyticsUseCase     *analytics.GetIncomeAnalyticsUseCase
	goalFeasibilityUseCase     *analytics.GetGoalFeasibilityUseCase
	projectSIPUseCase          *analytics.ProjectSIPUseCase
	compoundInterestUseCase    *analytics.CompoundInterestUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	loanAnalyticsUseCase *analytics.GetLoanAnalyticsUseCase,
	investmentAnalyticsUseCase *analytics.GetInvestmentAnalyticsUseCase,
	incomeAnalyticsUseCase *analytics.GetIncomeAnalyticsUseCase,
	goalFeasibilityUseCase *analytics.GetGoalFeasibilityUseCase,
	projectSIPUseCase *analytics.ProjectSIPUseCase,
	compoundInterestUseCase *analytics.CompoundInterestUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		loanAnalyticsUseCase:       loanAnalyticsUseCase,
		investmentAnalyticsUseCase: investmentAnalyticsUseCase,
		incomeAnalyticsUseCase:     incomeAnalyticsUseCase,
		goalFeasibilityUseCase:     goalFeasibilityUseCase,
		projectSIPUseCase:          projectSIPUseCase,
		compoundInterestUseCase:    compoundInterestUseCase,
	}
}

// asOfFromQuery reads the optional as_of query parameter. The zero time is
// returned when the parameter is absent.
func asOfFromQuery(ctx *gin.Context) (time.Time, bool) {
	raw := ctx.Query("as_of")
	if raw == "" {
		return time.Time{}, true
	}
	parsed, err := dto.ParseDate(raw)
	if err != nil {
		respondInvalidDate(ctx, "as_of")
		return time.Time{}, false
	}
	return parsed, true
}

// LoanAnalytics handles GET /loans/:id/analytics requests. Optional query
// parameters: schedule_months caps the amortization rows, and prepay_amount
// plus prepay_month simulate a lump-sum prepayment.
func (c *AnalyticsController) LoanAnalytics(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	loanID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid loan ID format"})
		return
	}

	asOf, ok := asOfFromQuery(ctx)
	if !ok {
		return
	}

	scheduleMonths := 0
	if raw := ctx.Query("schedule_months"); raw != "" {
		scheduleMonths, err = strconv.Atoi(raw)
		if err != nil || scheduleMonths < 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid schedule_months value"})
			return
		}
	}

	var prepayment *analytics.PrepaymentQuery
	if raw := ctx.Query("prepay_amount"); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid prepay_amount value"})
			return
		}
		month, err := strconv.Atoi(ctx.Query("prepay_month"))
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid prepay_month value"})
			return
		}
		prepayment = &analytics.PrepaymentQuery{LumpSum: amount, Month: month}
	}

	output, err := c.loanAnalyticsUseCase.Execute(ctx.Request.Context(), analytics.GetLoanAnalyticsInput{
		UserID:         userID,
		LoanID:         loanID,
		AsOf:           asOf,
		ScheduleMonths: scheduleMonths,
		Prepayment:     prepayment,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoanAnalyticsResponse(output))
}

// InvestmentAnalytics handles GET /analytics/investments requests.
func (c *AnalyticsController) InvestmentAnalytics(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	asOf, ok := asOfFromQuery(ctx)
	if !ok {
		return
	}

	output, err := c.investmentAnalyticsUseCase.Execute(ctx.Request.Context(), analytics.GetInvestmentAnalyticsInput{
		UserID: userID,
		AsOf:   asOf,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentAnalyticsResponse(output))
}

// IncomeAnalytics handles GET /analytics/income requests.
func (c *AnalyticsController) IncomeAnalytics(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	asOf, ok := asOfFromQuery(ctx)
	if !ok {
		return
	}

	output, err := c.incomeAnalyticsUseCase.Execute(ctx.Request.Context(), analytics.GetIncomeAnalyticsInput{
		UserID: userID,
		AsOf:   asOf,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeAnalyticsResponse(output))
}

// GoalFeasibility handles GET /analytics/goals requests.
func (c *AnalyticsController) GoalFeasibility(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	asOf, ok := asOfFromQuery(ctx)
	if !ok {
		return
	}

	output, err := c.goalFeasibilityUseCase.Execute(ctx.Request.Context(), analytics.GetGoalFeasibilityInput{
		UserID: userID,
		AsOf:   asOf,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalFeasibilityResponse(output))
}

// ProjectSIP handles POST /projections/sip requests.
func (c *AnalyticsController) ProjectSIP(ctx *gin.Context) {
	if _, ok := middleware.GetUserIDFromContext(ctx); !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.ProjectSIPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	output, err := c.projectSIPUseCase.Execute(ctx.Request.Context(), analytics.ProjectSIPInput{
		MonthlyContribution: req.MonthlyContribution,
		AnnualRatePercent:   req.AnnualRatePercent,
		Months:              req.Months,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProjectSIPResponse(output))
}

// CompoundInterest handles POST /projections/compound-interest requests.
func (c *AnalyticsController) CompoundInterest(ctx *gin.Context) {
	if _, ok := middleware.GetUserIDFromContext(ctx); !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CompoundInterestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	output, err := c.compoundInterestUseCase.Execute(ctx.Request.Context(), analytics.CompoundInterestInput{
		Principal:         req.Principal,
		AnnualRatePercent: req.AnnualRatePercent,
		Years:             req.Years,
		CompoundsPerYear:  req.CompoundsPerYear,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompoundInterestResponse(output))
}
