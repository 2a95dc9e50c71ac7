package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-advisor/backend/internal/application/usecase/finance"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/dto"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/middleware"
)

// LoanController handles loan endpoints.
type LoanController struct {
	createUseCase        *finance.CreateLoanUseCase
	listUseCase          *finance.ListLoansUseCase
	updateBalanceUseCase *finance.UpdateLoanBalanceUseCase
	deleteUseCase        *finance.DeleteLoanUseCase
}

// NewLoanController creates a new loan controller instance.
func NewLoanController(
	createUseCase *finance.CreateLoanUseCase,
	listUseCase *finance.ListLoansUseCase,
	updateBalanceUseCase *finance.UpdateLoanBalanceUseCase,
	deleteUseCase *finance.DeleteLoanUseCase,
) *LoanController {
	return &LoanController{
		createUseCase:        createUseCase,
		listUseCase:          listUseCase,
		updateBalanceUseCase: updateBalanceUseCase,
		deleteUseCase:        deleteUseCase,
	}
}

// Create handles POST /loans requests.
func (c *LoanController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateLoanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		respondInvalidDate(ctx, "start_date")
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), finance.CreateLoanInput{
		UserID:                    userID,
		Principal:                 req.Principal,
		AnnualInterestRatePercent: req.AnnualInterestRatePercent,
		TermMonths:                req.TermMonths,
		StartDate:                 startDate,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToLoanResponse(output.Loan))
}

// List handles GET /loans requests.
func (c *LoanController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), finance.ListLoansInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoanListResponse(output.Loans))
}

// UpdateBalance handles PATCH /loans/:id/balance requests.
func (c *LoanController) UpdateBalance(ctx *gin.Context) {
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

	var req dto.UpdateLoanBalanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	err = c.updateBalanceUseCase.Execute(ctx.Request.Context(), finance.UpdateLoanBalanceInput{
		UserID:               userID,
		ID:                   loanID,
		OutstandingPrincipal: req.OutstandingPrincipal,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Loan balance updated"})
}

// Delete handles DELETE /loans/:id requests.
func (c *LoanController) Delete(ctx *gin.Context) {
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

	err = c.deleteUseCase.Execute(ctx.Request.Context(), finance.DeleteLoanInput{
		UserID: userID,
		ID:     loanID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
