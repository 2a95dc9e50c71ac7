// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-advisor/backend/internal/application/usecase/finance"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/dto"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense entry endpoints.
type ExpenseController struct {
	createUseCase *finance.CreateExpenseUseCase
	listUseCase   *finance.ListExpensesUseCase
	deleteUseCase *finance.DeleteExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *finance.CreateExpenseUseCase,
	listUseCase *finance.ListExpensesUseCase,
	deleteUseCase *finance.DeleteExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		respondInvalidDate(ctx, "date")
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), finance.CreateExpenseInput{
		UserID:   userID,
		Amount:   req.Amount,
		Date:     date,
		Category: req.Category,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), finance.ListExpensesInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Expenses))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid expense ID format"})
		return
	}

	err = c.deleteUseCase.Execute(ctx.Request.Context(), finance.DeleteExpenseInput{
		UserID: userID,
		ID:     expenseID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
