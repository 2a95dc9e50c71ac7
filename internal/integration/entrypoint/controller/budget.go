package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-advisor/backend/internal/application/usecase/finance"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/dto"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles category budget endpoints. Budgets are keyed by
// category name within a user rather than by ID.
type BudgetController struct {
	createUseCase *finance.CreateBudgetUseCase
	listUseCase   *finance.ListBudgetsUseCase
	updateUseCase *finance.UpdateBudgetUseCase
	deleteUseCase *finance.DeleteBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	createUseCase *finance.CreateBudgetUseCase,
	listUseCase *finance.ListBudgetsUseCase,
	updateUseCase *finance.UpdateBudgetUseCase,
	deleteUseCase *finance.DeleteBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), finance.CreateBudgetInput{
		UserID:      userID,
		Category:    req.Category,
		LimitAmount: req.LimitAmount,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget))
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), finance.ListBudgetsInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Budgets))
}

// Update handles PUT /budgets/:category requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	category := ctx.Param("category")
	if category == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Category is required"})
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	err := c.updateUseCase.Execute(ctx.Request.Context(), finance.UpdateBudgetInput{
		UserID:      userID,
		Category:    category,
		LimitAmount: req.LimitAmount,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Budget updated"})
}

// Delete handles DELETE /budgets/:category requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	category := ctx.Param("category")
	if category == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Category is required"})
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), finance.DeleteBudgetInput{
		UserID:   userID,
		Category: category,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
