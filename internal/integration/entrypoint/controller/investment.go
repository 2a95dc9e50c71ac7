package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-advisor/backend/internal/application/usecase/finance"
	"github.com/finance-advisor/backend/internal/domain/entity"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/dto"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/middleware"
)

// InvestmentController handles investment holding endpoints.
type InvestmentController struct {
	createUseCase      *finance.CreateInvestmentUseCase
	listUseCase        *finance.ListInvestmentsUseCase
	updateValueUseCase *finance.UpdateInvestmentValueUseCase
	deleteUseCase      *finance.DeleteInvestmentUseCase
}

// NewInvestmentController creates a new investment controller instance.
func NewInvestmentController(
	createUseCase *finance.CreateInvestmentUseCase,
	listUseCase *finance.ListInvestmentsUseCase,
	updateValueUseCase *finance.UpdateInvestmentValueUseCase,
	deleteUseCase *finance.DeleteInvestmentUseCase,
) *InvestmentController {
	return &InvestmentController{
		createUseCase:      createUseCase,
		listUseCase:        listUseCase,
		updateValueUseCase: updateValueUseCase,
		deleteUseCase:      deleteUseCase,
	}
}

// Create handles POST /investments requests.
func (c *InvestmentController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateInvestmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	purchaseDate, err := dto.ParseDate(req.PurchaseDate)
	if err != nil {
		respondInvalidDate(ctx, "purchase_date")
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), finance.CreateInvestmentInput{
		UserID:       userID,
		Principal:    req.Principal,
		CurrentValue: req.CurrentValue,
		PurchaseDate: purchaseDate,
		Type:         entity.InvestmentType(req.Type),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInvestmentResponse(output.Investment))
}

// List handles GET /investments requests.
func (c *InvestmentController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), finance.ListInvestmentsInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentListResponse(output.Investments))
}

// UpdateValue handles PATCH /investments/:id/value requests.
func (c *InvestmentController) UpdateValue(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	investmentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid investment ID format"})
		return
	}

	var req dto.UpdateInvestmentValueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	err = c.updateValueUseCase.Execute(ctx.Request.Context(), finance.UpdateInvestmentValueInput{
		UserID:       userID,
		ID:           investmentID,
		CurrentValue: req.CurrentValue,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Investment value updated"})
}

// Delete handles DELETE /investments/:id requests.
func (c *InvestmentController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	investmentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid investment ID format"})
		return
	}

	err = c.deleteUseCase.Execute(ctx.Request.Context(), finance.DeleteInvestmentInput{
		UserID: userID,
		ID:     investmentID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
