package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-advisor/backend/internal/application/usecase/finance"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/dto"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/middleware"
)

// InsuranceController handles insurance policy endpoints.
type InsuranceController struct {
	createUseCase *finance.CreateInsuranceUseCase
	listUseCase   *finance.ListInsuranceUseCase
	deleteUseCase *finance.DeleteInsuranceUseCase
}

// NewInsuranceController creates a new insurance controller instance.
func NewInsuranceController(
	createUseCase *finance.CreateInsuranceUseCase,
	listUseCase *finance.ListInsuranceUseCase,
	deleteUseCase *finance.DeleteInsuranceUseCase,
) *InsuranceController {
	return &InsuranceController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /insurance requests.
func (c *InsuranceController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateInsuranceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		respondInvalidDate(ctx, "start_date")
		return
	}

	endDate, err := dto.ParseDate(req.EndDate)
	if err != nil {
		respondInvalidDate(ctx, "end_date")
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), finance.CreateInsuranceInput{
		UserID:    userID,
		Premium:   req.Premium,
		Coverage:  req.Coverage,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInsuranceResponse(output.Policy))
}

// List handles GET /insurance requests.
func (c *InsuranceController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), finance.ListInsuranceInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsuranceListResponse(output.Policies))
}

// Delete handles DELETE /insurance/:id requests.
func (c *InsuranceController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	policyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid policy ID format"})
		return
	}

	err = c.deleteUseCase.Execute(ctx.Request.Context(), finance.DeleteInsuranceInput{
		UserID: userID,
		ID:     policyID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
