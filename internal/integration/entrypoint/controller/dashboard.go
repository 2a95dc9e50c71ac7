package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-advisor/backend/internal/application/usecase/dashboard"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/dto"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles the aggregated dashboard endpoint.
type DashboardController struct {
	getDashboardUseCase *dashboard.GetDashboardUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getDashboardUseCase *dashboard.GetDashboardUseCase) *DashboardController {
	return &DashboardController{getDashboardUseCase: getDashboardUseCase}
}

// Get handles GET /dashboard requests. An optional as_of query parameter
// (YYYY-MM-DD) pins every time-dependent metric to that date; without it
// the current date is used and the cached snapshot may be served.
func (c *DashboardController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var asOf time.Time
	if raw := ctx.Query("as_of"); raw != "" {
		parsed, err := dto.ParseDate(raw)
		if err != nil {
			respondInvalidDate(ctx, "as_of")
			return
		}
		asOf = parsed
	}

	output, err := c.getDashboardUseCase.Execute(ctx.Request.Context(), dashboard.GetDashboardInput{
		UserID: userID,
		AsOf:   asOf,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	if output.FromCache {
		ctx.Header("X-Cache", "HIT")
	}
	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}
