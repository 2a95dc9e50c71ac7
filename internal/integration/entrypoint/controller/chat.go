package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-advisor/backend/internal/application/usecase/chat"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/dto"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/middleware"
)

// ChatController handles the grounded advisor chat endpoint.
type ChatController struct {
	askAdvisorUseCase *chat.AskAdvisorUseCase
}

// NewChatController creates a new chat controller instance.
func NewChatController(askAdvisorUseCase *chat.AskAdvisorUseCase) *ChatController {
	return &ChatController{askAdvisorUseCase: askAdvisorUseCase}
}

// Ask handles POST /chat/ask requests.
func (c *ChatController) Ask(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.AskAdvisorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
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

	output, err := c.askAdvisorUseCase.Execute(ctx.Request.Context(), chat.AskAdvisorInput{
		UserID:   userID,
		Question: req.Question,
		AsOf:     asOf,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAskAdvisorResponse(output))
}
