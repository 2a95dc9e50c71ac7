// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-advisor/backend/internal/domain/error"
	"github.com/finance-advisor/backend/internal/integration/entrypoint/dto"
)

// respondError maps domain errors to HTTP responses. Unknown errors become
// an opaque 500 so internals never leak to clients.
func respondError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(statusForAuthError(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	var financeErr *domainerror.FinanceError
	if errors.As(err, &financeErr) {
		ctx.JSON(statusForFinanceError(financeErr.Code), dto.ErrorResponse{
			Error: financeErr.Message,
			Code:  string(financeErr.Code),
		})
		return
	}

	var calcErr *domainerror.CalculationError
	if errors.As(err, &calcErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: calcErr.Message,
			Code:  string(calcErr.Code),
		})
		return
	}

	var chatErr *domainerror.ChatError
	if errors.As(err, &chatErr) {
		ctx.JSON(statusForChatError(chatErr.Code), dto.ErrorResponse{
			Error: chatErr.Message,
			Code:  string(chatErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrRecordNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Record not found",
			Code:  string(domainerror.ErrCodeRecordNotFound),
		})
		return
	}

	if errors.Is(err, domainerror.ErrUserNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "User not found",
			Code:  string(domainerror.ErrCodeUserNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// respondUnauthenticated reports a request with no authenticated user.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

// respondInvalidBody reports a request body that failed binding.
func respondInvalidBody(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body: " + err.Error(),
	})
}

// respondInvalidDate reports a date field that failed parsing.
func respondInvalidDate(ctx *gin.Context, field string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid " + field + " format, expected YYYY-MM-DD",
	})
}

func statusForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeUserNotFound,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func statusForFinanceError(code domainerror.FinanceErrorCode) int {
	switch code {
	case domainerror.ErrCodeRecordNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedRecordAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeBudgetAlreadyExists:
		return http.StatusConflict
	case domainerror.ErrCodeNegativeAmount,
		domainerror.ErrCodeMissingCategory,
		domainerror.ErrCodeMissingDate,
		domainerror.ErrCodeMissingRecordFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func statusForChatError(code domainerror.ChatErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmptyQuestion:
		return http.StatusBadRequest
	case domainerror.ErrCodeAdvisorUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
