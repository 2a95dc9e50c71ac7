// Package finance contains use cases for managing financial records.
package finance

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-advisor/backend/internal/application/adapter"
	domainerror "github.com/finance-advisor/backend/internal/domain/error"
)

// validateRecordFields checks the fields shared by dated money records.
func validateRecordFields(amount decimal.Decimal, date time.Time, category string) error {
	if amount.IsNegative() {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeNegativeAmount,
			"amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}
	if date.IsZero() {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeMissingDate,
			"date is required",
			domainerror.ErrMissingDate,
		)
	}
	if strings.TrimSpace(category) == "" {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeMissingCategory,
			"category is required",
			domainerror.ErrMissingCategory,
		)
	}
	return nil
}

// invalidateDashboard drops the cached dashboard after a record mutation.
// A missing cache is not an error; the dashboard recomputes on demand.
func invalidateDashboard(ctx context.Context, cache adapter.MetricsCache, userID uuid.UUID) {
	if cache == nil {
		return
	}
	_ = cache.InvalidateDashboard(ctx, userID)
}
