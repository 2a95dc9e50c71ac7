// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrCacheMiss is returned when no cached value exists for the key.
var ErrCacheMiss = errors.New("cache miss")

// MetricsCache defines the interface for caching computed dashboard metrics.
// Cached payloads are opaque JSON blobs keyed by user.
type MetricsCache interface {
	// GetDashboard retrieves the cached dashboard payload for a user.
	// Returns ErrCacheMiss when nothing is cached.
	GetDashboard(ctx context.Context, userID uuid.UUID) ([]byte, error)

	// SetDashboard stores the dashboard payload for a user.
	SetDashboard(ctx context.Context, userID uuid.UUID, payload []byte) error

	// InvalidateDashboard drops the cached payload for a user.
	InvalidateDashboard(ctx context.Context, userID uuid.UUID) error
}
