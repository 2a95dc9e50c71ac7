// Package scheduler runs periodic background jobs.
package scheduler

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/finance-advisor/backend/internal/application/adapter"
	"github.com/finance-advisor/backend/internal/application/usecase/dashboard"
)

// DashboardRefresher periodically recomputes dashboard metrics for every
// user and warms the cache, so interactive requests mostly hit Redis.
type DashboardRefresher struct {
	userRepository adapter.UserRepository
	assembler      *dashboard.SnapshotAssembler
	cache          adapter.MetricsCache
	cron           *cron.Cron
	jobTimeout     time.Duration
}

// NewDashboardRefresher creates a new dashboard refresher instance.
func NewDashboardRefresher(
	userRepository adapter.UserRepository,
	assembler *dashboard.SnapshotAssembler,
	cache adapter.MetricsCache,
) *DashboardRefresher {
	return &DashboardRefresher{
		userRepository: userRepository,
		assembler:      assembler,
		cache:          cache,
		cron:           cron.New(),
		jobTimeout:     5 * time.Minute,
	}
}

// Start registers the refresh job with the given cron spec and starts the
// scheduler. The job runs in the cron goroutine.
func (r *DashboardRefresher) Start(spec string) error {
	_, err := r.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.jobTimeout)
		defer cancel()
		r.RefreshAll(ctx)
	})
	if err != nil {
		return err
	}

	r.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (r *DashboardRefresher) Stop() {
	<-r.cron.Stop().Done()
}

// RefreshAll recomputes and caches the dashboard for every user. A failure
// for one user does not stop the sweep.
func (r *DashboardRefresher) RefreshAll(ctx context.Context) {
	userIDs, err := r.userRepository.ListIDs(ctx)
	if err != nil {
		slog.Error("dashboard refresh: failed to list users", "error", err)
		return
	}

	refreshed := 0
	for _, userID := range userIDs {
		snapshot, err := r.assembler.Load(ctx, userID, time.Now().UTC())
		if err != nil {
			slog.Error("dashboard refresh: failed to load snapshot", "user_id", userID, "error", err)
			continue
		}

		payload, err := json.Marshal(dashboard.Compute(snapshot))
		if err != nil {
			slog.Error("dashboard refresh: failed to marshal dashboard", "user_id", userID, "error", err)
			continue
		}

		if err := r.cache.SetDashboard(ctx, userID, payload); err != nil {
			slog.Error("dashboard refresh: failed to cache dashboard", "user_id", userID, "error", err)
			continue
		}
		refreshed++
	}

	slog.Info("dashboard refresh completed", "users", len(userIDs), "refreshed", refreshed)
}
