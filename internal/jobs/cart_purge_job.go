package jobs

import (
	"context"
	"log/slog"
	"time"

	"restaurant/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CartPurgeJob periodically deletes cart lines abandoned past the retention
// window. Carts are working state, not committed orders, so sweeping stale
// lines keeps price snapshots from drifting weeks behind the menu.
type CartPurgeJob struct {
	handler   commands.PurgeAbandonedCartsCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewCartPurgeJob creates an hourly job purging carts idle longer than
// retention.
func NewCartPurgeJob(
	handler commands.PurgeAbandonedCartsCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *CartPurgeJob {
	return &CartPurgeJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.With("component", "cart_purge_job"),
	}
}

// Start schedules the purge to run at the top of every hour.
func (j *CartPurgeJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewPurgeAbandonedCartsCommand(time.Now().Add(-j.retention))
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Cart purge job failed to build command", "error", cmdErr)
			return
		}

		purged, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Cart purge job failed", "error", handleErr)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Purged abandoned cart lines", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart purge job started (running hourly)")
	return nil
}

// Stop stops the cart purge job.
func (j *CartPurgeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cart purge job stopped")
}
