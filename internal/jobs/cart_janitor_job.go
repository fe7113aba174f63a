package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"agrimarket/internal/core/application/cartsync"
)

// DefaultIdleThreshold is how long a buyer can stay inactive before their
// synchronizer is disposed. A disposed synchronizer is rebuilt on the
// buyer's next request, so eviction is invisible to a returning buyer.
const DefaultIdleThreshold = 30 * time.Minute

// CartJanitorJob periodically evicts idle cart synchronizers from the
// registry. Without it, every buyer who ever touched a cart would pin a
// synchronizer (and its debounce timers) for the life of the process.
type CartJanitorJob struct {
	registry      *cartsync.Registry
	idleThreshold time.Duration
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewCartJanitorJob creates the janitor. An idleThreshold of zero or less
// selects DefaultIdleThreshold.
func NewCartJanitorJob(registry *cartsync.Registry, idleThreshold time.Duration, logger *slog.Logger) *CartJanitorJob {
	if idleThreshold <= 0 {
		idleThreshold = DefaultIdleThreshold
	}

	return &CartJanitorJob{
		registry:      registry,
		idleThreshold: idleThreshold,
		cron:          cron.New(),
		logger:        logger.With("component", "cart_janitor_job"),
	}
}

// Start begins the janitor sweep, running once a minute.
func (j *CartJanitorJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		evicted := j.registry.EvictIdle(j.idleThreshold)
		if evicted > 0 {
			j.logger.InfoContext(ctx, "Evicted idle cart synchronizers",
				"evicted", evicted,
				"remaining", j.registry.Len())
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart janitor job started (running every minute)")
	return nil
}

// Stop stops the janitor job.
func (j *CartJanitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cart janitor job stopped")
}
