package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MrSnakeDoc/bookmarks/internal/logger"
	"github.com/MrSnakeDoc/bookmarks/internal/metrics"
	"github.com/MrSnakeDoc/bookmarks/internal/store"
)

// StatsRefresher periodically copies the store size into the bookmarks_stored gauge.
// With a shared backend other instances mutate the collection, so the value set
// by local handlers drifts between refreshes.
type StatsRefresher struct {
	store    store.Store
	logger   logger.Logger
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewStatsRefresher creates a refresher ticking every interval.
func NewStatsRefresher(s store.Store, log logger.Logger, interval time.Duration) *StatsRefresher {
	return &StatsRefresher{
		store:    s,
		logger:   log,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start refreshes once, then keeps refreshing in the background until Stop or ctx is done.
func (sr *StatsRefresher) Start(ctx context.Context) error {
	if sr.interval <= 0 {
		return fmt.Errorf("stats refresh interval must be > 0, got %v", sr.interval)
	}

	if _, err := sr.Refresh(ctx); err != nil {
		sr.logger.Warn("initial stats refresh failed", logger.Error(err))
	}

	ticker := time.NewTicker(sr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if _, err := sr.Refresh(ctx); err != nil {
					sr.logger.Error("stats refresh failed", logger.Error(err))
				}
			case <-sr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the refresher. Safe to call more than once.
func (sr *StatsRefresher) Stop() {
	sr.stopOnce.Do(func() { close(sr.stopCh) })
}

// Refresh reads the store size and publishes it.
func (sr *StatsRefresher) Refresh(ctx context.Context) (int, error) {
	n, err := sr.store.Len(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookmarks: %w", err)
	}

	metrics.BookmarksStored.Set(float64(n))
	sr.logger.Debug("bookmark stats refreshed", logger.Int("count", n))
	return n, nil
}
