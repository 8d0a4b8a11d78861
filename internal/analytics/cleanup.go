package analytics

import (
	"context"
	"log/slog"
	"time"
)

// CleanupInterval is how often a running server purges expired visits.
const CleanupInterval = 24 * time.Hour

// RunCleanup deletes expired visits immediately and then every interval
// until ctx is cancelled.
func (s *Store) RunCleanup(ctx context.Context, retention, interval time.Duration, logger *slog.Logger) {
	purge := func() {
		n, err := s.Cleanup(ctx, retention)
		switch {
		case err != nil && ctx.Err() == nil:
			logger.Warn("visit cleanup failed", "error", err)
		case n > 0:
			logger.Info("removed expired visits", "count", n)
		}
	}

	purge()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purge()
		}
	}
}
