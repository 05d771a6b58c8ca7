package app

import (
	"context"
	"time"

	"github.com/mverhoef/folio/internal/common"
	"github.com/mverhoef/folio/internal/interfaces"
)

// startPriceScheduler refreshes stored position prices on a fixed interval.
// Closed positions are never touched; a failed tick is logged and retried on
// the next interval.
func startPriceScheduler(ctx context.Context, trackerService interfaces.TrackerService, logger *common.Logger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info().Dur("interval", interval).Msg("Price scheduler: started")

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Price scheduler: stopped")
			return
		case <-ticker.C:
			start := time.Now()
			if err := trackerService.RefreshPrices(ctx); err != nil {
				logger.Warn().Err(err).Msg("Price refresh: failed")
				continue
			}
			logger.Debug().Dur("elapsed", time.Since(start)).Msg("Price refresh: complete")
		}
	}
}
