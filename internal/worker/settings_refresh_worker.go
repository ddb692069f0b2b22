package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tapnex/store_api/internal/service"
)

// SettingsRefreshWorker keeps the site settings cache warm by refreshing it
// on a fixed interval. Failures are logged and retried on the next tick; the
// cached copy keeps serving in the meantime.
type SettingsRefreshWorker struct {
	settings *service.SettingsService
	interval time.Duration
}

func NewSettingsRefreshWorker(settings *service.SettingsService, interval time.Duration) *SettingsRefreshWorker {
	return &SettingsRefreshWorker{
		settings: settings,
		interval: interval,
	}
}

// Start runs the refresh loop until the context is cancelled. An immediate
// refresh warms the cache before the first tick.
func (w *SettingsRefreshWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Settings refresh worker started")

	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Settings refresh worker stopped")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *SettingsRefreshWorker) refresh(ctx context.Context) {
	refreshCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := w.settings.Refresh(refreshCtx); err != nil {
		log.Warn().Err(err).Msg("Settings refresh failed")
	}
}
