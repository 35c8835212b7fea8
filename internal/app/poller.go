package app

import (
	"context"
	"log/slog"
	"time"
)

// Refresher is satisfied by Synchronizer.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Poller refreshes the state container at a fixed interval.
type Poller struct {
	refresher Refresher
	interval  time.Duration
	logger    *slog.Logger
}

// NewPoller creates a Poller. A non-positive interval disables it: Run then
// returns immediately.
func NewPoller(refresher Refresher, interval time.Duration, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Poller{refresher: refresher, interval: interval, logger: logger}
}

// Enabled reports whether the poller has a positive interval.
func (p *Poller) Enabled() bool {
	return p.interval > 0
}

// Run refreshes once per interval until ctx is done. The first refresh
// happens one interval after Run starts; callers do the initial fetch
// themselves. Failures are logged and polling continues.
func (p *Poller) Run(ctx context.Context) {
	if !p.Enabled() {
		return
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.refresher.Refresh(ctx); err != nil && ctx.Err() == nil {
				p.logger.WarnContext(ctx, "periodic refresh failed",
					slog.String("operation", "Poller.Run"),
					slog.Duration("interval", p.interval),
					slog.Any("error", err),
				)
			}
		}
	}
}
