package app

import (
	"context"
	"time"

	"gantry/internal/probe"
	"gantry/internal/state"
)

const defaultMonitorInterval = 2 * time.Second

// StartMonitor launches a background goroutine that keeps probing the
// backend's health at a fixed cadence once it is ready, recording results
// in the store. It returns immediately.
func StartMonitor(ctx context.Context, store *state.Store, prober probe.Prober, interval time.Duration) {
	if interval <= 0 {
		interval = defaultMonitorInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			store.Update(prober.Check(ctx))
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}
