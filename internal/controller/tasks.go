// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package controller

import (
	"context"
	"time"

	"github.com/ksc98/unifly-sub001/internal/refresh"
)

// runProcessor drains the command queue until ctx is cancelled. Exactly
// one of these runs per Controller.
func (c *Controller) runProcessor(ctx context.Context) {
	defer c.tasks.Done()
	c.processor.Run(ctx)
}

// runRefreshTask repeats the full bulk-load-and-apply cycle on
// RefreshIntervalSecs until ctx is cancelled. A failed cycle is logged
// and counted, not fatal — the store simply keeps its last-known-good
// state until the next tick succeeds.
func (c *Controller) runRefreshTask(ctx context.Context) {
	defer c.tasks.Done()
	interval := time.Duration(c.cfg.RefreshIntervalSecs) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			start := time.Now()
			snap, err := c.fetchSnapshot(ctx)
			if err != nil {
				c.log.Warnw("refresh cycle failed", "error", err)
				c.metrics.ObserveRefresh(time.Since(start), err)
				continue
			}
			refresh.Apply(c.ds, snap)
			c.updateEntityMetrics()
			c.metrics.ObserveRefresh(time.Since(start), nil)
		}
	}
}

// runClientPollTask repeats the legacy connected-client fetch on the
// configured cadence until ctx is cancelled.
func (c *Controller) runClientPollTask(ctx context.Context, interval time.Duration) {
	defer c.tasks.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.pollClients(ctx); err != nil {
				c.log.Warnw("client poll failed", "error", err)
			}
		}
	}
}

// runDeviceStatsPollTask repeats the device resource-utilization merge on
// the configured cadence until ctx is cancelled.
func (c *Controller) runDeviceStatsPollTask(ctx context.Context, interval time.Duration) {
	defer c.tasks.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.pollDeviceStats(ctx); err != nil {
				c.log.Warnw("device stats poll failed", "error", err)
			}
		}
	}
}

// runBandwidthPollTask repeats the device uplink-throughput merge on the
// configured cadence until ctx is cancelled.
func (c *Controller) runBandwidthPollTask(ctx context.Context, interval time.Duration) {
	defer c.tasks.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.pollBandwidth(ctx); err != nil {
				c.log.Warnw("bandwidth poll failed", "error", err)
			}
		}
	}
}
