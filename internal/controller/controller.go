// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package controller implements the facade the two front-ends (the
// interactive dashboard and the scripted CLI) drive: connect/disconnect,
// the connection state machine, background task supervision, and the
// read/write surface over the reactive store and command processor.
package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ksc98/unifly-sub001/internal/command"
	"github.com/ksc98/unifly-sub001/internal/config"
	"github.com/ksc98/unifly-sub001/internal/domain"
	"github.com/ksc98/unifly-sub001/internal/errors"
	"github.com/ksc98/unifly-sub001/internal/logging"
	"github.com/ksc98/unifly-sub001/internal/metrics"
	"github.com/ksc98/unifly-sub001/internal/refresh"
	"github.com/ksc98/unifly-sub001/internal/store"
	"github.com/ksc98/unifly-sub001/internal/transport"
	"github.com/ksc98/unifly-sub001/internal/wsevents"
)

// maxWarnings bounds the non-fatal warning queue connect() accumulates;
// oldest entries are dropped once full rather than growing unbounded.
const maxWarnings = 32

// reconnectFailureThreshold is how many consecutive WebSocket connection
// failures the facade tolerates before transitioning Connected ->
// Reconnecting{1}, per the state machine's repeated-failure trigger.
const reconnectFailureThreshold = 3

// Controller is the facade every front-end drives. Build with New, then
// call Connect before using any other method; Disconnect tears down every
// background task and clears the store.
type Controller struct {
	cfg config.ControllerConfig
	log *logging.Logger

	ds        *store.DataStore
	metrics   *metrics.Collector
	processor *command.Processor

	integration *transport.IntegrationClient
	legacy      *transport.LegacyClient
	ws          *wsevents.Engine

	state *store.Watch[ConnectionState]

	mu       sync.Mutex
	warnings []string

	cancel context.CancelFunc
	tasks  sync.WaitGroup
}

// New builds a Controller in the Disconnected state. It performs no I/O;
// call Connect to authenticate and start background work.
func New(cfg config.ControllerConfig, log *logging.Logger) *Controller {
	if log == nil {
		log = logging.NewNop()
	}
	return &Controller{
		cfg:     cfg,
		log:     log.Named("controller"),
		ds:      store.NewDataStore(),
		metrics: metrics.NewCollector(),
		state:   store.NewWatch(disconnectedState()),
	}
}

// ConnectionState returns the current connection state.
func (c *Controller) ConnectionState() ConnectionState { return c.state.Get() }

// SubscribeConnectionState yields the connection state on every
// transition.
func (c *Controller) SubscribeConnectionState() (<-chan ConnectionState, func()) {
	return c.state.Subscribe()
}

// TakeWarnings drains and returns every non-fatal warning accumulated
// since the last call.
func (c *Controller) TakeWarnings() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	w := c.warnings
	c.warnings = nil
	return w
}

func (c *Controller) warn(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.log.Warnw("connect warning", "message", msg)
	if len(c.warnings) >= maxWarnings {
		c.warnings = c.warnings[1:]
	}
	c.warnings = append(c.warnings, msg)
}

// Connect authenticates against the controller, runs the initial bulk
// load, and spawns every background task the configuration enables. On a
// fatal error the state transitions to Failed and the error is returned;
// non-fatal setup problems (e.g. a Hybrid config whose legacy leg failed
// to authenticate) are recorded via TakeWarnings instead of failing the
// whole connect.
func (c *Controller) Connect(ctx context.Context) error {
	c.state.Set(connectingState())

	if err := c.buildClients(ctx); err != nil {
		c.state.Set(failedState())
		return err
	}

	snap, err := c.fetchSnapshot(ctx)
	if err != nil {
		c.state.Set(failedState())
		return err
	}
	refresh.Apply(c.ds, snap)
	c.updateEntityMetrics()

	c.processor = command.NewProcessor(c.integration, c.legacy, c.ds, c.log)

	taskCtx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	c.tasks.Add(1)
	go c.runProcessor(taskCtx)

	if c.cfg.RefreshIntervalSecs > 0 {
		c.tasks.Add(1)
		go c.runRefreshTask(taskCtx)
	}
	if c.legacy != nil {
		interval := c.cfg.ClientPollInterval
		if interval <= 0 {
			interval = 2 * time.Second
		}
		c.tasks.Add(1)
		go c.runClientPollTask(taskCtx, interval)

		if c.cfg.DeviceStatsPollInterval > 0 {
			c.tasks.Add(1)
			go c.runDeviceStatsPollTask(taskCtx, c.cfg.DeviceStatsPollInterval)
		}
		if c.cfg.BandwidthPollInterval > 0 {
			c.tasks.Add(1)
			go c.runBandwidthPollTask(taskCtx, c.cfg.BandwidthPollInterval)
		}
	}
	if c.cfg.WebSocketEnabled && c.legacy != nil && c.legacy.Platform() != transport.PlatformCloud {
		c.startWebSocket(taskCtx)
	} else if c.cfg.WebSocketEnabled && (c.legacy == nil || c.legacy.Platform() == transport.PlatformCloud) {
		c.warn("websocket disabled: cloud/API-key-only controllers have no event stream")
	}

	c.state.Set(connectedState())
	return nil
}

// buildClients authenticates against the configured backends and detects
// platform when legacy is in play. DetectPlatform only ever reports UniFi
// OS or Classic Controller, so no Cloud-platform check is made here; the
// ApiKey and Cloud strategies build the Integration client alone.
func (c *Controller) buildClients(ctx context.Context) error {
	tc, err := transport.NewTransportConfig(c.cfg)
	if err != nil {
		return err
	}

	needsLegacy := c.cfg.Auth.Strategy == config.AuthCredentials || c.cfg.Auth.Strategy == config.AuthHybrid
	needsIntegration := c.cfg.Auth.Strategy == config.AuthApiKey || c.cfg.Auth.Strategy == config.AuthHybrid || c.cfg.Auth.Strategy == config.AuthCloud

	if needsIntegration {
		ic, err := transport.NewIntegrationClient(c.cfg.URL, c.site(), c.cfg.Auth.ApiKey.Expose(), tc, c.log)
		if err != nil {
			return err
		}
		c.integration = ic
	}

	if needsLegacy {
		platform, err := transport.DetectPlatform(ctx, c.cfg.URL, c.cfg.TLS.Mode == config.TlsSkipVerification)
		if err != nil {
			return err
		}
		lc, err := transport.NewLegacyClient(c.cfg.URL, c.site(), platform, tc, c.log)
		if err != nil {
			return err
		}
		if err := lc.Login(ctx, c.cfg.Auth.Username, c.cfg.Auth.Password.Expose()); err != nil {
			if c.cfg.Auth.Strategy == config.AuthHybrid {
				c.warn("hybrid mode: legacy authentication failed; stats/events unavailable")
			} else {
				return err
			}
		} else {
			c.legacy = lc
		}
	}

	if c.integration == nil && c.legacy == nil {
		return errors.Authentication("no usable authentication strategy configured")
	}
	return nil
}

func (c *Controller) site() string {
	if c.cfg.Site == "" {
		return "default"
	}
	return c.cfg.Site
}

func (c *Controller) startWebSocket(ctx context.Context) {
	url, ok := c.legacy.WebSocketURL()
	if !ok {
		c.warn("websocket unsupported on this platform")
		return
	}
	cookie := c.legacy.CookieHeader()
	reconnect := wsevents.DefaultReconnectConfig()
	if c.cfg.MaxReconnectAttempts > 0 {
		reconnect.MaxRetries = uint32(c.cfg.MaxReconnectAttempts)
	}
	c.metrics.SetWsConnected(true)
	c.ws = wsevents.Connect(ctx, url, cookie, reconnect, c.ds, c.log, c.onWebSocketStateChange)
}

// onWebSocketStateChange mirrors the event websocket's own reconnect loop
// into the facade's connection state machine: a clean/successful connect
// returns to Connected, and reconnectFailureThreshold consecutive failed
// attempts escalates Connected -> Reconnecting{1}, and each further failed
// attempt bumps it to Reconnecting{2}, {3}, and so on. The facade never
// falls back to Failed from here; wsevents itself keeps retrying forever
// (or up to MaxReconnectAttempts, at which point it simply stops).
func (c *Controller) onWebSocketStateChange(attempt uint32, connected bool) {
	c.metrics.SetWsConnected(connected)
	if connected {
		if c.state.Get().Phase == Reconnecting {
			c.state.Set(connectedState())
		}
		return
	}

	c.metrics.RecordWsReconnect()
	if attempt < reconnectFailureThreshold {
		return
	}
	if c.state.Get().Phase == Connected || c.state.Get().Phase == Reconnecting {
		c.state.Set(reconnectingState(int(attempt - reconnectFailureThreshold + 1)))
	}
}

// Disconnect cancels every background task, awaits their shutdown,
// attempts a best-effort legacy logout, and clears the store.
func (c *Controller) Disconnect(ctx context.Context) {
	if c.cancel != nil {
		c.cancel()
	}
	if c.ws != nil {
		c.ws.Shutdown()
	}
	c.tasks.Wait()

	if c.legacy != nil {
		c.legacy.Logout(ctx)
	}
	c.ds.Clear()
	c.metrics.SetWsConnected(false)
	c.state.Set(disconnectedState())
}

// Execute dispatches cmd through the command processor and blocks for its
// result, recording latency and outcome metrics.
func (c *Controller) Execute(ctx context.Context, cmd command.Command) (command.Result, error) {
	start := time.Now()
	result, err := c.processor.Execute(ctx, cmd)
	c.metrics.ObserveCommand(commandName(cmd), time.Since(start), err)
	return result, err
}

// Events returns the live event broadcast subscription.
func (c *Controller) Events() (<-chan store.Delivery[domain.Event], func()) {
	return c.ds.SubscribeEvents()
}

// Store exposes the underlying reactive store for per-entity snapshot and
// subscription access (e.g. c.Store().DevicesSnapshot()).
func (c *Controller) Store() *store.DataStore { return c.ds }

func (c *Controller) updateEntityMetrics() {
	c.metrics.UpdateEntityCounts(map[string]int{
		"devices":                len(c.ds.Devices.Keys()),
		"clients":                len(c.ds.Clients.Keys()),
		"networks":               len(c.ds.Networks.Keys()),
		"wifi_broadcasts":        len(c.ds.WifiBroadcasts.Keys()),
		"firewall_zones":         len(c.ds.FirewallZones.Keys()),
		"firewall_policies":      len(c.ds.FirewallPolicies.Keys()),
		"acl_rules":              len(c.ds.AclRules.Keys()),
		"dns_policies":           len(c.ds.DnsPolicies.Keys()),
		"vouchers":               len(c.ds.Vouchers.Keys()),
		"sites":                  len(c.ds.Sites.Keys()),
		"traffic_matching_lists": len(c.ds.TrafficMatchingLists.Keys()),
	})
}

// Metrics exposes the Prometheus collector for the embedding application
// to register with its own registry.
func (c *Controller) Metrics() *metrics.Collector { return c.metrics }

func commandName(cmd command.Command) string {
	return fmt.Sprintf("%T", cmd)
}

// Oneshot builds a single-use Controller with the WebSocket, the periodic
// refresh, and the device-stats and bandwidth polls disabled, connects it,
// runs f, and disconnects unconditionally before returning. The legacy
// client poll is not disabled and still runs while f does when legacy auth
// is in play. Used by the scripted CLI entrypoint, which issues one command
// (or a short batch) per process invocation and has no use for a live
// event stream or a background refresh loop that would outlive it.
func Oneshot(ctx context.Context, cfg config.ControllerConfig, log *logging.Logger, f func(*Controller) error) error {
	cfg.WebSocketEnabled = false
	cfg.RefreshIntervalSecs = 0
	cfg.DeviceStatsPollInterval = 0
	cfg.BandwidthPollInterval = 0

	ctrl := New(cfg, log)
	if err := ctrl.Connect(ctx); err != nil {
		return err
	}
	defer ctrl.Disconnect(ctx)
	return f(ctrl)
}
