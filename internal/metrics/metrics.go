// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package metrics holds the controller facade's Prometheus instrumentation:
// refresh cycle counts and latency, command outcomes and latency, WebSocket
// connection state and reconnects, and per-entity-type collection sizes.
// Nothing in this package starts an HTTP server; an embedding application
// registers the Collector with its own registry if it wants one exposed.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds every metric the controller facade emits.
type Collector struct {
	RefreshTotal    prometheus.Counter
	RefreshFailures prometheus.Counter
	RefreshDuration prometheus.Histogram

	CommandTotal    *prometheus.CounterVec
	CommandDuration *prometheus.HistogramVec

	WsConnected   prometheus.Gauge
	WsReconnects  prometheus.Counter
	WsEventsTotal *prometheus.CounterVec

	EntityCount *prometheus.GaugeVec
}

// NewCollector builds a Collector. Metric names are not yet registered
// with any registry; call Register or pass the Collector to a
// prometheus.Registerer yourself.
func NewCollector() *Collector {
	return &Collector{
		RefreshTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "unifi_refresh_total",
			Help: "Total number of full bulk-refresh cycles attempted.",
		}),
		RefreshFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "unifi_refresh_failures_total",
			Help: "Total number of full bulk-refresh cycles that returned a hard error.",
		}),
		RefreshDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "unifi_refresh_duration_seconds",
			Help:    "Duration of a full bulk-refresh cycle.",
			Buckets: prometheus.DefBuckets,
		}),

		CommandTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "unifi_command_total",
			Help: "Total number of commands dispatched, by command name and outcome.",
		}, []string{"command", "outcome"}),
		CommandDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "unifi_command_duration_seconds",
			Help:    "Duration of a dispatched command's execution, by command name.",
			Buckets: prometheus.DefBuckets,
		}, []string{"command"}),

		WsConnected: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "unifi_ws_connected",
			Help: "Whether the event WebSocket is currently connected (1) or not (0).",
		}),
		WsReconnects: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "unifi_ws_reconnects_total",
			Help: "Total number of times the event WebSocket has reconnected.",
		}),
		WsEventsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "unifi_ws_events_total",
			Help: "Total number of events received over the WebSocket, by category.",
		}, []string{"category"}),

		EntityCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "unifi_entity_count",
			Help: "Current number of entities held in the in-memory store, by entity type.",
		}, []string{"entity_type"}),
	}
}

// ObserveRefresh records the outcome and duration of one full bulk-refresh
// cycle.
func (c *Collector) ObserveRefresh(d time.Duration, err error) {
	c.RefreshTotal.Inc()
	if err != nil {
		c.RefreshFailures.Inc()
	}
	c.RefreshDuration.Observe(d.Seconds())
}

// ObserveCommand records the outcome and duration of one dispatched
// command.
func (c *Collector) ObserveCommand(name string, d time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.CommandTotal.WithLabelValues(name, outcome).Inc()
	c.CommandDuration.WithLabelValues(name).Observe(d.Seconds())
}

// SetWsConnected reports the current WebSocket connection state.
func (c *Collector) SetWsConnected(connected bool) {
	if connected {
		c.WsConnected.Set(1)
		return
	}
	c.WsConnected.Set(0)
}

// RecordWsReconnect counts one WebSocket reconnect attempt.
func (c *Collector) RecordWsReconnect() {
	c.WsReconnects.Inc()
}

// RecordWsEvent counts one event received over the WebSocket.
func (c *Collector) RecordWsEvent(category string) {
	c.WsEventsTotal.WithLabelValues(category).Inc()
}

// SetEntityCount reports the current size of one entity-type collection.
func (c *Collector) SetEntityCount(entityType string, count int) {
	c.EntityCount.WithLabelValues(entityType).Set(float64(count))
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.RefreshTotal.Describe(ch)
	c.RefreshFailures.Describe(ch)
	c.RefreshDuration.Describe(ch)
	c.CommandTotal.Describe(ch)
	c.CommandDuration.Describe(ch)
	c.WsConnected.Describe(ch)
	c.WsReconnects.Describe(ch)
	c.WsEventsTotal.Describe(ch)
	c.EntityCount.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.RefreshTotal.Collect(ch)
	c.RefreshFailures.Collect(ch)
	c.RefreshDuration.Collect(ch)
	c.CommandTotal.Collect(ch)
	c.CommandDuration.Collect(ch)
	c.WsConnected.Collect(ch)
	c.WsReconnects.Collect(ch)
	c.WsEventsTotal.Collect(ch)
	c.EntityCount.Collect(ch)
}

// Register registers c with reg. Passing nil registers against the
// default global registry, matching the teacher's RegisterMetrics.
func (c *Collector) Register(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return reg.Register(c)
}

// UpdateEntityCounts reports every collection size in counts against
// EntityCount in one call, for a caller that already has the full tally
// (e.g. the controller facade after a refresh cycle).
func (c *Collector) UpdateEntityCounts(counts map[string]int) {
	for entityType, n := range counts {
		c.SetEntityCount(entityType, n)
	}
}
