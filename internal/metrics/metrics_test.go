// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatherNames(t *testing.T, reg *prometheus.Registry) map[string]bool {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	return names
}

func TestRegisterExposesAllMetrics(t *testing.T) {
	c := NewCollector()
	reg := prometheus.NewRegistry()
	require.NoError(t, c.Register(reg))

	c.ObserveRefresh(250*time.Millisecond, nil)
	c.ObserveCommand("RestartDevice", 10*time.Millisecond, nil)
	c.SetWsConnected(true)
	c.RecordWsReconnect()
	c.RecordWsEvent("device")
	c.SetEntityCount("devices", 12)

	names := gatherNames(t, reg)
	for _, want := range []string{
		"unifi_refresh_total",
		"unifi_refresh_failures_total",
		"unifi_refresh_duration_seconds",
		"unifi_command_total",
		"unifi_command_duration_seconds",
		"unifi_ws_connected",
		"unifi_ws_reconnects_total",
		"unifi_ws_events_total",
		"unifi_entity_count",
	} {
		assert.Truef(t, names[want], "expected metric %s to be registered", want)
	}
}

func TestObserveRefreshCountsFailures(t *testing.T) {
	c := NewCollector()
	reg := prometheus.NewRegistry()
	require.NoError(t, c.Register(reg))

	c.ObserveRefresh(time.Second, nil)
	c.ObserveRefresh(time.Second, errors.New("boom"))

	assert.Equal(t, float64(2), testCounterValue(t, c.RefreshTotal))
	assert.Equal(t, float64(1), testCounterValue(t, c.RefreshFailures))
}

func TestObserveCommandLabelsOutcome(t *testing.T) {
	c := NewCollector()
	reg := prometheus.NewRegistry()
	require.NoError(t, c.Register(reg))

	c.ObserveCommand("RebootController", time.Millisecond, nil)
	c.ObserveCommand("RebootController", time.Millisecond, errors.New("fail"))

	assert.Equal(t, float64(1), testCounterValue(t, c.CommandTotal.WithLabelValues("RebootController", "ok")))
	assert.Equal(t, float64(1), testCounterValue(t, c.CommandTotal.WithLabelValues("RebootController", "error")))
}

func TestUpdateEntityCountsSetsEachLabel(t *testing.T) {
	c := NewCollector()
	c.UpdateEntityCounts(map[string]int{"devices": 3, "clients": 7})

	assert.Equal(t, float64(3), testGaugeValue(t, c.EntityCount.WithLabelValues("devices")))
	assert.Equal(t, float64(7), testGaugeValue(t, c.EntityCount.WithLabelValues("clients")))
}

func testCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func testGaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, g.Write(&m))
	return m.GetGauge().GetValue()
}
