// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package wsevents

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksc98/unifly-sub001/internal/logging"
	"github.com/ksc98/unifly-sub001/internal/store"
)

func TestDefaultReconnectConfig(t *testing.T) {
	cfg := DefaultReconnectConfig()
	assert.Equal(t, time.Second, cfg.InitialDelay)
	assert.Equal(t, 30*time.Second, cfg.MaxDelay)
	assert.Zero(t, cfg.MaxRetries)
}

func TestBackoffIncreasesExponentially(t *testing.T) {
	cfg := DefaultReconnectConfig()

	d0 := calculateBackoff(0, cfg)
	d1 := calculateBackoff(1, cfg)
	d2 := calculateBackoff(2, cfg)

	assert.Greater(t, d1, d0)
	assert.Greater(t, d2, d1)
}

func TestBackoffCapsAtMaxDelay(t *testing.T) {
	cfg := ReconnectConfig{InitialDelay: time.Second, MaxDelay: 10 * time.Second}

	d10 := calculateBackoff(10, cfg)
	assert.LessOrEqual(t, d10, 13*time.Second)
}

// E5: typed event frame decodes and publishes.
func TestParseAndPublishEventsMessage(t *testing.T) {
	ds := store.NewDataStore()
	log := logging.NewNop()

	rx, unsubscribe := ds.SubscribeEvents()
	defer unsubscribe()

	raw := []byte(`{
		"meta": {"rc": "ok", "message": "events"},
		"data": [{
			"key": "EVT_WU_Connected",
			"subsystem": "sta",
			"site_id": "default",
			"msg": "Client connected",
			"user": "aa:bb:cc:dd:ee:ff"
		}]
	}`)

	parseAndPublish(raw, ds, log)

	delivery := <-rx
	require.NotNil(t, delivery.Value.ClientMac)
	assert.Equal(t, "EVT_WU_Connected", delivery.Value.EventType)
	assert.Equal(t, "Client connected", delivery.Value.Message)
}

// E6: sync dump frames fall back to a synthetic event keyed by message type.
func TestParseAndPublishSyncMessage(t *testing.T) {
	ds := store.NewDataStore()
	log := logging.NewNop()

	rx, unsubscribe := ds.SubscribeEvents()
	defer unsubscribe()

	raw := []byte(`{
		"meta": {"rc": "ok", "message": "device:sync"},
		"data": [{"mac": "aa:bb:cc:dd:ee:ff", "state": 1, "site_id": "site1"}]
	}`)

	parseAndPublish(raw, ds, log)

	delivery := <-rx
	assert.Equal(t, "device:sync", delivery.Value.EventType)
	require.NotNil(t, delivery.Value.DeviceMac)
	require.NotNil(t, delivery.Value.SiteID)
}

func TestParseAndPublishMalformedJSONDoesNotPanic(t *testing.T) {
	ds := store.NewDataStore()
	log := logging.NewNop()

	assert.NotPanics(t, func() {
		parseAndPublish([]byte("not json at all"), ds, log)
	})
	assert.Empty(t, ds.EventLogSnapshot())
}

func TestNotifyStateCallsHookWhenSet(t *testing.T) {
	var calls []struct {
		attempt   uint32
		connected bool
	}
	e := &Engine{
		OnStateChange: func(attempt uint32, connected bool) {
			calls = append(calls, struct {
				attempt   uint32
				connected bool
			}{attempt, connected})
		},
	}

	e.notifyState(0, true)
	e.notifyState(2, false)

	require.Len(t, calls, 2)
	assert.True(t, calls[0].connected)
	assert.Equal(t, uint32(2), calls[1].attempt)
	assert.False(t, calls[1].connected)
}

func TestNotifyStateNoopWhenHookUnset(t *testing.T) {
	e := &Engine{}
	assert.NotPanics(t, func() { e.notifyState(0, true) })
}

func TestEventFromRawCapturesKnownFields(t *testing.T) {
	raw := json.RawMessage(`{
		"key": "EVT_SW_Disconnected",
		"subsystem": "lan",
		"site_id": "default",
		"message": "Switch lost contact",
		"datetime": "2026-02-10T13:00:00Z"
	}`)

	ev := eventFromRaw("events", raw)
	assert.Equal(t, "EVT_SW_Disconnected", ev.EventType)
	assert.Equal(t, "Switch lost contact", ev.Message)
	assert.Equal(t, 2026, ev.Timestamp.Year())
}
