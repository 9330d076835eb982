// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package refresh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksc98/unifly-sub001/internal/domain"
	"github.com/ksc98/unifly-sub001/internal/store"
)

func intPtr(i int) *int { return &i }

// E4: refresh prune preserves stats.
func TestApplyPreservesDeviceStatsAndPrunesMissingKeys(t *testing.T) {
	ds := store.NewDataStore()

	idAA := domain.NewEntityId("AA")
	idBB := domain.NewEntityId("BB")
	idCC := domain.NewEntityId("CC")

	ds.Devices.Upsert("aa", idAA, domain.Device{ID: idAA, Mac: "aa", Stats: domain.DeviceStats{CpuUtilizationPct: floatPtr(42)}})
	ds.Devices.Upsert("cc", idCC, domain.Device{ID: idCC, Mac: "cc"})

	Apply(ds, Snapshot{
		Devices: []domain.Device{
			{ID: idAA, Mac: "aa"},
			{ID: idBB, Mac: "bb"},
		},
	})

	aa, ok := ds.Devices.Get("aa")
	require.True(t, ok)
	require.NotNil(t, aa.Stats.CpuUtilizationPct)
	assert.Equal(t, float64(42), *aa.Stats.CpuUtilizationPct)

	_, ok = ds.Devices.Get("bb")
	assert.True(t, ok, "a newly-seen device must be present after refresh")

	_, ok = ds.Devices.Get("cc")
	assert.False(t, ok, "a device absent from the incoming snapshot must be pruned")
}

func TestApplyNeverTouchesClients(t *testing.T) {
	ds := store.NewDataStore()
	id := domain.NewEntityId("client-1")
	ds.Clients.Upsert("client-1", id, domain.Client{ID: id, Mac: "aa:bb:cc:dd:ee:ff"})

	Apply(ds, Snapshot{Devices: []domain.Device{{ID: domain.NewEntityId("dev-1"), Mac: "dev-1"}}})

	_, ok := ds.Clients.Get("client-1")
	assert.True(t, ok, "apply must never prune or modify the client collection")
}

func TestApplyMarksLastFullRefresh(t *testing.T) {
	ds := store.NewDataStore()
	before := ds.LastFullRefresh.Get()

	Apply(ds, Snapshot{})

	assert.True(t, ds.LastFullRefresh.Get().After(before))
}

func TestApplyUpsertsNetworksWifiAndFirewallPolicies(t *testing.T) {
	ds := store.NewDataStore()
	netID := domain.NewEntityId("net-1")
	wifiID := domain.NewEntityId("wifi-1")
	policyID := domain.NewEntityId("policy-1")

	Apply(ds, Snapshot{
		Networks: []domain.Network{{ID: netID, Name: "LAN"}},
		Wifi:     []domain.WifiBroadcast{{ID: wifiID, Name: "home"}},
		Policies: []domain.FirewallPolicy{{ID: policyID, Name: "block-guest"}},
	})

	_, ok := ds.Networks.GetByID(netID)
	assert.True(t, ok)
	_, ok = ds.WifiBroadcasts.GetByID(wifiID)
	assert.True(t, ok)
	_, ok = ds.FirewallPolicies.GetByID(policyID)
	assert.True(t, ok)
}

func floatPtr(f float64) *float64 { return &f }
