// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ksc98/unifly-sub001/internal/wire"
)

func strRef(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestInferDeviceTypeFromLegacyTypeField(t *testing.T) {
	assert.Equal(t, DeviceTypeAccessPoint, inferDeviceType("uap", nil))
	assert.Equal(t, DeviceTypeSwitch, inferDeviceType("usw", nil))
	assert.Equal(t, DeviceTypeGateway, inferDeviceType("ugw", nil))
	assert.Equal(t, DeviceTypeGateway, inferDeviceType("udm", nil))
}

func TestInferDeviceTypeFromModelFallback(t *testing.T) {
	assert.Equal(t, DeviceTypeAccessPoint, inferDeviceType("unknown", strRef("UAP-AC-Pro")))
	assert.Equal(t, DeviceTypeAccessPoint, inferDeviceType("unknown", strRef("U6-LR")))
	assert.Equal(t, DeviceTypeSwitch, inferDeviceType("unknown", strRef("USW-24-PoE")))
	assert.Equal(t, DeviceTypeGateway, inferDeviceType("unknown", strRef("UDM-Pro")))
	assert.Equal(t, DeviceTypeOther, inferDeviceType("unknown", strRef("Z-100")))
}

func TestMapDeviceState(t *testing.T) {
	assert.Equal(t, DeviceStateOffline, mapDeviceState(0))
	assert.Equal(t, DeviceStateOnline, mapDeviceState(1))
	assert.Equal(t, DeviceStatePendingAdoption, mapDeviceState(2))
	assert.Equal(t, DeviceStateUpdating, mapDeviceState(4))
	assert.Equal(t, DeviceStateGettingReady, mapDeviceState(5))
	assert.Equal(t, DeviceStateUnknown, mapDeviceState(99))
}

func TestChannelToFrequencyBands(t *testing.T) {
	assert.Equal(t, float32(2.4), *channelToFrequency(intPtr(6)))
	assert.Equal(t, float32(5.0), *channelToFrequency(intPtr(36)))
	assert.Equal(t, float32(5.0), *channelToFrequency(intPtr(149)))
	assert.Nil(t, channelToFrequency(nil))
}

func TestLegacySiteUsesDescAsDisplayName(t *testing.T) {
	site := wire.LegacySite{ID: "abc123", Name: "default", Desc: strRef("Main Office")}
	converted := SiteFromLegacy(site)
	assert.Equal(t, "default", converted.InternalName)
	assert.Equal(t, "Main Office", converted.Name)
}

func TestLegacySiteFallsBackToNameWhenDescEmpty(t *testing.T) {
	site := wire.LegacySite{ID: "abc123", Name: "branch-1", Desc: strRef("")}
	converted := SiteFromLegacy(site)
	assert.Equal(t, "branch-1", converted.Name)
}

func TestMapEventCategory(t *testing.T) {
	assert.Equal(t, EventCategoryNetwork, mapEventCategory(strRef("wlan")))
	assert.Equal(t, EventCategoryDevice, mapEventCategory(strRef("device")))
	assert.Equal(t, EventCategoryAdmin, mapEventCategory(strRef("admin")))
	assert.Equal(t, EventCategoryUnknown, mapEventCategory(nil))
}

func TestEventFromAlarmIsAlwaysWarningSystem(t *testing.T) {
	alarm := wire.LegacyAlarm{ID: "alarm1", Key: strRef("EVT_AP_Lost"), Msg: strRef("AP lost contact")}
	ev := EventFromAlarm(alarm)
	assert.Equal(t, EventSeverityWarning, ev.Severity)
	assert.Equal(t, EventCategorySystem, ev.Category)
	assert.Equal(t, "EVT_AP_Lost", ev.EventType)
}

func TestNewEntityIdPrefersUUIDVariant(t *testing.T) {
	id := NewEntityId("550e8400-e29b-41d4-a716-446655440000")
	assert.True(t, id.IsUUID())
	assert.Equal(t, EntityIdUUID, id.Kind())
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
}

func TestNewEntityIdFallsBackToLegacyVariant(t *testing.T) {
	id := NewEntityId("507f1f77bcf86cd799439011")
	assert.False(t, id.IsUUID())
	assert.Equal(t, EntityIdLegacy, id.Kind())
	assert.Equal(t, "507f1f77bcf86cd799439011", id.String())
}

func TestNewMacAddressNormalizes(t *testing.T) {
	assert.Equal(t, MacAddress("aa:bb:cc:dd:ee:ff"), NewMacAddress("AA-BB-CC-DD-EE-FF"))
	assert.Equal(t, MacAddress("aa:bb:cc:dd:ee:ff"), NewMacAddress("AA:BB:CC:DD:EE:FF"))
}

func TestDeviceFromLegacyComputesMemoryUtilization(t *testing.T) {
	memTotal := int64(1000)
	memUsed := int64(250)
	d := wire.LegacyDevice{
		ID: "dev1", Mac: "AA-BB-CC-DD-EE-FF", DeviceType: "usw",
		SysStats: &wire.LegacySysStats{MemTotal: &memTotal, MemUsed: &memUsed},
	}
	converted := DeviceFromLegacy(d)
	assert.Equal(t, DeviceTypeSwitch, converted.DeviceType)
	assert.True(t, converted.HasSwitching)
	assert.Equal(t, MacAddress("aa:bb:cc:dd:ee:ff"), converted.Mac)
	assert.InDelta(t, 25.0, *converted.Stats.MemoryUtilizationPct, 0.0001)
}

func TestClientFromLegacyWiredHasNoWirelessInfo(t *testing.T) {
	wiredTrue := true
	c := wire.LegacyClientEntry{ID: "cli1", Mac: "aa:bb:cc:dd:ee:ff", IsWired: &wiredTrue}
	converted := ClientFromLegacy(c)
	assert.Equal(t, ClientTypeWired, converted.ClientType)
	assert.Nil(t, converted.Wireless)
}

func TestClientFromLegacyWirelessCarriesChannelFrequency(t *testing.T) {
	wiredFalse := false
	channel := 36
	c := wire.LegacyClientEntry{ID: "cli2", Mac: "aa:bb:cc:dd:ee:ff", IsWired: &wiredFalse, Channel: &channel}
	converted := ClientFromLegacy(c)
	assert.Equal(t, ClientTypeWireless, converted.ClientType)
	if assert.NotNil(t, converted.Wireless) {
		assert.Equal(t, float32(5.0), *converted.Wireless.FrequencyGHz)
	}
}
