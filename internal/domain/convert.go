// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package domain

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/ksc98/unifly-sub001/internal/wire"
)

// parseIP parses raw into a net.IP, silently returning nil for unparseable
// or empty values rather than erroring; missing/malformed IPs are common
// on disconnected or transitional devices.
func parseIP(raw *string) net.IP {
	if raw == nil || *raw == "" {
		return nil
	}
	return net.ParseIP(*raw)
}

// epochToDatetime converts an optional epoch-seconds timestamp to a UTC
// time.
func epochToDatetime(epoch *int64) *time.Time {
	if epoch == nil {
		return nil
	}
	t := time.Unix(*epoch, 0).UTC()
	return &t
}

// parseDatetime parses an RFC3339 datetime string as returned by the
// legacy event/alarm endpoints.
func parseDatetime(raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

// inferDeviceType infers DeviceType from the legacy `type` field and,
// failing that, the model string's prefix.
//
// The legacy API `type` field is typically "uap", "usw", "ugw", "udm".
// Newer hardware that doesn't report a recognized type is disambiguated
// by checking the model prefix.
func inferDeviceType(deviceType string, model *string) DeviceType {
	switch deviceType {
	case "uap":
		return DeviceTypeAccessPoint
	case "usw":
		return DeviceTypeSwitch
	case "ugw", "udm":
		return DeviceTypeGateway
	}

	if model == nil {
		return DeviceTypeOther
	}
	upper := strings.ToUpper(*model)
	switch {
	case strings.HasPrefix(upper, "UAP"), strings.HasPrefix(upper, "U6"), strings.HasPrefix(upper, "U7"):
		return DeviceTypeAccessPoint
	case strings.HasPrefix(upper, "USW"), strings.HasPrefix(upper, "USL"):
		return DeviceTypeSwitch
	case strings.HasPrefix(upper, "UGW"), strings.HasPrefix(upper, "UDM"),
		strings.HasPrefix(upper, "UDR"), strings.HasPrefix(upper, "UXG"):
		return DeviceTypeGateway
	default:
		return DeviceTypeOther
	}
}

// mapDeviceState maps the legacy integer state code to DeviceState.
//
// Known codes: 0=offline, 1=online, 2=pending adoption, 4=upgrading,
// 5=provisioning.
func mapDeviceState(code int) DeviceState {
	switch code {
	case 0:
		return DeviceStateOffline
	case 1:
		return DeviceStateOnline
	case 2:
		return DeviceStatePendingAdoption
	case 4:
		return DeviceStateUpdating
	case 5:
		return DeviceStateGettingReady
	default:
		return DeviceStateUnknown
	}
}

// channelToFrequency gives a rough channel-to-frequency-band mapping for
// common Wi-Fi channels.
func channelToFrequency(channel *int) *float32 {
	if channel == nil {
		return nil
	}
	ch := *channel
	var f float32
	switch {
	case ch >= 1 && ch <= 14:
		f = 2.4
	case ch >= 32 && ch <= 68:
		f = 5.0
	case ch >= 96 && ch <= 177:
		f = 5.0
	default:
		f = 6.0 // Wi-Fi 6E / 7
	}
	return &f
}

func parseOptFloat64(s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// DeviceFromLegacy converts a legacy `stat/device` record into a Device.
func DeviceFromLegacy(d wire.LegacyDevice) Device {
	deviceType := inferDeviceType(d.DeviceType, d.Model)
	state := mapDeviceState(d.State)

	stats := DeviceStats{}
	if d.Uptime != nil {
		stats.UptimeSecs = d.Uptime
	}
	if d.SysStats != nil {
		sys := d.SysStats
		if sys.Load1 != "" {
			stats.LoadAverage1m = parseOptFloat64(sys.Load1)
		}
		if sys.Load5 != "" {
			stats.LoadAverage5m = parseOptFloat64(sys.Load5)
		}
		if sys.Load15 != "" {
			stats.LoadAverage15m = parseOptFloat64(sys.Load15)
		}
		if sys.Cpu != "" {
			stats.CpuUtilizationPct = parseOptFloat64(sys.Cpu)
		}
		if sys.MemUsed != nil && sys.MemTotal != nil && *sys.MemTotal > 0 {
			pct := (float64(*sys.MemUsed) / float64(*sys.MemTotal)) * 100.0
			stats.MemoryUtilizationPct = &pct
		}
	}

	firmwareUpdatable := false
	if d.Upgradable != nil {
		firmwareUpdatable = *d.Upgradable
	}

	var clientCount *int
	if d.NumSta != nil {
		n := *d.NumSta
		clientCount = &n
	}

	return Device{
		ID:                NewEntityId(d.ID),
		Mac:               NewMacAddress(d.Mac),
		IP:                parseIP(d.IP),
		Name:              d.Name,
		Model:             d.Model,
		DeviceType:        deviceType,
		State:             state,
		FirmwareVersion:   d.Version,
		FirmwareUpdatable: firmwareUpdatable,
		AdoptedAt:         nil, // legacy API doesn't provide adoption timestamp
		ProvisionedAt:     nil,
		LastSeen:          epochToDatetime(d.LastSeen),
		Serial:            d.Serial,
		Supported:         true, // legacy API only returns adopted/supported devices
		Ports:             nil,
		Radios:            nil,
		UplinkDeviceID:    nil,
		UplinkDeviceMac:   nil,
		HasSwitching:      deviceType == DeviceTypeSwitch || deviceType == DeviceTypeGateway,
		HasAccessPoint:    deviceType == DeviceTypeAccessPoint,
		Stats:             stats,
		ClientCount:       clientCount,
		Origin:            nil,
		Source:            DataSourceLegacyApi,
		UpdatedAt:         time.Now().UTC(),
	}
}

// MergeLegacyDeviceStats applies the resource-utilization and uplink
// bandwidth fields from a legacy `stat/device` record onto an
// already-stored Device, leaving identity, config, ports, and radios
// (only available from the Integration API) untouched. Used by the
// fine-grained stats/bandwidth poll tasks, which run far more often than
// the full bulk refresh and must not clobber Integration-sourced fields.
func MergeLegacyDeviceStats(d Device, w wire.LegacyDevice) Device {
	if w.Uptime != nil {
		d.Stats.UptimeSecs = w.Uptime
	}
	if w.SysStats != nil {
		sys := w.SysStats
		if sys.Cpu != "" {
			d.Stats.CpuUtilizationPct = parseOptFloat64(sys.Cpu)
		}
		if sys.Load1 != "" {
			d.Stats.LoadAverage1m = parseOptFloat64(sys.Load1)
		}
		if sys.Load5 != "" {
			d.Stats.LoadAverage5m = parseOptFloat64(sys.Load5)
		}
		if sys.Load15 != "" {
			d.Stats.LoadAverage15m = parseOptFloat64(sys.Load15)
		}
		if sys.MemUsed != nil && sys.MemTotal != nil && *sys.MemTotal > 0 {
			pct := (float64(*sys.MemUsed) / float64(*sys.MemTotal)) * 100.0
			d.Stats.MemoryUtilizationPct = &pct
		}
	}
	if w.NumSta != nil {
		n := *w.NumSta
		d.ClientCount = &n
	}
	return d
}

// MergeLegacyDeviceBandwidth applies the instantaneous uplink throughput
// fields from a legacy `stat/device` record onto an already-stored
// Device.
func MergeLegacyDeviceBandwidth(d Device, w wire.LegacyDevice) Device {
	if w.TxRateBps == nil && w.RxRateBps == nil {
		return d
	}
	bw := d.Stats.UplinkBandwidth
	if bw == nil {
		bw = &Bandwidth{}
	}
	if w.TxRateBps != nil {
		bw.TxBytesPerSec = uint64(*w.TxRateBps)
	}
	if w.RxRateBps != nil {
		bw.RxBytesPerSec = uint64(*w.RxRateBps)
	}
	d.Stats.UplinkBandwidth = bw
	return d
}

// ClientFromLegacy converts a legacy `stat/sta` record into a Client.
func ClientFromLegacy(c wire.LegacyClientEntry) Client {
	isWired := c.IsWired != nil && *c.IsWired
	clientType := ClientTypeWireless
	if isWired {
		clientType = ClientTypeWired
	}

	var wireless *WirelessInfo
	if !isWired {
		signal := c.Signal
		if signal == nil {
			signal = c.Rssi
		}
		var channel *int
		if c.Channel != nil {
			channel = c.Channel
		}
		var bssid *MacAddress
		if c.Bssid != nil {
			m := NewMacAddress(*c.Bssid)
			bssid = &m
		}
		wireless = &WirelessInfo{
			Ssid:         c.Essid,
			Bssid:        bssid,
			Channel:      channel,
			FrequencyGHz: channelToFrequency(c.Channel),
			SignalDbm:    signal,
			NoiseDbm:     c.Noise,
			Satisfaction: c.Satisfaction,
			TxRateKbps:   c.TxRate,
			RxRateKbps:   c.RxRate,
		}
	}

	isGuest := c.IsGuest != nil && *c.IsGuest
	var guestAuth *GuestAuth
	if isGuest {
		authorized := c.Authorized != nil && *c.Authorized
		guestAuth = &GuestAuth{
			Authorized: authorized,
			TxBytes:    c.TxBytes,
			RxBytes:    c.RxBytes,
		}
	}

	var uplinkDeviceMac *MacAddress
	if isWired {
		if c.SwMac != nil {
			m := NewMacAddress(*c.SwMac)
			uplinkDeviceMac = &m
		}
	} else if c.ApMac != nil {
		m := NewMacAddress(*c.ApMac)
		uplinkDeviceMac = &m
	}

	var connectedAt *time.Time
	if c.Uptime != nil {
		t := time.Now().UTC().Add(-time.Duration(*c.Uptime) * time.Second)
		connectedAt = &t
	}

	var networkID *EntityId
	if c.NetworkID != nil {
		id := NewEntityId(*c.NetworkID)
		networkID = &id
	}

	blocked := c.Blocked != nil && *c.Blocked

	return Client{
		ID:              NewEntityId(c.ID),
		Mac:             NewMacAddress(c.Mac),
		IP:              parseIP(c.IP),
		Name:            c.Name,
		Hostname:        c.Hostname,
		ClientType:      clientType,
		ConnectedAt:     connectedAt,
		UplinkDeviceID:  nil,
		UplinkDeviceMac: uplinkDeviceMac,
		NetworkID:       networkID,
		Vlan:            nil,
		Wireless:        wireless,
		GuestAuth:       guestAuth,
		IsGuest:         isGuest,
		TxBytes:         c.TxBytes,
		RxBytes:         c.RxBytes,
		Bandwidth:       nil,
		OsName:          nil,
		DeviceClass:     nil,
		Blocked:         blocked,
		Source:          DataSourceLegacyApi,
		UpdatedAt:       time.Now().UTC(),
	}
}

// SiteFromLegacy converts a legacy `/api/self/sites` record into a Site.
// `desc` is the human-friendly label; `name` is the internal slug (e.g.
// "default"). When desc is absent or empty, name is used as the display
// name too.
func SiteFromLegacy(s wire.LegacySite) Site {
	displayName := s.Name
	if s.Desc != nil && *s.Desc != "" {
		displayName = *s.Desc
	}
	return Site{
		ID:           NewEntityId(s.ID),
		InternalName: s.Name,
		Name:         displayName,
		DeviceCount:  nil,
		ClientCount:  nil,
		Source:       DataSourceLegacyApi,
	}
}

// mapEventCategory maps a legacy subsystem string to EventCategory.
func mapEventCategory(subsystem *string) EventCategory {
	if subsystem == nil {
		return EventCategoryUnknown
	}
	switch *subsystem {
	case "wlan", "lan", "wan":
		return EventCategoryNetwork
	case "device":
		return EventCategoryDevice
	case "client":
		return EventCategoryClient
	case "system":
		return EventCategorySystem
	case "admin":
		return EventCategoryAdmin
	case "firewall":
		return EventCategoryFirewall
	case "vpn":
		return EventCategoryVpn
	default:
		return EventCategoryUnknown
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// EventFromLegacy converts a legacy `stat/event` record into an Event.
func EventFromLegacy(e wire.LegacyEvent) Event {
	id := NewEntityId(e.ID)
	ts := parseDatetime(e.Datetime)
	if ts == nil {
		now := time.Now().UTC()
		ts = &now
	}
	var siteID *EntityId
	if e.SiteID != nil {
		sid := NewEntityId(*e.SiteID)
		siteID = &sid
	}
	return Event{
		ID:        &id,
		Timestamp: *ts,
		Category:  mapEventCategory(e.Subsystem),
		Severity:  EventSeverityInfo,
		EventType: strOrEmpty(e.Key),
		Message:   strOrEmpty(e.Msg),
		DeviceMac: nil,
		ClientMac: nil,
		SiteID:    siteID,
		RawKey:    e.Key,
		Source:    DataSourceLegacyApi,
	}
}

// EventFromAlarm converts a legacy `stat/alarm` record into an Event.
// Alarms always carry EventSeverityWarning and EventCategorySystem.
func EventFromAlarm(a wire.LegacyAlarm) Event {
	id := NewEntityId(a.ID)
	ts := parseDatetime(a.Datetime)
	if ts == nil {
		now := time.Now().UTC()
		ts = &now
	}
	return Event{
		ID:        &id,
		Timestamp: *ts,
		Category:  EventCategorySystem,
		Severity:  EventSeverityWarning,
		EventType: strOrEmpty(a.Key),
		Message:   strOrEmpty(a.Msg),
		DeviceMac: nil,
		ClientMac: nil,
		SiteID:    nil,
		RawKey:    a.Key,
		Source:    DataSourceLegacyApi,
	}
}
