// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package wire holds deserialization structs matching the raw JSON shapes
// returned by both controller API surfaces (legacy cookie/CSRF-session API
// and the Integration REST API). Nothing here carries behavior beyond
// JSON tags; conversion to canonical types lives in internal/domain.
package wire

import "encoding/json"

// LegacyMeta is the `meta` block of every legacy API envelope.
type LegacyMeta struct {
	Rc  string `json:"rc"`
	Msg string `json:"msg,omitempty"`
}

// LegacyEnvelope is the standard `{meta, data}` wrapper every legacy
// endpoint returns.
type LegacyEnvelope[T any] struct {
	Meta LegacyMeta `json:"meta"`
	Data []T        `json:"data"`
}

// UnifiOsErrorEnvelope is the error shape UniFi OS's reverse proxy returns
// on failure, separate from the standard legacy envelope.
type UnifiOsErrorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// LegacySysStats is the `sys_stats` block nested inside LegacyDevice.
type LegacySysStats struct {
	Load1    string `json:"loadavg_1,omitempty"`
	Load5    string `json:"loadavg_5,omitempty"`
	Load15   string `json:"loadavg_15,omitempty"`
	MemTotal *int64 `json:"mem_total,omitempty"`
	MemUsed  *int64 `json:"mem_used,omitempty"`
	Cpu      string `json:"cpu,omitempty"`
}

// LegacyDevice is the full device object returned by `stat/device`. The
// legacy API can return well over a hundred fields per device; the
// commonly-needed ones are modeled explicitly and everything else lands
// in Extra.
type LegacyDevice struct {
	ID          string          `json:"_id"`
	Mac         string          `json:"mac"`
	DeviceType  string          `json:"type"`
	IP          *string         `json:"ip,omitempty"`
	Name        *string         `json:"name,omitempty"`
	Model       *string         `json:"model,omitempty"`
	Version     *string         `json:"version,omitempty"`
	Adopted     bool            `json:"adopted,omitempty"`
	State       int             `json:"state"`
	SysStats    *LegacySysStats `json:"sys_stats,omitempty"`
	Uptime      *int64          `json:"uptime,omitempty"`
	NumSta      *int            `json:"num_sta,omitempty"`
	Serial      *string         `json:"serial,omitempty"`
	SiteID      *string         `json:"site_id,omitempty"`
	LastSeen    *int64          `json:"last_seen,omitempty"`
	Upgradable  *bool           `json:"upgradable,omitempty"`
	UserNumSta  *int            `json:"user-num_sta,omitempty"`
	GuestNumSta *int            `json:"guest-num_sta,omitempty"`
	TxRateBps   *int64          `json:"tx_bytes-r,omitempty"`
	RxRateBps   *int64          `json:"rx_bytes-r,omitempty"`

	// Extra preserves every field the controller sent beyond the ones
	// modeled explicitly above, per the open-extra-bag strategy for
	// unknown/undocumented fields.
	Extra map[string]json.RawMessage `json:"-"`
}

var legacyDeviceKnownFields = map[string]bool{
	"_id": true, "mac": true, "type": true, "ip": true, "name": true,
	"model": true, "version": true, "adopted": true, "state": true,
	"sys_stats": true, "uptime": true, "num_sta": true, "serial": true,
	"site_id": true, "last_seen": true, "upgradable": true,
	"user-num_sta": true, "guest-num_sta": true,
	"tx_bytes-r": true, "rx_bytes-r": true,
}

// UnmarshalJSON decodes the modeled fields and stashes everything else in
// Extra.
func (d *LegacyDevice) UnmarshalJSON(data []byte) error {
	type alias LegacyDevice
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*d = LegacyDevice(a)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.Extra = make(map[string]json.RawMessage, len(raw))
	for k, v := range raw {
		if !legacyDeviceKnownFields[k] {
			d.Extra[k] = v
		}
	}
	return nil
}

// LegacyClientEntry is a connected client from `stat/sta`.
type LegacyClientEntry struct {
	ID           string  `json:"_id"`
	Mac          string  `json:"mac"`
	Hostname     *string `json:"hostname,omitempty"`
	IP           *string `json:"ip,omitempty"`
	Oui          *string `json:"oui,omitempty"`
	Name         *string `json:"name,omitempty"`
	IsGuest      *bool   `json:"is_guest,omitempty"`
	IsWired      *bool   `json:"is_wired,omitempty"`
	Authorized   *bool   `json:"authorized,omitempty"`
	Blocked      *bool   `json:"blocked,omitempty"`
	Signal       *int    `json:"signal,omitempty"`
	TxBytes      *int64  `json:"tx_bytes,omitempty"`
	RxBytes      *int64  `json:"rx_bytes,omitempty"`
	TxRate       *int64  `json:"tx_rate,omitempty"`
	RxRate       *int64  `json:"rx_rate,omitempty"`
	Uptime       *int64  `json:"uptime,omitempty"`
	FirstSeen    *int64  `json:"first_seen,omitempty"`
	LastSeen     *int64  `json:"last_seen,omitempty"`
	SiteID       *string `json:"site_id,omitempty"`
	Essid        *string `json:"essid,omitempty"`
	Bssid        *string `json:"bssid,omitempty"`
	Channel      *int    `json:"channel,omitempty"`
	Radio        *string `json:"radio,omitempty"`
	Rssi         *int    `json:"rssi,omitempty"`
	Noise        *int    `json:"noise,omitempty"`
	Satisfaction *int    `json:"satisfaction,omitempty"`
	ApMac        *string `json:"ap_mac,omitempty"`
	Network      *string `json:"network,omitempty"`
	NetworkID    *string `json:"network_id,omitempty"`
	SwMac        *string `json:"sw_mac,omitempty"`
	SwPort       *int    `json:"sw_port,omitempty"`

	// Extra preserves undocumented fields beyond the ones modeled above.
	Extra map[string]json.RawMessage `json:"-"`
}

var legacyClientKnownFields = map[string]bool{
	"_id": true, "mac": true, "hostname": true, "ip": true, "oui": true,
	"name": true, "is_guest": true, "is_wired": true, "authorized": true,
	"blocked": true, "signal": true, "tx_bytes": true, "rx_bytes": true,
	"tx_rate": true, "rx_rate": true, "uptime": true, "first_seen": true,
	"last_seen": true, "site_id": true, "essid": true, "bssid": true,
	"channel": true, "radio": true, "rssi": true, "noise": true,
	"satisfaction": true, "ap_mac": true, "network": true,
	"network_id": true, "sw_mac": true, "sw_port": true,
}

// UnmarshalJSON decodes the modeled fields and stashes everything else in
// Extra.
func (c *LegacyClientEntry) UnmarshalJSON(data []byte) error {
	type alias LegacyClientEntry
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*c = LegacyClientEntry(a)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.Extra = make(map[string]json.RawMessage, len(raw))
	for k, v := range raw {
		if !legacyClientKnownFields[k] {
			c.Extra[k] = v
		}
	}
	return nil
}

// LegacySite is a site object from `/api/self/sites`.
type LegacySite struct {
	ID   string  `json:"_id"`
	Name string  `json:"name"`
	Desc *string `json:"desc,omitempty"`
	Role *string `json:"role,omitempty"`
}

// LegacyEvent is an event object from `stat/event`.
type LegacyEvent struct {
	ID        string  `json:"_id"`
	Key       *string `json:"key,omitempty"`
	Msg       *string `json:"msg,omitempty"`
	Datetime  *string `json:"datetime,omitempty"`
	Subsystem *string `json:"subsystem,omitempty"`
	SiteID    *string `json:"site_id,omitempty"`
}

// LegacyAlarm is an alarm object from `stat/alarm`.
type LegacyAlarm struct {
	ID       string  `json:"_id"`
	Key      *string `json:"key,omitempty"`
	Msg      *string `json:"msg,omitempty"`
	Datetime *string `json:"datetime,omitempty"`
	Archived *bool   `json:"archived,omitempty"`
}

// LegacySysInfo is the `stat/sysinfo` payload (UDM/controller identity and
// version banner, legacy-only).
type LegacySysInfo struct {
	Version      *string `json:"version,omitempty"`
	Hostname     *string `json:"hostname,omitempty"`
	Name         *string `json:"name,omitempty"`
	UbntDeviceType *string `json:"ubnt_device_type,omitempty"`
	Timezone     *string `json:"timezone,omitempty"`
}

// LegacyHealthSubsystem is one entry of the `stat/health` payload.
type LegacyHealthSubsystem struct {
	Subsystem string  `json:"subsystem"`
	Status    string  `json:"status"`
	NumUser   *int    `json:"num_user,omitempty"`
	NumGuest  *int    `json:"num_guest,omitempty"`
	NumAp     *int    `json:"num_ap,omitempty"`
	NumSw     *int    `json:"num_sw,omitempty"`
	WanIP     *string `json:"wan_ip,omitempty"`
	TxBytesR  *int64  `json:"tx_bytes-r,omitempty"`
	RxBytesR  *int64  `json:"rx_bytes-r,omitempty"`
}

// LegacyVoucher is a hotspot voucher from `stat/voucher`.
type LegacyVoucher struct {
	ID              string  `json:"_id"`
	Code            string  `json:"code"`
	Note            *string `json:"note,omitempty"`
	CreateTime      *int64  `json:"create_time,omitempty"`
	StartTime       *int64  `json:"start_time,omitempty"`
	EndTime         *int64  `json:"end_time,omitempty"`
	Duration        *int    `json:"duration,omitempty"`
	QosOverwrite    *bool   `json:"qos_overwrite,omitempty"`
	QosUsageQuota   *int64  `json:"qos_usage_quota,omitempty"`
	QosRateMaxUp    *int64  `json:"qos_rate_max_up,omitempty"`
	QosRateMaxDown  *int64  `json:"qos_rate_max_down,omitempty"`
	QuotaUsage      *int    `json:"quota,omitempty"`
	Used            *int    `json:"used,omitempty"`
}
