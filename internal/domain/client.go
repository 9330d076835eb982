// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package domain

import (
	"net"
	"time"
)

// ClientType classifies how a client is attached to the network.
type ClientType int

const (
	ClientTypeWired ClientType = iota
	ClientTypeWireless
	ClientTypeVpn
	ClientTypeTeleport
	ClientTypeUnknown
)

func (t ClientType) String() string {
	switch t {
	case ClientTypeWired:
		return "wired"
	case ClientTypeWireless:
		return "wireless"
	case ClientTypeVpn:
		return "vpn"
	case ClientTypeTeleport:
		return "teleport"
	default:
		return "unknown"
	}
}

// GuestAuth carries hotspot guest authorization state for a client.
type GuestAuth struct {
	Authorized     bool
	Method         *string
	ExpiresAt      *time.Time
	TxBytes        *int64
	RxBytes        *int64
	ElapsedMinutes *int
}

// WirelessInfo carries radio-link detail for a wireless client.
type WirelessInfo struct {
	Ssid         *string
	Bssid        *MacAddress
	Channel      *int
	FrequencyGHz *float32
	SignalDbm    *int
	NoiseDbm     *int
	Satisfaction *int
	TxRateKbps   *int64
	RxRateKbps   *int64
}

// Client is a device connected to the network: a laptop, phone, IoT
// device, or site-to-site peer.
type Client struct {
	ID              EntityId
	Mac             MacAddress
	IP              net.IP
	Name            *string
	Hostname        *string
	ClientType      ClientType
	ConnectedAt     *time.Time
	UplinkDeviceID  *EntityId
	UplinkDeviceMac *MacAddress
	NetworkID       *EntityId
	Vlan            *int
	Wireless        *WirelessInfo
	GuestAuth       *GuestAuth
	IsGuest         bool
	TxBytes         *int64
	RxBytes         *int64
	Bandwidth       *Bandwidth
	OsName          *string
	DeviceClass     *string
	Blocked         bool
	Source          DataSource
	UpdatedAt       time.Time
}
