// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package domain

import (
	"net"
	"time"
)

// DeviceType classifies a managed device's hardware role.
type DeviceType int

const (
	DeviceTypeGateway DeviceType = iota
	DeviceTypeSwitch
	DeviceTypeAccessPoint
	DeviceTypeOther
)

func (t DeviceType) String() string {
	switch t {
	case DeviceTypeGateway:
		return "gateway"
	case DeviceTypeSwitch:
		return "switch"
	case DeviceTypeAccessPoint:
		return "access_point"
	default:
		return "other"
	}
}

// DeviceState is the adoption/connectivity lifecycle state of a device.
type DeviceState int

const (
	DeviceStateOnline DeviceState = iota
	DeviceStateOffline
	DeviceStatePendingAdoption
	DeviceStateUpdating
	DeviceStateGettingReady
	DeviceStateAdopting
	DeviceStateDeleting
	DeviceStateConnectionInterrupted
	DeviceStateIsolated
	DeviceStateUnknown
)

func (s DeviceState) String() string {
	switch s {
	case DeviceStateOnline:
		return "online"
	case DeviceStateOffline:
		return "offline"
	case DeviceStatePendingAdoption:
		return "pending_adoption"
	case DeviceStateUpdating:
		return "updating"
	case DeviceStateGettingReady:
		return "getting_ready"
	case DeviceStateAdopting:
		return "adopting"
	case DeviceStateDeleting:
		return "deleting"
	case DeviceStateConnectionInterrupted:
		return "connection_interrupted"
	case DeviceStateIsolated:
		return "isolated"
	default:
		return "unknown"
	}
}

// IsOnline reports whether the device is reachable and adopted.
func (s DeviceState) IsOnline() bool {
	return s == DeviceStateOnline
}

// IsTransitional reports whether the device is mid-operation (adopting,
// updating, provisioning, or being removed) rather than settled.
func (s DeviceState) IsTransitional() bool {
	switch s {
	case DeviceStatePendingAdoption, DeviceStateUpdating, DeviceStateGettingReady,
		DeviceStateAdopting, DeviceStateDeleting:
		return true
	default:
		return false
	}
}

// PortState is the link state of a switch port.
type PortState int

const (
	PortStateUp PortState = iota
	PortStateDown
	PortStateUnknown
)

func (s PortState) String() string {
	switch s {
	case PortStateUp:
		return "up"
	case PortStateDown:
		return "down"
	default:
		return "unknown"
	}
}

// PortConnector names the physical connector type of a port.
type PortConnector int

const (
	PortConnectorRJ45 PortConnector = iota
	PortConnectorSFP
	PortConnectorSFPPlus
	PortConnectorSFP28
	PortConnectorQSFP28
)

func (c PortConnector) String() string {
	switch c {
	case PortConnectorSFP:
		return "sfp"
	case PortConnectorSFPPlus:
		return "sfp_plus"
	case PortConnectorSFP28:
		return "sfp28"
	case PortConnectorQSFP28:
		return "qsfp28"
	default:
		return "rj45"
	}
}

// PoeInfo describes a port's Power-over-Ethernet delivery.
type PoeInfo struct {
	Standard string
	Enabled  bool
	State    string
}

// Port is one physical port on a switch or gateway.
type Port struct {
	Index        int
	Name         string
	State        PortState
	SpeedMbps    *int
	MaxSpeedMbps *int
	Connector    PortConnector
	Poe          *PoeInfo
}

// Radio is one wireless radio on an access point.
type Radio struct {
	FrequencyGHz    float32
	Channel         *int
	ChannelWidthMHz *int
	WlanStandard    string
	TxRetriesPct    *float64
}

// DeviceStats carries the device's most recently observed performance
// counters. Every field is optional because not every controller surface
// reports every metric.
type DeviceStats struct {
	UptimeSecs          *int64
	CpuUtilizationPct   *float64
	MemoryUtilizationPct *float64
	LoadAverage1m       *float64
	LoadAverage5m       *float64
	LoadAverage15m      *float64
	UplinkBandwidth     *Bandwidth
	LastHeartbeat       *time.Time
	NextHeartbeat       *time.Time
}

// Device is a managed network device: gateway, switch, or access point.
type Device struct {
	ID                EntityId
	Mac               MacAddress
	IP                net.IP
	WanIPv6           net.IP
	Name              *string
	Model             *string
	DeviceType        DeviceType
	State             DeviceState
	FirmwareVersion   *string
	FirmwareUpdatable bool
	AdoptedAt         *time.Time
	ProvisionedAt     *time.Time
	LastSeen          *time.Time
	Serial            *string
	Supported         bool
	Ports             []Port
	Radios            []Radio
	UplinkDeviceID    *EntityId
	UplinkDeviceMac   *MacAddress
	HasSwitching      bool
	HasAccessPoint    bool
	Stats             DeviceStats
	ClientCount       *int
	Origin            *string
	Source            DataSource
	UpdatedAt         time.Time
}
