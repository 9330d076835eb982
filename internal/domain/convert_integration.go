// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package domain

import (
	"net"

	"github.com/ksc98/unifly-sub001/internal/wire"
)

// This file converts between the in-memory domain model and the
// Integration API's camelCase wire shapes. Command CRUD handlers encode
// requests and decode responses through these functions rather than
// marshaling domain types directly, since domain types carry no JSON
// tags of their own.

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func parseNetworkPurpose(s string) NetworkPurpose {
	switch s {
	case "guest":
		return NetworkPurposeGuest
	case "wan":
		return NetworkPurposeWan
	case "vlan_only":
		return NetworkPurposeVlanOnly
	default:
		return NetworkPurposeCorporate
	}
}

func parseIpv6Mode(s string) Ipv6Mode {
	if s == "static" {
		return Ipv6ModeStatic
	}
	return Ipv6ModePrefixDelegation
}

// NetworkToIntegration builds an Integration API request/response body
// from a Network. Fields the Integration API doesn't expose (management
// role, NTP/PXE/cellular-backup settings) are dropped; they only ever
// arrive via the legacy poll.
func NetworkToIntegration(n Network) wire.IntegrationNetwork {
	w := wire.IntegrationNetwork{
		ID:                    n.ID.String(),
		Name:                  n.Name,
		Enabled:               n.Enabled,
		VlanID:                n.VlanID,
		Purpose:               n.Purpose.String(),
		IsDefault:             n.IsDefault,
		Ipv6Enabled:           n.Ipv6Enabled,
		Ipv6Mode:              n.Ipv6Mode.String(),
		IsolationEnabled:      n.IsolationEnabled,
		InternetAccessEnabled: n.InternetAccessEnabled,
		MdnsForwardingEnabled: n.MdnsForwardingEnabled,
	}
	if n.Subnet != nil {
		w.Subnet = n.Subnet.String()
	}
	if n.FirewallZoneID != nil {
		w.FirewallZoneID = n.FirewallZoneID.String()
	}
	if n.Dhcp != nil {
		w.DhcpEnabled = n.Dhcp.Enabled
		w.DhcpLeaseTimeSec = n.Dhcp.LeaseTimeSecs
		if n.Dhcp.RangeStart != nil {
			w.DhcpRangeStart = n.Dhcp.RangeStart.String()
		}
		if n.Dhcp.RangeStop != nil {
			w.DhcpRangeStop = n.Dhcp.RangeStop.String()
		}
	}
	return w
}

// NetworkFromIntegration decodes an Integration API network resource back
// into a Network, tagging it DataSourceIntegrationApi.
func NetworkFromIntegration(w wire.IntegrationNetwork) Network {
	n := Network{
		ID:                    NewEntityId(w.ID),
		Name:                  w.Name,
		Enabled:               w.Enabled,
		Purpose:               parseNetworkPurpose(w.Purpose),
		IsDefault:             w.IsDefault,
		VlanID:                w.VlanID,
		Ipv6Enabled:           w.Ipv6Enabled,
		Ipv6Mode:              parseIpv6Mode(w.Ipv6Mode),
		IsolationEnabled:      w.IsolationEnabled,
		InternetAccessEnabled: w.InternetAccessEnabled,
		MdnsForwardingEnabled: w.MdnsForwardingEnabled,
		Source:                DataSourceIntegrationApi,
	}
	if w.Subnet != "" {
		if _, ipnet, err := net.ParseCIDR(w.Subnet); err == nil {
			n.Subnet = ipnet
		}
	}
	if w.FirewallZoneID != "" {
		id := NewEntityId(w.FirewallZoneID)
		n.FirewallZoneID = &id
	}
	if w.DhcpEnabled || w.DhcpRangeStart != "" || w.DhcpRangeStop != "" {
		n.Dhcp = &DhcpConfig{
			Enabled:       w.DhcpEnabled,
			RangeStart:    parseIP(strPtr(w.DhcpRangeStart)),
			RangeStop:     parseIP(strPtr(w.DhcpRangeStop)),
			LeaseTimeSecs: w.DhcpLeaseTimeSec,
		}
	}
	return n
}

func parseWifiBroadcastType(s string) WifiBroadcastType {
	if s == "iot_optimized" {
		return WifiBroadcastTypeIotOptimized
	}
	return WifiBroadcastTypeStandard
}

func parseWifiSecurityMode(s string) WifiSecurityMode {
	switch s {
	case "wpa2_personal":
		return WifiSecurityWpa2Personal
	case "wpa3_personal":
		return WifiSecurityWpa3Personal
	case "wpa2_wpa3_personal":
		return WifiSecurityWpa2Wpa3Personal
	case "wpa2_enterprise":
		return WifiSecurityWpa2Enterprise
	case "wpa3_enterprise":
		return WifiSecurityWpa3Enterprise
	case "wpa2_wpa3_enterprise":
		return WifiSecurityWpa2Wpa3Enterprise
	default:
		return WifiSecurityOpen
	}
}

// WifiBroadcastToIntegration builds an Integration API request/response
// body from a WifiBroadcast.
func WifiBroadcastToIntegration(w WifiBroadcast) wire.IntegrationWifi {
	iw := wire.IntegrationWifi{
		ID:              w.ID.String(),
		Name:            w.Name,
		Enabled:         w.Enabled,
		BroadcastType:   w.BroadcastType.String(),
		SecurityMode:    w.Security.String(),
		FrequenciesGHz:  w.FrequenciesGHz,
		Hidden:          w.Hidden,
		ClientIsolation: w.ClientIsolation,
		BandSteering:    w.BandSteering,
		MloEnabled:      w.MloEnabled,
		FastRoaming:     w.FastRoaming,
		HotspotEnabled:  w.HotspotEnabled,
	}
	if w.NetworkID != nil {
		iw.NetworkID = w.NetworkID.String()
	}
	return iw
}

// WifiBroadcastFromIntegration decodes an Integration API WLAN resource
// back into a WifiBroadcast, tagging it DataSourceIntegrationApi.
func WifiBroadcastFromIntegration(w wire.IntegrationWifi) WifiBroadcast {
	wb := WifiBroadcast{
		ID:              NewEntityId(w.ID),
		Name:            w.Name,
		Enabled:         w.Enabled,
		BroadcastType:   parseWifiBroadcastType(w.BroadcastType),
		Security:        parseWifiSecurityMode(w.SecurityMode),
		FrequenciesGHz:  w.FrequenciesGHz,
		Hidden:          w.Hidden,
		ClientIsolation: w.ClientIsolation,
		BandSteering:    w.BandSteering,
		MloEnabled:      w.MloEnabled,
		FastRoaming:     w.FastRoaming,
		HotspotEnabled:  w.HotspotEnabled,
		Source:          DataSourceIntegrationApi,
	}
	if w.NetworkID != "" {
		id := NewEntityId(w.NetworkID)
		wb.NetworkID = &id
	}
	return wb
}

// FirewallZoneToIntegration builds an Integration API request/response
// body from a FirewallZone.
func FirewallZoneToIntegration(z FirewallZone) wire.IntegrationFirewallZone {
	ids := make([]string, len(z.NetworkIDs))
	for i, id := range z.NetworkIDs {
		ids[i] = id.String()
	}
	return wire.IntegrationFirewallZone{ID: z.ID.String(), Name: z.Name, NetworkIDs: ids}
}

// FirewallZoneFromIntegration decodes an Integration API zone resource
// back into a FirewallZone, tagging it DataSourceIntegrationApi.
func FirewallZoneFromIntegration(w wire.IntegrationFirewallZone) FirewallZone {
	ids := make([]EntityId, len(w.NetworkIDs))
	for i, raw := range w.NetworkIDs {
		ids[i] = NewEntityId(raw)
	}
	return FirewallZone{ID: NewEntityId(w.ID), Name: w.Name, NetworkIDs: ids, Source: DataSourceIntegrationApi}
}

func parseFirewallAction(s string) FirewallAction {
	switch s {
	case "block":
		return FirewallActionBlock
	case "reject":
		return FirewallActionReject
	default:
		return FirewallActionAllow
	}
}

func parseIpVersion(s string) IpVersion {
	switch s {
	case "ipv6":
		return IpVersionIpv6
	case "both":
		return IpVersionBoth
	default:
		return IpVersionIpv4
	}
}

// FirewallPolicyToIntegration builds an Integration API request/response
// body from a FirewallPolicy.
func FirewallPolicyToIntegration(p FirewallPolicy) wire.IntegrationFirewallPolicy {
	w := wire.IntegrationFirewallPolicy{
		ID:                 p.ID.String(),
		Name:               p.Name,
		Description:        derefOrEmpty(p.Description),
		Enabled:            p.Enabled,
		Index:              p.Index,
		Action:             p.Action.String(),
		IPVersion:          p.IPVersion.String(),
		SourceSummary:      derefOrEmpty(p.SourceSummary),
		DestinationSummary: derefOrEmpty(p.DestinationSummary),
		ProtocolSummary:    derefOrEmpty(p.ProtocolSummary),
		Schedule:           derefOrEmpty(p.Schedule),
		IpsecMode:          derefOrEmpty(p.IpsecMode),
		ConnectionStates:   p.ConnectionStates,
		LoggingEnabled:     p.LoggingEnabled,
	}
	if p.SourceZoneID != nil {
		w.SourceZoneID = p.SourceZoneID.String()
	}
	if p.DestinationZoneID != nil {
		w.DestinationZoneID = p.DestinationZoneID.String()
	}
	return w
}

// FirewallPolicyFromIntegration decodes an Integration API policy
// resource back into a FirewallPolicy, tagging it DataSourceIntegrationApi.
func FirewallPolicyFromIntegration(w wire.IntegrationFirewallPolicy) FirewallPolicy {
	p := FirewallPolicy{
		ID:                 NewEntityId(w.ID),
		Name:               w.Name,
		Description:        strPtr(w.Description),
		Enabled:            w.Enabled,
		Index:              w.Index,
		Action:             parseFirewallAction(w.Action),
		IPVersion:          parseIpVersion(w.IPVersion),
		SourceSummary:      strPtr(w.SourceSummary),
		DestinationSummary: strPtr(w.DestinationSummary),
		ProtocolSummary:    strPtr(w.ProtocolSummary),
		Schedule:           strPtr(w.Schedule),
		IpsecMode:          strPtr(w.IpsecMode),
		ConnectionStates:   w.ConnectionStates,
		LoggingEnabled:     w.LoggingEnabled,
		Source:             DataSourceIntegrationApi,
	}
	if w.SourceZoneID != "" {
		id := NewEntityId(w.SourceZoneID)
		p.SourceZoneID = &id
	}
	if w.DestinationZoneID != "" {
		id := NewEntityId(w.DestinationZoneID)
		p.DestinationZoneID = &id
	}
	return p
}

func parseAclAction(s string) AclAction {
	if s == "block" {
		return AclActionBlock
	}
	return AclActionAllow
}

func parseAclRuleType(s string) AclRuleType {
	if s == "mac" {
		return AclRuleTypeMac
	}
	return AclRuleTypeIpv4
}

// AclRuleToIntegration builds an Integration API request/response body
// from an AclRule.
func AclRuleToIntegration(r AclRule) wire.IntegrationAclRule {
	return wire.IntegrationAclRule{
		ID:                 r.ID.String(),
		Name:               r.Name,
		Enabled:            r.Enabled,
		RuleType:           r.RuleType.String(),
		Action:             r.Action.String(),
		SourceSummary:      derefOrEmpty(r.SourceSummary),
		DestinationSummary: derefOrEmpty(r.DestinationSummary),
	}
}

// AclRuleFromIntegration decodes an Integration API ACL rule resource
// back into an AclRule, tagging it DataSourceIntegrationApi.
func AclRuleFromIntegration(w wire.IntegrationAclRule) AclRule {
	return AclRule{
		ID:                 NewEntityId(w.ID),
		Name:               w.Name,
		Enabled:            w.Enabled,
		RuleType:           parseAclRuleType(w.RuleType),
		Action:             parseAclAction(w.Action),
		SourceSummary:      strPtr(w.SourceSummary),
		DestinationSummary: strPtr(w.DestinationSummary),
		Source:             DataSourceIntegrationApi,
	}
}

func parseDnsPolicyType(s string) DnsPolicyType {
	switch s {
	case "aaaa_record":
		return DnsPolicyTypeAaaaRecord
	case "cname_record":
		return DnsPolicyTypeCnameRecord
	case "mx_record":
		return DnsPolicyTypeMxRecord
	case "txt_record":
		return DnsPolicyTypeTxtRecord
	case "srv_record":
		return DnsPolicyTypeSrvRecord
	case "forward_domain":
		return DnsPolicyTypeForwardDomain
	default:
		return DnsPolicyTypeARecord
	}
}

// DnsPolicyToIntegration builds an Integration API request/response body
// from a DnsPolicy.
func DnsPolicyToIntegration(p DnsPolicy) wire.IntegrationDnsPolicy {
	return wire.IntegrationDnsPolicy{
		ID:         p.ID.String(),
		PolicyType: p.PolicyType.String(),
		Domain:     p.Domain,
		Value:      p.Value,
		TTLSeconds: p.TTLSeconds,
	}
}

// DnsPolicyFromIntegration decodes an Integration API DNS policy resource
// back into a DnsPolicy, tagging it DataSourceIntegrationApi.
func DnsPolicyFromIntegration(w wire.IntegrationDnsPolicy) DnsPolicy {
	return DnsPolicy{
		ID:         NewEntityId(w.ID),
		PolicyType: parseDnsPolicyType(w.PolicyType),
		Domain:     w.Domain,
		Value:      w.Value,
		TTLSeconds: w.TTLSeconds,
		Source:     DataSourceIntegrationApi,
	}
}

func parseTrafficMatchingListType(s string) TrafficMatchingListType {
	switch s {
	case "ipv4_addresses":
		return TrafficMatchingListIpv4Addresses
	case "ipv6_addresses":
		return TrafficMatchingListIpv6Addresses
	default:
		return TrafficMatchingListPorts
	}
}

// TrafficMatchingListToIntegration builds an Integration API request/
// response body from a TrafficMatchingList.
func TrafficMatchingListToIntegration(l TrafficMatchingList) wire.IntegrationTrafficList {
	return wire.IntegrationTrafficList{ID: l.ID.String(), Name: l.Name, ListType: l.ListType.String(), Items: l.Items}
}

// TrafficMatchingListFromIntegration decodes an Integration API traffic
// list resource back into a TrafficMatchingList, tagging it
// DataSourceIntegrationApi.
func TrafficMatchingListFromIntegration(w wire.IntegrationTrafficList) TrafficMatchingList {
	return TrafficMatchingList{
		ID:       NewEntityId(w.ID),
		Name:     w.Name,
		ListType: parseTrafficMatchingListType(w.ListType),
		Items:    w.Items,
		Source:   DataSourceIntegrationApi,
	}
}

func parseIntegrationDeviceType(s string) DeviceType {
	switch s {
	case "switch":
		return DeviceTypeSwitch
	case "accessPoint", "access_point":
		return DeviceTypeAccessPoint
	case "gateway":
		return DeviceTypeGateway
	default:
		return DeviceTypeOther
	}
}

func parseIntegrationDeviceState(s string) DeviceState {
	switch s {
	case "online":
		return DeviceStateOnline
	case "offline":
		return DeviceStateOffline
	case "pendingAdoption", "pending_adoption":
		return DeviceStatePendingAdoption
	case "updating":
		return DeviceStateUpdating
	case "gettingReady", "getting_ready":
		return DeviceStateGettingReady
	case "adopting":
		return DeviceStateAdopting
	case "deleting":
		return DeviceStateDeleting
	case "isolated":
		return DeviceStateIsolated
	default:
		return DeviceStateUnknown
	}
}

// DeviceFromIntegration decodes an Integration API device resource (as
// returned by a device action endpoint) into a Device, tagging it
// DataSourceIntegrationApi. Port/radio/statistics detail is carried by
// the periodic refresh rather than action responses, so it is left zero
// here; a following refresh cycle fills it in.
func DeviceFromIntegration(w wire.IntegrationDevice) Device {
	d := Device{
		ID:                NewEntityId(w.ID),
		Mac:               NewMacAddress(w.Mac),
		Name:              strPtr(w.Name),
		Model:             strPtr(w.Model),
		DeviceType:        parseIntegrationDeviceType(w.Type),
		State:             parseIntegrationDeviceState(w.State),
		FirmwareVersion:   strPtr(w.FirmwareVersion),
		FirmwareUpdatable: w.FirmwareUpdatable,
		Serial:            strPtr(w.Serial),
		HasSwitching:      w.Features.Switching,
		HasAccessPoint:    w.Features.AccessPoint,
		Source:            DataSourceIntegrationApi,
	}
	if w.IPAddress != "" {
		d.IP = net.ParseIP(w.IPAddress)
	}
	if w.UplinkDeviceID != "" {
		id := NewEntityId(w.UplinkDeviceID)
		d.UplinkDeviceID = &id
	}
	return d
}

func parsePortState(s string) PortState {
	switch s {
	case "up":
		return PortStateUp
	case "down":
		return PortStateDown
	default:
		return PortStateUnknown
	}
}

func parsePortConnector(s string) PortConnector {
	switch s {
	case "sfp":
		return PortConnectorSFP
	case "sfp_plus", "sfpPlus":
		return PortConnectorSFPPlus
	case "sfp28":
		return PortConnectorSFP28
	case "qsfp28":
		return PortConnectorQSFP28
	default:
		return PortConnectorRJ45
	}
}

func portFromIntegration(w wire.IntegrationPort) Port {
	p := Port{
		Index:        w.Index,
		Name:         w.Name,
		State:        parsePortState(w.State),
		SpeedMbps:    w.SpeedMbps,
		MaxSpeedMbps: w.MaxSpeedMbps,
		Connector:    parsePortConnector(w.Connector),
	}
	if w.PoeEnabled != nil || w.PoeStandard != "" || w.PoeState != "" {
		p.Poe = &PoeInfo{Standard: w.PoeStandard, State: w.PoeState}
		if w.PoeEnabled != nil {
			p.Poe.Enabled = *w.PoeEnabled
		}
	}
	return p
}

func radioFromIntegration(w wire.IntegrationRadio) Radio {
	return Radio{
		FrequencyGHz:    w.FrequencyGHz,
		Channel:         w.Channel,
		ChannelWidthMHz: w.ChannelWidthMHz,
		WlanStandard:    w.WlanStandard,
		TxRetriesPct:    w.TxRetriesPct,
	}
}

func deviceStatsFromIntegration(w *wire.IntegrationDeviceStats) DeviceStats {
	if w == nil {
		return DeviceStats{}
	}
	stats := DeviceStats{
		UptimeSecs:           w.UptimeSec,
		CpuUtilizationPct:    w.CPUUtilizationPct,
		MemoryUtilizationPct: w.MemUtilizationPct,
		LoadAverage1m:        w.LoadAverage1Min,
		LoadAverage5m:        w.LoadAverage5Min,
		LoadAverage15m:       w.LoadAverage15Min,
	}
	if w.UplinkTxBps != nil || w.UplinkRxBps != nil {
		bw := &Bandwidth{}
		if w.UplinkTxBps != nil {
			bw.TxBytesPerSec = uint64(*w.UplinkTxBps)
		}
		if w.UplinkRxBps != nil {
			bw.RxBytesPerSec = uint64(*w.UplinkRxBps)
		}
		stats.UplinkBandwidth = bw
	}
	return stats
}

// DeviceFromIntegrationFull decodes a complete Integration API device
// resource (as returned by the device list/get endpoints, unlike the
// identity-only shape an action endpoint replies with) into a Device,
// including ports, radios, and statistics. Used by the bulk refresh
// cycle, which is the only caller that needs this level of detail.
func DeviceFromIntegrationFull(w wire.IntegrationDevice) Device {
	d := DeviceFromIntegration(w)
	d.Ports = make([]Port, len(w.Ports))
	for i, p := range w.Ports {
		d.Ports[i] = portFromIntegration(p)
	}
	d.Radios = make([]Radio, len(w.Radios))
	for i, r := range w.Radios {
		d.Radios[i] = radioFromIntegration(r)
	}
	d.Stats = deviceStatsFromIntegration(w.Statistics)
	return d
}

// VoucherFromIntegration decodes an Integration API voucher resource
// into a Voucher, tagging it DataSourceIntegrationApi.
func VoucherFromIntegration(w wire.IntegrationVoucher) Voucher {
	v := Voucher{
		ID:                   NewEntityId(w.ID),
		Code:                 w.Code,
		Name:                 strPtr(w.Name),
		Expired:              w.Expired,
		TimeLimitMinutes:     w.TimeLimitMinutes,
		DataUsageLimitMB:     w.DataUsageLimitMB,
		AuthorizedGuestLimit: w.AuthorizedGuestLimit,
		AuthorizedGuestCount: w.AuthorizedGuestCount,
		RxRateLimitKbps:      w.RxRateLimitKbps,
		TxRateLimitKbps:      w.TxRateLimitKbps,
		Source:               DataSourceIntegrationApi,
		CreatedAt:            parseDatetime(strPtr(w.CreatedAt)),
		ActivatedAt:          parseDatetime(strPtr(w.ActivatedAt)),
		ExpiresAt:            parseDatetime(strPtr(w.ExpiresAt)),
	}
	return v
}
