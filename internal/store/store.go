// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package store

import (
	"strconv"
	"time"

	"github.com/ksc98/unifly-sub001/internal/domain"
)

// DataStore aggregates one EntityCollection per entity type plus the
// scalar watch channels and the event broadcast the controller facade
// publishes to its subscribers. It owns every piece of mutable state the
// facade exposes; nothing outside this package ever holds a lock on it.
type DataStore struct {
	Devices         *EntityCollection[domain.Device]
	Clients         *EntityCollection[domain.Client]
	Networks        *EntityCollection[domain.Network]
	WifiBroadcasts  *EntityCollection[domain.WifiBroadcast]
	FirewallZones   *EntityCollection[domain.FirewallZone]
	FirewallPolicies *EntityCollection[domain.FirewallPolicy]
	AclRules        *EntityCollection[domain.AclRule]
	DnsPolicies     *EntityCollection[domain.DnsPolicy]
	Vouchers        *EntityCollection[domain.Voucher]
	Sites           *EntityCollection[domain.Site]

	TrafficMatchingLists *EntityCollection[domain.TrafficMatchingList]
	VpnServers           *EntityCollection[domain.VpnServer]
	VpnTunnels           *EntityCollection[domain.VpnTunnel]
	WanInterfaces        *EntityCollection[domain.WanInterface]
	RadiusProfiles       *EntityCollection[domain.RadiusProfile]
	DeviceTags           *EntityCollection[domain.DeviceTag]

	// EventLog holds the most recent events a bulk refresh pulled from
	// the API, keyed and pruned like every other collection. Live events
	// arriving over the WebSocket are upserted into it too, so a late
	// subscriber to EventLog's snapshot sees history, not just whatever
	// arrives after it joins.
	EventLog *EntityCollection[domain.Event]

	LastFullRefresh *Watch[time.Time]
	LastWsEvent     *Watch[time.Time]

	// Events is the live fan-out for subscribers that want every event
	// as it happens rather than polling EventLog's snapshot.
	Events *Broadcast[domain.Event]
}

// NewDataStore creates an empty store with every collection and channel
// initialized and ready to accept subscribers before the first refresh
// runs.
func NewDataStore() *DataStore {
	return &DataStore{
		Devices:          NewEntityCollection[domain.Device](),
		Clients:          NewEntityCollection[domain.Client](),
		Networks:         NewEntityCollection[domain.Network](),
		WifiBroadcasts:   NewEntityCollection[domain.WifiBroadcast](),
		FirewallZones:    NewEntityCollection[domain.FirewallZone](),
		FirewallPolicies: NewEntityCollection[domain.FirewallPolicy](),
		AclRules:         NewEntityCollection[domain.AclRule](),
		DnsPolicies:      NewEntityCollection[domain.DnsPolicy](),
		Vouchers:         NewEntityCollection[domain.Voucher](),
		Sites:            NewEntityCollection[domain.Site](),
		TrafficMatchingLists: NewEntityCollection[domain.TrafficMatchingList](),
		VpnServers:           NewEntityCollection[domain.VpnServer](),
		VpnTunnels:           NewEntityCollection[domain.VpnTunnel](),
		WanInterfaces:        NewEntityCollection[domain.WanInterface](),
		RadiusProfiles:       NewEntityCollection[domain.RadiusProfile](),
		DeviceTags:           NewEntityCollection[domain.DeviceTag](),
		EventLog:         NewEntityCollection[domain.Event](),
		LastFullRefresh:  NewWatch(time.Time{}),
		LastWsEvent:      NewWatch(time.Time{}),
		Events:           NewBroadcast[domain.Event](BroadcastCapacity),
	}
}

// DevicesSnapshot returns the current full device list.
func (s *DataStore) DevicesSnapshot() []domain.Device { return s.Devices.Snapshot() }

// ClientsSnapshot returns the current full client list.
func (s *DataStore) ClientsSnapshot() []domain.Client { return s.Clients.Snapshot() }

// NetworksSnapshot returns the current full network list.
func (s *DataStore) NetworksSnapshot() []domain.Network { return s.Networks.Snapshot() }

// WifiBroadcastsSnapshot returns the current full WiFi broadcast list.
func (s *DataStore) WifiBroadcastsSnapshot() []domain.WifiBroadcast { return s.WifiBroadcasts.Snapshot() }

// FirewallZonesSnapshot returns the current full firewall zone list.
func (s *DataStore) FirewallZonesSnapshot() []domain.FirewallZone { return s.FirewallZones.Snapshot() }

// FirewallPoliciesSnapshot returns the current full firewall policy list.
func (s *DataStore) FirewallPoliciesSnapshot() []domain.FirewallPolicy {
	return s.FirewallPolicies.Snapshot()
}

// AclRulesSnapshot returns the current full ACL rule list.
func (s *DataStore) AclRulesSnapshot() []domain.AclRule { return s.AclRules.Snapshot() }

// DnsPoliciesSnapshot returns the current full DNS policy list.
func (s *DataStore) DnsPoliciesSnapshot() []domain.DnsPolicy { return s.DnsPolicies.Snapshot() }

// VouchersSnapshot returns the current full voucher list.
func (s *DataStore) VouchersSnapshot() []domain.Voucher { return s.Vouchers.Snapshot() }

// SitesSnapshot returns the current full site list.
func (s *DataStore) SitesSnapshot() []domain.Site { return s.Sites.Snapshot() }

// EventLogSnapshot returns the current full event log.
func (s *DataStore) EventLogSnapshot() []domain.Event { return s.EventLog.Snapshot() }

// TrafficMatchingListsSnapshot returns the current full traffic matching
// list set.
func (s *DataStore) TrafficMatchingListsSnapshot() []domain.TrafficMatchingList {
	return s.TrafficMatchingLists.Snapshot()
}

// VpnServersSnapshot returns the current full VPN server list.
func (s *DataStore) VpnServersSnapshot() []domain.VpnServer { return s.VpnServers.Snapshot() }

// VpnTunnelsSnapshot returns the current full VPN tunnel list.
func (s *DataStore) VpnTunnelsSnapshot() []domain.VpnTunnel { return s.VpnTunnels.Snapshot() }

// WanInterfacesSnapshot returns the current full WAN interface list.
func (s *DataStore) WanInterfacesSnapshot() []domain.WanInterface { return s.WanInterfaces.Snapshot() }

// RadiusProfilesSnapshot returns the current full RADIUS profile list.
func (s *DataStore) RadiusProfilesSnapshot() []domain.RadiusProfile {
	return s.RadiusProfiles.Snapshot()
}

// DeviceTagsSnapshot returns the current full device tag list.
func (s *DataStore) DeviceTagsSnapshot() []domain.DeviceTag { return s.DeviceTags.Snapshot() }

// SubscribeDevices yields the full device list on every change.
func (s *DataStore) SubscribeDevices() (<-chan []domain.Device, func()) { return s.Devices.Subscribe() }

// SubscribeClients yields the full client list on every change.
func (s *DataStore) SubscribeClients() (<-chan []domain.Client, func()) { return s.Clients.Subscribe() }

// SubscribeEvents yields every published event, flagging lag on delivery
// after a missed one.
func (s *DataStore) SubscribeEvents() (<-chan Delivery[domain.Event], func()) { return s.Events.Subscribe() }

// PublishEvent broadcasts an event to every current subscriber, upserts it
// into EventLog, and records the wake time on LastWsEvent. Events with no
// id of their own (most WebSocket events) are keyed by their timestamp.
func (s *DataStore) PublishEvent(ev domain.Event) {
	var key string
	var id domain.EntityId
	if ev.ID != nil {
		key = ev.ID.String()
		id = *ev.ID
	} else {
		key = "evt:" + strconv.FormatInt(ev.Timestamp.UnixMilli(), 10)
		id = domain.NewEntityId(key)
	}
	s.EventLog.Upsert(key, id, ev)
	s.Events.Publish(ev)
	s.LastWsEvent.Set(time.Now().UTC())
}

// MarkFullRefresh records that a full bulk refresh just completed.
func (s *DataStore) MarkFullRefresh(at time.Time) {
	s.LastFullRefresh.Set(at)
}

// Clear drops every entity from every collection, publishing an empty
// snapshot to current subscribers. Called on disconnect so a stale
// session's data doesn't linger for the next connect.
func (s *DataStore) Clear() {
	for _, k := range s.Devices.Keys() {
		s.Devices.Remove(k)
	}
	for _, k := range s.Clients.Keys() {
		s.Clients.Remove(k)
	}
	for _, k := range s.Networks.Keys() {
		s.Networks.Remove(k)
	}
	for _, k := range s.WifiBroadcasts.Keys() {
		s.WifiBroadcasts.Remove(k)
	}
	for _, k := range s.FirewallZones.Keys() {
		s.FirewallZones.Remove(k)
	}
	for _, k := range s.FirewallPolicies.Keys() {
		s.FirewallPolicies.Remove(k)
	}
	for _, k := range s.AclRules.Keys() {
		s.AclRules.Remove(k)
	}
	for _, k := range s.DnsPolicies.Keys() {
		s.DnsPolicies.Remove(k)
	}
	for _, k := range s.Vouchers.Keys() {
		s.Vouchers.Remove(k)
	}
	for _, k := range s.Sites.Keys() {
		s.Sites.Remove(k)
	}
	for _, k := range s.TrafficMatchingLists.Keys() {
		s.TrafficMatchingLists.Remove(k)
	}
	for _, k := range s.VpnServers.Keys() {
		s.VpnServers.Remove(k)
	}
	for _, k := range s.VpnTunnels.Keys() {
		s.VpnTunnels.Remove(k)
	}
	for _, k := range s.WanInterfaces.Keys() {
		s.WanInterfaces.Remove(k)
	}
	for _, k := range s.RadiusProfiles.Keys() {
		s.RadiusProfiles.Remove(k)
	}
	for _, k := range s.DeviceTags.Keys() {
		s.DeviceTags.Remove(k)
	}
	for _, k := range s.EventLog.Keys() {
		s.EventLog.Remove(k)
	}
}
