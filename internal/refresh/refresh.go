// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package refresh implements the upsert-then-prune bulk-update protocol:
// every item from an incoming snapshot is upserted into its collection
// first, then any key absent from the incoming set is removed. This
// ordering means a subscriber never observes a transient empty collection
// mid-refresh, unlike a clear-then-insert approach.
package refresh

import (
	"time"

	"github.com/ksc98/unifly-sub001/internal/domain"
	"github.com/ksc98/unifly-sub001/internal/store"
)

// Snapshot bundles the per-type vectors a single full refresh cycle
// yields. Client data is deliberately absent: the client collection is
// owned exclusively by the legacy client-poll task, never by a full
// refresh.
type Snapshot struct {
	Devices              []domain.Device
	Networks             []domain.Network
	Wifi                 []domain.WifiBroadcast
	Policies             []domain.FirewallPolicy
	Zones                []domain.FirewallZone
	Acls                 []domain.AclRule
	Dns                  []domain.DnsPolicy
	Vouchers             []domain.Voucher
	Sites                []domain.Site
	Events               []domain.Event
	TrafficMatchingLists []domain.TrafficMatchingList
}

// item is one (key, id, entity) triple queued for upsert.
type item[T any] struct {
	key    string
	id     domain.EntityId
	entity T
}

// upsertAndPrune upserts every incoming item, then removes any existing
// key absent from the incoming set.
func upsertAndPrune[T any](c *store.EntityCollection[T], items []item[T]) {
	incoming := make(map[string]bool, len(items))
	for _, it := range items {
		c.Upsert(it.key, it.id, it.entity)
		incoming[it.key] = true
	}
	for _, key := range c.Keys() {
		if !incoming[key] {
			c.Remove(key)
		}
	}
}

// Apply applies a full snapshot to ds using upsert-then-prune on every
// collection the snapshot carries, preserves each device's real-time
// stats and client count across the refresh (the Integration API bulk
// listing carries neither), and marks last_full_refresh once every
// collection has settled.
func Apply(ds *store.DataStore, snap Snapshot) {
	deviceItems := make([]item[domain.Device], len(snap.Devices))
	for i, d := range snap.Devices {
		key := d.Mac.String()
		if existing, ok := ds.Devices.Get(key); ok {
			d.Stats = existing.Stats
			if d.ClientCount == nil {
				d.ClientCount = existing.ClientCount
			}
		}
		deviceItems[i] = item[domain.Device]{key: key, id: d.ID, entity: d}
	}
	upsertAndPrune(ds.Devices, deviceItems)

	upsertAndPrune(ds.Networks, keyedBy(snap.Networks, "net:", func(n domain.Network) domain.EntityId { return n.ID }))
	upsertAndPrune(ds.WifiBroadcasts, keyedBy(snap.Wifi, "wifi:", func(w domain.WifiBroadcast) domain.EntityId { return w.ID }))
	upsertAndPrune(ds.FirewallPolicies, keyedBy(snap.Policies, "fwp:", func(p domain.FirewallPolicy) domain.EntityId { return p.ID }))
	upsertAndPrune(ds.FirewallZones, keyedBy(snap.Zones, "fwz:", func(z domain.FirewallZone) domain.EntityId { return z.ID }))
	upsertAndPrune(ds.AclRules, keyedBy(snap.Acls, "acl:", func(a domain.AclRule) domain.EntityId { return a.ID }))
	upsertAndPrune(ds.DnsPolicies, keyedBy(snap.Dns, "dns:", func(d domain.DnsPolicy) domain.EntityId { return d.ID }))
	upsertAndPrune(ds.Vouchers, keyedBy(snap.Vouchers, "vch:", func(v domain.Voucher) domain.EntityId { return v.ID }))
	upsertAndPrune(ds.Sites, keyedBy(snap.Sites, "site:", func(s domain.Site) domain.EntityId { return s.ID }))
	upsertAndPrune(ds.TrafficMatchingLists, keyedBy(snap.TrafficMatchingLists, "tml:", func(t domain.TrafficMatchingList) domain.EntityId { return t.ID }))

	eventItems := make([]item[domain.Event], len(snap.Events))
	for i, e := range snap.Events {
		var id domain.EntityId
		var key string
		if e.ID != nil {
			id = *e.ID
			key = id.String()
		} else {
			key = "evt:" + e.Timestamp.Format(time.RFC3339Nano)
			id = domain.NewEntityId(key)
		}
		eventItems[i] = item[domain.Event]{key: key, id: id, entity: e}
	}
	upsertAndPrune(ds.EventLog, eventItems)

	ds.MarkFullRefresh(time.Now().UTC())
}

// keyedBy builds the (key, id, entity) triples for a collection whose key
// is a fixed prefix plus the entity's EntityId string form.
func keyedBy[T any](entities []T, prefix string, idOf func(T) domain.EntityId) []item[T] {
	items := make([]item[T], len(entities))
	for i, e := range entities {
		id := idOf(e)
		items[i] = item[T]{key: prefix + id.String(), id: id, entity: e}
	}
	return items
}
