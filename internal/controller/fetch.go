// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package controller

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ksc98/unifly-sub001/internal/domain"
	"github.com/ksc98/unifly-sub001/internal/refresh"
	"github.com/ksc98/unifly-sub001/internal/transport"
	"github.com/ksc98/unifly-sub001/internal/wire"
)

// fetchSnapshot runs one fetch per entity type concurrently and assembles
// a refresh.Snapshot. CRUD entities come from the Integration API when an
// IntegrationClient is configured; sites and events always come from
// Legacy, since the Integration API has no equivalent listing. A hard
// failure from any single fetch fails the whole snapshot — callers decide
// whether that's fatal (initial connect) or merely logged (periodic
// refresh).
func (c *Controller) fetchSnapshot(ctx context.Context) (refresh.Snapshot, error) {
	var snap refresh.Snapshot
	g, gctx := errgroup.WithContext(ctx)

	if c.integration != nil {
		g.Go(fetchInto(gctx, c.integration, "devices", &snap.Devices, func(w wire.IntegrationDevice) domain.Device {
			return domain.DeviceFromIntegrationFull(w)
		}))
		g.Go(fetchInto(gctx, c.integration, "networks", &snap.Networks, domain.NetworkFromIntegration))
		g.Go(fetchInto(gctx, c.integration, "wifi_broadcasts", &snap.Wifi, domain.WifiBroadcastFromIntegration))
		g.Go(fetchInto(gctx, c.integration, "firewall/policies", &snap.Policies, domain.FirewallPolicyFromIntegration))
		g.Go(fetchInto(gctx, c.integration, "firewall/zones", &snap.Zones, domain.FirewallZoneFromIntegration))
		g.Go(fetchInto(gctx, c.integration, "acl_rules", &snap.Acls, domain.AclRuleFromIntegration))
		g.Go(fetchInto(gctx, c.integration, "dns_policies", &snap.Dns, domain.DnsPolicyFromIntegration))
		g.Go(fetchInto(gctx, c.integration, "vouchers", &snap.Vouchers, domain.VoucherFromIntegration))
		g.Go(fetchInto(gctx, c.integration, "traffic_lists", &snap.TrafficMatchingLists, domain.TrafficMatchingListFromIntegration))
	}

	if c.legacy != nil {
		g.Go(func() error {
			sites, err := transport.LegacyGet[wire.LegacySite](gctx, c.legacy, c.legacy.ApiURL("self/sites"))
			if err != nil {
				return err
			}
			converted := make([]domain.Site, len(sites))
			for i, s := range sites {
				converted[i] = domain.SiteFromLegacy(s)
			}
			snap.Sites = converted
			return nil
		})
		g.Go(func() error {
			events, err := transport.LegacyGet[wire.LegacyEvent](gctx, c.legacy, c.legacy.SiteURL("stat/event"))
			if err != nil {
				return err
			}
			converted := make([]domain.Event, len(events))
			for i, e := range events {
				converted[i] = domain.EventFromLegacy(e)
			}
			snap.Events = converted
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return refresh.Snapshot{}, err
	}
	return snap, nil
}

// fetchInto lists one Integration API resource and decodes every element
// with convert, writing the result into out. Shared by every CRUD entity
// type fetchSnapshot pulls, differing only in resource path, response
// wire type, and conversion function.
func fetchInto[W any, T any](ctx context.Context, client *transport.IntegrationClient, resource string, out *[]T, convert func(W) T) func() error {
	return func() error {
		items, err := transport.IntegrationList[W](ctx, client, "/integration/v1/sites/"+client.Site()+"/"+resource)
		if err != nil {
			return err
		}
		converted := make([]T, len(items))
		for i, w := range items {
			converted[i] = convert(w)
		}
		*out = converted
		return nil
	}
}

// pollDeviceStats fetches the legacy device list and merges resource
// utilization (CPU/memory/load/uptime/client count) onto each matching
// stored device, leaving every Integration-sourced field untouched.
// Devices legacy reports that aren't already in the store are skipped:
// identity and adoption state come from the Integration API alone.
func (c *Controller) pollDeviceStats(ctx context.Context) error {
	if c.legacy == nil {
		return nil
	}
	devices, err := transport.LegacyGet[wire.LegacyDevice](ctx, c.legacy, c.legacy.SiteURL("stat/device"))
	if err != nil {
		return err
	}
	for _, w := range devices {
		key := domain.NewMacAddress(w.Mac).String()
		existing, ok := c.ds.Devices.Get(key)
		if !ok {
			continue
		}
		merged := domain.MergeLegacyDeviceStats(existing, w)
		c.ds.Devices.Upsert(key, merged.ID, merged)
	}
	return nil
}

// pollBandwidth fetches the legacy device list and merges instantaneous
// uplink throughput onto each matching stored device.
func (c *Controller) pollBandwidth(ctx context.Context) error {
	if c.legacy == nil {
		return nil
	}
	devices, err := transport.LegacyGet[wire.LegacyDevice](ctx, c.legacy, c.legacy.SiteURL("stat/device"))
	if err != nil {
		return err
	}
	for _, w := range devices {
		key := domain.NewMacAddress(w.Mac).String()
		existing, ok := c.ds.Devices.Get(key)
		if !ok {
			continue
		}
		merged := domain.MergeLegacyDeviceBandwidth(existing, w)
		c.ds.Devices.Upsert(key, merged.ID, merged)
	}
	return nil
}

// pollClients fetches the current connected-client list from legacy and
// upserts it into the client collection. Clients are never pruned by a
// full refresh; this is the only writer of that collection, and it
// upserts-then-prunes on its own cadence.
func (c *Controller) pollClients(ctx context.Context) error {
	if c.legacy == nil {
		return nil
	}
	entries, err := transport.LegacyGet[wire.LegacyClientEntry](ctx, c.legacy, c.legacy.SiteURL("stat/sta"))
	if err != nil {
		return err
	}
	incoming := make(map[string]bool, len(entries))
	for _, e := range entries {
		client := domain.ClientFromLegacy(e)
		key := client.Mac.String()
		c.ds.Clients.Upsert(key, client.ID, client)
		incoming[key] = true
	}
	for _, key := range c.ds.Clients.Keys() {
		if !incoming[key] {
			c.ds.Clients.Remove(key)
		}
	}
	return nil
}
