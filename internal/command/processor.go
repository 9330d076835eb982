// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package command

import (
	"context"
	"fmt"

	"github.com/ksc98/unifly-sub001/internal/domain"
	"github.com/ksc98/unifly-sub001/internal/errors"
	"github.com/ksc98/unifly-sub001/internal/logging"
	"github.com/ksc98/unifly-sub001/internal/store"
	"github.com/ksc98/unifly-sub001/internal/transport"
	"github.com/ksc98/unifly-sub001/internal/wire"
)

// envelope pairs one queued command with the channel its caller is
// waiting on.
type envelope struct {
	cmd   Command
	reply chan reply
}

type reply struct {
	result Result
	err    error
}

// Processor owns the command queue and the single task that drains it,
// routing each command to whichever backend spec §4.6 names for it and
// reporting the outcome back on the caller's reply channel. The queue is
// a channel buffered to 256 envelopes, not an unbounded one: while it is
// full, Execute waits for room or for its context to end.
//
// Integration may be nil when the controller is configured legacy-only;
// Legacy may be nil when it's API-key-only. A command routed to a nil
// backend fails with KindUnsupportedOperation rather than panicking.
type Processor struct {
	integration *transport.IntegrationClient
	legacy      *transport.LegacyClient
	ds          *store.DataStore
	log         *logging.Logger
	audit       *Logger

	queue chan envelope
}

// NewProcessor builds a Processor. Call Run in its own goroutine to start
// draining the queue; Execute enqueues and blocks for the reply.
func NewProcessor(integration *transport.IntegrationClient, legacy *transport.LegacyClient, ds *store.DataStore, log *logging.Logger) *Processor {
	if log == nil {
		log = logging.NewNop()
	}
	return &Processor{
		integration: integration,
		legacy:      legacy,
		ds:          ds,
		log:         log.Named("command"),
		audit:       NewLogger(log),
		queue:       make(chan envelope, 256),
	}
}

// Run drains the queue until ctx is cancelled. Exactly one Run goroutine
// should be active per Processor: commands execute one at a time, in
// arrival order.
func (p *Processor) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case env := <-p.queue:
			result, err := p.dispatch(ctx, env.cmd)
			p.audit.Log(env.cmd, err)
			env.reply <- reply{result: result, err: err}
		}
	}
}

// Execute enqueues cmd and blocks until the processor task has executed
// it and replied, or ctx is cancelled first.
func (p *Processor) Execute(ctx context.Context, cmd Command) (Result, error) {
	env := envelope{cmd: cmd, reply: make(chan reply, 1)}
	select {
	case p.queue <- env:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case r := <-env.reply:
		return r.result, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// integrationPath builds an Integration API path scoped to this
// processor's site. UniFi OS's additional "/proxy/network" prefix is the
// transport layer's concern; IntegrationClient does not yet carry
// platform, so this path is correct for Classic Controller and any UniFi
// OS deployment whose caller already folds the prefix into baseURL.
func (p *Processor) integrationPath(resource string) string {
	return "/integration/v1/sites/" + p.integration.Site() + "/" + resource
}

// dispatch type-switches on cmd, routes it to the backend spec §4.6
// names, and on success upserts the returned entity into the store
// (optimistic write-through) before returning the matching Result.
func (p *Processor) dispatch(ctx context.Context, cmd Command) (Result, error) {
	switch c := cmd.(type) {

	// Device/client imperative commands: Integration when the endpoint
	// exists, else legacy cmd/devmgr or cmd/stamgr fallback.
	case AdoptDevice:
		return p.deviceAction(ctx, "adopt", c.Mac)
	case RestartDevice:
		return p.deviceAction(ctx, "restart", c.Mac)
	case UpgradeDevice:
		return p.deviceAction(ctx, "upgrade", c.Mac)
	case LocateDevice:
		action := "set-locate"
		if !c.Enable {
			action = "unset-locate"
		}
		return p.deviceAction(ctx, action, c.Mac)
	case ForgetDevice:
		return p.deviceAction(ctx, "forget", c.Mac)
	case PowerCycleDevicePort:
		if p.legacy == nil {
			return nil, errors.UnsupportedOperation("PowerCycleDevicePort requires legacy auth")
		}
		_, err := transport.LegacyPost[struct{}](ctx, p.legacy, p.legacy.SiteURL("cmd/devmgr"), map[string]any{
			"cmd": "power-cycle", "mac": c.Mac.String(), "port_idx": c.Port,
		})
		return ResultOk{}, err

	case KickClient:
		return p.clientAction(ctx, "kick-sta", c.Mac)
	case BlockClient:
		return p.clientAction(ctx, "block-sta", c.Mac)
	case UnblockClient:
		return p.clientAction(ctx, "unblock-sta", c.Mac)
	case AuthorizeGuest:
		if p.legacy == nil {
			return nil, errors.UnsupportedOperation("AuthorizeGuest requires legacy auth")
		}
		_, err := transport.LegacyPost[struct{}](ctx, p.legacy, p.legacy.SiteURL("cmd/stamgr"), map[string]any{
			"cmd": "authorize-guest", "mac": c.Mac.String(), "minutes": c.MinutesDuration,
		})
		return ResultOk{}, err
	case UnauthorizeGuest:
		return p.clientAction(ctx, "unauthorize-guest", c.Mac)

	// Network/WiFi/firewall/ACL/DNS/traffic-list CRUD routes to Integration.
	case CreateNetwork:
		if p.integration == nil {
			return nil, errors.UnsupportedOperation("CreateNetwork requires an Integration API key")
		}
		resp, err := transport.IntegrationPost[wire.IntegrationNetwork](ctx, p.integration, p.integrationPath("networks"), domain.NetworkToIntegration(c.Network))
		if err != nil {
			return nil, err
		}
		n := domain.NetworkFromIntegration(resp)
		p.ds.Networks.Upsert("net:"+n.ID.String(), n.ID, n)
		return ResultNetwork{Network: n}, nil
	case UpdateNetwork:
		if p.integration == nil {
			return nil, errors.UnsupportedOperation("UpdateNetwork requires an Integration API key")
		}
		resp, err := transport.IntegrationPut[wire.IntegrationNetwork](ctx, p.integration, p.integrationPath("networks/"+c.ID.String()), domain.NetworkToIntegration(c.Network))
		if err != nil {
			return nil, err
		}
		n := domain.NetworkFromIntegration(resp)
		p.ds.Networks.Upsert("net:"+n.ID.String(), n.ID, n)
		return ResultNetwork{Network: n}, nil
	case DeleteNetwork:
		if p.integration == nil {
			return nil, errors.UnsupportedOperation("DeleteNetwork requires an Integration API key")
		}
		if err := transport.IntegrationDelete(ctx, p.integration, p.integrationPath("networks/"+c.ID.String())); err != nil {
			return nil, err
		}
		p.ds.Networks.Remove("net:" + c.ID.String())
		return ResultOk{}, nil

	case CreateWifiBroadcast:
		return p.crudWifi(ctx, "POST", "wifi_broadcasts", "", c.Wifi)
	case UpdateWifiBroadcast:
		return p.crudWifi(ctx, "PUT", "wifi_broadcasts", c.ID.String(), c.Wifi)
	case DeleteWifiBroadcast:
		return p.deleteEntity(ctx, "wifi_broadcasts", c.ID, func(id string) { p.ds.WifiBroadcasts.Remove("wifi:" + id) })

	case CreateFirewallZone:
		return p.crudFirewallZone(ctx, "POST", "", c.Zone)
	case UpdateFirewallZone:
		return p.crudFirewallZone(ctx, "PUT", c.ID.String(), c.Zone)
	case DeleteFirewallZone:
		return p.deleteEntity(ctx, "firewall/zones", c.ID, func(id string) { p.ds.FirewallZones.Remove("fwz:" + id) })

	case CreateFirewallPolicy:
		return p.crudFirewallPolicy(ctx, "POST", "", c.Policy)
	case UpdateFirewallPolicy:
		return p.crudFirewallPolicy(ctx, "PUT", c.ID.String(), c.Policy)
	case PatchFirewallPolicy:
		return p.patchFirewallPolicy(ctx, c)
	case DeleteFirewallPolicy:
		return p.deleteEntity(ctx, "firewall/policies", c.ID, func(id string) { p.ds.FirewallPolicies.Remove("fwp:" + id) })
	case ReorderFirewallPolicies:
		if p.integration == nil {
			return nil, errors.UnsupportedOperation("ReorderFirewallPolicies requires an Integration API key")
		}
		ids := make([]string, len(c.OrderedIDs))
		for i, id := range c.OrderedIDs {
			ids[i] = id.String()
		}
		_, err := transport.IntegrationPut[struct{}](ctx, p.integration,
			p.integrationPath("firewall/policies/reorder"),
			map[string]any{"zonePairId": c.ZonePairID, "orderedIds": ids})
		return ResultOk{}, err

	case CreateAclRule:
		return p.crudAclRule(ctx, "POST", "", c.Rule)
	case UpdateAclRule:
		return p.crudAclRule(ctx, "PUT", c.ID.String(), c.Rule)
	case DeleteAclRule:
		return p.deleteEntity(ctx, "acl_rules", c.ID, func(id string) { p.ds.AclRules.Remove("acl:" + id) })

	case CreateDnsPolicy:
		return p.crudDnsPolicy(ctx, "POST", "", c.Policy)
	case UpdateDnsPolicy:
		return p.crudDnsPolicy(ctx, "PUT", c.ID.String(), c.Policy)
	case DeleteDnsPolicy:
		return p.deleteEntity(ctx, "dns_policies", c.ID, func(id string) { p.ds.DnsPolicies.Remove("dns:" + id) })

	case CreateTrafficMatchingList:
		return p.crudTrafficList(ctx, "POST", "", c.List)
	case UpdateTrafficMatchingList:
		return p.crudTrafficList(ctx, "PUT", c.ID.String(), c.List)
	case DeleteTrafficMatchingList:
		return p.deleteEntity(ctx, "traffic_lists", c.ID, func(id string) { p.ds.TrafficMatchingLists.Remove("tml:" + id) })

	case CreateVouchers:
		if p.integration == nil {
			return nil, errors.UnsupportedOperation("CreateVouchers requires an Integration API key")
		}
		resp, err := transport.IntegrationPost[[]wire.IntegrationVoucher](ctx, p.integration, p.integrationPath("vouchers"), map[string]any{
			"count":                c.Count,
			"timeLimitMinutes":     c.TimeLimitMinutes,
			"dataUsageLimitMbytes": c.DataUsageLimitMB,
			"authorizedGuestLimit": c.AuthorizedGuestLimit,
		})
		if err != nil {
			return nil, err
		}
		vouchers := make([]domain.Voucher, len(resp))
		for i, w := range resp {
			v := domain.VoucherFromIntegration(w)
			vouchers[i] = v
			p.ds.Vouchers.Upsert("vch:"+v.ID.String(), v.ID, v)
		}
		return ResultVouchers{Vouchers: vouchers}, nil
	case DeleteVoucher:
		return p.deleteEntity(ctx, "vouchers", c.ID, func(id string) { p.ds.Vouchers.Remove("vch:" + id) })

	// Alarms, backup, sites, admins, power — all legacy.
	case ArchiveAlarm:
		if p.legacy == nil {
			return nil, errors.UnsupportedOperation("ArchiveAlarm requires legacy auth")
		}
		_, err := transport.LegacyPost[struct{}](ctx, p.legacy, p.legacy.SiteURL("cmd/evtmgr"), map[string]any{
			"cmd": "archive-alarm", "_id": c.ID.String(),
		})
		return ResultOk{}, err
	case ArchiveAllAlarms:
		if p.legacy == nil {
			return nil, errors.UnsupportedOperation("ArchiveAllAlarms requires legacy auth")
		}
		_, err := transport.LegacyPost[struct{}](ctx, p.legacy, p.legacy.SiteURL("cmd/evtmgr"), map[string]any{"cmd": "archive-all-alarms"})
		return ResultOk{}, err
	case CreateBackup:
		if p.legacy == nil {
			return nil, errors.UnsupportedOperation("CreateBackup requires legacy auth")
		}
		_, err := transport.LegacyPost[struct{}](ctx, p.legacy, p.legacy.SiteURL("cmd/backup"), map[string]any{"cmd": "backup"})
		return ResultOk{}, err
	case RestoreBackup:
		if p.legacy == nil {
			return nil, errors.UnsupportedOperation("RestoreBackup requires legacy auth")
		}
		_, err := transport.LegacyPost[struct{}](ctx, p.legacy, p.legacy.SiteURL("cmd/backup"), map[string]any{
			"cmd": "restore", "filename": c.Filename,
		})
		return ResultOk{}, err
	case CreateSite:
		if p.legacy == nil {
			return nil, errors.UnsupportedOperation("CreateSite requires legacy auth")
		}
		_, err := transport.LegacyPost[struct{}](ctx, p.legacy, p.legacy.ApiURL("s/default/cmd/sitemgr"), map[string]any{
			"cmd": "add-site", "desc": c.Name,
		})
		return ResultOk{}, err
	case DeleteSite:
		if p.legacy == nil {
			return nil, errors.UnsupportedOperation("DeleteSite requires legacy auth")
		}
		_, err := transport.LegacyPost[struct{}](ctx, p.legacy, p.legacy.ApiURL("s/default/cmd/sitemgr"), map[string]any{
			"cmd": "delete-site", "site": c.ID.String(),
		})
		if err != nil {
			return nil, err
		}
		p.ds.Sites.Remove("site:" + c.ID.String())
		return ResultOk{}, nil
	case InviteAdmin:
		if p.legacy == nil {
			return nil, errors.UnsupportedOperation("InviteAdmin requires legacy auth")
		}
		_, err := transport.LegacyPost[struct{}](ctx, p.legacy, p.legacy.SiteURL("cmd/sitemgr"), map[string]any{
			"cmd": "invite-admin", "email": c.Email, "role": c.Role,
		})
		return ResultOk{}, err
	case RevokeAdmin:
		if p.legacy == nil {
			return nil, errors.UnsupportedOperation("RevokeAdmin requires legacy auth")
		}
		_, err := transport.LegacyPost[struct{}](ctx, p.legacy, p.legacy.SiteURL("cmd/sitemgr"), map[string]any{
			"cmd": "revoke-admin", "admin": c.ID.String(),
		})
		return ResultOk{}, err
	case RebootController:
		if p.legacy == nil {
			return nil, errors.UnsupportedOperation("RebootController requires legacy auth")
		}
		_, err := transport.LegacyPost[struct{}](ctx, p.legacy, p.legacy.SiteURL("cmd/system"), map[string]any{"cmd": "reboot"})
		return ResultOk{}, err
	case PoweroffController:
		if p.legacy == nil {
			return nil, errors.UnsupportedOperation("PoweroffController requires legacy auth")
		}
		_, err := transport.LegacyPost[struct{}](ctx, p.legacy, p.legacy.SiteURL("cmd/system"), map[string]any{"cmd": "poweroff"})
		return ResultOk{}, err

	default:
		return nil, errors.UnsupportedOperation(fmt.Sprintf("unrecognized command %T", cmd))
	}
}

// deviceAction tries the Integration per-device action endpoint first,
// falling back to the legacy cmd/devmgr verb when no Integration client
// is configured or the Integration endpoint answers 404.
func (p *Processor) deviceAction(ctx context.Context, action string, mac domain.MacAddress) (Result, error) {
	if p.integration != nil {
		d, err := transport.IntegrationPost[wire.IntegrationDevice](ctx, p.integration,
			p.integrationPath("devices/"+mac.String()+"/actions/"+action), nil)
		if err == nil {
			domainDevice := domain.DeviceFromIntegration(d)
			p.ds.Devices.Upsert(mac.String(), domainDevice.ID, domainDevice)
			return ResultDevice{Device: domainDevice}, nil
		}
		if !errors.IsNotFound(err) {
			return nil, err
		}
		// Fall through to legacy: the action endpoint doesn't exist for
		// this device type or firmware.
	}
	if p.legacy == nil {
		return nil, errors.UnsupportedOperation(action + " has no available backend")
	}
	_, err := transport.LegacyPost[struct{}](ctx, p.legacy, p.legacy.SiteURL("cmd/devmgr"), map[string]any{
		"cmd": action, "mac": mac.String(),
	})
	return ResultOk{}, err
}

// clientAction mirrors deviceAction for the client-scoped imperative
// commands, which all live under legacy cmd/stamgr.
func (p *Processor) clientAction(ctx context.Context, action string, mac domain.MacAddress) (Result, error) {
	if p.legacy == nil {
		return nil, errors.UnsupportedOperation(action + " requires legacy auth")
	}
	_, err := transport.LegacyPost[struct{}](ctx, p.legacy, p.legacy.SiteURL("cmd/stamgr"), map[string]any{
		"cmd": action, "mac": mac.String(),
	})
	return ResultOk{}, err
}

func (p *Processor) crudWifi(ctx context.Context, method, resource, id string, body domain.WifiBroadcast) (Result, error) {
	if p.integration == nil {
		return nil, errors.UnsupportedOperation("WiFi broadcast CRUD requires an Integration API key")
	}
	path := p.integrationPath(resource)
	if id != "" {
		path = p.integrationPath(resource + "/" + id)
	}
	var (
		resp wire.IntegrationWifi
		err  error
	)
	wireBody := domain.WifiBroadcastToIntegration(body)
	if method == "POST" {
		resp, err = transport.IntegrationPost[wire.IntegrationWifi](ctx, p.integration, path, wireBody)
	} else {
		resp, err = transport.IntegrationPut[wire.IntegrationWifi](ctx, p.integration, path, wireBody)
	}
	if err != nil {
		return nil, err
	}
	w := domain.WifiBroadcastFromIntegration(resp)
	p.ds.WifiBroadcasts.Upsert("wifi:"+w.ID.String(), w.ID, w)
	return ResultWifiBroadcast{Wifi: w}, nil
}

func (p *Processor) crudFirewallZone(ctx context.Context, method, id string, body domain.FirewallZone) (Result, error) {
	if p.integration == nil {
		return nil, errors.UnsupportedOperation("firewall zone CRUD requires an Integration API key")
	}
	path := p.integrationPath("firewall/zones")
	if id != "" {
		path = p.integrationPath("firewall/zones/" + id)
	}
	var (
		resp wire.IntegrationFirewallZone
		err  error
	)
	wireBody := domain.FirewallZoneToIntegration(body)
	if method == "POST" {
		resp, err = transport.IntegrationPost[wire.IntegrationFirewallZone](ctx, p.integration, path, wireBody)
	} else {
		resp, err = transport.IntegrationPut[wire.IntegrationFirewallZone](ctx, p.integration, path, wireBody)
	}
	if err != nil {
		return nil, err
	}
	z := domain.FirewallZoneFromIntegration(resp)
	p.ds.FirewallZones.Upsert("fwz:"+z.ID.String(), z.ID, z)
	return ResultFirewallZone{Zone: z}, nil
}

func (p *Processor) crudFirewallPolicy(ctx context.Context, method, id string, body domain.FirewallPolicy) (Result, error) {
	if p.integration == nil {
		return nil, errors.UnsupportedOperation("firewall policy CRUD requires an Integration API key")
	}
	path := p.integrationPath("firewall/policies")
	if id != "" {
		path = p.integrationPath("firewall/policies/" + id)
	}
	var (
		resp wire.IntegrationFirewallPolicy
		err  error
	)
	wireBody := domain.FirewallPolicyToIntegration(body)
	if method == "POST" {
		resp, err = transport.IntegrationPost[wire.IntegrationFirewallPolicy](ctx, p.integration, path, wireBody)
	} else {
		resp, err = transport.IntegrationPut[wire.IntegrationFirewallPolicy](ctx, p.integration, path, wireBody)
	}
	if err != nil {
		return nil, err
	}
	pol := domain.FirewallPolicyFromIntegration(resp)
	p.ds.FirewallPolicies.Upsert("fwp:"+pol.ID.String(), pol.ID, pol)
	return ResultFirewallPolicy{Policy: pol}, nil
}

// patchFirewallPolicy sends a lightweight enabled-only body to the policy
// endpoint with PUT (the Integration client has no PATCH helper); if the
// controller answers 404, it falls back to a full PUT built from the
// current store snapshot and logs the fallback as a warning rather than
// returning an error.
func (p *Processor) patchFirewallPolicy(ctx context.Context, c PatchFirewallPolicy) (Result, error) {
	if p.integration == nil {
		return nil, errors.UnsupportedOperation("PatchFirewallPolicy requires an Integration API key")
	}
	path := p.integrationPath("firewall/policies/" + c.ID.String())
	resp, err := transport.IntegrationPut[wire.IntegrationFirewallPolicy](ctx, p.integration, path, map[string]any{"enabled": c.Enabled})
	if err == nil {
		pol := domain.FirewallPolicyFromIntegration(resp)
		p.ds.FirewallPolicies.Upsert("fwp:"+pol.ID.String(), pol.ID, pol)
		return ResultFirewallPolicy{Policy: pol}, nil
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}

	existing, ok := p.ds.FirewallPolicies.GetByID(c.ID)
	if !ok {
		return nil, err
	}
	existing.Enabled = c.Enabled
	p.log.Warnw("PATCH firewall policy endpoint missing, falling back to full PUT", "id", c.ID.String())
	return p.crudFirewallPolicy(ctx, "PUT", c.ID.String(), existing)
}

func (p *Processor) crudAclRule(ctx context.Context, method, id string, body domain.AclRule) (Result, error) {
	if p.integration == nil {
		return nil, errors.UnsupportedOperation("ACL rule CRUD requires an Integration API key")
	}
	path := p.integrationPath("acl_rules")
	if id != "" {
		path = p.integrationPath("acl_rules/" + id)
	}
	var (
		resp wire.IntegrationAclRule
		err  error
	)
	wireBody := domain.AclRuleToIntegration(body)
	if method == "POST" {
		resp, err = transport.IntegrationPost[wire.IntegrationAclRule](ctx, p.integration, path, wireBody)
	} else {
		resp, err = transport.IntegrationPut[wire.IntegrationAclRule](ctx, p.integration, path, wireBody)
	}
	if err != nil {
		return nil, err
	}
	rule := domain.AclRuleFromIntegration(resp)
	p.ds.AclRules.Upsert("acl:"+rule.ID.String(), rule.ID, rule)
	return ResultAclRule{Rule: rule}, nil
}

func (p *Processor) crudDnsPolicy(ctx context.Context, method, id string, body domain.DnsPolicy) (Result, error) {
	if p.integration == nil {
		return nil, errors.UnsupportedOperation("DNS policy CRUD requires an Integration API key")
	}
	path := p.integrationPath("dns_policies")
	if id != "" {
		path = p.integrationPath("dns_policies/" + id)
	}
	var (
		resp wire.IntegrationDnsPolicy
		err  error
	)
	wireBody := domain.DnsPolicyToIntegration(body)
	if method == "POST" {
		resp, err = transport.IntegrationPost[wire.IntegrationDnsPolicy](ctx, p.integration, path, wireBody)
	} else {
		resp, err = transport.IntegrationPut[wire.IntegrationDnsPolicy](ctx, p.integration, path, wireBody)
	}
	if err != nil {
		return nil, err
	}
	pol := domain.DnsPolicyFromIntegration(resp)
	p.ds.DnsPolicies.Upsert("dns:"+pol.ID.String(), pol.ID, pol)
	return ResultDnsPolicy{Policy: pol}, nil
}

func (p *Processor) crudTrafficList(ctx context.Context, method, id string, body domain.TrafficMatchingList) (Result, error) {
	if p.integration == nil {
		return nil, errors.UnsupportedOperation("traffic matching list CRUD requires an Integration API key")
	}
	path := p.integrationPath("traffic_lists")
	if id != "" {
		path = p.integrationPath("traffic_lists/" + id)
	}
	var (
		resp wire.IntegrationTrafficList
		err  error
	)
	wireBody := domain.TrafficMatchingListToIntegration(body)
	if method == "POST" {
		resp, err = transport.IntegrationPost[wire.IntegrationTrafficList](ctx, p.integration, path, wireBody)
	} else {
		resp, err = transport.IntegrationPut[wire.IntegrationTrafficList](ctx, p.integration, path, wireBody)
	}
	if err != nil {
		return nil, err
	}
	list := domain.TrafficMatchingListFromIntegration(resp)
	p.ds.TrafficMatchingLists.Upsert("tml:"+list.ID.String(), list.ID, list)
	return ResultTrafficMatchingList{List: list}, nil
}

// deleteEntity issues an Integration DELETE and, on success, removes the
// entity from the store collection via remove.
func (p *Processor) deleteEntity(ctx context.Context, resource string, id domain.EntityId, remove func(string)) (Result, error) {
	if p.integration == nil {
		return nil, errors.UnsupportedOperation(resource + " delete requires an Integration API key")
	}
	if err := transport.IntegrationDelete(ctx, p.integration, p.integrationPath(resource+"/"+id.String())); err != nil {
		return nil, err
	}
	remove(id.String())
	return ResultOk{}, nil
}
