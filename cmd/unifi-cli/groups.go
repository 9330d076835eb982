// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package main

import (
	"fmt"

	"github.com/ksc98/unifly-sub001/internal/command"
	"github.com/ksc98/unifly-sub001/internal/controller"
	"github.com/ksc98/unifly-sub001/internal/domain"
)

func printSnapshot[T any](items []T) error {
	for _, item := range items {
		fmt.Printf("%+v\n", item)
	}
	fmt.Printf("(%d total)\n", len(items))
	return nil
}

func runAcl(ctrl *controller.Controller, action string, args []string) error {
	switch action {
	case "list":
		return printSnapshot(ctrl.Store().AclRules.Snapshot())
	case "create":
		fs := actionFlags("acl create")
		name := fs.String("name", "", "rule name")
		enabled := fs.Bool("enabled", true, "rule enabled")
		fs.Parse(args)
		return execute(ctrl, command.CreateAclRule{Rule: domain.AclRule{Name: *name, Enabled: *enabled}})
	case "update":
		fs := actionFlags("acl update")
		id := fs.String("id", "", "rule id")
		name := fs.String("name", "", "rule name")
		enabled := fs.Bool("enabled", true, "rule enabled")
		fs.Parse(args)
		return execute(ctrl, command.UpdateAclRule{ID: domain.NewEntityId(*id), Rule: domain.AclRule{Name: *name, Enabled: *enabled}})
	case "delete":
		fs := actionFlags("acl delete")
		id := fs.String("id", "", "rule id")
		fs.Parse(args)
		return execute(ctrl, command.DeleteAclRule{ID: domain.NewEntityId(*id)})
	}
	return fmt.Errorf("acl: unknown action %q", action)
}

func runAdmin(ctrl *controller.Controller, action string, args []string) error {
	switch action {
	case "invite":
		fs := actionFlags("admin invite")
		email := fs.String("email", "", "invitee email")
		role := fs.String("role", "admin", "role")
		fs.Parse(args)
		return execute(ctrl, command.InviteAdmin{Email: *email, Role: *role})
	case "revoke":
		fs := actionFlags("admin revoke")
		id := fs.String("id", "", "admin id")
		fs.Parse(args)
		return execute(ctrl, command.RevokeAdmin{ID: domain.NewEntityId(*id)})
	}
	return fmt.Errorf("admin: unknown action %q", action)
}

func runAlarms(ctrl *controller.Controller, action string, args []string) error {
	switch action {
	case "archive":
		fs := actionFlags("alarms archive")
		id := fs.String("id", "", "alarm id")
		fs.Parse(args)
		return execute(ctrl, command.ArchiveAlarm{ID: domain.NewEntityId(*id)})
	case "archive-all":
		return execute(ctrl, command.ArchiveAllAlarms{})
	}
	return fmt.Errorf("alarms: unknown action %q", action)
}

func runConfig(ctrl *controller.Controller, action string, args []string) error {
	switch action {
	case "backup":
		return execute(ctrl, command.CreateBackup{})
	case "restore":
		fs := actionFlags("config restore")
		filename := fs.String("filename", "", "backup filename")
		fs.Parse(args)
		return execute(ctrl, command.RestoreBackup{Filename: *filename})
	}
	return fmt.Errorf("config: unknown action %q", action)
}

// runCountries has no mutating Command: the controller's country list is
// reference data, not an entity the store tracks or a command can touch.
func runCountries(ctrl *controller.Controller, action string, args []string) error {
	return fmt.Errorf("countries: reference data has no facade-level read or write path")
}

func runDns(ctrl *controller.Controller, action string, args []string) error {
	switch action {
	case "list":
		return printSnapshot(ctrl.Store().DnsPolicies.Snapshot())
	case "create":
		fs := actionFlags("dns create")
		domainName := fs.String("domain", "", "domain")
		value := fs.String("value", "", "record value")
		fs.Parse(args)
		return execute(ctrl, command.CreateDnsPolicy{Policy: domain.DnsPolicy{Domain: *domainName, Value: *value}})
	case "update":
		fs := actionFlags("dns update")
		id := fs.String("id", "", "policy id")
		domainName := fs.String("domain", "", "domain")
		value := fs.String("value", "", "record value")
		fs.Parse(args)
		return execute(ctrl, command.UpdateDnsPolicy{ID: domain.NewEntityId(*id), Policy: domain.DnsPolicy{Domain: *domainName, Value: *value}})
	case "delete":
		fs := actionFlags("dns delete")
		id := fs.String("id", "", "policy id")
		fs.Parse(args)
		return execute(ctrl, command.DeleteDnsPolicy{ID: domain.NewEntityId(*id)})
	}
	return fmt.Errorf("dns: unknown action %q", action)
}

// runDpi reads the same traffic-matching-list collection the original's
// dpi crate inspected; list-building mutations live under traffic_lists.
func runDpi(ctrl *controller.Controller, action string, args []string) error {
	switch action {
	case "list":
		return printSnapshot(ctrl.Store().TrafficMatchingLists.Snapshot())
	}
	return fmt.Errorf("dpi: unknown action %q (mutations live under traffic_lists)", action)
}

func runEvents(ctrl *controller.Controller, action string, args []string) error {
	switch action {
	case "list":
		return printSnapshot(ctrl.Store().EventLog.Snapshot())
	}
	return fmt.Errorf("events: unknown action %q", action)
}

func runFirewall(ctrl *controller.Controller, action string, args []string) error {
	switch action {
	case "zones":
		return printSnapshot(ctrl.Store().FirewallZones.Snapshot())
	case "policies":
		return printSnapshot(ctrl.Store().FirewallPolicies.Snapshot())
	case "create-zone":
		fs := actionFlags("firewall create-zone")
		name := fs.String("name", "", "zone name")
		fs.Parse(args)
		return execute(ctrl, command.CreateFirewallZone{Zone: domain.FirewallZone{Name: *name}})
	case "delete-zone":
		fs := actionFlags("firewall delete-zone")
		id := fs.String("id", "", "zone id")
		fs.Parse(args)
		return execute(ctrl, command.DeleteFirewallZone{ID: domain.NewEntityId(*id)})
	case "create-policy":
		fs := actionFlags("firewall create-policy")
		name := fs.String("name", "", "policy name")
		enabled := fs.Bool("enabled", true, "policy enabled")
		fs.Parse(args)
		return execute(ctrl, command.CreateFirewallPolicy{Policy: domain.FirewallPolicy{Name: *name, Enabled: *enabled}})
	case "patch-policy":
		fs := actionFlags("firewall patch-policy")
		id := fs.String("id", "", "policy id")
		enabled := fs.Bool("enabled", true, "policy enabled")
		fs.Parse(args)
		return execute(ctrl, command.PatchFirewallPolicy{ID: domain.NewEntityId(*id), Enabled: *enabled})
	case "delete-policy":
		fs := actionFlags("firewall delete-policy")
		id := fs.String("id", "", "policy id")
		fs.Parse(args)
		return execute(ctrl, command.DeleteFirewallPolicy{ID: domain.NewEntityId(*id)})
	}
	return fmt.Errorf("firewall: unknown action %q", action)
}

func runNetworks(ctrl *controller.Controller, action string, args []string) error {
	switch action {
	case "list":
		return printSnapshot(ctrl.Store().Networks.Snapshot())
	case "create":
		fs := actionFlags("networks create")
		name := fs.String("name", "", "network name")
		enabled := fs.Bool("enabled", true, "network enabled")
		fs.Parse(args)
		return execute(ctrl, command.CreateNetwork{Network: domain.Network{Name: *name, Enabled: *enabled}})
	case "update":
		fs := actionFlags("networks update")
		id := fs.String("id", "", "network id")
		name := fs.String("name", "", "network name")
		enabled := fs.Bool("enabled", true, "network enabled")
		fs.Parse(args)
		return execute(ctrl, command.UpdateNetwork{ID: domain.NewEntityId(*id), Network: domain.Network{Name: *name, Enabled: *enabled}})
	case "delete":
		fs := actionFlags("networks delete")
		id := fs.String("id", "", "network id")
		fs.Parse(args)
		return execute(ctrl, command.DeleteNetwork{ID: domain.NewEntityId(*id)})
	}
	return fmt.Errorf("networks: unknown action %q", action)
}

// runRadius has no mutating Command: RADIUS profiles are read-only via
// this facade (see the controller's deliberately-unwired store collections).
func runRadius(ctrl *controller.Controller, action string, args []string) error {
	switch action {
	case "list":
		return printSnapshot(ctrl.Store().RadiusProfiles.Snapshot())
	}
	return fmt.Errorf("radius: unknown action %q", action)
}

func runSites(ctrl *controller.Controller, action string, args []string) error {
	switch action {
	case "list":
		return printSnapshot(ctrl.Store().Sites.Snapshot())
	case "create":
		fs := actionFlags("sites create")
		name := fs.String("name", "", "site name")
		fs.Parse(args)
		return execute(ctrl, command.CreateSite{Name: *name})
	case "delete":
		fs := actionFlags("sites delete")
		id := fs.String("id", "", "site id")
		fs.Parse(args)
		return execute(ctrl, command.DeleteSite{ID: domain.NewEntityId(*id)})
	}
	return fmt.Errorf("sites: unknown action %q", action)
}

// runStats reads the device collection's own counters rather than a
// separate metrics path; real time-series stats live in internal/metrics.
func runStats(ctrl *controller.Controller, action string, args []string) error {
	switch action {
	case "devices":
		return printSnapshot(ctrl.Store().Devices.Snapshot())
	case "clients":
		return printSnapshot(ctrl.Store().Clients.Snapshot())
	}
	return fmt.Errorf("stats: unknown action %q", action)
}

func runSystem(ctrl *controller.Controller, action string, args []string) error {
	switch action {
	case "reboot":
		return execute(ctrl, command.RebootController{})
	case "poweroff":
		return execute(ctrl, command.PoweroffController{})
	}
	return fmt.Errorf("system: unknown action %q", action)
}

func runTrafficLists(ctrl *controller.Controller, action string, args []string) error {
	switch action {
	case "list":
		return printSnapshot(ctrl.Store().TrafficMatchingLists.Snapshot())
	case "create":
		fs := actionFlags("traffic_lists create")
		name := fs.String("name", "", "list name")
		fs.Parse(args)
		return execute(ctrl, command.CreateTrafficMatchingList{List: domain.TrafficMatchingList{Name: *name}})
	case "update":
		fs := actionFlags("traffic_lists update")
		id := fs.String("id", "", "list id")
		name := fs.String("name", "", "list name")
		fs.Parse(args)
		return execute(ctrl, command.UpdateTrafficMatchingList{ID: domain.NewEntityId(*id), List: domain.TrafficMatchingList{Name: *name}})
	case "delete":
		fs := actionFlags("traffic_lists delete")
		id := fs.String("id", "", "list id")
		fs.Parse(args)
		return execute(ctrl, command.DeleteTrafficMatchingList{ID: domain.NewEntityId(*id)})
	}
	return fmt.Errorf("traffic_lists: unknown action %q", action)
}

// runVpn has no mutating Command: vpn servers/tunnels are read-only via
// this facade.
func runVpn(ctrl *controller.Controller, action string, args []string) error {
	switch action {
	case "servers":
		return printSnapshot(ctrl.Store().VpnServers.Snapshot())
	case "tunnels":
		return printSnapshot(ctrl.Store().VpnTunnels.Snapshot())
	}
	return fmt.Errorf("vpn: unknown action %q", action)
}

// runWans has no mutating Command: WAN interfaces are read-only via this
// facade.
func runWans(ctrl *controller.Controller, action string, args []string) error {
	switch action {
	case "list":
		return printSnapshot(ctrl.Store().WanInterfaces.Snapshot())
	}
	return fmt.Errorf("wans: unknown action %q", action)
}

func runWifi(ctrl *controller.Controller, action string, args []string) error {
	switch action {
	case "list":
		return printSnapshot(ctrl.Store().WifiBroadcasts.Snapshot())
	case "create":
		fs := actionFlags("wifi create")
		name := fs.String("name", "", "wifi name")
		enabled := fs.Bool("enabled", true, "wifi enabled")
		fs.Parse(args)
		return execute(ctrl, command.CreateWifiBroadcast{Wifi: domain.WifiBroadcast{Name: *name, Enabled: *enabled}})
	case "update":
		fs := actionFlags("wifi update")
		id := fs.String("id", "", "wifi id")
		name := fs.String("name", "", "wifi name")
		enabled := fs.Bool("enabled", true, "wifi enabled")
		fs.Parse(args)
		return execute(ctrl, command.UpdateWifiBroadcast{ID: domain.NewEntityId(*id), Wifi: domain.WifiBroadcast{Name: *name, Enabled: *enabled}})
	case "delete":
		fs := actionFlags("wifi delete")
		id := fs.String("id", "", "wifi id")
		fs.Parse(args)
		return execute(ctrl, command.DeleteWifiBroadcast{ID: domain.NewEntityId(*id)})
	}
	return fmt.Errorf("wifi: unknown action %q", action)
}
