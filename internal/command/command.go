// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package command defines the facade's typed mutation requests and the
// processor that routes each one to the Integration or legacy backend,
// awaits the call, and reports a result or error back to the caller.
package command

import "github.com/ksc98/unifly-sub001/internal/domain"

// Command is a sum type over every mutation the facade can perform. Each
// concrete type names exactly one operation; Processor.dispatch type-switches
// on it to route and execute.
type Command interface {
	commandName() string
}

// Device commands.

type AdoptDevice struct{ Mac domain.MacAddress }
type RestartDevice struct{ Mac domain.MacAddress }
type UpgradeDevice struct{ Mac domain.MacAddress }
type LocateDevice struct {
	Mac    domain.MacAddress
	Enable bool
}
type ForgetDevice struct{ Mac domain.MacAddress }
type PowerCycleDevicePort struct {
	Mac  domain.MacAddress
	Port int
}

// Client commands.

type KickClient struct{ Mac domain.MacAddress }
type BlockClient struct{ Mac domain.MacAddress }
type UnblockClient struct{ Mac domain.MacAddress }
type AuthorizeGuest struct {
	Mac             domain.MacAddress
	MinutesDuration int
}
type UnauthorizeGuest struct{ Mac domain.MacAddress }

// Network/WiFi/firewall/ACL/DNS/traffic-list CRUD.

type CreateNetwork struct{ Network domain.Network }
type UpdateNetwork struct {
	ID      domain.EntityId
	Network domain.Network
}
type DeleteNetwork struct{ ID domain.EntityId }

type CreateWifiBroadcast struct{ Wifi domain.WifiBroadcast }
type UpdateWifiBroadcast struct {
	ID   domain.EntityId
	Wifi domain.WifiBroadcast
}
type DeleteWifiBroadcast struct{ ID domain.EntityId }

type CreateFirewallZone struct{ Zone domain.FirewallZone }
type UpdateFirewallZone struct {
	ID   domain.EntityId
	Zone domain.FirewallZone
}
type DeleteFirewallZone struct{ ID domain.EntityId }

type CreateFirewallPolicy struct{ Policy domain.FirewallPolicy }

// UpdateFirewallPolicy PUTs the full policy body.
type UpdateFirewallPolicy struct {
	ID     domain.EntityId
	Policy domain.FirewallPolicy
}

// PatchFirewallPolicy toggles only Enabled via a lightweight PATCH; see
// the enabled-only-PATCH decision in the project's grounding ledger.
type PatchFirewallPolicy struct {
	ID      domain.EntityId
	Enabled bool
}
type DeleteFirewallPolicy struct{ ID domain.EntityId }
type ReorderFirewallPolicies struct {
	ZonePairID string
	OrderedIDs []domain.EntityId
}

type CreateAclRule struct{ Rule domain.AclRule }
type UpdateAclRule struct {
	ID   domain.EntityId
	Rule domain.AclRule
}
type DeleteAclRule struct{ ID domain.EntityId }

type CreateDnsPolicy struct{ Policy domain.DnsPolicy }
type UpdateDnsPolicy struct {
	ID     domain.EntityId
	Policy domain.DnsPolicy
}
type DeleteDnsPolicy struct{ ID domain.EntityId }

type CreateTrafficMatchingList struct{ List domain.TrafficMatchingList }
type UpdateTrafficMatchingList struct {
	ID   domain.EntityId
	List domain.TrafficMatchingList
}
type DeleteTrafficMatchingList struct{ ID domain.EntityId }

// Vouchers.

type CreateVouchers struct {
	Count                int
	TimeLimitMinutes     int
	DataUsageLimitMB     *int
	AuthorizedGuestLimit *int
}
type DeleteVoucher struct{ ID domain.EntityId }

// Alarms, backup, sites, admins, power — legacy-only.

type ArchiveAlarm struct{ ID domain.EntityId }
type ArchiveAllAlarms struct{}
type CreateBackup struct{}
type RestoreBackup struct{ Filename string }
type CreateSite struct{ Name string }
type DeleteSite struct{ ID domain.EntityId }
type InviteAdmin struct {
	Email string
	Role  string
}
type RevokeAdmin struct{ ID domain.EntityId }
type RebootController struct{}
type PoweroffController struct{}

func (AdoptDevice) commandName() string               { return "AdoptDevice" }
func (RestartDevice) commandName() string              { return "RestartDevice" }
func (UpgradeDevice) commandName() string              { return "UpgradeDevice" }
func (LocateDevice) commandName() string               { return "LocateDevice" }
func (ForgetDevice) commandName() string               { return "ForgetDevice" }
func (PowerCycleDevicePort) commandName() string        { return "PowerCycleDevicePort" }
func (KickClient) commandName() string                 { return "KickClient" }
func (BlockClient) commandName() string                { return "BlockClient" }
func (UnblockClient) commandName() string               { return "UnblockClient" }
func (AuthorizeGuest) commandName() string              { return "AuthorizeGuest" }
func (UnauthorizeGuest) commandName() string            { return "UnauthorizeGuest" }
func (CreateNetwork) commandName() string               { return "CreateNetwork" }
func (UpdateNetwork) commandName() string               { return "UpdateNetwork" }
func (DeleteNetwork) commandName() string               { return "DeleteNetwork" }
func (CreateWifiBroadcast) commandName() string         { return "CreateWifiBroadcast" }
func (UpdateWifiBroadcast) commandName() string         { return "UpdateWifiBroadcast" }
func (DeleteWifiBroadcast) commandName() string         { return "DeleteWifiBroadcast" }
func (CreateFirewallZone) commandName() string          { return "CreateFirewallZone" }
func (UpdateFirewallZone) commandName() string          { return "UpdateFirewallZone" }
func (DeleteFirewallZone) commandName() string          { return "DeleteFirewallZone" }
func (CreateFirewallPolicy) commandName() string        { return "CreateFirewallPolicy" }
func (UpdateFirewallPolicy) commandName() string        { return "UpdateFirewallPolicy" }
func (PatchFirewallPolicy) commandName() string         { return "PatchFirewallPolicy" }
func (DeleteFirewallPolicy) commandName() string        { return "DeleteFirewallPolicy" }
func (ReorderFirewallPolicies) commandName() string     { return "ReorderFirewallPolicies" }
func (CreateAclRule) commandName() string               { return "CreateAclRule" }
func (UpdateAclRule) commandName() string               { return "UpdateAclRule" }
func (DeleteAclRule) commandName() string               { return "DeleteAclRule" }
func (CreateDnsPolicy) commandName() string             { return "CreateDnsPolicy" }
func (UpdateDnsPolicy) commandName() string              { return "UpdateDnsPolicy" }
func (DeleteDnsPolicy) commandName() string              { return "DeleteDnsPolicy" }
func (CreateTrafficMatchingList) commandName() string    { return "CreateTrafficMatchingList" }
func (UpdateTrafficMatchingList) commandName() string    { return "UpdateTrafficMatchingList" }
func (DeleteTrafficMatchingList) commandName() string    { return "DeleteTrafficMatchingList" }
func (CreateVouchers) commandName() string               { return "CreateVouchers" }
func (DeleteVoucher) commandName() string                { return "DeleteVoucher" }
func (ArchiveAlarm) commandName() string                 { return "ArchiveAlarm" }
func (ArchiveAllAlarms) commandName() string             { return "ArchiveAllAlarms" }
func (CreateBackup) commandName() string                 { return "CreateBackup" }
func (RestoreBackup) commandName() string                { return "RestoreBackup" }
func (CreateSite) commandName() string                   { return "CreateSite" }
func (DeleteSite) commandName() string                   { return "DeleteSite" }
func (InviteAdmin) commandName() string                   { return "InviteAdmin" }
func (RevokeAdmin) commandName() string                   { return "RevokeAdmin" }
func (RebootController) commandName() string             { return "RebootController" }
func (PoweroffController) commandName() string           { return "PoweroffController" }

// Result is a sum type over everything a Command can resolve to.
type Result interface {
	resultName() string
}

type ResultOk struct{}
type ResultDevice struct{ Device domain.Device }
type ResultNetwork struct{ Network domain.Network }
type ResultWifiBroadcast struct{ Wifi domain.WifiBroadcast }
type ResultFirewallZone struct{ Zone domain.FirewallZone }
type ResultFirewallPolicy struct{ Policy domain.FirewallPolicy }
type ResultAclRule struct{ Rule domain.AclRule }
type ResultDnsPolicy struct{ Policy domain.DnsPolicy }
type ResultTrafficMatchingList struct{ List domain.TrafficMatchingList }
type ResultVouchers struct{ Vouchers []domain.Voucher }
type ResultSite struct{ Site domain.Site }

func (ResultOk) resultName() string                     { return "Ok" }
func (ResultDevice) resultName() string                 { return "Device" }
func (ResultNetwork) resultName() string                { return "Network" }
func (ResultWifiBroadcast) resultName() string          { return "WifiBroadcast" }
func (ResultFirewallZone) resultName() string           { return "FirewallZone" }
func (ResultFirewallPolicy) resultName() string         { return "FirewallPolicy" }
func (ResultAclRule) resultName() string                { return "AclRule" }
func (ResultDnsPolicy) resultName() string               { return "DnsPolicy" }
func (ResultTrafficMatchingList) resultName() string     { return "TrafficMatchingList" }
func (ResultVouchers) resultName() string                { return "Vouchers" }
func (ResultSite) resultName() string                    { return "Site" }
