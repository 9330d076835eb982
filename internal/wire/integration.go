// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package wire

// Page is the paginated list envelope every Integration API list endpoint
// returns.
type Page[T any] struct {
	Offset     int `json:"offset"`
	Limit      int `json:"limit"`
	Count      int `json:"count"`
	TotalCount int `json:"totalCount"`
	Data       []T `json:"data"`
}

// IntegrationError is the structured error body the Integration API
// returns on non-2xx responses.
type IntegrationError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// IntegrationDevice is the Integration API's device resource shape
// (`/integration/v1/sites/{site}/devices`).
type IntegrationDevice struct {
	ID              string                  `json:"id"`
	Mac             string                  `json:"macAddress"`
	Name            string                  `json:"name,omitempty"`
	Model           string                  `json:"model,omitempty"`
	Type            string                  `json:"type,omitempty"`
	State           string                  `json:"state,omitempty"`
	IPAddress       string                  `json:"ipAddress,omitempty"`
	FirmwareVersion string                  `json:"firmwareVersion,omitempty"`
	FirmwareUpdatable bool                  `json:"firmwareUpdatable,omitempty"`
	AdoptedAt       string                  `json:"adoptedAt,omitempty"`
	ProvisionedAt   string                  `json:"provisionedAt,omitempty"`
	Serial          string                  `json:"serialNumber,omitempty"`
	Ports           []IntegrationPort       `json:"ports,omitempty"`
	Radios          []IntegrationRadio      `json:"radios,omitempty"`
	UplinkDeviceID  string                  `json:"uplinkDeviceId,omitempty"`
	Features        IntegrationDeviceFeatures `json:"features,omitempty"`
	Statistics      *IntegrationDeviceStats `json:"statistics,omitempty"`
}

type IntegrationDeviceFeatures struct {
	Switching    bool `json:"switching,omitempty"`
	AccessPoint  bool `json:"accessPoint,omitempty"`
}

type IntegrationPort struct {
	Index        int     `json:"idx"`
	Name         string  `json:"name,omitempty"`
	State        string  `json:"state,omitempty"`
	SpeedMbps    *int    `json:"speedMbps,omitempty"`
	MaxSpeedMbps *int    `json:"maxSpeedMbps,omitempty"`
	Connector    string  `json:"connector,omitempty"`
	PoeEnabled   *bool   `json:"poeEnabled,omitempty"`
	PoeStandard  string  `json:"poeStandard,omitempty"`
	PoeState     string  `json:"poeState,omitempty"`
}

type IntegrationRadio struct {
	FrequencyGHz   float32  `json:"frequencyGHz"`
	Channel        *int     `json:"channel,omitempty"`
	ChannelWidthMHz *int    `json:"channelWidthMHz,omitempty"`
	WlanStandard   string   `json:"wlanStandard,omitempty"`
	TxRetriesPct   *float64 `json:"txRetriesPercentage,omitempty"`
}

type IntegrationDeviceStats struct {
	UptimeSec           *int64   `json:"uptimeSec,omitempty"`
	CPUUtilizationPct   *float64 `json:"cpuUtilizationPercentage,omitempty"`
	MemUtilizationPct   *float64 `json:"memoryUtilizationPercentage,omitempty"`
	LoadAverage1Min     *float64 `json:"loadAverage1Min,omitempty"`
	LoadAverage5Min     *float64 `json:"loadAverage5Min,omitempty"`
	LoadAverage15Min    *float64 `json:"loadAverage15Min,omitempty"`
	UplinkTxBps         *int64   `json:"uplinkTxBytesPerSecond,omitempty"`
	UplinkRxBps         *int64   `json:"uplinkRxBytesPerSecond,omitempty"`
}

// IntegrationNetwork is the Integration API's network resource shape.
type IntegrationNetwork struct {
	ID                        string `json:"id"`
	Name                      string `json:"name"`
	Enabled                   bool   `json:"enabled"`
	VlanID                    *int   `json:"vlanId,omitempty"`
	Subnet                    string `json:"subnet,omitempty"`
	Purpose                   string `json:"purpose,omitempty"`
	IsDefault                 bool   `json:"isDefault,omitempty"`
	DhcpEnabled               bool   `json:"dhcpEnabled,omitempty"`
	DhcpRangeStart            string `json:"dhcpRangeStart,omitempty"`
	DhcpRangeStop             string `json:"dhcpRangeStop,omitempty"`
	DhcpLeaseTimeSec          *int   `json:"dhcpLeaseTimeSec,omitempty"`
	FirewallZoneID            string `json:"firewallZoneId,omitempty"`
	Ipv6Enabled               bool   `json:"ipv6Enabled,omitempty"`
	Ipv6Mode                  string `json:"ipv6Mode,omitempty"`
	IsolationEnabled          bool   `json:"isolationEnabled,omitempty"`
	InternetAccessEnabled     bool   `json:"internetAccessEnabled,omitempty"`
	MdnsForwardingEnabled     bool   `json:"mdnsForwardingEnabled,omitempty"`
}

// IntegrationWifi is the Integration API's WiFi broadcast (WLAN) resource
// shape.
type IntegrationWifi struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Enabled         bool     `json:"enabled"`
	BroadcastType   string   `json:"broadcastType,omitempty"`
	SecurityMode    string   `json:"securityMode,omitempty"`
	NetworkID       string   `json:"networkId,omitempty"`
	FrequenciesGHz  []float32 `json:"frequenciesGHz,omitempty"`
	Hidden          bool     `json:"hidden,omitempty"`
	ClientIsolation bool     `json:"clientIsolation,omitempty"`
	BandSteering    bool     `json:"bandSteering,omitempty"`
	MloEnabled      bool     `json:"mloEnabled,omitempty"`
	FastRoaming     bool     `json:"fastRoaming,omitempty"`
	HotspotEnabled  bool     `json:"hotspotEnabled,omitempty"`
}

// IntegrationFirewallZone is the Integration API's firewall zone resource.
type IntegrationFirewallZone struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	NetworkIDs []string `json:"networkIds,omitempty"`
}

// IntegrationFirewallPolicy is the Integration API's firewall policy
// resource.
type IntegrationFirewallPolicy struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Description          string   `json:"description,omitempty"`
	Enabled              bool     `json:"enabled"`
	Index                *int     `json:"index,omitempty"`
	Action               string   `json:"action"`
	IPVersion            string   `json:"ipVersion,omitempty"`
	SourceZoneID         string   `json:"sourceZoneId,omitempty"`
	DestinationZoneID    string   `json:"destinationZoneId,omitempty"`
	SourceSummary        string   `json:"sourceSummary,omitempty"`
	DestinationSummary   string   `json:"destinationSummary,omitempty"`
	ProtocolSummary      string   `json:"protocolSummary,omitempty"`
	Schedule             string   `json:"schedule,omitempty"`
	IpsecMode            string   `json:"ipsecMode,omitempty"`
	ConnectionStates     []string `json:"connectionStates,omitempty"`
	LoggingEnabled       bool     `json:"loggingEnabled,omitempty"`
}

// IntegrationAclRule is the Integration API's ACL rule resource.
type IntegrationAclRule struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Enabled            bool   `json:"enabled"`
	RuleType           string `json:"ruleType"`
	Action             string `json:"action"`
	SourceSummary      string `json:"sourceSummary,omitempty"`
	DestinationSummary string `json:"destinationSummary,omitempty"`
}

// IntegrationDnsPolicy is the Integration API's DNS policy resource.
type IntegrationDnsPolicy struct {
	ID         string `json:"id"`
	PolicyType string `json:"policyType"`
	Domain     string `json:"domain"`
	Value      string `json:"value"`
	TTLSeconds *int   `json:"ttlSeconds,omitempty"`
}

// IntegrationVoucher is the Integration API's hotspot voucher resource.
type IntegrationVoucher struct {
	ID                    string  `json:"id"`
	Code                  string  `json:"code"`
	Name                  string  `json:"name,omitempty"`
	CreatedAt             string  `json:"createdAt,omitempty"`
	ActivatedAt           string  `json:"activatedAt,omitempty"`
	ExpiresAt             string  `json:"expiresAt,omitempty"`
	Expired               bool    `json:"expired,omitempty"`
	TimeLimitMinutes      *int    `json:"timeLimitMinutes,omitempty"`
	DataUsageLimitMB      *int64  `json:"dataUsageLimitMbytes,omitempty"`
	AuthorizedGuestLimit  *int    `json:"authorizedGuestLimit,omitempty"`
	AuthorizedGuestCount  *int    `json:"authorizedGuestCount,omitempty"`
	RxRateLimitKbps       *int64  `json:"rxRateLimitKbps,omitempty"`
	TxRateLimitKbps       *int64  `json:"txRateLimitKbps,omitempty"`
}

// IntegrationSite is the Integration API's site resource.
type IntegrationSite struct {
	ID          string `json:"id"`
	InternalName string `json:"internalName"`
	Name        string `json:"name"`
	DeviceCount *int   `json:"deviceCount,omitempty"`
	ClientCount *int   `json:"clientCount,omitempty"`
}

// IntegrationTrafficList is the Integration API's named port/address
// matching list resource, referenced by firewall policies and ACL rules.
type IntegrationTrafficList struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	ListType string   `json:"type"`
	Items    []string `json:"items"`
}
