// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package config defines the configuration consumed by the controller
// facade. It deliberately stops at the consumed shape: loading from TOML
// files and credential keyrings is an external collaborator's job (see
// spec §1, "explicitly out of scope").
package config

import "time"

// SecureString hides its value in logs and string formatting. Used for
// API keys and passwords.
type SecureString string

func (s SecureString) String() string {
	if s == "" {
		return ""
	}
	return "(hidden)"
}

// GoString hides the value from %#v formatting too.
func (s SecureString) GoString() string {
	return "(hidden)"
}

// Expose returns the raw secret value for use in an HTTP request.
func (s SecureString) Expose() string {
	return string(s)
}

// AuthStrategy names which credential shape an AuthConfig carries.
type AuthStrategy int

const (
	AuthUnset AuthStrategy = iota
	AuthApiKey
	AuthCredentials
	AuthHybrid
	AuthCloud
)

func (s AuthStrategy) String() string {
	switch s {
	case AuthApiKey:
		return "api_key"
	case AuthCredentials:
		return "credentials"
	case AuthHybrid:
		return "hybrid"
	case AuthCloud:
		return "cloud"
	default:
		return "unset"
	}
}

// AuthConfig carries exactly the fields needed for one of the four
// strategies named in spec §6. Only the fields relevant to Strategy are
// read; others are ignored.
type AuthConfig struct {
	Strategy AuthStrategy

	// ApiKey is used by AuthApiKey, AuthHybrid, and AuthCloud.
	ApiKey SecureString

	// Username/Password are used by AuthCredentials and AuthHybrid.
	Username string
	Password SecureString

	// HostID identifies the controller to the cloud broker for
	// AuthCloud.
	HostID string
}

// TlsMode selects how the HTTP and WebSocket clients verify the
// controller's certificate.
type TlsMode int

const (
	TlsSystemRoots TlsMode = iota
	TlsCustomCaPem
	TlsSkipVerification
)

func (m TlsMode) String() string {
	switch m {
	case TlsCustomCaPem:
		return "custom_ca_pem"
	case TlsSkipVerification:
		return "skip_verification"
	default:
		return "system_roots"
	}
}

// TLSConfig carries the TLS policy shared by both HTTP clients and the
// WebSocket client.
type TLSConfig struct {
	Mode TlsMode

	// CustomCaPemPath is read when Mode == TlsCustomCaPem.
	CustomCaPemPath string
}

// ControllerConfig is the configuration the controller facade consumes.
// It is built by the caller (TUI or CLI entrypoint) from whatever
// config-file/keyring mechanism they choose; this package never reads a
// file itself.
type ControllerConfig struct {
	// URL is the controller base: scheme+host+optional port, e.g.
	// "https://192.168.1.1" or "https://unifi.example.com:8443".
	URL string

	Auth AuthConfig

	// Site is the site slug. Defaults to "default".
	Site string

	TLS TLSConfig

	// Timeout bounds every HTTP request.
	Timeout time.Duration

	// RefreshIntervalSecs is the period of the full bulk refresh. Zero
	// disables periodic refresh.
	RefreshIntervalSecs int

	WebSocketEnabled bool

	// PollingIntervalSecs holds a fallback refresh cadence for when
	// WebSocketEnabled is false. The controller does not read it: periodic
	// refresh runs on RefreshIntervalSecs whether or not the WebSocket is
	// enabled.
	PollingIntervalSecs int

	// ClientPollInterval, DeviceStatsPollInterval, and
	// BandwidthPollInterval set the fine-grained poll cadences (spec §6).
	ClientPollInterval      time.Duration
	DeviceStatsPollInterval time.Duration
	BandwidthPollInterval   time.Duration

	// MaxReconnectAttempts bounds the WebSocket reconnect loop. Zero
	// means retry forever.
	MaxReconnectAttempts int
}
