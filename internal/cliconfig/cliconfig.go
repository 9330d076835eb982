// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package cliconfig builds a config.ControllerConfig from command-line
// flags. internal/config deliberately stops at the consumed shape and
// leaves file/keyring loading to the embedding application; this package
// is that application for the two cmd/ entrypoints.
package cliconfig

import (
	"flag"
	"fmt"
	"time"

	"github.com/ksc98/unifly-sub001/internal/config"
)

// Flags holds every flag both entrypoints accept. Register binds them to
// fs; callers parse fs themselves so -h output stays entrypoint-specific.
type Flags struct {
	URL      *string
	Site     *string
	Auth     *string
	ApiKey   *string
	Username *string
	Password *string
	HostID   *string

	TLSMode    *string
	CaPemPath  *string

	Timeout             *time.Duration
	RefreshInterval     *time.Duration
	WebSocket           *bool
	PollingInterval     *time.Duration
	ClientPollInterval  *time.Duration
	DeviceStatsInterval *time.Duration
	BandwidthInterval   *time.Duration
	MaxReconnect        *int

	LogLevel *string
}

// Register adds every flag to fs with its default value.
func Register(fs *flag.FlagSet) *Flags {
	return &Flags{
		URL:      fs.String("url", "", "Controller base URL, e.g. https://192.168.1.1"),
		Site:     fs.String("site", "default", "Site slug"),
		Auth:     fs.String("auth", "api_key", "Auth strategy: api_key, credentials, hybrid, cloud"),
		ApiKey:   fs.String("api-key", "", "Integration API key"),
		Username: fs.String("username", "", "Legacy controller username"),
		Password: fs.String("password", "", "Legacy controller password"),
		HostID:   fs.String("host-id", "", "Cloud broker host ID"),

		TLSMode:   fs.String("tls", "system_roots", "TLS verification mode: system_roots, custom_ca_pem, skip_verification"),
		CaPemPath: fs.String("ca-pem", "", "Path to a custom CA PEM file (tls=custom_ca_pem)"),

		Timeout:             fs.Duration("timeout", 10*time.Second, "Per-request HTTP timeout"),
		RefreshInterval:      fs.Duration("refresh-interval", 60*time.Second, "Full bulk-refresh period, 0 disables"),
		WebSocket:            fs.Bool("websocket", true, "Enable the live event WebSocket"),
		PollingInterval:      fs.Duration("polling-interval", 30*time.Second, "Fallback refresh cadence when websocket is disabled (not read by the controller)"),
		ClientPollInterval:   fs.Duration("client-poll-interval", 30*time.Second, "Client table poll cadence, 0 uses 2s"),
		DeviceStatsInterval:  fs.Duration("device-stats-interval", 30*time.Second, "Device stats poll cadence, 0 disables"),
		BandwidthInterval:    fs.Duration("bandwidth-interval", 10*time.Second, "Device bandwidth poll cadence, 0 disables"),
		MaxReconnect:         fs.Int("max-reconnect", 0, "Max websocket reconnect attempts, 0 retries forever"),

		LogLevel: fs.String("log", "production", "Logger mode: production, development"),
	}
}

// Build converts parsed flag values into a config.ControllerConfig.
func (f *Flags) Build() (config.ControllerConfig, error) {
	if *f.URL == "" {
		return config.ControllerConfig{}, fmt.Errorf("cliconfig: -url is required")
	}

	auth, err := authConfig(f)
	if err != nil {
		return config.ControllerConfig{}, err
	}

	tlsMode, err := tlsMode(*f.TLSMode)
	if err != nil {
		return config.ControllerConfig{}, err
	}

	return config.ControllerConfig{
		URL:  *f.URL,
		Auth: auth,
		Site: *f.Site,
		TLS: config.TLSConfig{
			Mode:            tlsMode,
			CustomCaPemPath: *f.CaPemPath,
		},
		Timeout:                 *f.Timeout,
		RefreshIntervalSecs:     int(f.RefreshInterval.Seconds()),
		WebSocketEnabled:        *f.WebSocket,
		PollingIntervalSecs:     int(f.PollingInterval.Seconds()),
		ClientPollInterval:      *f.ClientPollInterval,
		DeviceStatsPollInterval: *f.DeviceStatsInterval,
		BandwidthPollInterval:   *f.BandwidthInterval,
		MaxReconnectAttempts:    *f.MaxReconnect,
	}, nil
}

func authConfig(f *Flags) (config.AuthConfig, error) {
	switch *f.Auth {
	case "api_key":
		if *f.ApiKey == "" {
			return config.AuthConfig{}, fmt.Errorf("cliconfig: -api-key is required for -auth=api_key")
		}
		return config.AuthConfig{Strategy: config.AuthApiKey, ApiKey: config.SecureString(*f.ApiKey)}, nil
	case "credentials":
		if *f.Username == "" || *f.Password == "" {
			return config.AuthConfig{}, fmt.Errorf("cliconfig: -username and -password are required for -auth=credentials")
		}
		return config.AuthConfig{
			Strategy: config.AuthCredentials,
			Username: *f.Username,
			Password: config.SecureString(*f.Password),
		}, nil
	case "hybrid":
		if *f.ApiKey == "" || *f.Username == "" || *f.Password == "" {
			return config.AuthConfig{}, fmt.Errorf("cliconfig: -api-key, -username, and -password are all required for -auth=hybrid")
		}
		return config.AuthConfig{
			Strategy: config.AuthHybrid,
			ApiKey:   config.SecureString(*f.ApiKey),
			Username: *f.Username,
			Password: config.SecureString(*f.Password),
		}, nil
	case "cloud":
		if *f.ApiKey == "" || *f.HostID == "" {
			return config.AuthConfig{}, fmt.Errorf("cliconfig: -api-key and -host-id are required for -auth=cloud")
		}
		return config.AuthConfig{Strategy: config.AuthCloud, ApiKey: config.SecureString(*f.ApiKey), HostID: *f.HostID}, nil
	default:
		return config.AuthConfig{}, fmt.Errorf("cliconfig: unknown -auth %q", *f.Auth)
	}
}

func tlsMode(s string) (config.TlsMode, error) {
	switch s {
	case "system_roots":
		return config.TlsSystemRoots, nil
	case "custom_ca_pem":
		return config.TlsCustomCaPem, nil
	case "skip_verification":
		return config.TlsSkipVerification, nil
	default:
		return 0, fmt.Errorf("cliconfig: unknown -tls %q", s)
	}
}
