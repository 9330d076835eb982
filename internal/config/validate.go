// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package config

import (
	"fmt"
	"strings"
	"time"
)

// Default settings. Validate applies the site, timeout, and the three
// fine-grained poll cadences when the field is zero; it never applies
// DefaultRefreshIntervalSecs or DefaultPollingIntervalSecs.
const (
	DefaultSite                    = "default"
	DefaultTimeout                 = 30 * time.Second
	DefaultRefreshIntervalSecs     = 60
	DefaultPollingIntervalSecs     = 10
	DefaultClientPollInterval      = 2 * time.Second
	DefaultDeviceStatsPollInterval = 15 * time.Second
	DefaultBandwidthPollInterval   = 5 * time.Second
)

// ValidationError names one configuration defect.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every defect found by Validate.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks required fields and fills in defaults (site, timeout,
// poll cadences) the way the facade expects to find them. It mutates cfg
// in place and returns a non-nil error only when a required field is
// missing or contradictory.
func (c *ControllerConfig) Validate() error {
	var errs ValidationErrors

	if strings.TrimSpace(c.URL) == "" {
		errs = append(errs, ValidationError{Field: "url", Message: "must not be empty"})
	}

	switch c.Auth.Strategy {
	case AuthApiKey, AuthCloud:
		if c.Auth.ApiKey == "" {
			errs = append(errs, ValidationError{Field: "auth.api_key", Message: "required for this auth strategy"})
		}
	case AuthCredentials:
		if c.Auth.Username == "" || c.Auth.Password == "" {
			errs = append(errs, ValidationError{Field: "auth", Message: "username and password are required for credentials auth"})
		}
	case AuthHybrid:
		if c.Auth.ApiKey == "" {
			errs = append(errs, ValidationError{Field: "auth.api_key", Message: "required for hybrid auth"})
		}
		if c.Auth.Username == "" || c.Auth.Password == "" {
			errs = append(errs, ValidationError{Field: "auth", Message: "username and password are required for hybrid auth"})
		}
	default:
		errs = append(errs, ValidationError{Field: "auth.strategy", Message: "must be one of api_key, credentials, hybrid, cloud"})
	}

	if c.TLS.Mode == TlsCustomCaPem && strings.TrimSpace(c.TLS.CustomCaPemPath) == "" {
		errs = append(errs, ValidationError{Field: "tls.custom_ca_pem_path", Message: "required when tls mode is custom_ca_pem"})
	}

	if c.Site == "" {
		c.Site = DefaultSite
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	// RefreshIntervalSecs == 0 is a meaningful "periodic refresh disabled"
	// value (spec §6) and is never defaulted away.
	if c.ClientPollInterval <= 0 {
		c.ClientPollInterval = DefaultClientPollInterval
	}
	if c.DeviceStatsPollInterval <= 0 {
		c.DeviceStatsPollInterval = DefaultDeviceStatsPollInterval
	}
	if c.BandwidthPollInterval <= 0 {
		c.BandwidthPollInterval = DefaultBandwidthPollInterval
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
