// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAppliesDefaults(t *testing.T) {
	cfg := ControllerConfig{
		URL:  "https://192.168.1.1",
		Auth: AuthConfig{Strategy: AuthApiKey, ApiKey: "secret"},
	}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultSite, cfg.Site)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultClientPollInterval, cfg.ClientPollInterval)
}

func TestValidateZeroRefreshIntervalNeverDefaulted(t *testing.T) {
	cfg := ControllerConfig{
		URL:                 "https://192.168.1.1",
		Auth:                AuthConfig{Strategy: AuthApiKey, ApiKey: "secret"},
		RefreshIntervalSecs: 0,
	}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0, cfg.RefreshIntervalSecs, "0 must disable periodic refresh, not be defaulted away")
}

func TestValidateRejectsMissingURL(t *testing.T) {
	cfg := ControllerConfig{Auth: AuthConfig{Strategy: AuthApiKey, ApiKey: "secret"}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "url")
}

func TestValidateCredentialsRequiresUsernameAndPassword(t *testing.T) {
	cfg := ControllerConfig{
		URL:  "https://192.168.1.1",
		Auth: AuthConfig{Strategy: AuthCredentials, Username: "admin"},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth")
}

func TestValidateHybridRequiresBoth(t *testing.T) {
	cfg := ControllerConfig{
		URL:  "https://192.168.1.1",
		Auth: AuthConfig{Strategy: AuthHybrid, ApiKey: "secret", Username: "admin", Password: "pw"},
	}
	assert.NoError(t, cfg.Validate())
}

func TestValidateCustomCaRequiresPath(t *testing.T) {
	cfg := ControllerConfig{
		URL:  "https://192.168.1.1",
		Auth: AuthConfig{Strategy: AuthApiKey, ApiKey: "secret"},
		TLS:  TLSConfig{Mode: TlsCustomCaPem},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "custom_ca_pem_path")
}

func TestSecureStringHidesValue(t *testing.T) {
	s := SecureString("top-secret")
	assert.Equal(t, "(hidden)", s.String())
	assert.Equal(t, "top-secret", s.Expose())
}
