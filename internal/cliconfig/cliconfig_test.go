// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package cliconfig

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksc98/unifly-sub001/internal/config"
)

func parse(t *testing.T, args []string) (config.ControllerConfig, error) {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags := Register(fs)
	require.NoError(t, fs.Parse(args))
	return flags.Build()
}

func TestBuildApiKeyConfig(t *testing.T) {
	cfg, err := parse(t, []string{"-url", "https://10.0.0.1", "-auth", "api_key", "-api-key", "secret"})
	require.NoError(t, err)
	assert.Equal(t, "https://10.0.0.1", cfg.URL)
	assert.Equal(t, config.AuthApiKey, cfg.Auth.Strategy)
	assert.Equal(t, config.SecureString("secret"), cfg.Auth.ApiKey)
	assert.Equal(t, "default", cfg.Site)
}

func TestBuildMissingURLFails(t *testing.T) {
	_, err := parse(t, []string{"-auth", "api_key", "-api-key", "secret"})
	assert.Error(t, err)
}

func TestBuildHybridRequiresAllThreeCredentials(t *testing.T) {
	_, err := parse(t, []string{"-url", "https://10.0.0.1", "-auth", "hybrid", "-api-key", "k"})
	assert.Error(t, err)

	cfg, err := parse(t, []string{
		"-url", "https://10.0.0.1", "-auth", "hybrid",
		"-api-key", "k", "-username", "u", "-password", "p",
	})
	require.NoError(t, err)
	assert.Equal(t, config.AuthHybrid, cfg.Auth.Strategy)
}

func TestBuildUnknownAuthStrategyFails(t *testing.T) {
	_, err := parse(t, []string{"-url", "https://10.0.0.1", "-auth", "bogus"})
	assert.Error(t, err)
}

func TestBuildUnknownTLSModeFails(t *testing.T) {
	_, err := parse(t, []string{"-url", "https://10.0.0.1", "-api-key", "k", "-tls", "bogus"})
	assert.Error(t, err)
}

func TestPromptForMissingNoopWhenEverythingSet(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	flags := Register(fs)
	require.NoError(t, fs.Parse([]string{"-url", "https://10.0.0.1", "-auth", "api_key", "-api-key", "secret"}))

	require.NoError(t, flags.PromptForMissing())
	assert.Equal(t, "secret", *flags.ApiKey)
}
