// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksc98/unifly-sub001/internal/command"
	"github.com/ksc98/unifly-sub001/internal/config"
	"github.com/ksc98/unifly-sub001/internal/domain"
)

func emptyPage(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"offset":0,"limit":100,"count":0,"totalCount":0,"data":[]}`))
}

func integrationOnlyServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	for _, resource := range []string{
		"devices", "networks", "wifi_broadcasts", "firewall/policies",
		"firewall/zones", "acl_rules", "dns_policies", "vouchers", "traffic_lists",
	} {
		path := "/integration/v1/sites/default/" + resource
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"id":"11111111-1111-1111-1111-111111111111","name":"corp","enabled":true,"purpose":"corporate"}`))
				return
			}
			emptyPage(w)
		})
	}
	return httptest.NewServer(mux)
}

func apiKeyOnlyConfig(url string) config.ControllerConfig {
	return config.ControllerConfig{
		URL:  url,
		Auth: config.AuthConfig{Strategy: config.AuthApiKey, ApiKey: "key-1"},
		Site: "default",
		TLS:  config.TLSConfig{Mode: config.TlsSkipVerification},
	}
}

func TestConnectApiKeyOnlyLoadsSnapshotAndExecutesCommand(t *testing.T) {
	srv := integrationOnlyServer(t)
	defer srv.Close()

	c := New(apiKeyOnlyConfig(srv.URL), nil)
	require.NoError(t, c.Connect(context.Background()))
	assert.Equal(t, Connected, c.ConnectionState().Phase)

	result, err := c.Execute(context.Background(), command.CreateNetwork{Network: domain.Network{Name: "corp", Enabled: true}})
	require.NoError(t, err)
	rn, ok := result.(command.ResultNetwork)
	require.True(t, ok)
	assert.Equal(t, "corp", rn.Network.Name)

	c.Disconnect(context.Background())
	assert.Equal(t, Disconnected, c.ConnectionState().Phase)
	assert.Empty(t, c.Store().Networks.Keys())
}

func TestConnectFailsWhenNoBackendAuthenticates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cfg := config.ControllerConfig{
		URL:  srv.URL,
		Auth: config.AuthConfig{Strategy: config.AuthCredentials, Username: "admin", Password: "pw"},
		Site: "default",
		TLS:  config.TLSConfig{Mode: config.TlsSkipVerification},
	}
	c := New(cfg, nil)
	err := c.Connect(context.Background())
	require.Error(t, err)
	assert.Equal(t, Failed, c.ConnectionState().Phase)
}

func hybridServer(t *testing.T, legacyLoginFails bool) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	for _, resource := range []string{
		"devices", "networks", "wifi_broadcasts", "firewall/policies",
		"firewall/zones", "acl_rules", "dns_policies", "vouchers", "traffic_lists",
	} {
		path := "/integration/v1/sites/default/" + resource
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) { emptyPage(w) })
	}
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			return
		}
		if legacyLoginFails {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"meta":{"rc":"ok"},"data":[]}`))
	})
	mux.HandleFunc("/api/self/sites", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"meta":{"rc":"ok"},"data":[]}`))
	})
	mux.HandleFunc("/api/s/default/stat/event", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"meta":{"rc":"ok"},"data":[]}`))
	})
	return httptest.NewServer(mux)
}

func TestConnectHybridFallsBackOnLegacyLoginFailure(t *testing.T) {
	srv := hybridServer(t, true)
	defer srv.Close()

	cfg := config.ControllerConfig{
		URL:  srv.URL,
		Auth: config.AuthConfig{Strategy: config.AuthHybrid, ApiKey: "key-1", Username: "admin", Password: "pw"},
		Site: "default",
		TLS:  config.TLSConfig{Mode: config.TlsSkipVerification},
	}
	c := New(cfg, nil)
	require.NoError(t, c.Connect(context.Background()))
	assert.Equal(t, Connected, c.ConnectionState().Phase)

	warnings := c.TakeWarnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "hybrid mode")

	c.Disconnect(context.Background())
}

func TestConnectHybridSucceedsOnBothBackends(t *testing.T) {
	srv := hybridServer(t, false)
	defer srv.Close()

	cfg := config.ControllerConfig{
		URL:                srv.URL,
		Auth:               config.AuthConfig{Strategy: config.AuthHybrid, ApiKey: "key-1", Username: "admin", Password: "pw"},
		Site:               "default",
		TLS:                config.TLSConfig{Mode: config.TlsSkipVerification},
		ClientPollInterval: time.Hour,
	}
	c := New(cfg, nil)
	require.NoError(t, c.Connect(context.Background()))
	assert.Empty(t, c.TakeWarnings())
	c.Disconnect(context.Background())
}

func TestOnWebSocketStateChangeEscalatesToReconnectingAfterThreshold(t *testing.T) {
	c := New(config.ControllerConfig{}, nil)
	c.state.Set(connectedState())

	c.onWebSocketStateChange(1, false)
	c.onWebSocketStateChange(2, false)
	assert.Equal(t, Connected, c.ConnectionState().Phase)

	c.onWebSocketStateChange(3, false)
	state := c.ConnectionState()
	assert.Equal(t, Reconnecting, state.Phase)
	assert.Equal(t, 1, state.Attempt)
}

func TestOnWebSocketStateChangeReturnsToConnectedOnSuccess(t *testing.T) {
	c := New(config.ControllerConfig{}, nil)
	c.state.Set(reconnectingState(4))

	c.onWebSocketStateChange(0, true)

	assert.Equal(t, Connected, c.ConnectionState().Phase)
}

func TestOnWebSocketStateChangeIgnoresDisconnectedPhase(t *testing.T) {
	c := New(config.ControllerConfig{}, nil)
	require.Equal(t, Disconnected, c.ConnectionState().Phase)

	c.onWebSocketStateChange(5, false)

	assert.Equal(t, Disconnected, c.ConnectionState().Phase)
}

func TestOneshotDisablesBackgroundTasksAndDisconnectsAfterF(t *testing.T) {
	srv := integrationOnlyServer(t)
	defer srv.Close()

	cfg := apiKeyOnlyConfig(srv.URL)
	cfg.WebSocketEnabled = true
	cfg.RefreshIntervalSecs = 60

	var sawState ConnectionState
	var ctrl *Controller
	err := Oneshot(context.Background(), cfg, nil, func(c *Controller) error {
		sawState = c.ConnectionState()
		ctrl = c
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, Connected, sawState.Phase)
	require.NotNil(t, ctrl)
	assert.False(t, ctrl.cfg.WebSocketEnabled)
	assert.Zero(t, ctrl.cfg.RefreshIntervalSecs)
	assert.Equal(t, Disconnected, ctrl.ConnectionState().Phase)
}
