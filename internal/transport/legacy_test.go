// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksc98/unifly-sub001/internal/config"
	unifierrors "github.com/ksc98/unifly-sub001/internal/errors"
	"github.com/ksc98/unifly-sub001/internal/wire"
)

func newTestLegacyClient(t *testing.T, srv *httptest.Server) *LegacyClient {
	t.Helper()
	tc, err := NewTransportConfig(config.ControllerConfig{Timeout: 5 * time.Second})
	require.NoError(t, err)
	c, err := NewLegacyClient(srv.URL, "default", PlatformClassicController, tc, nil)
	require.NoError(t, err)
	return c
}

// E1: legacy auth then list.
func TestLegacyAuthThenList(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/s/default/stat/device", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"meta":{"rc":"ok"},"data":[{"_id":"abc","mac":"AA:BB:CC:DD:EE:FF","type":"usw","name":"Sw","model":"US24","state":1,"adopted":true}]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestLegacyClient(t, srv)
	require.NoError(t, c.Login(context.Background(), "admin", "secret"))

	devices, err := LegacyGet[wire.LegacyDevice](context.Background(), c, c.SiteURL("stat/device"))
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", devices[0].Mac)
	assert.Equal(t, "usw", devices[0].DeviceType)
}

// E2: envelope error.
func TestLegacyEnvelopeError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/s/default/stat/device", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"meta":{"rc":"error","msg":"api.err.InvalidObject"},"data":[]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestLegacyClient(t, srv)
	_, err := LegacyGet[wire.LegacyDevice](context.Background(), c, c.SiteURL("stat/device"))
	require.Error(t, err)
	assert.Equal(t, unifierrors.KindLegacyApi, unifierrors.GetKind(err))
	assert.Contains(t, err.Error(), "InvalidObject")
}

func TestLegacyEnvelopeOkReturnsData(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/s/default/stat/sta", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"meta":{"rc":"ok"},"data":[{"_id":"c1","mac":"11:22:33:44:55:66"}]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestLegacyClient(t, srv)
	clients, err := LegacyGet[wire.LegacyClientEntry](context.Background(), c, c.SiteURL("stat/sta"))
	require.NoError(t, err)
	require.Len(t, clients, 1)
}

func TestLegacyUnauthorizedMapsToAuthentication(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/s/default/stat/device", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestLegacyClient(t, srv)
	_, err := LegacyGet[wire.LegacyDevice](context.Background(), c, c.SiteURL("stat/device"))
	require.Error(t, err)
	assert.True(t, unifierrors.IsAuthExpired(err))
}

func TestLegacyForbiddenMapsToInsufficientPermissions(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/s/default/cmd/devmgr", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestLegacyClient(t, srv)
	_, err := LegacyPost[wire.LegacyDevice](context.Background(), c, c.SiteURL("cmd/devmgr"), map[string]string{"cmd": "adopt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient permissions")
}

func TestLegacyUnifiOsErrorEnvelope(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/s/default/stat/device", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"code":403,"message":"forbidden by policy"}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestLegacyClient(t, srv)
	_, err := LegacyGet[wire.LegacyDevice](context.Background(), c, c.SiteURL("stat/device"))
	require.Error(t, err)
	assert.Equal(t, unifierrors.KindLegacyApi, unifierrors.GetKind(err))
	assert.Contains(t, err.Error(), "forbidden by policy")
}

func TestLegacyCSRFTokenCapturedAndApplied(t *testing.T) {
	var sawToken string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-CSRF-Token", "token-1")
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/s/default/cmd/devmgr", func(w http.ResponseWriter, r *http.Request) {
		sawToken = r.Header.Get("X-CSRF-Token")
		w.Write([]byte(`{"meta":{"rc":"ok"},"data":[]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestLegacyClient(t, srv)
	require.NoError(t, c.Login(context.Background(), "admin", "secret"))
	_, err := LegacyPost[wire.LegacyDevice](context.Background(), c, c.SiteURL("cmd/devmgr"), map[string]string{"cmd": "adopt"})
	require.NoError(t, err)
	assert.Equal(t, "token-1", sawToken)
}

func TestCookieHeaderIncludesCachedCSRFToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "unifises", Value: "sess-1"})
		w.Header().Set("X-CSRF-Token", "csrf-1")
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestLegacyClient(t, srv)
	require.NoError(t, c.Login(context.Background(), "admin", "secret"))

	header := c.CookieHeader()
	assert.Contains(t, header, "unifises=sess-1")
	assert.Contains(t, header, "csrf_token=csrf-1")
}

func TestDetectPlatformUnifiOs(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	p, err := DetectPlatform(context.Background(), srv.URL, true)
	require.NoError(t, err)
	assert.Equal(t, PlatformUnifiOs, p)
}

func TestDetectPlatformClassicController(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	p, err := DetectPlatform(context.Background(), srv.URL, true)
	require.NoError(t, err)
	assert.Equal(t, PlatformClassicController, p)
}
