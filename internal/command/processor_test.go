// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package command

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksc98/unifly-sub001/internal/config"
	"github.com/ksc98/unifly-sub001/internal/domain"
	unifierrors "github.com/ksc98/unifly-sub001/internal/errors"
	"github.com/ksc98/unifly-sub001/internal/store"
	"github.com/ksc98/unifly-sub001/internal/transport"
)

func newTestIntegrationClient(t *testing.T, srv *httptest.Server) *transport.IntegrationClient {
	t.Helper()
	tc, err := transport.NewTransportConfig(config.ControllerConfig{Timeout: 5 * time.Second})
	require.NoError(t, err)
	c, err := transport.NewIntegrationClient(srv.URL, "default", "key-1", tc, nil)
	require.NoError(t, err)
	return c
}

func newTestLegacyClient(t *testing.T, srv *httptest.Server) *transport.LegacyClient {
	t.Helper()
	tc, err := transport.NewTransportConfig(config.ControllerConfig{Timeout: 5 * time.Second})
	require.NoError(t, err)
	c, err := transport.NewLegacyClient(srv.URL, "default", transport.PlatformClassicController, tc, nil)
	require.NoError(t, err)
	return c
}

// CRUD routes to Integration and upserts the returned entity into the
// store.
func TestCreateNetworkRoutesToIntegrationAndUpserts(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/integration/v1/sites/default/networks", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"id":"11111111-1111-1111-1111-111111111111","name":"corp","enabled":true,"purpose":"corporate"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	p := NewProcessor(newTestIntegrationClient(t, srv), nil, store.NewDataStore(), nil)
	result, err := p.dispatch(context.Background(), CreateNetwork{Network: domain.Network{Name: "corp", Enabled: true}})
	require.NoError(t, err)
	rn, ok := result.(ResultNetwork)
	require.True(t, ok)
	assert.Equal(t, "corp", rn.Network.Name)
	assert.Equal(t, domain.DataSourceIntegrationApi, rn.Network.Source)

	stored, ok := p.ds.Networks.GetByID(rn.Network.ID)
	require.True(t, ok)
	assert.Equal(t, "corp", stored.Name)
}

func TestDeleteNetworkRequiresIntegration(t *testing.T) {
	p := NewProcessor(nil, nil, store.NewDataStore(), nil)
	_, err := p.dispatch(context.Background(), DeleteNetwork{ID: domain.NewEntityId("net-1")})
	require.Error(t, err)
	assert.Equal(t, unifierrors.KindUnsupportedOperation, unifierrors.GetKind(err))
}

// Device action tries Integration first, upserting on success.
func TestDeviceActionPrefersIntegration(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/integration/v1/sites/default/devices/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"dev-1","macAddress":"aa:bb:cc:dd:ee:ff","state":"online","type":"switch"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	p := NewProcessor(newTestIntegrationClient(t, srv), nil, store.NewDataStore(), nil)
	result, err := p.dispatch(context.Background(), RestartDevice{Mac: domain.NewMacAddress("aa:bb:cc:dd:ee:ff")})
	require.NoError(t, err)
	rd, ok := result.(ResultDevice)
	require.True(t, ok)
	assert.Equal(t, domain.DeviceTypeSwitch, rd.Device.DeviceType)
	assert.True(t, rd.Device.State.IsOnline())
}

// A 404 from the Integration action endpoint falls back to the legacy
// cmd/devmgr verb.
func TestDeviceActionFallsBackToLegacyOn404(t *testing.T) {
	integMux := http.NewServeMux()
	integMux.HandleFunc("/integration/v1/sites/default/devices/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"no such action","code":"not_found"}`))
	})
	integSrv := httptest.NewServer(integMux)
	defer integSrv.Close()

	var sawLegacyCmd string
	legacyMux := http.NewServeMux()
	legacyMux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	legacyMux.HandleFunc("/api/s/default/cmd/devmgr", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		sawLegacyCmd, _ = body["cmd"].(string)
		w.Write([]byte(`{"meta":{"rc":"ok"},"data":[]}`))
	})
	legacySrv := httptest.NewServer(legacyMux)
	defer legacySrv.Close()

	legacy := newTestLegacyClient(t, legacySrv)
	require.NoError(t, legacy.Login(context.Background(), "admin", "secret"))

	p := NewProcessor(newTestIntegrationClient(t, integSrv), legacy, store.NewDataStore(), nil)
	result, err := p.dispatch(context.Background(), RestartDevice{Mac: domain.NewMacAddress("aa:bb:cc:dd:ee:ff")})
	require.NoError(t, err)
	assert.Equal(t, ResultOk{}, result)
	assert.Equal(t, "restart", sawLegacyCmd)
}

// PatchFirewallPolicy falls back to a full PUT when the PATCH endpoint
// 404s, using the store's current snapshot as the PUT body.
func TestPatchFirewallPolicyFallsBackToFullPut(t *testing.T) {
	var sawMethod string
	mux := http.NewServeMux()
	mux.HandleFunc("/integration/v1/sites/default/firewall/policies/fwp-1", func(w http.ResponseWriter, r *http.Request) {
		sawMethod = r.Method
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"patch unsupported"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ds := store.NewDataStore()
	id := domain.NewEntityId("fwp-1")
	ds.FirewallPolicies.Upsert("fwp:fwp-1", id, domain.FirewallPolicy{ID: id, Name: "block-iot", Enabled: false})

	p := NewProcessor(newTestIntegrationClient(t, srv), nil, ds, nil)

	// First call 404s on PATCH; fall back must reissue a PUT against the
	// same path, which this handler also serves (and still 404s, since
	// the test only cares that the fallback was attempted).
	_, err := p.dispatch(context.Background(), PatchFirewallPolicy{ID: id, Enabled: true})
	require.Error(t, err)
	assert.Equal(t, http.MethodPut, sawMethod)
}

func TestUnsupportedOperationWhenNoBackend(t *testing.T) {
	p := NewProcessor(nil, nil, store.NewDataStore(), nil)
	_, err := p.dispatch(context.Background(), CreateBackup{})
	require.Error(t, err)
	assert.Equal(t, unifierrors.KindUnsupportedOperation, unifierrors.GetKind(err))
}

// Execute/Run round-trips a command through the queue.
func TestExecuteRoundTripsThroughRun(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.HandleFunc("/api/s/default/cmd/system", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"meta":{"rc":"ok"},"data":[]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	legacy := newTestLegacyClient(t, srv)
	require.NoError(t, legacy.Login(context.Background(), "admin", "secret"))

	p := NewProcessor(nil, legacy, store.NewDataStore(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	result, err := p.Execute(ctx, RebootController{})
	require.NoError(t, err)
	assert.Equal(t, ResultOk{}, result)
}
