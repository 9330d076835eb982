// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ksc98/unifly-sub001/internal/controller"
	"github.com/ksc98/unifly-sub001/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeBackend struct {
	state    controller.ConnectionState
	warnings []string
	devices  []domain.Device
	clients  []domain.Client
	events   []domain.Event

	blocked   map[string]bool
	restarted []string
}

func newFakeBackend() *fakeBackend {
	mac := domain.NewMacAddress("aa:bb:cc:dd:ee:ff")
	name := "ap-lobby"
	return &fakeBackend{
		state: controller.ConnectionState{Phase: controller.Connected},
		devices: []domain.Device{
			{Mac: mac, Name: &name, DeviceType: domain.DeviceTypeAccessPoint, State: domain.DeviceStateOnline},
		},
		clients: []domain.Client{
			{Mac: domain.NewMacAddress("11:22:33:44:55:66"), ClientType: domain.ClientTypeWireless},
		},
		events:  []domain.Event{{Message: "device adopted", Severity: domain.EventSeverityInfo, Category: domain.EventCategoryDevice}},
		blocked: map[string]bool{},
	}
}

func (f *fakeBackend) ConnectionState() controller.ConnectionState { return f.state }
func (f *fakeBackend) TakeWarnings() []string                      { return f.warnings }
func (f *fakeBackend) Devices() []domain.Device                    { return f.devices }
func (f *fakeBackend) Clients() []domain.Client                    { return f.clients }
func (f *fakeBackend) Networks() []domain.Network                  { return nil }
func (f *fakeBackend) FirewallPolicies() []domain.FirewallPolicy   { return nil }
func (f *fakeBackend) RecentEvents() []domain.Event                { return f.events }

func (f *fakeBackend) RestartDevice(mac domain.MacAddress) error {
	f.restarted = append(f.restarted, mac.String())
	return nil
}
func (f *fakeBackend) BlockClient(mac domain.MacAddress) error {
	f.blocked[mac.String()] = true
	return nil
}
func (f *fakeBackend) UnblockClient(mac domain.MacAddress) error {
	f.blocked[mac.String()] = false
	return nil
}

func drain(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	var msgs []tea.Msg
	for cmd != nil {
		msg := cmd()
		msgs = append(msgs, msg)
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				msgs = append(msgs, drain(t, c)...)
			}
			return msgs
		}
		return msgs
	}
	return msgs
}

func TestModelInitLoadsEverySubview(t *testing.T) {
	backend := newFakeBackend()
	m := NewModel(backend)

	cmd := m.Init()
	require.NotNil(t, cmd)
	msgs := drain(t, cmd)
	require.NotEmpty(t, msgs)
}

func TestTabCyclesThroughViews(t *testing.T) {
	backend := newFakeBackend()
	m := NewModel(backend)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m2 := next.(Model)
	assert.Equal(t, ViewDevices, m2.ActiveView)
}

func TestDigitKeysJumpToView(t *testing.T) {
	backend := newFakeBackend()
	m := NewModel(backend)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	m2 := next.(Model)
	assert.Equal(t, ViewClients, m2.ActiveView)
}

func TestDevicesViewRestartsSelectedDevice(t *testing.T) {
	backend := newFakeBackend()
	dm := NewDevicesModel(backend)
	dm, _ = dm.Update(devicesSnapshot(backend.Devices()))

	_, cmd := dm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("R")})
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, []string{"aa:bb:cc:dd:ee:ff"}, backend.restarted)
}

func TestClientsViewBlocksSelectedClient(t *testing.T) {
	backend := newFakeBackend()
	cm := NewClientsModel(backend)
	cm, _ = cm.Update(clientsSnapshot(backend.Clients()))

	_, cmd := cm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	require.NotNil(t, cmd)
	cmd()
	assert.True(t, backend.blocked["11:22:33:44:55:66"])
}

func TestBackendErrorSetsWarningAndRetryClearsIt(t *testing.T) {
	backend := newFakeBackend()
	m := NewModel(backend)

	next, cmd := m.Update(BackendError{Err: assertErr("boom")})
	m = next.(Model)
	assert.Equal(t, "boom", m.Warning)
	require.NotNil(t, cmd)

	next, _ = m.Update(RetryMsg{})
	m = next.(Model)
	assert.Empty(t, m.Warning)
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
