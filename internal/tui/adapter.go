// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import (
	"context"

	"github.com/ksc98/unifly-sub001/internal/command"
	"github.com/ksc98/unifly-sub001/internal/controller"
	"github.com/ksc98/unifly-sub001/internal/domain"
)

// ControllerBackend adapts a live *controller.Controller to the Backend
// interface the dashboard views consume.
type ControllerBackend struct {
	ctrl *controller.Controller
}

func NewControllerBackend(ctrl *controller.Controller) *ControllerBackend {
	return &ControllerBackend{ctrl: ctrl}
}

func (b *ControllerBackend) ConnectionState() controller.ConnectionState {
	return b.ctrl.ConnectionState()
}

func (b *ControllerBackend) TakeWarnings() []string {
	return b.ctrl.TakeWarnings()
}

func (b *ControllerBackend) Devices() []domain.Device {
	return b.ctrl.Store().Devices.Snapshot()
}

func (b *ControllerBackend) Clients() []domain.Client {
	return b.ctrl.Store().Clients.Snapshot()
}

func (b *ControllerBackend) Networks() []domain.Network {
	return b.ctrl.Store().Networks.Snapshot()
}

func (b *ControllerBackend) FirewallPolicies() []domain.FirewallPolicy {
	return b.ctrl.Store().FirewallPolicies.Snapshot()
}

func (b *ControllerBackend) RecentEvents() []domain.Event {
	return b.ctrl.Store().EventLog.Snapshot()
}

func (b *ControllerBackend) RestartDevice(mac domain.MacAddress) error {
	_, err := b.ctrl.Execute(context.Background(), command.RestartDevice{Mac: mac})
	return err
}

func (b *ControllerBackend) BlockClient(mac domain.MacAddress) error {
	_, err := b.ctrl.Execute(context.Background(), command.BlockClient{Mac: mac})
	return err
}

func (b *ControllerBackend) UnblockClient(mac domain.MacAddress) error {
	_, err := b.ctrl.Execute(context.Background(), command.UnblockClient{Mac: mac})
	return err
}
