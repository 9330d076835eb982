// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import (
	"github.com/ksc98/unifly-sub001/internal/domain"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DevicesModel lists every managed device with its adoption/connectivity
// state and a restart action on the selected row.
type DevicesModel struct {
	Backend Backend
	Table   table.Model
	Devices []domain.Device
	Width   int
	Height  int
}

func NewDevicesModel(backend Backend) DevicesModel {
	columns := []table.Column{
		{Title: "NAME", Width: 20},
		{Title: "MAC", Width: 18},
		{Title: "TYPE", Width: 14},
		{Title: "STATE", Width: 14},
		{Title: "FIRMWARE", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).Foreground(lipgloss.Color("250"))
	s.Selected = s.Selected.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62")).Bold(false)
	t.SetStyles(s)

	return DevicesModel{Backend: backend, Table: t}
}

type devicesSnapshot []domain.Device

func (m DevicesModel) Init() tea.Cmd {
	return func() tea.Msg { return devicesSnapshot(m.Backend.Devices()) }
}

func (m DevicesModel) Update(msg tea.Msg) (DevicesModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case devicesSnapshot:
		m.Devices = msg
		rows := make([]table.Row, len(msg))
		for i, d := range msg {
			rows[i] = table.Row{
				truncate(deviceName(d), 20),
				d.Mac.String(),
				d.DeviceType.String(),
				d.State.String(),
				deviceFirmware(d),
			}
		}
		m.Table.SetRows(rows)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Table.SetHeight(msg.Height - 6)

	case tea.KeyMsg:
		switch msg.String() {
		case "R":
			if cursor := m.Table.Cursor(); cursor < len(m.Devices) {
				mac := m.Devices[cursor].Mac
				return m, func() tea.Msg {
					if err := m.Backend.RestartDevice(mac); err != nil {
						return BackendError{Err: err}
					}
					return nil
				}
			}
		}
	}

	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m DevicesModel) View() string {
	if len(m.Devices) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.Table.View(),
			StyleSubtitle.Render("No devices"),
		)
	}
	help := StyleSubtitle.Render("↑/↓ select · R restart selected device")
	return lipgloss.JoinVertical(lipgloss.Left, m.Table.View(), "", help)
}

func deviceName(d domain.Device) string {
	if d.Name != nil {
		return *d.Name
	}
	return "unnamed"
}

func deviceFirmware(d domain.Device) string {
	if d.FirmwareVersion != nil {
		return *d.FirmwareVersion
	}
	return "-"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
