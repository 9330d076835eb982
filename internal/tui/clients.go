// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import (
	"github.com/ksc98/unifly-sub001/internal/domain"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ClientsModel lists connected clients with a block/unblock action on
// the selected row.
type ClientsModel struct {
	Backend Backend
	Table   table.Model
	Clients []domain.Client
	Width   int
	Height  int
}

func NewClientsModel(backend Backend) ClientsModel {
	columns := []table.Column{
		{Title: "NAME", Width: 20},
		{Title: "MAC", Width: 18},
		{Title: "TYPE", Width: 10},
		{Title: "BLOCKED", Width: 8},
		{Title: "IP", Width: 16},
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

	return ClientsModel{Backend: backend, Table: t}
}

type clientsSnapshot []domain.Client

func (m ClientsModel) Init() tea.Cmd {
	return func() tea.Msg { return clientsSnapshot(m.Backend.Clients()) }
}

func (m ClientsModel) Update(msg tea.Msg) (ClientsModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case clientsSnapshot:
		m.Clients = msg
		rows := make([]table.Row, len(msg))
		for i, c := range msg {
			rows[i] = table.Row{
				truncate(clientName(c), 20),
				c.Mac.String(),
				c.ClientType.String(),
				blockedLabel(c.Blocked),
				clientIP(c),
			}
		}
		m.Table.SetRows(rows)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Table.SetHeight(msg.Height - 6)

	case tea.KeyMsg:
		switch msg.String() {
		case "b":
			if cursor := m.Table.Cursor(); cursor < len(m.Clients) {
				mac := m.Clients[cursor].Mac
				return m, func() tea.Msg {
					if err := m.Backend.BlockClient(mac); err != nil {
						return BackendError{Err: err}
					}
					return nil
				}
			}
		case "u":
			if cursor := m.Table.Cursor(); cursor < len(m.Clients) {
				mac := m.Clients[cursor].Mac
				return m, func() tea.Msg {
					if err := m.Backend.UnblockClient(mac); err != nil {
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

func (m ClientsModel) View() string {
	if len(m.Clients) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.Table.View(),
			StyleSubtitle.Render("No clients"),
		)
	}
	help := StyleSubtitle.Render("↑/↓ select · b block · u unblock")
	return lipgloss.JoinVertical(lipgloss.Left, m.Table.View(), "", help)
}

func clientName(c domain.Client) string {
	if c.Name != nil {
		return *c.Name
	}
	if c.Hostname != nil {
		return *c.Hostname
	}
	return "unknown"
}

func clientIP(c domain.Client) string {
	if c.IP != nil {
		return c.IP.String()
	}
	return "-"
}

func blockedLabel(blocked bool) string {
	if blocked {
		return "yes"
	}
	return "no"
}
