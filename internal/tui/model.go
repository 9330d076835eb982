// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import (
	"time"

	"github.com/ksc98/unifly-sub001/internal/controller"
	"github.com/ksc98/unifly-sub001/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// View represents the currently active screen.
type View int

const (
	ViewDashboard View = iota
	ViewDevices
	ViewClients
	ViewEvents
)

const viewCount = 4

// Backend defines the read/action surface the dashboard drives. It is
// satisfied by ControllerBackend in production and by a fake in tests.
type Backend interface {
	ConnectionState() controller.ConnectionState
	TakeWarnings() []string
	Devices() []domain.Device
	Clients() []domain.Client
	Networks() []domain.Network
	FirewallPolicies() []domain.FirewallPolicy
	RecentEvents() []domain.Event
	RestartDevice(mac domain.MacAddress) error
	BlockClient(mac domain.MacAddress) error
	UnblockClient(mac domain.MacAddress) error
}

// Model is the top-level application state.
type Model struct {
	Backend Backend

	ActiveView View
	Width      int
	Height     int
	Warning    string

	Dashboard DashboardModel
	Devices   DevicesModel
	Clients   ClientsModel
	Events    EventsModel
}

// NewModel creates the initial model.
func NewModel(backend Backend) Model {
	return Model{
		Backend:    backend,
		ActiveView: ViewDashboard,
		Dashboard:  NewDashboardModel(backend),
		Devices:    NewDevicesModel(backend),
		Clients:    NewClientsModel(backend),
		Events:     NewEventsModel(backend),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.Dashboard.Init(),
		m.Devices.Init(),
		m.Clients.Init(),
		m.Events.Init(),
	)
}

// BackendError wraps a failed backend call so Update can surface it.
type BackendError struct{ Err error }

// RetryMsg triggers a re-init after a transient backend failure.
type RetryMsg struct{}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case BackendError:
		m.Warning = msg.Err.Error()
		return m, tea.Tick(5*time.Second, func(t time.Time) tea.Msg { return RetryMsg{} })

	case RetryMsg:
		if m.Warning != "" {
			m.Warning = ""
			return m, m.Init()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.Init()
		case "tab":
			m.ActiveView = (m.ActiveView + 1) % viewCount
			return m, nil
		case "1":
			m.ActiveView = ViewDashboard
			return m, nil
		case "2":
			m.ActiveView = ViewDevices
			return m, nil
		case "3":
			m.ActiveView = ViewClients
			return m, nil
		case "4":
			m.ActiveView = ViewEvents
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		var cmd tea.Cmd
		m.Dashboard, cmd = m.Dashboard.Update(msg)
		cmds = append(cmds, cmd)
		m.Devices, cmd = m.Devices.Update(msg)
		cmds = append(cmds, cmd)
		m.Clients, cmd = m.Clients.Update(msg)
		cmds = append(cmds, cmd)
		m.Events, cmd = m.Events.Update(msg)
		cmds = append(cmds, cmd)
	}

	var cmd tea.Cmd
	switch m.ActiveView {
	case ViewDashboard:
		m.Dashboard, cmd = m.Dashboard.Update(msg)
	case ViewDevices:
		m.Devices, cmd = m.Devices.Update(msg)
	case ViewClients:
		m.Clients, cmd = m.Clients.Update(msg)
	case ViewEvents:
		m.Events, cmd = m.Events.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.Warning != "" {
		msg := StyleTitle.Render("Connection Lost") + "\n\n" +
			StyleStatusBad.Render(m.Warning) + "\n\n" +
			StyleSubtitle.Render("Retrying... (press q to quit)")
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, StyleCard.Render(msg))
	}

	doc := m.viewTopBar() + "\n"
	switch m.ActiveView {
	case ViewDashboard:
		doc += m.Dashboard.View()
	case ViewDevices:
		doc += m.Devices.View()
	case ViewClients:
		doc += m.Clients.View()
	case ViewEvents:
		doc += m.Events.View()
	}
	return StyleApp.Render(doc)
}

func (m Model) viewTopBar() string {
	menus := []struct {
		View  View
		Label string
		Key   string
	}{
		{ViewDashboard, "Dashboard", "1"},
		{ViewDevices, "Devices", "2"},
		{ViewClients, "Clients", "3"},
		{ViewEvents, "Events", "4"},
	}

	items := []string{StyleTitle.Render("UNIFLY ")}
	for _, menu := range menus {
		key := StyleMenuKey.Render("[" + menu.Key + "]")
		if m.ActiveView == menu.View {
			items = append(items, StyleMenuItemActive.Render(key+" "+menu.Label))
		} else {
			items = append(items, StyleMenuItem.Render(key+" "+menu.Label))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, items...)
	return StyleTopBar.Render(bar)
}
