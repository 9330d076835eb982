// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import (
	"fmt"
	"sort"
	"time"

	"github.com/ksc98/unifly-sub001/internal/controller"
	"github.com/ksc98/unifly-sub001/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DashboardModel is the overview HUD: connection state, entity counts,
// and the most recent warnings/events.
type DashboardModel struct {
	Backend Backend

	State       controller.ConnectionState
	DeviceCount int
	OnlineCount int
	ClientCount int
	NetworkCnt  int
	PolicyCount int
	Warnings    []string
	Recent      []domain.Event
	LastUpdated time.Time
	Width       int
	Height      int
}

func NewDashboardModel(backend Backend) DashboardModel {
	return DashboardModel{Backend: backend}
}

type TickMsg time.Time

type dashboardSnapshot struct {
	state       controller.ConnectionState
	devices     []domain.Device
	clients     int
	networks    int
	policies    int
	warnings    []string
	recent      []domain.Event
}

func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.refresh(), m.tick())
}

func (m DashboardModel) tick() tea.Cmd {
	return tea.Tick(5*time.Second, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m DashboardModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return dashboardSnapshot{
			state:    m.Backend.ConnectionState(),
			devices:  m.Backend.Devices(),
			clients:  len(m.Backend.Clients()),
			networks: len(m.Backend.Networks()),
			policies: len(m.Backend.FirewallPolicies()),
			warnings: m.Backend.TakeWarnings(),
			recent:   recentEvents(m.Backend.RecentEvents(), 5),
		}
	}
}

func recentEvents(events []domain.Event, n int) []domain.Event {
	sorted := make([]domain.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Timestamp.Before(sorted[j].Timestamp) })
	if len(sorted) <= n {
		return sorted
	}
	return sorted[len(sorted)-n:]
}

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardSnapshot:
		m.State = msg.state
		m.DeviceCount = len(msg.devices)
		online := 0
		for _, d := range msg.devices {
			if d.State == domain.DeviceStateOnline {
				online++
			}
		}
		m.OnlineCount = online
		m.ClientCount = msg.clients
		m.NetworkCnt = msg.networks
		m.PolicyCount = msg.policies
		m.Warnings = msg.warnings
		m.Recent = msg.recent
	case TickMsg:
		m.LastUpdated = time.Time(msg)
		return m, tea.Batch(m.refresh(), m.tick())
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	}
	return m, nil
}

func (m DashboardModel) View() string {
	stateStyle := statusStyle(m.State.Phase.String())
	statusBlock := StyleCard.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			StyleTitle.Render("Controller"),
			stateStyle.Render(m.State.String()),
		),
	)

	countsBlock := StyleCard.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			StyleTitle.Render("Inventory"),
			fmt.Sprintf("Devices: %d online / %d total", m.OnlineCount, m.DeviceCount),
			fmt.Sprintf("Clients: %d", m.ClientCount),
			fmt.Sprintf("Networks: %d", m.NetworkCnt),
			fmt.Sprintf("Firewall policies: %d", m.PolicyCount),
		),
	)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, statusBlock, countsBlock)

	var warnLines []string
	warnLines = append(warnLines, StyleTitle.Render("Warnings"))
	if len(m.Warnings) == 0 {
		warnLines = append(warnLines, StyleSubtitle.Render("None"))
	} else {
		for _, w := range m.Warnings {
			warnLines = append(warnLines, StyleStatusWarn.Render("• "+w))
		}
	}
	warnBlock := StyleCard.Render(lipgloss.JoinVertical(lipgloss.Left, warnLines...))

	var eventLines []string
	eventLines = append(eventLines, StyleTitle.Render("Recent events"))
	if len(m.Recent) == 0 {
		eventLines = append(eventLines, StyleSubtitle.Render("No recent events"))
	} else {
		for _, e := range m.Recent {
			ts := e.Timestamp.Format("15:04:05")
			line := fmt.Sprintf("• [%s] %s", ts, e.Message)
			eventLines = append(eventLines, statusStyle(e.Severity.String()).Render(line))
		}
	}
	eventsBlock := StyleCard.Render(lipgloss.JoinVertical(lipgloss.Left, eventLines...))

	footer := StyleSubtitle.Render(fmt.Sprintf("Last updated: %s", m.LastUpdated.Format("15:04:05")))

	return lipgloss.JoinVertical(lipgloss.Left, topRow, warnBlock, eventsBlock, footer)
}
