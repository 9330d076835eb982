// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import (
	"fmt"
	"sort"

	"github.com/ksc98/unifly-sub001/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// EventsModel shows the full recent event log, newest first.
type EventsModel struct {
	Backend Backend
	Events  []domain.Event
	Width   int
	Height  int
}

func NewEventsModel(backend Backend) EventsModel {
	return EventsModel{Backend: backend}
}

type eventsSnapshot []domain.Event

func (m EventsModel) Init() tea.Cmd {
	return func() tea.Msg { return eventsSnapshot(m.Backend.RecentEvents()) }
}

func (m EventsModel) Update(msg tea.Msg) (EventsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case eventsSnapshot:
		m.Events = msg
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	}
	return m, nil
}

func (m EventsModel) View() string {
	if len(m.Events) == 0 {
		return StyleSubtitle.Render("No events")
	}

	events := make([]domain.Event, len(m.Events))
	copy(events, m.Events)
	sort.SliceStable(events, func(i, j int) bool { return events[i].Timestamp.After(events[j].Timestamp) })

	var lines []string
	for _, e := range events {
		ts := e.Timestamp.Format("2006-01-02 15:04:05")
		line := fmt.Sprintf("[%s] %-8s %-8s %s", ts, e.Category.String(), e.Severity.String(), e.Message)
		lines = append(lines, statusStyle(e.Severity.String()).Render(line))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
