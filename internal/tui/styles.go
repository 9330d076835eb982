// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package tui

import "github.com/charmbracelet/lipgloss"

var (
	StyleApp = lipgloss.NewStyle().Padding(0, 1)

	StyleTopBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	StyleMenuItem       = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Padding(0, 1)
	StyleMenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62")).Bold(true).Padding(0, 1)
	StyleMenuKey        = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

	StyleTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	StyleSubtitle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

	StyleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1).
			MarginRight(1)

	StyleStatusGood = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	StyleStatusWarn = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	StyleStatusBad  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func statusStyle(s string) lipgloss.Style {
	switch s {
	case "online", "info", "connected":
		return StyleStatusGood
	case "warning", "reconnecting", "updating":
		return StyleStatusWarn
	case "offline", "error", "critical", "failed", "disconnected":
		return StyleStatusBad
	default:
		return StyleSubtitle
	}
}
