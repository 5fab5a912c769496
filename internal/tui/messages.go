package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg carries the wall-clock second to display.
type tickMsg time.Time

// tick schedules the next tick on the following whole second.
func tick() tea.Cmd {
	return tea.Every(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
