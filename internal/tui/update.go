package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { // nolint:ireturn
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = x.Width, x.Height
		return m, nil

	case tea.KeyMsg:
		// every key quits
		logrus.Debugf("key %q pressed; quitting", x.String())
		m.quitting = true
		return m, tea.Quit

	case tickMsg:
		m.now = time.Time(x)
		return m, tick()
	}
	return m, nil
}
