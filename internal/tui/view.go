package tui

import (
	"github.com/sirupsen/logrus"

	"github.com/cliclock/cliclock/internal/canvas"
	"github.com/cliclock/cliclock/internal/clock"
)

// View implements tea.Model. Nothing is drawn until the first window size
// arrives.
func (m Model) View() string {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return ""
	}

	c := canvas.New(m.width, m.height)
	opts := m.opts
	opts.Hint = m.help.ShortHelpView(m.keys.ShortHelp())
	if err := clock.DrawFrame(c, m.now, m.width, m.height, opts); err != nil {
		logrus.Debugf("draw frame: %v", err)
		return ""
	}
	return c.Render(m.bold)
}
