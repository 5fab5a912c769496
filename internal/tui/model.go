package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cliclock/cliclock/internal/clock"
)

// Model is the root Bubble Tea model.
type Model struct {
	now      time.Time
	width    int
	height   int
	opts     clock.Options
	keys     keyMap
	help     help.Model
	bold     lipgloss.Style
	quitting bool
}

// NewModel constructs a Model showing the current time of opts.Clock.
func NewModel(opts clock.Options) Model {
	if opts.Clock == nil {
		opts.Clock = clock.SystemClock()
	}
	h := help.New()
	// the footer is drawn on the clock's background; keep it unstyled
	h.Styles = help.Styles{}
	return Model{
		now:  opts.Clock.Now(),
		opts: opts,
		keys: newKeyMap(),
		help: h,
		bold: lipgloss.NewStyle().Bold(true),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tick()
}
