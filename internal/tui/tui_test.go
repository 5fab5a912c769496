//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package tui

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cliclock/cliclock/internal/clock"
	"github.com/cliclock/cliclock/internal/layout"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func (c fixedClock) Sleep(context.Context, time.Duration) error { return nil }

var testTime = time.Date(2024, time.March, 5, 13, 4, 59, 0, time.UTC)

func newTestModel(opts clock.Options) Model {
	opts.Clock = fixedClock{now: testTime}
	m := NewModel(opts)
	m.bold = lipgloss.NewRenderer(io.Discard).NewStyle().Bold(true)
	return m
}

func resize(t *testing.T, m Model, w, h int) Model {
	t.Helper()
	next, cmd := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	assert.Nil(t, cmd)
	return next.(Model)
}

func TestModel_ViewBeforeSizeIsEmpty(t *testing.T) {
	t.Parallel()

	m := newTestModel(clock.DefaultOptions())
	assert.Empty(t, m.View())
}

func TestModel_ViewBordered(t *testing.T) {
	t.Parallel()

	m := resize(t, newTestModel(clock.DefaultOptions()), 80, 24)
	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 24)

	assert.Contains(t, lines[8], "█")
	assert.Equal(t, "Tuesday, March 05, 2024", lines[16][28:51])
	assert.True(t, strings.HasPrefix(lines[23], "Press any key to quit"), lines[23])
}

func TestModel_ViewGroupedHasNoFooter(t *testing.T) {
	t.Parallel()

	opts := clock.DefaultOptions()
	opts.Layout = layout.DefaultGrouped()
	m := resize(t, newTestModel(opts), 80, 24)
	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 24)
	assert.Equal(t, strings.Repeat(" ", 80), lines[23])
}

func TestModel_ViewTooSmall(t *testing.T) {
	t.Parallel()

	m := resize(t, newTestModel(clock.DefaultOptions()), 20, 10)
	assert.Contains(t, m.View(), "Terminal too small")
}

func TestModel_AnyKeyQuits(t *testing.T) {
	t.Parallel()

	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("x")},
		{Type: tea.KeyEnter},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyF5},
	}
	for _, k := range keys {
		k := k
		t.Run(k.String(), func(t *testing.T) {
			t.Parallel()
			m := resize(t, newTestModel(clock.DefaultOptions()), 80, 24)
			next, cmd := m.Update(k)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
			assert.Empty(t, next.View())
		})
	}
}

func TestModel_TickAdvancesTime(t *testing.T) {
	t.Parallel()

	m := newTestModel(clock.DefaultOptions())
	later := testTime.Add(time.Second)
	next, cmd := m.Update(tickMsg(later))
	assert.NotNil(t, cmd, "the next tick is scheduled")
	assert.Equal(t, later, next.(Model).now)
}

func TestModel_IgnoresUnknownMessages(t *testing.T) {
	t.Parallel()

	m := newTestModel(clock.DefaultOptions())
	next, cmd := m.Update(struct{}{})
	assert.Nil(t, cmd)
	assert.Equal(t, m.now, next.(Model).now)
}

func TestHelpLine(t *testing.T) {
	t.Parallel()

	m := newTestModel(clock.DefaultOptions())
	assert.Equal(t, clock.DefaultHint, m.help.ShortHelpView(m.keys.ShortHelp()))
}

//nolint:paralleltest // Run swaps the global logrus output.
func TestRun_KeyQuits(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := Run(ctx, clock.DefaultOptions(),
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(io.Discard),
	)
	require.NoError(t, err)
	require.NoError(t, ctx.Err(), "quit came from the key, not the deadline")
}

//nolint:paralleltest // Run swaps the global logrus output.
func TestRun_CanceledContextIsNormalQuit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, clock.DefaultOptions(),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)
	require.NoError(t, err)
}
