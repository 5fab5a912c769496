// Package tui is the Bubble Tea frontend of the clock. It draws the same
// frames as the raw terminal loop and leaves on the first key press.
package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/cliclock/cliclock/internal/clock"
)

// Run starts the clock as a full-screen Bubble Tea program and blocks until a
// key is pressed or ctx is done. Both end the program without error.
func Run(ctx context.Context, opts clock.Options, progOpts ...tea.ProgramOption) error {
	model := NewModel(opts)
	progOpts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, progOpts...)
	p := tea.NewProgram(model, progOpts...)

	// Silence external logs (WARN/ERRO) during TUI to avoid corrupting the view.
	prevOut := logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)
	defer logrus.SetOutput(prevOut)

	_, err := p.Run()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
		return nil
	case errors.Is(err, tea.ErrInterrupted):
		return nil
	}
	return err
}
