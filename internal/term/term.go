// Package term drives a real terminal for the clock: alternate screen, hidden
// cursor, raw input, absolute cursor addressing and key polling.
package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/sirupsen/logrus"
	xterm "golang.org/x/term"
)

// ErrNotTerminal is returned by Open when stdin is not a terminal.
var ErrNotTerminal = errors.New("stdin is not a terminal")

const inputBufferSize = 64

// SizeFunc reports the terminal size in cells.
type SizeFunc func() (width, height int, err error)

// Terminal is a full-screen terminal session. Close must be called to give
// the terminal back in the state it was found.
type Terminal struct {
	out     *bufio.Writer
	size    SizeFunc
	bold    lipgloss.Style
	keys    chan struct{}
	errs    chan error
	restore func() error
}

// Open switches the process terminal to raw mode, enters the alternate
// screen and hides the cursor.
func Open() (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	if !xterm.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	state, err := xterm.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	logrus.Debug("terminal in raw mode")

	sizeFd := int(os.Stdout.Fd())
	if !xterm.IsTerminal(sizeFd) {
		sizeFd = fd
	}
	t := newTerminal(os.Stdin, os.Stdout, func() (int, int, error) {
		return xterm.GetSize(sizeFd)
	})
	t.restore = func() error { return xterm.Restore(fd, state) }

	if _, err := t.out.WriteString(ansi.SetAltScreenSaveCursorMode + ansi.HideCursor); err != nil {
		_ = t.restore()
		return nil, err
	}
	if err := t.out.Flush(); err != nil {
		_ = t.restore()
		return nil, err
	}
	return t, nil
}

// newTerminal wires a session over arbitrary streams. The reader is drained
// by a goroutine for the lifetime of the process.
func newTerminal(in io.Reader, out io.Writer, size SizeFunc) *Terminal {
	t := &Terminal{
		out:  bufio.NewWriter(out),
		size: size,
		bold: lipgloss.NewRenderer(out).NewStyle().Bold(true),
		keys: make(chan struct{}, 1),
		errs: make(chan error, 1),
	}
	go t.readInput(in)
	return t
}

func (t *Terminal) readInput(in io.Reader) {
	buf := make([]byte, inputBufferSize)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			select {
			case t.keys <- struct{}{}:
			default:
			}
		}
		if err != nil {
			t.errs <- err
			return
		}
	}
}

// Size implements clock.Input.
func (t *Terminal) Size() (int, int, error) {
	return t.size()
}

// KeyPressed implements clock.Input.
func (t *Terminal) KeyPressed(timeout time.Duration) (bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-t.keys:
		return true, nil
	case err := <-t.errs:
		return false, fmt.Errorf("read input: %w", err)
	case <-timer.C:
		return false, nil
	}
}

// Clear erases the whole screen.
func (t *Terminal) Clear() error {
	_, err := t.out.WriteString(ansi.EraseEntireScreen)
	return err
}

// WriteAt writes s with the cursor moved to column x, row y (zero based).
func (t *Terminal) WriteAt(x, y int, s string) error {
	if _, err := t.out.WriteString(ansi.CursorPosition(x+1, y+1)); err != nil {
		return err
	}
	_, err := t.out.WriteString(s)
	return err
}

// WriteBoldAt is WriteAt with s emphasized. No style outlives the call.
func (t *Terminal) WriteBoldAt(x, y int, s string) error {
	return t.WriteAt(x, y, t.bold.Render(s))
}

// Flush sends everything written since the last flush.
func (t *Terminal) Flush() error {
	return t.out.Flush()
}

// Close leaves the alternate screen, shows the cursor and restores the
// terminal mode.
func (t *Terminal) Close() error {
	_, werr := t.out.WriteString(ansi.ResetStyle + ansi.ShowCursor + ansi.ResetAltScreenSaveCursorMode)
	ferr := t.out.Flush()
	var rerr error
	if t.restore != nil {
		rerr = t.restore()
		logrus.Debug("terminal mode restored")
	}
	return errors.Join(werr, ferr, rerr)
}
