//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package term

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedSize(w, h int) SizeFunc {
	return func() (int, int, error) { return w, h, nil }
}

func TestTerminal_WriteAtUsesOneBasedCursorPosition(t *testing.T) {
	t.Parallel()

	pr, _ := io.Pipe()
	var out bytes.Buffer
	term := newTerminal(pr, &out, fixedSize(80, 24))

	require.NoError(t, term.Clear())
	require.NoError(t, term.WriteAt(0, 0, "ab"))
	require.NoError(t, term.WriteAt(9, 3, "██"))
	assert.Empty(t, out.String(), "nothing is sent before Flush")

	require.NoError(t, term.Flush())
	assert.Equal(t, "\x1b[2J"+"\x1b[1;1Hab"+"\x1b[4;10H██", out.String())
}

func TestTerminal_WriteBoldAtKeepsText(t *testing.T) {
	t.Parallel()

	pr, _ := io.Pipe()
	var out bytes.Buffer
	term := newTerminal(pr, &out, fixedSize(80, 24))

	require.NoError(t, term.WriteBoldAt(28, 16, "Tuesday, March 05, 2024"))
	require.NoError(t, term.Flush())
	assert.True(t, strings.HasPrefix(out.String(), ansi.CursorPosition(29, 17)))
	assert.Contains(t, out.String(), "Tuesday, March 05, 2024")
}

func TestTerminal_Size(t *testing.T) {
	t.Parallel()

	pr, _ := io.Pipe()
	term := newTerminal(pr, io.Discard, fixedSize(132, 43))
	w, h, err := term.Size()
	require.NoError(t, err)
	assert.Equal(t, 132, w)
	assert.Equal(t, 43, h)
}

func TestTerminal_KeyPressed(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	term := newTerminal(pr, io.Discard, fixedSize(80, 24))

	pressed, err := term.KeyPressed(20 * time.Millisecond)
	require.NoError(t, err)
	assert.False(t, pressed)

	go func() { _, _ = pw.Write([]byte("q")) }()
	pressed, err = term.KeyPressed(5 * time.Second)
	require.NoError(t, err)
	assert.True(t, pressed)

	// the key was consumed
	pressed, err = term.KeyPressed(20 * time.Millisecond)
	require.NoError(t, err)
	assert.False(t, pressed)
}

func TestTerminal_KeyPressedReportsReadError(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	term := newTerminal(pr, io.Discard, fixedSize(80, 24))
	require.NoError(t, pw.CloseWithError(errors.New("tty gone")))

	_, err := term.KeyPressed(5 * time.Second)
	require.ErrorContains(t, err, "tty gone")
}

func TestTerminal_CloseRestoresScreenAndMode(t *testing.T) {
	t.Parallel()

	pr, _ := io.Pipe()
	var out bytes.Buffer
	term := newTerminal(pr, &out, fixedSize(80, 24))
	restored := false
	term.restore = func() error {
		restored = true
		return nil
	}

	require.NoError(t, term.Close())
	assert.True(t, restored)
	assert.Equal(t, ansi.ResetStyle+ansi.ShowCursor+ansi.ResetAltScreenSaveCursorMode, out.String())
}

func TestTerminal_CloseReportsRestoreError(t *testing.T) {
	t.Parallel()

	pr, _ := io.Pipe()
	term := newTerminal(pr, io.Discard, fixedSize(80, 24))
	term.restore = func() error { return errors.New("tcsetattr failed") }

	require.ErrorContains(t, term.Close(), "tcsetattr failed")
}
