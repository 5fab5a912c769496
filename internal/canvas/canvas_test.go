package canvas

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvas_WriteAndClip(t *testing.T) {
	t.Parallel()

	c := New(6, 3)
	require.NoError(t, c.WriteAt(1, 0, "abc"))
	require.NoError(t, c.WriteAt(4, 1, "xyz"))
	require.NoError(t, c.WriteAt(-2, 2, "1234"))
	require.NoError(t, c.WriteAt(0, 5, "offscreen"))

	assert.Equal(t, []string{" abc  ", "    xy", "34    "}, c.Lines())

	w, h := c.Size()
	assert.Equal(t, 6, w)
	assert.Equal(t, 3, h)
}

func TestCanvas_Clear(t *testing.T) {
	t.Parallel()

	c := New(3, 2)
	require.NoError(t, c.WriteAt(0, 0, "███"))
	require.NoError(t, c.Clear())
	assert.Equal(t, "   \n   ", c.String())
}

func TestCanvas_WideRunesTakeTwoCells(t *testing.T) {
	t.Parallel()

	c := New(5, 1)
	require.NoError(t, c.WriteAt(0, 0, "日本x"))
	assert.Equal(t, "日本x", c.Line(0))

	c = New(3, 1)
	require.NoError(t, c.WriteAt(0, 0, "日本"))
	// the second rune does not fit and is dropped
	assert.Equal(t, "日 ", c.Line(0))
}

func TestCanvas_RenderStylesBoldRuns(t *testing.T) {
	t.Parallel()

	c := New(8, 1)
	require.NoError(t, c.WriteAt(0, 0, "ab"))
	require.NoError(t, c.WriteBoldAt(3, 0, "cd"))

	marker := lipgloss.NewStyle().Transform(func(s string) string { return "<" + s + ">" })
	assert.Equal(t, "ab <cd>   ", c.Render(marker))
	assert.Equal(t, "ab cd   ", c.String())
}

func TestCanvas_ZeroSize(t *testing.T) {
	t.Parallel()

	c := New(0, 0)
	require.NoError(t, c.WriteAt(0, 0, "x"))
	assert.Empty(t, c.Lines())
	assert.Equal(t, "", c.Render(lipgloss.NewStyle()))

	c = New(-3, 2)
	assert.Equal(t, strings.Repeat("\n", 1), c.String())
}
