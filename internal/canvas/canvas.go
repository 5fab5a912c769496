// Package canvas is an in-memory character grid that clock frames can be
// drawn on and rendered from as a single string.
package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type cell struct {
	r    rune
	bold bool
	// cont marks the right half of a wide rune.
	cont bool
}

// Canvas is a fixed-size grid of cells. Writes outside the grid are clipped.
type Canvas struct {
	width  int
	height int
	cells  [][]cell
}

// New returns a blank canvas.
func New(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	c := &Canvas{width: width, height: height, cells: make([][]cell, height)}
	for y := range c.cells {
		c.cells[y] = make([]cell, width)
	}
	_ = c.Clear()
	return c
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Clear blanks every cell.
func (c *Canvas) Clear() error {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = cell{r: ' '}
		}
	}
	return nil
}

// WriteAt writes s starting at column x of row y.
func (c *Canvas) WriteAt(x, y int, s string) error {
	c.write(x, y, s, false)
	return nil
}

// WriteBoldAt writes s in bold starting at column x of row y.
func (c *Canvas) WriteBoldAt(x, y int, s string) error {
	c.write(x, y, s, true)
	return nil
}

func (c *Canvas) write(x, y int, s string, bold bool) {
	if y < 0 || y >= c.height {
		return
	}
	row := c.cells[y]
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= 0 && x+w <= c.width {
			row[x] = cell{r: r, bold: bold}
			if w == 2 {
				row[x+1] = cell{bold: bold, cont: true}
			}
		}
		x += w
		if x >= c.width {
			return
		}
	}
}

// Line returns row y as plain text.
func (c *Canvas) Line(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	var b strings.Builder
	for _, cl := range c.cells[y] {
		if !cl.cont {
			b.WriteRune(cl.r)
		}
	}
	return b.String()
}

// Lines returns every row as plain text.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.height)
	for y := range lines {
		lines[y] = c.Line(y)
	}
	return lines
}

// String returns the rows joined by newlines without styling.
func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}

// Render returns the rows joined by newlines, with bold runs rendered through
// the given style.
func (c *Canvas) Render(bold lipgloss.Style) string {
	lines := make([]string, c.height)
	var run strings.Builder
	for y, row := range c.cells {
		var b strings.Builder
		inBold := false
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if inBold {
				b.WriteString(bold.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.cont {
				continue
			}
			if cl.bold != inBold {
				flush()
				inBold = cl.bold
			}
			run.WriteRune(cl.r)
		}
		flush()
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
