// Package layout computes where the clock digits, colons and date line go for
// a terminal of a given size.
//
// Two presentation modes are available. Bordered draws colon glyphs between
// the digit pairs, pads the block with a border and reserves the bottom row
// for a footer hint. Grouped draws no colons; the pairs are set apart by
// wider group separators instead. Each mode has its own ratio pair and the
// two are never mixed.
package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/cliclock/cliclock/internal/segment"
)

// ErrTerminalTooSmall is returned when the terminal cannot hold digits of the
// minimum glyph size.
var ErrTerminalTooSmall = errors.New("terminal too small")

// Mode names accepted by ByName.
const (
	ModeBordered = "bordered"
	ModeGrouped  = "grouped"
)

// Strategy sizes and positions the clock for a terminal.
type Strategy interface {
	Name() string
	// Footer reports whether the bottom terminal row is reserved for a hint.
	Footer() bool
	Compute(width, height int) (Geometry, error)
}

// Geometry is the layout of one frame. All values are in terminal cells.
type Geometry struct {
	DigitWidth  int
	DigitHeight int
	// ColonWidth is zero when the strategy draws no colon glyphs.
	ColonWidth int
	// SepWidth separates the digits of a pair, and in bordered mode flanks
	// each colon.
	SepWidth int
	// GroupSepWidth separates pairs and pads both edges in grouped mode.
	GroupSepWidth int
	BorderWidth   int
	// TotalWidth includes separators and edge padding.
	TotalWidth int
	// BlockX is the left edge of the padded block.
	BlockX int
	// TimeX, TimeY is the top-left corner of the first digit.
	TimeX int
	TimeY int
}

// Positions holds the columns of the six digits and the two colons.
type Positions struct {
	Digits [6]int
	Colons [2]int
}

// HasColons reports whether colon glyphs are drawn.
func (g Geometry) HasColons() bool { return g.ColonWidth > 0 }

// Positions returns the column of every glyph, left to right.
func (g Geometry) Positions() Positions {
	var p Positions
	x := g.TimeX
	for pair := 0; pair < 3; pair++ {
		p.Digits[2*pair] = x
		x += g.DigitWidth + g.SepWidth
		p.Digits[2*pair+1] = x
		x += g.DigitWidth
		if pair == 2 {
			break
		}
		if g.HasColons() {
			x += g.SepWidth
			p.Colons[pair] = x
			x += g.ColonWidth + g.SepWidth
		} else {
			x += g.GroupSepWidth
		}
	}
	return p
}

// DateOrigin returns where the date line starts: one row below the digits,
// centered on its cell width.
func (g Geometry) DateOrigin(termWidth int, date string) (x, y int) {
	return CenterX(termWidth, runewidth.StringWidth(date)), g.TimeY + g.DigitHeight + 1
}

// CenterX returns the column that centers content of the given width.
// Halves round away from zero and the result is never negative.
func CenterX(termWidth, contentWidth int) int {
	return max(round(float64(termWidth-1-contentWidth)/2), 0)
}

// ByName returns the default strategy for a mode name.
func ByName(name string) (Strategy, error) {
	switch name {
	case ModeBordered:
		return DefaultBordered(), nil
	case ModeGrouped:
		return DefaultGrouped(), nil
	default:
		return nil, fmt.Errorf("unknown layout %q (use %s or %s)", name, ModeBordered, ModeGrouped)
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

func floorMul(ratio float64, n int) int {
	return int(math.Floor(ratio * float64(n)))
}

func checkGlyph(width, height int) error {
	if width < segment.MinWidth || height < segment.MinHeight {
		return fmt.Errorf("%w: digits would be %dx%d", ErrTerminalTooSmall, width, height)
	}
	return nil
}
