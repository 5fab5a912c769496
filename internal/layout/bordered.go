package layout

import (
	"fmt"
	"math"
)

// borderedReservedRows is how many rows the digits leave free: the footer
// and the date line plus breathing room.
const borderedReservedRows = 6

// Bordered sizes the digits from the terminal width, accounting for colon
// glyphs, separators and a border on each side. Ratios are relative to the
// digit width.
//
// With digit height h the total width is
//
//	6(h+1) + 2(2h/5) + 7s(h+1) + 2b(h+1)
//
// which solved for h gives (tw - 2b - 7s - 6) / (2b + 7s + 6.8).
type Bordered struct {
	SeparatorRatio float64
	BorderRatio    float64
}

// DefaultBordered returns the bordered mode with its stock ratios.
func DefaultBordered() Bordered {
	return Bordered{SeparatorRatio: 0.3, BorderRatio: 0.5}
}

func (Bordered) Name() string { return ModeBordered }

func (Bordered) Footer() bool { return true }

// Compute implements Strategy.
func (b Bordered) Compute(width, height int) (Geometry, error) {
	s, br := b.SeparatorRatio, b.BorderRatio
	h := int(math.Floor((float64(width) - 2*br - 7*s - 6) / (2*br + 7*s + 6.8)))
	h = min(h, height-borderedReservedRows)

	dw := h + 1
	if err := checkGlyph(dw, h); err != nil {
		return Geometry{}, err
	}

	g := Geometry{
		DigitWidth:  dw,
		DigitHeight: h,
		ColonWidth:  h * 2 / 5,
		SepWidth:    floorMul(s, dw),
		BorderWidth: floorMul(br, dw),
	}
	g.TotalWidth = 6*g.DigitWidth + 2*g.ColonWidth + 7*g.SepWidth + 2*g.BorderWidth
	if g.TotalWidth > width {
		return Geometry{}, fmt.Errorf("%w: block needs %d columns, have %d", ErrTerminalTooSmall, g.TotalWidth, width)
	}

	g.BlockX = CenterX(width, g.TotalWidth)
	g.TimeX = g.BlockX + g.BorderWidth
	g.TimeY = (height - 1 - h) / 2
	return g, nil
}
