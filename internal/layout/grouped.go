package layout

import (
	"fmt"
	"math"
)

// groupedReservedRows keeps room below the digits for the gap row and the
// date line.
const groupedReservedRows = 2

// Grouped sizes the digits so that six digits, three number separators and
// four group separators span the terminal width:
//
//	dw = tw / (6 + 3ns + 4gs)
//
// The colons are implied by the group separators between pairs.
type Grouped struct {
	NumberSepRatio float64
	GroupSepRatio  float64
}

// DefaultGrouped returns the grouped mode with its stock ratios.
func DefaultGrouped() Grouped {
	return Grouped{NumberSepRatio: 0.3, GroupSepRatio: 0.5}
}

func (Grouped) Name() string { return ModeGrouped }

func (Grouped) Footer() bool { return false }

// Compute implements Strategy.
func (gr Grouped) Compute(width, height int) (Geometry, error) {
	ns, gs := gr.NumberSepRatio, gr.GroupSepRatio
	dw := int(math.Floor(float64(width) / (6 + 3*ns + 4*gs)))
	dw = min(dw, height-groupedReservedRows)

	h := dw - 1
	if err := checkGlyph(dw, h); err != nil {
		return Geometry{}, err
	}

	g := Geometry{
		DigitWidth:    dw,
		DigitHeight:   h,
		SepWidth:      floorMul(ns, dw),
		GroupSepWidth: floorMul(gs, dw),
	}
	g.TotalWidth = 6*g.DigitWidth + 3*g.SepWidth + 4*g.GroupSepWidth
	if g.TotalWidth > width {
		return Geometry{}, fmt.Errorf("%w: block needs %d columns, have %d", ErrTerminalTooSmall, g.TotalWidth, width)
	}

	g.BlockX = CenterX(width, g.TotalWidth)
	g.TimeX = g.BlockX + g.GroupSepWidth
	g.TimeY = (height - h) / 2
	return g, nil
}
