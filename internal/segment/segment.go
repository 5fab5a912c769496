// Package segment rasterizes seven-segment digits and colon separators into
// rows of foreground and background glyph characters.
//
// Segments are numbered as follows:
//
//	  0000
//	11    22
//	11    22
//	  3333
//	44    55
//	44    55
//	  6666
package segment

import (
	"fmt"
	"strings"
)

// FullBlock is the default foreground glyph.
const FullBlock = '█'

// Minimum glyph dimensions: two 2-cell vertical strokes need a width of 4 and
// the top, center and bottom bands need three rows.
const (
	MinWidth  = 4
	MinHeight = 3

	strokeWidth = 2
)

// Segment identifies one of the seven strokes of a digit.
type Segment uint8

const (
	Top Segment = iota
	UpperLeft
	UpperRight
	Middle
	LowerLeft
	LowerRight
	Bottom
)

// Set is a bit set of active segments.
type Set uint8

func setOf(segs ...Segment) Set {
	var s Set
	for _, seg := range segs {
		s |= 1 << seg
	}
	return s
}

// Has reports whether seg is active.
func (s Set) Has(seg Segment) bool { return s&(1<<seg) != 0 }

// Any reports whether at least one of segs is active.
func (s Set) Any(segs ...Segment) bool { return s&setOf(segs...) != 0 }

//nolint:gochecknoglobals // immutable lookup table indexed by digit.
var digitSegments = [10]Set{
	0: setOf(Top, UpperLeft, UpperRight, LowerLeft, LowerRight, Bottom),
	1: setOf(UpperRight, LowerRight),
	2: setOf(Top, UpperRight, Middle, LowerLeft, Bottom),
	3: setOf(Top, UpperRight, Middle, LowerRight, Bottom),
	4: setOf(UpperLeft, UpperRight, Middle, LowerRight),
	5: setOf(Top, UpperLeft, Middle, LowerRight, Bottom),
	6: setOf(Top, UpperLeft, Middle, LowerLeft, LowerRight, Bottom),
	7: setOf(Top, UpperRight, LowerRight),
	8: setOf(Top, UpperLeft, UpperRight, Middle, LowerLeft, LowerRight, Bottom),
	9: setOf(Top, UpperLeft, UpperRight, Middle, LowerRight),
}

// Segments returns the active segments of digit. It panics if digit is not
// in 0..9.
func Segments(digit int) Set {
	if digit < 0 || digit > 9 {
		panic(fmt.Sprintf("segment: invalid digit %d", digit))
	}
	return digitSegments[digit]
}

// Glyphs holds the characters a glyph is painted with. A zero Fg selects the
// degraded mode: digits are painted with their own decimal character.
type Glyphs struct {
	Fg rune
	Bg rune
}

// DefaultGlyphs returns a solid block on a blank background.
func DefaultGlyphs() Glyphs {
	return Glyphs{Fg: FullBlock, Bg: ' '}
}

// Writer is the surface glyph rows are written to.
type Writer interface {
	WriteAt(x, y int, s string) error
}

// RenderDigit returns the height rows of digit, each exactly width runes.
// It panics on an invalid digit or on dimensions below MinWidth x MinHeight.
func RenderDigit(digit, width, height int, g Glyphs) []string {
	rows := make([]string, 0, height)
	_ = eachDigitRow(digit, width, height, g, func(_ int, row string) error {
		rows = append(rows, row)
		return nil
	})
	return rows
}

// DrawDigit writes digit row by row with its top-left corner at (x, y).
func DrawDigit(w Writer, x, y, digit, width, height int, g Glyphs) error {
	return eachDigitRow(digit, width, height, g, func(line int, row string) error {
		return w.WriteAt(x, y+line, row)
	})
}

func eachDigitRow(digit, width, height int, g Glyphs, emit func(line int, row string) error) error {
	segs := Segments(digit)
	if width < MinWidth || height < MinHeight {
		panic(fmt.Sprintf("segment: glyph %dx%d below minimum %dx%d", width, height, MinWidth, MinHeight))
	}
	fg := g.Fg
	if fg == 0 {
		fg = rune('0' + digit)
	}

	center := (height - 1) / 2
	bottom := height - 1
	inner := width - 2*strokeWidth

	var b strings.Builder
	for line := 0; line < height; line++ {
		var left, mid, right bool
		switch {
		case line == 0:
			left = segs.Any(Top, UpperLeft)
			mid = segs.Has(Top)
			right = segs.Any(Top, UpperRight)
		case line < center:
			left = segs.Has(UpperLeft)
			right = segs.Has(UpperRight)
		case line == center:
			left = segs.Any(UpperLeft, Middle, LowerLeft)
			mid = segs.Has(Middle)
			right = segs.Any(UpperRight, Middle, LowerRight)
		case line < bottom:
			left = segs.Has(LowerLeft)
			right = segs.Has(LowerRight)
		default:
			left = segs.Any(LowerLeft, Bottom)
			mid = segs.Has(Bottom)
			right = segs.Any(LowerRight, Bottom)
		}

		b.Reset()
		paint(&b, left, strokeWidth, fg, g.Bg)
		paint(&b, mid, inner, fg, g.Bg)
		paint(&b, right, strokeWidth, fg, g.Bg)
		if err := emit(line, b.String()); err != nil {
			return err
		}
	}
	return nil
}

func paint(b *strings.Builder, on bool, n int, fg, bg rune) {
	r := bg
	if on {
		r = fg
	}
	for i := 0; i < n; i++ {
		b.WriteRune(r)
	}
}
