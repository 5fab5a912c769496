package segment

import "strings"

// ColonBands returns the two half-open row ranges [topStart, topEnd) and
// [botStart, botEnd) filled by a colon of the given height.
func ColonBands(height int) (topStart, topEnd, botStart, botEnd int) {
	return height / 5, 2 * height / 5, ceilDiv(3*height, 5), ceilDiv(4*height, 5)
}

// RenderColon returns the height rows of a colon glyph, each exactly width
// runes.
func RenderColon(width, height int, g Glyphs) []string {
	rows := make([]string, 0, height)
	_ = eachColonRow(width, height, g, func(_ int, row string) error {
		rows = append(rows, row)
		return nil
	})
	return rows
}

// DrawColon writes a colon glyph with its top-left corner at (x, y).
func DrawColon(w Writer, x, y, width, height int, g Glyphs) error {
	return eachColonRow(width, height, g, func(line int, row string) error {
		return w.WriteAt(x, y+line, row)
	})
}

func eachColonRow(width, height int, g Glyphs, emit func(line int, row string) error) error {
	fg := g.Fg
	if fg == 0 {
		fg = FullBlock
	}
	width = max(width, 0)
	dot := strings.Repeat(string(fg), width)
	blank := strings.Repeat(string(g.Bg), width)

	topStart, topEnd, botStart, botEnd := ColonBands(height)
	for line := 0; line < height; line++ {
		row := blank
		if (line >= topStart && line < topEnd) || (line >= botStart && line < botEnd) {
			row = dot
		}
		if err := emit(line, row); err != nil {
			return err
		}
	}
	return nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
