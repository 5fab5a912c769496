package clock

import (
	"errors"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/cliclock/cliclock/internal/layout"
	"github.com/cliclock/cliclock/internal/segment"
)

// Surface is what a frame is drawn on.
type Surface interface {
	Clear() error
	WriteAt(x, y int, s string) error
	WriteBoldAt(x, y int, s string) error
}

// DrawFrame clears s and draws the clock for now on a width x height
// terminal. When the terminal is too small for the smallest digits a notice
// is drawn instead.
func DrawFrame(s Surface, now time.Time, width, height int, opts Options) error {
	opts = opts.withDefaults()
	if err := s.Clear(); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return nil
	}

	if opts.Layout.Footer() && opts.Hint != "" {
		if err := s.WriteAt(0, height-1, runewidth.Truncate(opts.Hint, width, "")); err != nil {
			return err
		}
	}

	g, err := opts.Layout.Compute(width, height)
	if errors.Is(err, layout.ErrTerminalTooSmall) {
		return drawTooSmall(s, width, height)
	}
	if err != nil {
		return err
	}

	digits := timeDigits(now, opts.TwelveHour)
	pos := g.Positions()
	for i, d := range digits {
		if err := segment.DrawDigit(s, pos.Digits[i], g.TimeY, d, g.DigitWidth, g.DigitHeight, opts.Glyphs); err != nil {
			return err
		}
	}
	if g.HasColons() {
		for _, x := range pos.Colons {
			if err := segment.DrawColon(s, x, g.TimeY, g.ColonWidth, g.DigitHeight, opts.Glyphs); err != nil {
				return err
			}
		}
	}

	date := now.Format(DateLayout)
	x, y := g.DateOrigin(width, date)
	return s.WriteBoldAt(x, y, runewidth.Truncate(date, width-x, ""))
}

func drawTooSmall(s Surface, width, height int) error {
	msg := runewidth.Truncate(tooSmallNotice, width, "")
	return s.WriteAt(layout.CenterX(width, runewidth.StringWidth(msg)), (height-1)/2, msg)
}

// timeDigits returns HHMMSS as six digits. In 12-hour mode midnight and noon
// read 12.
func timeDigits(t time.Time, twelveHour bool) [6]int {
	hour := t.Hour()
	if twelveHour {
		hour %= 12
		if hour == 0 {
			hour = 12
		}
	}
	minute, second := t.Minute(), t.Second()
	return [6]int{hour / 10, hour % 10, minute / 10, minute % 10, second / 10, second % 10}
}
