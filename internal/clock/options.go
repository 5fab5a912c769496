// Package clock draws the big seven-segment clock and drives its
// render-and-wait loop.
package clock

import (
	"time"

	"github.com/cliclock/cliclock/internal/layout"
	"github.com/cliclock/cliclock/internal/segment"
)

// Package defaults.
const (
	DefaultPollInterval = 200 * time.Millisecond
	DefaultHint         = "Press any key to quit"

	// DateLayout renders e.g. "Tuesday, March 05, 2024".
	DateLayout = "Monday, January 02, 2006"

	tooSmallNotice = "Terminal too small"
)

// Options configures how frames are drawn and how the loop waits.
type Options struct {
	TwelveHour bool
	Glyphs     segment.Glyphs
	Layout     layout.Strategy
	// Hint is drawn on the bottom row by strategies that reserve a footer.
	Hint         string
	Clock        Clock
	PollInterval time.Duration
}

// DefaultOptions returns 24-hour, solid-block, bordered options.
func DefaultOptions() Options {
	return Options{
		Glyphs:       segment.DefaultGlyphs(),
		Layout:       layout.DefaultBordered(),
		Hint:         DefaultHint,
		Clock:        SystemClock(),
		PollInterval: DefaultPollInterval,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Layout == nil {
		o.Layout = d.Layout
	}
	if o.Glyphs.Bg == 0 {
		o.Glyphs.Bg = d.Glyphs.Bg
	}
	if o.Clock == nil {
		o.Clock = d.Clock
	}
	if o.PollInterval <= 0 {
		o.PollInterval = d.PollInterval
	}
	return o
}
