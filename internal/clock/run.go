package clock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Terminal is the terminal collaborator Run draws on and waits for.
type Terminal interface {
	Surface
	Input
	Flush() error
}

// Run redraws the clock on every whole second, and immediately after a
// resize, until a key is pressed or ctx is done. Both are a normal quit and
// return nil; terminal failures are returned as-is.
func Run(ctx context.Context, t Terminal, opts Options) error {
	opts = opts.withDefaults()
	logrus.Debugf("clock loop starting: layout=%s twelve_hour=%t", opts.Layout.Name(), opts.TwelveHour)

	for {
		now := opts.Clock.Now()
		width, height, err := t.Size()
		if err != nil {
			return fmt.Errorf("query terminal size: %w", err)
		}
		if err := DrawFrame(t, now, width, height, opts); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}
		if err := t.Flush(); err != nil {
			return fmt.Errorf("flush terminal: %w", err)
		}

		reason, err := Wait(ctx, t, opts.Clock, untilNextSecond(now), opts.PollInterval)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			logrus.Debug("clock loop interrupted")
			return nil
		}
		if err != nil {
			return fmt.Errorf("wait for input: %w", err)
		}
		if reason == KeyPress {
			logrus.Debug("key pressed; leaving clock loop")
			return nil
		}
	}
}

func untilNextSecond(now time.Time) time.Duration {
	return now.Truncate(time.Second).Add(time.Second).Sub(now)
}
