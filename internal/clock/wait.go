package clock

import (
	"context"
	"time"
)

// Reason tells why Wait returned.
type Reason int

const (
	Timeout Reason = iota
	Resize
	KeyPress
)

func (r Reason) String() string {
	switch r {
	case Timeout:
		return "timeout"
	case Resize:
		return "resize"
	case KeyPress:
		return "key_press"
	default:
		return "unknown"
	}
}

// Clock is the time source of the loop. Tests inject a fake one.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is done.
	Sleep(ctx context.Context, d time.Duration) error
}

type systemClock struct{}

// SystemClock returns a Clock backed by the time package.
func SystemClock() Clock { return systemClock{} }

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Input is the part of the terminal Wait polls.
type Input interface {
	Size() (width, height int, err error)
	// KeyPressed blocks up to timeout for a key and reports whether one
	// arrived.
	KeyPressed(timeout time.Duration) (bool, error)
}

// Wait blocks until timeout elapses, the terminal is resized, or a key is
// pressed, checking every interval. The final stretch shorter than interval
// is slept through without polling.
func Wait(ctx context.Context, in Input, c Clock, timeout, interval time.Duration) (Reason, error) {
	start := c.Now()
	width, height, err := in.Size()
	if err != nil {
		return Timeout, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return Timeout, err
		}

		remaining := timeout - c.Now().Sub(start)
		if remaining < interval {
			if err := c.Sleep(ctx, remaining); err != nil {
				return Timeout, err
			}
			return Timeout, nil
		}

		w, h, err := in.Size()
		if err != nil {
			return Timeout, err
		}
		if w != width || h != height {
			return Resize, nil
		}

		pressed, err := in.KeyPressed(interval)
		if err != nil {
			return Timeout, err
		}
		if pressed {
			return KeyPress, nil
		}
	}
}
