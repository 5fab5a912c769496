package tui

import "time"

const (
	// tickInterval is the redraw cadence; ticks land on whole wall-clock seconds.
	tickInterval = time.Second

	quitHelpKey  = "Press any key"
	quitHelpDesc = "to quit"
)
