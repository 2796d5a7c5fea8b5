// Package relay implements the device-side command protocol handler:
// parsing command lines from the host bridge, maintaining engine state
// and running the liveness protocol.
package relay

import (
	"time"
)

// Link is a line-oriented channel the session talks over.
type Link interface {
	// Poll returns the next received line without blocking.
	Poll() (string, bool)
	// WriteLine sends one newline-terminated line.
	WriteLine(line string) error
	// Drain discards received-but-unprocessed lines.
	Drain() int
}

// Indicator gives a brief visible liveness indication.
type Indicator interface {
	// Pulse lights the indicator for the duration. Pulse must not
	// block; the visible pulse is scheduled, not waited for.
	Pulse(time.Duration)
}

// IndicatorFunc is the func form of Indicator.
type IndicatorFunc func(time.Duration)

// Pulse implements Indicator.
func (f IndicatorFunc) Pulse(d time.Duration) {
	f(d)
}
