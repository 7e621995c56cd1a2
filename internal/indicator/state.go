// internal/indicator/state.go
package indicator

import (
	"github.com/tamzrod/statuslight/internal/clock"
	"github.com/tamzrod/statuslight/internal/grbl"
)

// State is everything the indicator remembers between ticks.
// It is owned by the loop and passed explicitly to each component.
type State struct {
	// Booted is the boot latch. Set once, never cleared.
	Booted bool

	LastKnownStatusMs clock.Millis
	LastRequestMs     clock.Millis
	LastBlinkToggleMs clock.Millis

	LastShown  grbl.Status
	BlinkPhase bool

	// Stale is true while the fallback color is on the LEDs.
	Stale bool
}

// NewState returns the startup state with every timer anchored at now.
func NewState(now clock.Millis) State {
	return State{
		LastKnownStatusMs: now,
		LastRequestMs:     now,
		LastBlinkToggleMs: now,
		LastShown:         grbl.Unknown,
	}
}
