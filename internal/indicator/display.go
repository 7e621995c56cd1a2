// internal/indicator/display.go
package indicator

import (
	"go.uber.org/zap"

	"github.com/tamzrod/statuslight/internal/grbl"
)

// Bus is the pixel capability: set all pixels, then commit.
type Bus interface {
	Fill(color uint32)
	Show() error
}

// StatusSink receives every status that reached the LEDs.
// Unknown with the fallback color marks a stale display.
type StatusSink interface {
	Publish(s grbl.Status, color uint32, booted bool)
}

// Display is the only writer of the LED bus.
type Display struct {
	bus     Bus
	palette Palette
	sink    StatusSink
	log     *zap.Logger

	writes int
}

func NewDisplay(bus Bus, palette Palette, sink StatusSink, log *zap.Logger) *Display {
	if log == nil {
		log = zap.NewNop()
	}
	return &Display{bus: bus, palette: palette, sink: sink, log: log}
}

// Show renders s if it has a color and differs from what is on the LEDs.
// It reports whether a bus write happened and succeeded.
func (d *Display) Show(st *State, s grbl.Status) bool {
	color, ok := d.palette.Lookup(s)
	if !ok {
		return false
	}
	if s == st.LastShown {
		return false
	}
	return d.render(st, s, color)
}

// Force renders s even when it is already showing.
func (d *Display) Force(st *State, s grbl.Status) bool {
	color, ok := d.palette.Lookup(s)
	if !ok {
		return false
	}
	return d.render(st, s, color)
}

func (d *Display) render(st *State, s grbl.Status, color uint32) bool {
	if !d.paint(color) {
		return false
	}
	st.LastShown = s
	st.Stale = false

	d.log.Debug("display", zap.Stringer("status", s), zap.Uint32("color", color))
	if d.sink != nil {
		d.sink.Publish(s, color, st.Booted)
	}
	return true
}

// paint commits a raw color without touching status bookkeeping.
func (d *Display) paint(color uint32) bool {
	d.bus.Fill(color)
	if err := d.bus.Show(); err != nil {
		d.log.Warn("led commit failed", zap.Error(err))
		return false
	}
	d.writes++
	return true
}

// Writes returns the number of committed bus frames.
func (d *Display) Writes() int { return d.writes }
