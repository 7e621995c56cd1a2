// internal/indicator/boot.go
package indicator

import (
	"go.uber.org/zap"

	"github.com/tamzrod/statuslight/internal/clock"
	"github.com/tamzrod/statuslight/internal/grbl"
)

// BootLatch gates the indicator between "waiting for controller" (blinking)
// and "operational" (status colors). Pending -> Active happens once.
type BootLatch struct {
	BlinkInterval uint32

	display *Display
	palette Palette
	log     *zap.Logger
}

func NewBootLatch(blinkInterval uint32, display *Display, palette Palette, log *zap.Logger) *BootLatch {
	if log == nil {
		log = zap.NewNop()
	}
	return &BootLatch{
		BlinkInterval: blinkInterval,
		display:       display,
		palette:       palette,
		log:           log,
	}
}

// Start paints the first blink color. Call once before the first tick.
func (b *BootLatch) Start(st *State, now clock.Millis) {
	st.BlinkPhase = false
	st.LastBlinkToggleMs = now
	b.display.paint(b.palette.blink(st.BlinkPhase))
}

// Accept applies one classification.
//
// Pending: only Booted matters; it opens the latch, anchors both liveness
// timers at now and renders the boot color.
// Active: every known status refreshes the last-status timer and goes to
// the display. A repeated Booted is an ordinary status here.
func (b *BootLatch) Accept(st *State, s grbl.Status, now clock.Millis) {
	if s == grbl.Unknown {
		return
	}

	if !st.Booted {
		if s != grbl.Booted {
			return
		}
		st.Booted = true
		st.LastKnownStatusMs = now
		st.LastRequestMs = now
		b.display.Force(st, grbl.Booted)
		b.log.Info("controller booted")
		return
	}

	st.LastKnownStatusMs = now
	b.display.Show(st, s)
}

// Blink toggles the alert color every BlinkInterval while Pending.
// It reports whether a toggle happened.
func (b *BootLatch) Blink(st *State, now clock.Millis) bool {
	if st.Booted {
		return false
	}
	if !clock.Elapsed(now, st.LastBlinkToggleMs, b.BlinkInterval) {
		return false
	}

	st.BlinkPhase = !st.BlinkPhase
	st.LastBlinkToggleMs = now
	b.display.paint(b.palette.blink(st.BlinkPhase))
	return true
}
