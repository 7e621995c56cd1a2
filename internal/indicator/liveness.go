// internal/indicator/liveness.go
package indicator

import (
	"go.uber.org/zap"

	"github.com/tamzrod/statuslight/internal/clock"
)

// PollToken asks the controller for an immediate status report.
var PollToken = []byte("?\n")

// Writer is the transmit half of the controller link.
type Writer interface {
	Write(p []byte) error
}

// Liveness re-polls the controller while it stays silent.
// It fires at most once per Timeout and keeps firing for as long as
// no status arrives. It runs regardless of the boot latch.
type Liveness struct {
	Timeout uint32

	tx  Writer
	log *zap.Logger

	sent int
}

func NewLiveness(timeout uint32, tx Writer, log *zap.Logger) *Liveness {
	if log == nil {
		log = zap.NewNop()
	}
	return &Liveness{Timeout: timeout, tx: tx, log: log}
}

// Check sends the poll token when both the last status and the last
// request are at least Timeout old. It reports whether a token went out.
func (l *Liveness) Check(st *State, now clock.Millis) bool {
	if !clock.Elapsed(now, st.LastKnownStatusMs, l.Timeout) ||
		!clock.Elapsed(now, st.LastRequestMs, l.Timeout) {
		return false
	}

	// Reset even on failure so a broken link is not hammered every tick.
	st.LastRequestMs = now
	l.sent++

	if err := l.tx.Write(PollToken); err != nil {
		l.log.Warn("poll token write failed", zap.Error(err))
		return false
	}
	l.log.Debug("poll token sent", zap.Uint32("silent_ms", clock.Since(now, st.LastKnownStatusMs)))
	return true
}

// Sent returns how many poll attempts were made.
func (l *Liveness) Sent() int { return l.sent }
