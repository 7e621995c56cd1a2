// internal/clock/clock.go
package clock

import "time"

// Millis is a wrapping 32-bit millisecond timestamp.
// Compare timestamps only through Since; intervals must stay well below 2^31 ms.
type Millis uint32

// Since returns the elapsed milliseconds from then to now, wraparound-safe.
func Since(now, then Millis) uint32 {
	return uint32(now - then)
}

// Elapsed reports whether at least interval ms separate then and now.
func Elapsed(now, then Millis, interval uint32) bool {
	return Since(now, then) >= interval
}

// Clock is a monotonic millisecond source.
type Clock interface {
	Now() Millis
}

// Monotonic reads the process monotonic clock, truncated to 32 bits.
type Monotonic struct {
	start time.Time
}

func NewMonotonic() *Monotonic {
	return &Monotonic{start: time.Now()}
}

func (m *Monotonic) Now() Millis {
	return Millis(uint32(time.Since(m.start).Milliseconds()))
}

// Manual is a hand-driven clock for tests and replays.
type Manual struct {
	now Millis
}

func NewManual(start Millis) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() Millis { return m.now }

func (m *Manual) Set(t Millis) { m.now = t }

func (m *Manual) Advance(ms uint32) Millis {
	m.now += Millis(ms)
	return m.now
}
