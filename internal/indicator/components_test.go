// internal/indicator/components_test.go
package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tamzrod/statuslight/internal/clock"
	"github.com/tamzrod/statuslight/internal/grbl"
)

func TestLiveness_RequiresBothTimersExpired(t *testing.T) {
	link := &fakeLink{}
	l := NewLiveness(5000, link, nil)

	st := NewState(0)
	st.LastRequestMs = 3000 // a recent poll, old status

	assert.False(t, l.Check(&st, 7999))
	assert.True(t, l.Check(&st, 8000))
	assert.Equal(t, clock.Millis(8000), st.LastRequestMs)
	assert.Len(t, link.out, 1)
}

func TestLiveness_NeverBursts(t *testing.T) {
	link := &fakeLink{}
	l := NewLiveness(100, link, nil)
	st := NewState(0)

	for now := clock.Millis(0); now <= 1000; now++ {
		l.Check(&st, now)
	}

	assert.Len(t, link.out, 10)
}

func TestBootLatch_NeverReturnsToPending(t *testing.T) {
	bus := &fakeBus{}
	d := NewDisplay(bus, DefaultPalette(), nil, nil)
	b := NewBootLatch(250, d, DefaultPalette(), nil)

	st := NewState(0)
	b.Start(&st, 0)
	b.Accept(&st, grbl.Booted, 10)

	for _, s := range []grbl.Status{grbl.Alarm, grbl.Unknown, grbl.Booted, grbl.Idle} {
		b.Accept(&st, s, 20)
		assert.True(t, st.Booted)
	}
	assert.False(t, b.Blink(&st, 10000))
}

func TestDisplay_UnknownLeavesBus(t *testing.T) {
	bus := &fakeBus{}
	d := NewDisplay(bus, DefaultPalette(), nil, nil)
	st := NewState(0)

	assert.False(t, d.Show(&st, grbl.Unknown))
	assert.False(t, d.Force(&st, grbl.Unknown))
	assert.Empty(t, bus.shown)
}

func TestDisplay_ForceRepaints(t *testing.T) {
	bus := &fakeBus{}
	d := NewDisplay(bus, DefaultPalette(), nil, nil)
	st := NewState(0)

	assert.True(t, d.Show(&st, grbl.Hold))
	assert.False(t, d.Show(&st, grbl.Hold))
	assert.True(t, d.Force(&st, grbl.Hold))
	assert.Equal(t, 2, d.Writes())
}
