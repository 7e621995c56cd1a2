// internal/grbl/line_test.go
package grbl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fake byte source ----

type fakeSource struct {
	data []byte
}

func (f *fakeSource) push(s string) { f.data = append(f.data, s...) }

func (f *fakeSource) Available() bool { return len(f.data) > 0 }

func (f *fakeSource) NextByte() byte {
	b := f.data[0]
	f.data = f.data[1:]
	return b
}

// ---- tests ----

func TestDrain_NoCompleteLine(t *testing.T) {
	a := NewLineAssembler(40, nil)
	src := &fakeSource{}
	src.push("<Idle,MPos")

	assert.Equal(t, Unknown, a.Drain(src, nil))
	assert.Equal(t, len("<Idle,MPos"), a.Pending())

	src.push(":0,0,0>\n")
	assert.Equal(t, Idle, a.Drain(src, nil))
	assert.Equal(t, 0, a.Pending())
}

func TestDrain_CRLFAndBareLF(t *testing.T) {
	a := NewLineAssembler(40, nil)

	src := &fakeSource{}
	src.push("<Run|MPos:0,0,0>\r\n")
	assert.Equal(t, Run, a.Drain(src, nil))

	src.push("<Hold:0>\n")
	assert.Equal(t, Hold, a.Drain(src, nil))
}

func TestDrain_EmptyLineIsUnknown(t *testing.T) {
	a := NewLineAssembler(40, nil)
	src := &fakeSource{}
	src.push("\r\n")

	var seen []Line
	got := a.Drain(src, func(l Line) { seen = append(seen, l) })

	assert.Equal(t, Unknown, got)
	require.Len(t, seen, 1)
	assert.Equal(t, "", seen[0].Text)
}

func TestDrain_MultipleLinesInOrder(t *testing.T) {
	a := NewLineAssembler(40, nil)
	src := &fakeSource{}
	src.push("[MSG:INFO: Connected to system]\n<Idle>\nok\n<Alarm>\n")

	var order []Status
	got := a.Drain(src, func(l Line) { order = append(order, l.Status) })

	assert.Equal(t, Alarm, got)
	assert.Equal(t, []Status{Booted, Idle, Unknown, Alarm}, order)
	assert.False(t, src.Available())
}

func TestDrain_LastLineUnknownWins(t *testing.T) {
	a := NewLineAssembler(40, nil)
	src := &fakeSource{}
	src.push("<Idle>\nok\n")

	assert.Equal(t, Unknown, a.Drain(src, nil))
}

func TestDrain_OverflowDoesNotCorruptNextLine(t *testing.T) {
	a := NewLineAssembler(25, nil)
	src := &fakeSource{}

	src.push(strings.Repeat("x", 200))
	assert.Equal(t, Unknown, a.Drain(src, nil))
	assert.Equal(t, 24, a.Pending())

	var first Line
	src.push("\n")
	a.Drain(src, func(l Line) { first = l })
	assert.True(t, first.Truncated)
	assert.Len(t, first.Text, 24)

	src.push("<Idle,MPos:0,0,0>\n")
	var second Line
	assert.Equal(t, Idle, a.Drain(src, func(l Line) { second = l }))
	assert.False(t, second.Truncated)
}

func TestDrain_OverflowKeepsPrefix(t *testing.T) {
	a := NewLineAssembler(25, nil)
	src := &fakeSource{}
	src.push("<Alarm|" + strings.Repeat("9", 200) + "\n")

	assert.Equal(t, Alarm, a.Drain(src, nil))
}

func TestNewLineAssembler_DefaultCapacity(t *testing.T) {
	a := NewLineAssembler(0, nil)
	src := &fakeSource{}
	src.push(strings.Repeat("y", 100))

	a.Drain(src, nil)
	assert.Equal(t, DefaultLineCapacity-1, a.Pending())
}
