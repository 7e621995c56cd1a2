// internal/transport/transport_test.go
package transport

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pipeLink joins a reader side fed by the test and a recorded write side.
type pipeLink struct {
	r       *io.PipeReader
	w       *io.PipeWriter
	written []byte
}

func newPipeLink() *pipeLink {
	r, w := io.Pipe()
	return &pipeLink{r: r, w: w}
}

func (p *pipeLink) Read(b []byte) (int, error) { return p.r.Read(b) }

func (p *pipeLink) Write(b []byte) (int, error) {
	p.written = append(p.written, b...)
	return len(b), nil
}

func (p *pipeLink) Close() error {
	_ = p.w.Close()
	return p.r.Close()
}

func TestStream_ReadsQueuedBytes(t *testing.T) {
	link := newPipeLink()
	s := NewStream(link, 16, nil, nil)
	defer s.Close()

	assert.False(t, s.Available())

	go func() { _, _ = link.w.Write([]byte("<Idle>\n")) }()

	require.Eventually(t, func() bool { return len(s.in) == 7 }, time.Second, 5*time.Millisecond)

	var got []byte
	for s.Available() {
		got = append(got, s.NextByte())
	}
	assert.Equal(t, "<Idle>\n", string(got))
}

func TestStream_DropsWhenQueueFull(t *testing.T) {
	link := newPipeLink()
	s := NewStream(link, 4, nil, nil)
	defer s.Close()

	go func() { _, _ = link.w.Write([]byte("0123456789")) }()

	require.Eventually(t, func() bool { return s.Dropped() == 6 }, time.Second, 5*time.Millisecond)
	assert.Len(t, s.in, 4)
}

func TestStream_Write(t *testing.T) {
	link := newPipeLink()
	s := NewStream(link, 16, nil, nil)
	defer s.Close()

	require.NoError(t, s.Write([]byte("?\n")))
	assert.Equal(t, []byte("?\n"), link.written)
}

func TestStream_NextByteEmpty(t *testing.T) {
	link := newPipeLink()
	s := NewStream(link, 16, nil, nil)
	defer s.Close()

	assert.Equal(t, byte(0), s.NextByte())
}
