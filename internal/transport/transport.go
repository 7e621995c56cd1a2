// internal/transport/transport.go
package transport

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Transport is the controller link as the indicator sees it:
// a non-blocking byte source plus a blocking write.
type Transport interface {
	Available() bool
	NextByte() byte
	Write(p []byte) error
}

var _ Transport = (*Stream)(nil)

// readBackoff is how long the reader waits after a hard read error.
const readBackoff = 100 * time.Millisecond

// Stream adapts a blocking io.ReadWriteCloser into a Transport.
// One goroutine reads into a bounded queue; Available/NextByte never block.
type Stream struct {
	rw  io.ReadWriteCloser
	in  chan byte
	log *zap.Logger

	isTimeout func(error) bool

	cancel context.CancelFunc
	done   chan struct{}

	mu      sync.Mutex
	dropped uint64
}

// NewStream starts the reader goroutine. queue bounds buffered input bytes;
// bytes arriving while the queue is full are dropped and counted.
// isTimeout (optional) marks read errors that are just "no data yet".
func NewStream(rw io.ReadWriteCloser, queue int, isTimeout func(error) bool, log *zap.Logger) *Stream {
	if queue <= 0 {
		queue = 4096
	}
	if log == nil {
		log = zap.NewNop()
	}
	if isTimeout == nil {
		isTimeout = func(error) bool { return false }
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Stream{
		rw:        rw,
		in:        make(chan byte, queue),
		log:       log,
		isTimeout: isTimeout,
		cancel:    cancel,
		done:      make(chan struct{}),
	}
	go s.readLoop(ctx)
	return s
}

func (s *Stream) readLoop(ctx context.Context) {
	defer close(s.done)

	buf := make([]byte, 256)
	for {
		if ctx.Err() != nil {
			return
		}

		n, err := s.rw.Read(buf)
		for i := 0; i < n; i++ {
			select {
			case s.in <- buf[i]:
			default:
				s.mu.Lock()
				s.dropped++
				s.mu.Unlock()
			}
		}

		if err == nil || s.isTimeout(err) {
			continue
		}
		if ctx.Err() != nil {
			return
		}
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe) {
			s.log.Warn("controller link closed", zap.Error(err))
			return
		}

		s.log.Warn("controller read failed", zap.Error(err))
		select {
		case <-ctx.Done():
			return
		case <-time.After(readBackoff):
		}
	}
}

func (s *Stream) Available() bool {
	return len(s.in) > 0
}

// NextByte returns the next queued byte. Call only after Available.
func (s *Stream) NextByte() byte {
	select {
	case b := <-s.in:
		return b
	default:
		return 0
	}
}

func (s *Stream) Write(p []byte) error {
	for len(p) > 0 {
		n, err := s.rw.Write(p)
		if err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}

// Dropped returns how many input bytes were lost to a full queue.
func (s *Stream) Dropped() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

// Close stops the reader and closes the underlying link.
func (s *Stream) Close() error {
	s.cancel()
	err := s.rw.Close()
	<-s.done
	return err
}
