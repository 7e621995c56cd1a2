// internal/ledbus/adalight.go
package ledbus

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/goburrow/serial"
)

// Adalight drives a serial-attached pixel controller using Adalight framing:
//
//	'A' 'd' 'a' | hi lo | hi^lo^0x55 | R G B ...
//
// where hi/lo is (pixel count - 1), big-endian.
type Adalight struct {
	port io.ReadWriteCloser
	hdr  [6]byte
}

type AdalightConfig struct {
	Address  string
	BaudRate int
	Timeout  time.Duration
}

// OpenAdalight opens the controller port for count pixels.
func OpenAdalight(cfg AdalightConfig, count int) (*Adalight, error) {
	if cfg.Address == "" {
		return nil, errors.New("ledbus adalight: address required")
	}

	port, err := serial.Open(&serial.Config{
		Address:  cfg.Address,
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("ledbus adalight: open %s: %w", cfg.Address, err)
	}

	return NewAdalight(port, count), nil
}

// NewAdalight wraps an already open port.
func NewAdalight(port io.ReadWriteCloser, count int) *Adalight {
	a := &Adalight{port: port}
	n := uint16(count - 1)
	a.hdr = [6]byte{'A', 'd', 'a', byte(n >> 8), byte(n), 0}
	a.hdr[5] = a.hdr[3] ^ a.hdr[4] ^ 0x55
	return a
}

func (a *Adalight) WriteFrame(rgb []byte) error {
	pkt := make([]byte, 0, len(a.hdr)+len(rgb))
	pkt = append(pkt, a.hdr[:]...)
	pkt = append(pkt, rgb...)
	return writeAll(a.port, pkt)
}

func (a *Adalight) Close() error {
	if a == nil || a.port == nil {
		return nil
	}
	return a.port.Close()
}

func writeAll(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}
