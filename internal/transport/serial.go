// internal/transport/serial.go
package transport

import (
	"errors"
	"fmt"
	"time"

	"github.com/goburrow/serial"
	"go.uber.org/zap"
)

// SerialConfig describes the controller UART.
type SerialConfig struct {
	Address     string
	BaudRate    int
	ReadTimeout time.Duration
}

// OpenSerial opens the controller link as 8N1 and wraps it in a Stream.
func OpenSerial(cfg SerialConfig, log *zap.Logger) (*Stream, error) {
	if cfg.Address == "" {
		return nil, errors.New("transport serial: address required")
	}
	if cfg.BaudRate <= 0 {
		return nil, errors.New("transport serial: baud rate must be > 0")
	}

	port, err := serial.Open(&serial.Config{
		Address:  cfg.Address,
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  cfg.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("transport serial: open %s: %w", cfg.Address, err)
	}

	return NewStream(port, 0, isSerialTimeout, log), nil
}

func isSerialTimeout(err error) bool {
	return errors.Is(err, serial.ErrTimeout)
}
