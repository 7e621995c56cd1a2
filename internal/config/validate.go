// internal/config/validate.go
package config

import (
	"errors"
	"fmt"
	"strings"
)

// MaxIntervalMs keeps every interval far below half the 32-bit
// millisecond clock range so wraparound comparisons stay correct.
const MaxIntervalMs = 1 << 30

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil")
	}
	s := cfg.StatusLight

	// ------------------------------------------------------------
	// CONTROLLER LINK
	// ------------------------------------------------------------

	if s.Serial.Address == "" {
		return errors.New("serial.address required")
	}
	if s.Serial.BaudRate <= 0 {
		return fmt.Errorf("serial.baud_rate must be > 0, got %d", s.Serial.BaudRate)
	}
	if s.Serial.ReadTimeoutMs < 0 {
		return fmt.Errorf("serial.read_timeout_ms must be >= 0, got %d", s.Serial.ReadTimeoutMs)
	}

	// ------------------------------------------------------------
	// LED BUS
	// ------------------------------------------------------------

	switch strings.ToLower(s.LEDs.Driver) {
	case DriverAdalight:
		if s.LEDs.Address == "" {
			return errors.New("leds.address required for adalight driver")
		}
		if s.LEDs.BaudRate <= 0 {
			return fmt.Errorf("leds.baud_rate must be > 0, got %d", s.LEDs.BaudRate)
		}
	case DriverLog:
	default:
		return fmt.Errorf("leds.driver %q unknown (want %q or %q)", s.LEDs.Driver, DriverAdalight, DriverLog)
	}

	if s.LEDs.Count < 1 || s.LEDs.Count > 65536 {
		return fmt.Errorf("leds.count must be 1..65536, got %d", s.LEDs.Count)
	}
	if s.LEDs.Brightness != nil && (*s.LEDs.Brightness < 0 || *s.LEDs.Brightness > 255) {
		return fmt.Errorf("leds.brightness must be 0..255, got %d", *s.LEDs.Brightness)
	}

	// ------------------------------------------------------------
	// TIMING
	// ------------------------------------------------------------

	intervals := []struct {
		name  string
		value int
	}{
		{"timing.tick_ms", s.Timing.TickMs},
		{"timing.blink_interval_ms", s.Timing.BlinkIntervalMs},
		{"timing.request_timeout_ms", s.Timing.RequestTimeoutMs},
	}
	for _, iv := range intervals {
		if iv.value <= 0 || iv.value >= MaxIntervalMs {
			return fmt.Errorf("%s must be 1..%d, got %d", iv.name, MaxIntervalMs-1, iv.value)
		}
	}
	if s.Timing.StaleTimeoutMs < 0 || s.Timing.StaleTimeoutMs >= MaxIntervalMs {
		return fmt.Errorf("timing.stale_timeout_ms must be 0..%d, got %d", MaxIntervalMs-1, s.Timing.StaleTimeoutMs)
	}
	if s.Timing.TickMs >= s.Timing.BlinkIntervalMs {
		return fmt.Errorf(
			"timing.tick_ms (%d) must be shorter than timing.blink_interval_ms (%d)",
			s.Timing.TickMs,
			s.Timing.BlinkIntervalMs,
		)
	}

	// ------------------------------------------------------------
	// LINE BUFFER
	// ------------------------------------------------------------

	if s.LineBuffer < 2 {
		return fmt.Errorf("line_buffer must be >= 2, got %d", s.LineBuffer)
	}

	// ------------------------------------------------------------
	// STATUS MIRROR (OPT-IN)
	// ------------------------------------------------------------

	if s.Mirror != nil {
		if s.Mirror.Endpoint == "" {
			return errors.New("mirror.endpoint required when mirror is set")
		}
		if s.Mirror.TimeoutMs <= 0 {
			return fmt.Errorf("mirror.timeout_ms must be > 0, got %d", s.Mirror.TimeoutMs)
		}
		if int(s.Mirror.Address)+MirrorRegisters > 65536 {
			return fmt.Errorf("mirror.address %d leaves no room for %d registers", s.Mirror.Address, MirrorRegisters)
		}
	}

	// ------------------------------------------------------------
	// LOGGING
	// ------------------------------------------------------------

	switch strings.ToLower(s.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q unknown", s.Log.Level)
	}

	return nil
}

// MirrorRegisters is the size of the mirrored status block.
const MirrorRegisters = 4
