// internal/config/defaults.go
package config

// Stock values. An empty config file reproduces the reference firmware.
const (
	DefaultSerialAddress    = "/dev/ttyUSB0"
	DefaultBaudRate         = 115200
	DefaultReadTimeoutMs    = 50
	DefaultLEDCount         = 1
	DefaultBrightness       = 31
	DefaultTickMs           = 5
	DefaultBlinkIntervalMs  = 250
	DefaultRequestTimeoutMs = 5000
	DefaultLineBuffer       = 40
	DefaultMirrorTimeoutMs  = 1000
	DefaultLogLevel         = "info"
)

// ApplyDefaults fills zero values. It runs before Validate.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	s := &cfg.StatusLight

	if s.Serial.Address == "" {
		s.Serial.Address = DefaultSerialAddress
	}
	if s.Serial.BaudRate == 0 {
		s.Serial.BaudRate = DefaultBaudRate
	}
	if s.Serial.ReadTimeoutMs == 0 {
		s.Serial.ReadTimeoutMs = DefaultReadTimeoutMs
	}

	if s.LEDs.Driver == "" {
		if s.LEDs.Address != "" {
			s.LEDs.Driver = DriverAdalight
		} else {
			s.LEDs.Driver = DriverLog
		}
	}
	if s.LEDs.BaudRate == 0 {
		s.LEDs.BaudRate = DefaultBaudRate
	}
	if s.LEDs.Count == 0 {
		s.LEDs.Count = DefaultLEDCount
	}
	if s.LEDs.Brightness == nil {
		b := DefaultBrightness
		s.LEDs.Brightness = &b
	}

	if s.Timing.TickMs == 0 {
		s.Timing.TickMs = DefaultTickMs
	}
	if s.Timing.BlinkIntervalMs == 0 {
		s.Timing.BlinkIntervalMs = DefaultBlinkIntervalMs
	}
	if s.Timing.RequestTimeoutMs == 0 {
		s.Timing.RequestTimeoutMs = DefaultRequestTimeoutMs
	}

	if s.LineBuffer == 0 {
		s.LineBuffer = DefaultLineBuffer
	}

	if s.Mirror != nil && s.Mirror.TimeoutMs == 0 {
		s.Mirror.TimeoutMs = DefaultMirrorTimeoutMs
	}

	if s.Log.Level == "" {
		s.Log.Level = DefaultLogLevel
	}
}
