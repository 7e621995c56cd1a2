// internal/config/config.go
package config

type Config struct {
	StatusLight StatusLightConfig `yaml:"statuslight"`
}

type StatusLightConfig struct {
	Serial     SerialConfig  `yaml:"serial"`
	LEDs       LEDConfig     `yaml:"leds"`
	Timing     TimingConfig  `yaml:"timing"`
	LineBuffer int           `yaml:"line_buffer"`
	Mirror     *MirrorConfig `yaml:"mirror"` // optional, opt-in
	Log        LogConfig     `yaml:"log"`
}

// ---- CONTROLLER LINK ----

type SerialConfig struct {
	Address       string `yaml:"address"`
	BaudRate      int    `yaml:"baud_rate"`
	ReadTimeoutMs int    `yaml:"read_timeout_ms"`
}

// ---- LED BUS ----

const (
	DriverAdalight = "adalight"
	DriverLog      = "log"
)

type LEDConfig struct {
	Driver     string `yaml:"driver"`
	Address    string `yaml:"address"`
	BaudRate   int    `yaml:"baud_rate"`
	Count      int    `yaml:"count"`
	Brightness *int   `yaml:"brightness"` // nil => default; 0 is a valid setting
}

// ---- TIMING ----

type TimingConfig struct {
	TickMs           int `yaml:"tick_ms"`
	BlinkIntervalMs  int `yaml:"blink_interval_ms"`
	RequestTimeoutMs int `yaml:"request_timeout_ms"`
	StaleTimeoutMs   int `yaml:"stale_timeout_ms"` // 0 => fallback disabled
}

// ---- STATUS MIRROR (MODBUS TCP) ----

type MirrorConfig struct {
	Endpoint  string `yaml:"endpoint"`
	UnitID    uint8  `yaml:"unit_id"`
	Address   uint16 `yaml:"address"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ---- LOGGING ----

type LogConfig struct {
	Level      string `yaml:"level"`
	JSON       bool   `yaml:"json"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}
