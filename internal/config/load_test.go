// internal/config/load_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse_EmptyIsStock(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse err=%v", err)
	}

	s := cfg.StatusLight
	if s.Serial.BaudRate != 115200 || s.Timing.RequestTimeoutMs != 5000 || s.Timing.BlinkIntervalMs != 250 {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if s.LineBuffer != 40 || s.LEDs.Count != 1 || *s.LEDs.Brightness != 31 {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if s.LEDs.Driver != DriverLog {
		t.Fatalf("expected log driver without address, got %q", s.LEDs.Driver)
	}
	if s.Mirror != nil {
		t.Fatalf("mirror must stay opt-in")
	}
}

func TestLoad_File(t *testing.T) {
	doc := `
statuslight:
  serial:
    address: /dev/ttyAMA0
  leds:
    address: /dev/ttyACM0
    count: 8
    brightness: 0
  timing:
    stale_timeout_ms: 8000
  mirror:
    endpoint: 10.0.0.5:502
    unit_id: 3
    address: 100
  log:
    level: debug
`
	path := filepath.Join(t.TempDir(), "statuslight.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate err=%v", err)
	}

	s := cfg.StatusLight
	if s.Serial.Address != "/dev/ttyAMA0" || s.Serial.BaudRate != DefaultBaudRate {
		t.Fatalf("serial: %+v", s.Serial)
	}
	if s.LEDs.Driver != DriverAdalight || s.LEDs.Count != 8 || *s.LEDs.Brightness != 0 {
		t.Fatalf("leds: %+v", s.LEDs)
	}
	if s.Timing.StaleTimeoutMs != 8000 {
		t.Fatalf("timing: %+v", s.Timing)
	}
	if s.Mirror == nil || s.Mirror.UnitID != 3 || s.Mirror.Address != 100 || s.Mirror.TimeoutMs != DefaultMirrorTimeoutMs {
		t.Fatalf("mirror: %+v", s.Mirror)
	}
}

func TestParse_UnknownField(t *testing.T) {
	if _, err := Parse([]byte("statuslight:\n  bogus: 1\n")); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}
