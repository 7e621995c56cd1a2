// internal/config/normalize.go
package config

import "strings"

// MaxLineBuffer caps the line buffer; status reports are far shorter.
const MaxLineBuffer = 255

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}
	s := &cfg.StatusLight

	s.LEDs.Driver = strings.ToLower(s.LEDs.Driver)
	s.Log.Level = strings.ToLower(s.Log.Level)

	if s.LineBuffer > MaxLineBuffer {
		s.LineBuffer = MaxLineBuffer
	}
}
