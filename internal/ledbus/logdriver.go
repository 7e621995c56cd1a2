// internal/ledbus/logdriver.go
package ledbus

import (
	"fmt"

	"go.uber.org/zap"
)

// LogDriver renders frames into the log. Used when no pixel hardware is attached.
type LogDriver struct {
	log *zap.Logger
}

func NewLogDriver(log *zap.Logger) *LogDriver {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogDriver{log: log}
}

func (d *LogDriver) WriteFrame(rgb []byte) error {
	if len(rgb) < 3 {
		return nil
	}
	d.log.Info("leds",
		zap.String("rgb", fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])),
		zap.Int("pixels", len(rgb)/3),
	)
	return nil
}

func (d *LogDriver) Close() error { return nil }
