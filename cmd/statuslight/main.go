// cmd/statuslight/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tamzrod/statuslight/internal/clock"
	"github.com/tamzrod/statuslight/internal/config"
	"github.com/tamzrod/statuslight/internal/indicator"
	"github.com/tamzrod/statuslight/internal/ledbus"
	"github.com/tamzrod/statuslight/internal/logging"
	"github.com/tamzrod/statuslight/internal/mirror"
	"github.com/tamzrod/statuslight/internal/runner"
	"github.com/tamzrod/statuslight/internal/transport"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath    string
		serialPort string
		ledPort    string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "statuslight",
		Short: "Show Grbl/FluidNC machine state on an addressable LED chain",
		Long: "statuslight reads status reports from a Grbl-style motion controller over a serial link,\n" +
			"renders the machine state as a color on an LED chain and polls the controller with \"?\"\n" +
			"whenever the status stream goes quiet.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, cfgPath)
			if err != nil {
				return err
			}

			s := &cfg.StatusLight
			if serialPort != "" {
				s.Serial.Address = serialPort
			}
			if ledPort != "" {
				s.LEDs.Address = ledPort
				s.LEDs.Driver = config.DriverAdalight
			}
			if logLevel != "" {
				s.Log.Level = logLevel
			}

			if err := config.Validate(cfg); err != nil {
				return fmt.Errorf("config validation failed: %w", err)
			}
			config.Normalize(cfg)

			log, err := logging.New(s.Log)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg, log)
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "statuslight.yaml", "path to YAML config (missing file means stock settings)")
	cmd.Flags().StringVar(&serialPort, "port", "", "controller serial port (overrides serial.address)")
	cmd.Flags().StringVar(&ledPort, "led-port", "", "Adalight pixel controller port (overrides leds.address)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "debug|info|warn|error (overrides log.level)")

	return cmd
}

// loadConfig reads cfgPath. An absent default file falls back to stock settings;
// an explicitly named file must exist.
func loadConfig(cmd *cobra.Command, cfgPath string) (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
		return config.Parse(nil)
	}
	return nil, fmt.Errorf("config load failed: %w", err)
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	s := cfg.StatusLight

	// --------------------
	// Controller link
	// --------------------

	link, err := transport.OpenSerial(transport.SerialConfig{
		Address:     s.Serial.Address,
		BaudRate:    s.Serial.BaudRate,
		ReadTimeout: time.Duration(s.Serial.ReadTimeoutMs) * time.Millisecond,
	}, logging.Component(log, "transport"))
	if err != nil {
		return err
	}
	defer link.Close()

	// --------------------
	// LED bus
	// --------------------

	var drv ledbus.Driver
	switch s.LEDs.Driver {
	case config.DriverAdalight:
		drv, err = ledbus.OpenAdalight(ledbus.AdalightConfig{
			Address:  s.LEDs.Address,
			BaudRate: s.LEDs.BaudRate,
			Timeout:  time.Second,
		}, s.LEDs.Count)
		if err != nil {
			return err
		}
	default:
		drv = ledbus.NewLogDriver(logging.Component(log, "leds"))
	}

	strip, err := ledbus.NewStrip(s.LEDs.Count, uint8(*s.LEDs.Brightness), drv)
	if err != nil {
		_ = drv.Close()
		return err
	}
	defer strip.Close()

	// --------------------
	// Status mirror (optional)
	// --------------------

	var sink indicator.StatusSink
	if s.Mirror != nil {
		m, err := mirror.Dial(mirror.Config{
			Endpoint: s.Mirror.Endpoint,
			UnitID:   s.Mirror.UnitID,
			Address:  s.Mirror.Address,
			Timeout:  time.Duration(s.Mirror.TimeoutMs) * time.Millisecond,
		}, logging.Component(log, "mirror"))
		if err != nil {
			return fmt.Errorf("mirror connect failed (endpoint=%s): %w", s.Mirror.Endpoint, err)
		}
		defer m.Close()
		go m.Run(ctx)
		sink = m
	}

	// --------------------
	// Indicator + loop
	// --------------------

	ind, err := indicator.New(indicator.Config{
		BlinkIntervalMs:  uint32(s.Timing.BlinkIntervalMs),
		RequestTimeoutMs: uint32(s.Timing.RequestTimeoutMs),
		StaleTimeoutMs:   uint32(s.Timing.StaleTimeoutMs),
		LineCapacity:     s.LineBuffer,
	}, link, strip, sink, logging.Component(log, "indicator"))
	if err != nil {
		return err
	}

	r, err := runner.New(runner.Config{
		Period: time.Duration(s.Timing.TickMs) * time.Millisecond,
	}, ind, clock.NewMonotonic())
	if err != nil {
		return err
	}

	log.Info("statuslight started",
		zap.String("port", s.Serial.Address),
		zap.Int("baud", s.Serial.BaudRate),
		zap.String("leds", s.LEDs.Driver),
		zap.Int("pixels", s.LEDs.Count),
		zap.Bool("mirror", s.Mirror != nil),
	)

	r.Run(ctx)

	log.Info("statuslight stopped",
		zap.Uint64("ticks", r.Ticks()),
		zap.Int("polls", ind.PollsSent()),
		zap.Int("led_writes", ind.DisplayWrites()),
		zap.Uint64("rx_dropped", link.Dropped()),
	)
	return nil
}
