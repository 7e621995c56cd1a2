// internal/indicator/indicator.go
package indicator

import (
	"errors"

	"go.uber.org/zap"

	"github.com/tamzrod/statuslight/internal/clock"
	"github.com/tamzrod/statuslight/internal/grbl"
)

// Link is the controller connection: non-blocking reads, blocking writes.
type Link interface {
	grbl.ByteSource
	Writer
}

// Config holds the indicator timings and tables.
type Config struct {
	BlinkIntervalMs  uint32
	RequestTimeoutMs uint32

	// StaleTimeoutMs > 0 shows Palette.Fallback after that much silence
	// once booted. 0 disables the fallback.
	StaleTimeoutMs uint32

	LineCapacity int
	Prefixes     []grbl.Prefix
	Palette      *Palette
}

// DefaultConfig mirrors the stock firmware constants.
func DefaultConfig() Config {
	return Config{
		BlinkIntervalMs:  250,
		RequestTimeoutMs: 5000,
		LineCapacity:     grbl.DefaultLineCapacity,
	}
}

// Indicator wires the line assembler, boot latch, display and liveness
// timer around one State. Not safe for concurrent use: one loop owns it.
type Indicator struct {
	cfg     Config
	palette Palette

	link     Link
	lines    *grbl.LineAssembler
	display  *Display
	latch    *BootLatch
	liveness *Liveness
	log      *zap.Logger

	state   State
	started bool
}

// New builds an indicator. sink may be nil.
func New(cfg Config, link Link, bus Bus, sink StatusSink, log *zap.Logger) (*Indicator, error) {
	if link == nil {
		return nil, errors.New("indicator: link required")
	}
	if bus == nil {
		return nil, errors.New("indicator: bus required")
	}
	if cfg.BlinkIntervalMs == 0 {
		return nil, errors.New("indicator: blink interval must be > 0")
	}
	if cfg.RequestTimeoutMs == 0 {
		return nil, errors.New("indicator: request timeout must be > 0")
	}
	if log == nil {
		log = zap.NewNop()
	}

	palette := DefaultPalette()
	if cfg.Palette != nil {
		palette = *cfg.Palette
	}

	display := NewDisplay(bus, palette, sink, log.Named("display"))

	return &Indicator{
		cfg:      cfg,
		palette:  palette,
		link:     link,
		lines:    grbl.NewLineAssembler(cfg.LineCapacity, grbl.NewClassifier(cfg.Prefixes)),
		display:  display,
		latch:    NewBootLatch(cfg.BlinkIntervalMs, display, palette, log.Named("boot")),
		liveness: NewLiveness(cfg.RequestTimeoutMs, link, log.Named("liveness")),
		log:      log,
	}, nil
}

// Start resets the state at now and paints the first blink color.
func (ind *Indicator) Start(now clock.Millis) {
	ind.state = NewState(now)
	ind.latch.Start(&ind.state, now)
	ind.started = true
}

// Tick runs one scheduler pass: drain input, re-poll if silent, then
// blink (pending) or check for a stale display (active).
// It returns the status of the last line completed during this tick.
func (ind *Indicator) Tick(now clock.Millis) grbl.Status {
	if !ind.started {
		ind.Start(now)
	}

	last := ind.lines.Drain(ind.link, func(l grbl.Line) {
		ind.handleLine(l, now)
	})

	ind.liveness.Check(&ind.state, now)

	if !ind.state.Booted {
		ind.latch.Blink(&ind.state, now)
		return last
	}

	ind.checkStale(now)
	return last
}

func (ind *Indicator) handleLine(l grbl.Line, now clock.Millis) {
	if l.Truncated {
		ind.log.Debug("line truncated", zap.String("head", l.Text))
	}
	if l.Status == grbl.Unknown {
		if l.Text != "" {
			ind.log.Debug("unrecognized line", zap.String("line", l.Text))
		}
		return
	}
	ind.latch.Accept(&ind.state, l.Status, now)
}

func (ind *Indicator) checkStale(now clock.Millis) {
	if ind.cfg.StaleTimeoutMs == 0 || ind.state.Stale {
		return
	}
	if clock.Since(now, ind.state.LastKnownStatusMs) <= ind.cfg.StaleTimeoutMs {
		return
	}
	if !ind.display.paint(ind.palette.Fallback) {
		return
	}

	// Forget the last status so the next report repaints even if unchanged.
	ind.state.Stale = true
	ind.state.LastShown = grbl.Unknown
	ind.log.Info("status stale, showing fallback",
		zap.Uint32("silent_ms", clock.Since(now, ind.state.LastKnownStatusMs)))
	if ind.display.sink != nil {
		ind.display.sink.Publish(grbl.Unknown, ind.palette.Fallback, true)
	}
}

// State returns a copy of the current state.
func (ind *Indicator) State() State { return ind.state }

// DisplayWrites returns the number of committed LED frames.
func (ind *Indicator) DisplayWrites() int { return ind.display.Writes() }

// PollsSent returns the number of poll token attempts.
func (ind *Indicator) PollsSent() int { return ind.liveness.Sent() }
