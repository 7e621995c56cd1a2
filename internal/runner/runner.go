// internal/runner/runner.go
package runner

import (
	"context"
	"errors"
	"time"

	"github.com/tamzrod/statuslight/internal/clock"
	"github.com/tamzrod/statuslight/internal/grbl"
)

// Ticker is one cooperative pass of the indicator.
type Ticker interface {
	Start(now clock.Millis)
	Tick(now clock.Millis) grbl.Status
}

// Config is the minimal runtime config the loop needs.
type Config struct {
	Period time.Duration
}

// Runner is the single execution context: every component runs inside Tick.
type Runner struct {
	cfg   Config
	t     Ticker
	clock clock.Clock
	ticks uint64
}

func New(cfg Config, t Ticker, c clock.Clock) (*Runner, error) {
	if t == nil {
		return nil, errors.New("runner: ticker required")
	}
	if c == nil {
		return nil, errors.New("runner: clock required")
	}
	if cfg.Period <= 0 {
		return nil, errors.New("runner: period must be > 0")
	}
	return &Runner{cfg: cfg, t: t, clock: c}, nil
}

// Run starts the indicator and ticks it every Period until ctx ends.
// Ticks never overlap.
func (r *Runner) Run(ctx context.Context) {
	r.t.Start(r.clock.Now())

	ticker := time.NewTicker(r.cfg.Period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.t.Tick(r.clock.Now())
			r.ticks++
		}
	}
}

// Ticks returns how many passes ran. Only meaningful after Run returns.
func (r *Runner) Ticks() uint64 { return r.ticks }
