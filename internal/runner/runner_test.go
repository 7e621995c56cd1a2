// internal/runner/runner_test.go
package runner

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/statuslight/internal/clock"
	"github.com/tamzrod/statuslight/internal/grbl"
)

type countingTicker struct {
	started atomic.Bool
	ticks   atomic.Int64
}

func (c *countingTicker) Start(clock.Millis) { c.started.Store(true) }

func (c *countingTicker) Tick(clock.Millis) grbl.Status {
	c.ticks.Add(1)
	return grbl.Unknown
}

func TestRun_TicksUntilCancelled(t *testing.T) {
	ct := &countingTicker{}
	r, err := New(Config{Period: time.Millisecond}, ct, clock.NewMonotonic())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return ct.ticks.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()
	<-done

	assert.True(t, ct.started.Load())
	assert.Equal(t, uint64(ct.ticks.Load()), r.Ticks())
}

func TestNew_Rejects(t *testing.T) {
	_, err := New(Config{Period: time.Millisecond}, nil, clock.NewMonotonic())
	assert.Error(t, err)

	_, err = New(Config{Period: time.Millisecond}, &countingTicker{}, nil)
	assert.Error(t, err)

	_, err = New(Config{}, &countingTicker{}, clock.NewMonotonic())
	assert.Error(t, err)
}
