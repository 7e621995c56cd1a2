// internal/mirror/mirror.go
package mirror

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/tamzrod/statuslight/internal/grbl"
)

// retryInterval paces re-delivery after a failed write.
const retryInterval = time.Second

// Mirror publishes displayed statuses to a Modbus status block.
// Publish never blocks; only the newest pending snapshot is kept.
type Mirror struct {
	w      *blockWriter
	closer io.Closer
	queue  chan Snapshot
	log    *zap.Logger
}

type Config struct {
	Endpoint string
	UnitID   uint8
	Address  uint16
	Timeout  time.Duration
}

// Dial connects to the mirror endpoint.
func Dial(cfg Config, log *zap.Logger) (*Mirror, error) {
	cli, err := NewEndpointClient(ClientConfig{
		Endpoint: cfg.Endpoint,
		Timeout:  cfg.Timeout,
	})
	if err != nil {
		return nil, err
	}
	return newMirror(cli, cli, cfg.UnitID, cfg.Address, log), nil
}

func newMirror(cli registerWriter, closer io.Closer, unitID uint8, base uint16, log *zap.Logger) *Mirror {
	if log == nil {
		log = zap.NewNop()
	}
	return &Mirror{
		w:      newBlockWriter(cli, unitID, base),
		closer: closer,
		queue:  make(chan Snapshot, 1),
		log:    log,
	}
}

// Publish queues a snapshot, replacing any snapshot not yet delivered.
func (m *Mirror) Publish(s grbl.Status, color uint32, booted bool) {
	snap := Snapshot{Status: s, Color: color, Booted: booted}
	for {
		select {
		case m.queue <- snap:
			return
		default:
		}
		select {
		case <-m.queue:
		default:
		}
	}
}

// Run delivers snapshots until ctx ends. A failed snapshot is retried
// every retryInterval unless a newer one supersedes it.
func (m *Mirror) Run(ctx context.Context) {
	ticker := time.NewTicker(retryInterval)
	defer ticker.Stop()

	var pending *Snapshot

	for {
		select {
		case <-ctx.Done():
			return

		case s := <-m.queue:
			pending = &s

		case <-ticker.C:
			if pending == nil {
				continue
			}
		}

		if err := m.w.Write(*pending); err != nil {
			m.log.Warn("mirror write failed", zap.Stringer("status", pending.Status), zap.Error(err))
			continue
		}
		pending = nil
	}
}

func (m *Mirror) Close() error {
	if m.closer == nil {
		return nil
	}
	return m.closer.Close()
}
