// internal/mirror/mirror_test.go
package mirror

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/statuslight/internal/grbl"
)

type lockedClient struct {
	mu sync.Mutex
	fakeRegisterClient
}

func (l *lockedClient) WriteRegisters(unitID uint8, addr uint16, regs []uint16) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fakeRegisterClient.WriteRegisters(unitID, addr, regs)
}

func (l *lockedClient) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.writes)
}

func TestPublish_KeepsNewest(t *testing.T) {
	m := newMirror(&fakeRegisterClient{}, nil, 1, 0, nil)

	m.Publish(grbl.Run, 0x007FFF, true)
	m.Publish(grbl.Hold, 0xFFCF00, true)
	m.Publish(grbl.Alarm, 0xFF0000, true)

	require.Len(t, m.queue, 1)
	assert.Equal(t, Snapshot{Status: grbl.Alarm, Color: 0xFF0000, Booted: true}, <-m.queue)
}

func TestRun_DeliversPublished(t *testing.T) {
	cli := &lockedClient{}
	m := newMirror(cli, nil, 2, 40, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	m.Publish(grbl.Booted, 0x00FF00, true)
	require.Eventually(t, func() bool { return cli.count() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	<-done

	cli.mu.Lock()
	defer cli.mu.Unlock()
	assert.Equal(t, uint16(40), cli.writes[0].addr)
	assert.Equal(t, []uint16{uint16(grbl.Booted), 0x0000, 0xFF00, 1}, cli.writes[0].regs)
}

func TestClose_NilCloser(t *testing.T) {
	m := newMirror(&fakeRegisterClient{}, nil, 1, 0, nil)
	assert.NoError(t, m.Close())
}
