// internal/mirror/writer.go
package mirror

import (
	"errors"
	"fmt"
	"strings"
)

// registerWriter is the exact contract the block writer uses.
type registerWriter interface {
	WriteRegisters(unitID uint8, addr uint16, regs []uint16) error
}

// blockWriter delivers snapshots into the status block.
// The first write, and the first write after any failure, re-asserts the
// whole block. Otherwise only changed registers are written.
type blockWriter struct {
	cli    registerWriter
	unitID uint8
	base   uint16

	needFull bool
	last     []uint16
}

func newBlockWriter(cli registerWriter, unitID uint8, base uint16) *blockWriter {
	return &blockWriter{
		cli:      cli,
		unitID:   unitID,
		base:     base,
		needFull: true,
		last:     make([]uint16, BlockSize),
	}
}

func (w *blockWriter) Write(s Snapshot) error {
	if w.cli == nil {
		return errors.New("mirror: no client")
	}

	regs := Encode(s)

	// ------------------------------------------------------------
	// Full block write (re-assert)
	// ------------------------------------------------------------
	if w.needFull {
		if err := w.cli.WriteRegisters(w.unitID, w.base, regs); err != nil {
			return fmt.Errorf("mirror: full block write failed: %w", err)
		}
		w.needFull = false
		copy(w.last, regs)
		return nil
	}

	var errs []string

	for slot := 0; slot < BlockSize; slot++ {
		if w.last[slot] == regs[slot] {
			continue
		}
		if err := w.cli.WriteRegisters(w.unitID, w.base+uint16(slot), regs[slot:slot+1]); err != nil {
			errs = append(errs, fmt.Sprintf("slot%d write failed: %v", slot, err))
			continue
		}
		w.last[slot] = regs[slot]
	}

	if len(errs) > 0 {
		// Any partial failure introduces doubt: re-assert on next success.
		w.needFull = true
		return errors.New("mirror: " + strings.Join(errs, " | "))
	}

	return nil
}
