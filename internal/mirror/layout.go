// internal/mirror/layout.go
package mirror

import "github.com/tamzrod/statuslight/internal/grbl"

// Status block layout constants (holding registers, relative to the base address).
// These values define the exported contract and MUST NOT be configurable.

// BlockSize is the number of registers in the status block.
const BlockSize = 4

// SlotStatusCode holds the grbl.Status code (Unknown = 255).
const SlotStatusCode = 0

// SlotColorHi holds the 0xRR byte of the shown color.
const SlotColorHi = 1

// SlotColorLo holds the 0xGGBB bytes of the shown color.
const SlotColorLo = 2

// SlotBooted holds the boot latch (0 or 1).
const SlotBooted = 3

// Snapshot is exactly what the mirror delivers.
type Snapshot struct {
	Status grbl.Status
	Color  uint32
	Booted bool
}

// Encode converts a Snapshot into a full status block.
// No IO. No side effects.
func Encode(s Snapshot) []uint16 {
	regs := make([]uint16, BlockSize)

	regs[SlotStatusCode] = uint16(s.Status)
	regs[SlotColorHi] = uint16(s.Color>>16) & 0xFF
	regs[SlotColorLo] = uint16(s.Color)
	if s.Booted {
		regs[SlotBooted] = 1
	}

	return regs
}
