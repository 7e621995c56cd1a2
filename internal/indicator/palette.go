// internal/indicator/palette.go
package indicator

import "github.com/tamzrod/statuslight/internal/grbl"

const (
	ColorRed    uint32 = 0xFF0000
	ColorOrange uint32 = 0xFF5F00
	ColorYellow uint32 = 0xFFCF00
	ColorGreen  uint32 = 0x00FF00
	ColorCyan   uint32 = 0x007FFF
	ColorPurple uint32 = 0xFF00FF
)

// Palette maps statuses to 0xRRGGBB colors.
// Statuses missing from Status leave the LEDs untouched.
type Palette struct {
	Status   map[grbl.Status]uint32
	Blink    [2]uint32 // [phase false, phase true]
	Fallback uint32
}

// DefaultPalette returns a fresh copy of the stock colors.
func DefaultPalette() Palette {
	return Palette{
		Status: map[grbl.Status]uint32{
			grbl.Booted: ColorGreen,
			grbl.Idle:   ColorGreen,
			grbl.Run:    ColorCyan,
			grbl.Hold:   ColorYellow,
			grbl.Jog:    ColorPurple,
			grbl.Door:   ColorOrange,
			grbl.Home:   ColorPurple,
			grbl.Alarm:  ColorRed,
		},
		Blink:    [2]uint32{ColorRed, ColorPurple},
		Fallback: ColorRed,
	}
}

// Lookup returns the color for s and whether one is defined.
func (p Palette) Lookup(s grbl.Status) (uint32, bool) {
	if s == grbl.Unknown {
		return 0, false
	}
	c, ok := p.Status[s]
	return c, ok
}

func (p Palette) blink(phase bool) uint32 {
	if phase {
		return p.Blink[1]
	}
	return p.Blink[0]
}
