// internal/ledbus/strip.go
package ledbus

import (
	"errors"
	"fmt"
)

// Bus is the capability the display needs: set every pixel, then commit.
type Bus interface {
	Fill(color uint32)
	Show() error
}

// Driver pushes one encoded frame (3 bytes per pixel, R G B) to the hardware.
type Driver interface {
	WriteFrame(rgb []byte) error
	Close() error
}

var _ Bus = (*Strip)(nil)

// Strip is an N-pixel 0xRRGGBB buffer with a global brightness.
type Strip struct {
	pixels     []uint32
	brightness uint8
	frame      []byte
	drv        Driver
}

// NewStrip creates a strip of count pixels backed by drv.
func NewStrip(count int, brightness uint8, drv Driver) (*Strip, error) {
	if count <= 0 {
		return nil, fmt.Errorf("ledbus: pixel count must be > 0, got %d", count)
	}
	if drv == nil {
		return nil, errors.New("ledbus: driver required")
	}
	return &Strip{
		pixels:     make([]uint32, count),
		brightness: brightness,
		frame:      make([]byte, 3*count),
		drv:        drv,
	}, nil
}

// Fill sets every pixel to color. Nothing reaches the hardware until Show.
func (s *Strip) Fill(color uint32) {
	for i := range s.pixels {
		s.pixels[i] = color & 0xFFFFFF
	}
}

// Show scales the buffer by brightness and commits it in one frame.
func (s *Strip) Show() error {
	for i, c := range s.pixels {
		s.frame[3*i] = Scale(byte(c>>16), s.brightness)
		s.frame[3*i+1] = Scale(byte(c>>8), s.brightness)
		s.frame[3*i+2] = Scale(byte(c), s.brightness)
	}
	if err := s.drv.WriteFrame(s.frame); err != nil {
		return fmt.Errorf("ledbus: show: %w", err)
	}
	return nil
}

// Len returns the number of pixels.
func (s *Strip) Len() int { return len(s.pixels) }

// Pixel returns the unscaled color of pixel i.
func (s *Strip) Pixel(i int) uint32 { return s.pixels[i] }

func (s *Strip) Close() error {
	return s.drv.Close()
}

// Scale applies NeoPixel-style brightness: 255 is full, 0 is nearly off.
func Scale(c, brightness uint8) uint8 {
	return uint8((uint16(c) * (uint16(brightness) + 1)) >> 8)
}
