// Package lights drives the LED garland: a triangle "breath" that rises and
// falls once per musical bar, updated on every note-tick.
package lights

import (
	"github.com/valerio/go-musicbox/musicbox/fixed"
)

const (
	// DefaultBarLength16 is one 4/4 bar in sixteenth notes. Use 12 for 3/4.
	DefaultBarLength16 = 16

	// DefaultMaxLevel caps the LED brightness (0..255).
	DefaultMaxLevel = 15
)

// Config describes the breath shape.
type Config struct {
	BarLength16 uint8 // bar length in sixteenth notes, one full rise and fall
	MaxLevel    uint8 // peak brightness
}

// DefaultConfig returns the firmware defaults.
func DefaultConfig() Config {
	return Config{BarLength16: DefaultBarLength16, MaxLevel: DefaultMaxLevel}
}

// Breath is the triangle generator state.
type Breath struct {
	level fixed.Q8_8  // [0, max]
	step  fixed.SQ8_8 // sign is the direction
	max   fixed.Q8_8
	bar   uint16
}

// New returns a dark, stopped generator.
func New(cfg Config) *Breath {
	b := &Breath{
		max: fixed.FromInt(cfg.MaxLevel),
		bar: uint16(cfg.BarLength16),
	}
	b.Begin()
	return b
}

// Begin turns the light off and stops it until the first ApplyTempo.
func (b *Breath) Begin() {
	b.level = 0
	b.step = 0
}

// Reset restarts the bar from dark, rising. The step magnitude is kept so the
// current tempo still applies.
func (b *Breath) Reset() {
	b.level = 0
	if b.step < 0 {
		b.step = -b.step
	}
}

// ApplyTempo recomputes the step so the peak is reached at or before half a
// bar at ticksPer16 note-ticks per sixteenth. The direction is preserved.
func (b *Breath) ApplyTempo(ticksPer16 uint8) {
	if ticksPer16 == 0 {
		b.step = 0
		return
	}

	barTicks := b.bar * uint16(ticksPer16)
	halfTicks := barTicks / 2
	if halfTicks == 0 || b.max == 0 {
		b.step = 0
		return
	}

	stepAbs := fixed.Q8_8(fixed.CeilDiv(uint32(b.max), uint32(halfTicks)))
	if stepAbs == 0 {
		stepAbs = 1
	}
	b.step = b.step.WithSign(stepAbs)
}

// Tick advances one note-tick and returns the LED output.
func (b *Breath) Tick() uint8 {
	if b.step == 0 {
		b.level = 0
		return 0
	}

	if b.step > 0 {
		next := uint32(b.level) + uint32(b.step)
		if next >= uint32(b.max) {
			b.level = b.max
			b.step = -b.step
		} else {
			b.level = fixed.Q8_8(next)
		}
	} else {
		step := b.step.Abs()
		if b.level <= step {
			b.level = 0
			b.step = -b.step
		} else {
			b.level -= step
		}
	}

	return b.level.Int()
}

// Level returns the current LED output without advancing.
func (b *Breath) Level() uint8 { return b.level.Int() }

// LevelQ returns the current level in Q8.8.
func (b *Breath) LevelQ() fixed.Q8_8 { return b.level }

// Step returns the signed Q8.8 step.
func (b *Breath) Step() fixed.SQ8_8 { return b.step }

// Rising reports whether the next Tick moves up.
func (b *Breath) Rising() bool { return b.step > 0 }

// Max returns the peak level in Q8.8.
func (b *Breath) Max() fixed.Q8_8 { return b.max }
