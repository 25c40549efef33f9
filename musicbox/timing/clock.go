package timing

import (
	"errors"
	"fmt"
	"log/slog"
)

// Firmware defaults: Digispark ATtiny85 on its 16.5 MHz PLL clock.
const (
	DefaultCPUHz            = 16_500_000
	DefaultPrescaler        = 8
	DefaultSampleRateHz     = 24_000
	DefaultNoteTickTargetHz = 196
)

var ErrInvalidClock = errors.New("invalid clock configuration")

// ClockConfig holds the nominal hardware timer setup.
type ClockConfig struct {
	CPUHz            uint32
	Prescaler        uint32
	SampleRateHz     uint32
	NoteTickTargetHz uint32
}

// DefaultClockConfig returns the firmware timer setup.
func DefaultClockConfig() ClockConfig {
	return ClockConfig{
		CPUHz:            DefaultCPUHz,
		Prescaler:        DefaultPrescaler,
		SampleRateHz:     DefaultSampleRateHz,
		NoteTickTargetHz: DefaultNoteTickTargetHz,
	}
}

// Clock is the timer setup after quantization to an 8-bit compare register.
// AudioHz and NoteHz are the rates the hardware actually produces, which is
// what tempo math must use.
type Clock struct {
	CompareTop  uint8  // timer counts 0..CompareTop, period CompareTop+1
	AudioHz     uint32 // measured audio-tick rate
	NoteDivider uint8  // audio ticks per note-tick
	NoteHz      uint16 // measured note-tick rate
}

// Quantize derives the measured rates from a nominal timer setup.
func Quantize(cfg ClockConfig) (Clock, error) {
	if cfg.CPUHz == 0 || cfg.Prescaler == 0 || cfg.SampleRateHz == 0 || cfg.NoteTickTargetHz == 0 {
		return Clock{}, fmt.Errorf("%w: cpu=%d prescaler=%d rate=%d note target=%d",
			ErrInvalidClock, cfg.CPUHz, cfg.Prescaler, cfg.SampleRateHz, cfg.NoteTickTargetHz)
	}

	den := uint64(cfg.Prescaler) * uint64(cfg.SampleRateHz)
	period := clamp((uint64(cfg.CPUHz)+den/2)/den, 1, 256)

	audioHz := uint64(cfg.CPUHz) / (uint64(cfg.Prescaler) * period)
	if audioHz == 0 {
		return Clock{}, fmt.Errorf("%w: prescaler %d too large for %d Hz", ErrInvalidClock, cfg.Prescaler, cfg.CPUHz)
	}

	target := uint64(cfg.NoteTickTargetHz)
	divider := clamp((audioHz+target/2)/target, 1, 255)
	noteHz := clamp(audioHz/divider, 1, 65535)

	return Clock{
		CompareTop:  uint8(period - 1),
		AudioHz:     uint32(audioHz),
		NoteDivider: uint8(divider),
		NoteHz:      uint16(noteHz),
	}, nil
}

func clamp(v, lo, hi uint64) uint64 {
	return min(max(v, lo), hi)
}

func (c Clock) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("compare_top", int(c.CompareTop)),
		slog.Uint64("audio_hz", uint64(c.AudioHz)),
		slog.Int("note_divider", int(c.NoteDivider)),
		slog.Int("note_hz", int(c.NoteHz)),
	)
}
