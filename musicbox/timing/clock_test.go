package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantize(t *testing.T) {
	tests := []struct {
		name string
		cfg  ClockConfig
		want Clock
	}{
		{"digispark defaults", DefaultClockConfig(), Clock{CompareTop: 85, AudioHz: 23982, NoteDivider: 122, NoteHz: 196}},
		{"exact 8 kHz", ClockConfig{8_000_000, 8, 8000, 196}, Clock{124, 8000, 41, 195}},
		{"period clamps to 256", ClockConfig{16_000_000, 1, 1000, 196}, Clock{255, 62500, 255, 245}},
		{"coarse period", ClockConfig{1_000_000, 8, 24000, 196}, Clock{4, 25000, 128, 195}},
		{"divider clamps to 255", ClockConfig{16_500_000, 8, 24000, 1}, Clock{85, 23982, 255, 94}},
		{"note rate clamps", ClockConfig{4_000_000_000, 1, 4_000_000_000, 4_000_000_000}, Clock{0, 4_000_000_000, 1, 65535}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock, err := Quantize(tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, clock)
		})
	}
}

func TestQuantizeRejectsZero(t *testing.T) {
	base := DefaultClockConfig()
	for name, mutate := range map[string]func(*ClockConfig){
		"cpu":         func(c *ClockConfig) { c.CPUHz = 0 },
		"prescaler":   func(c *ClockConfig) { c.Prescaler = 0 },
		"sample rate": func(c *ClockConfig) { c.SampleRateHz = 0 },
		"note target": func(c *ClockConfig) { c.NoteTickTargetHz = 0 },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := base
			mutate(&cfg)
			_, err := Quantize(cfg)
			assert.ErrorIs(t, err, ErrInvalidClock)
		})
	}

	_, err := Quantize(ClockConfig{CPUHz: 100, Prescaler: 1024, SampleRateHz: 1, NoteTickTargetHz: 1})
	assert.ErrorIs(t, err, ErrInvalidClock, "audio rate rounds to zero")
}

func TestTicksPerFrame(t *testing.T) {
	assert.Equal(t, 400, TicksPerFrame(23982, 60))
	assert.Equal(t, 400, TicksPerFrame(24000, 0), "zero fps falls back to the default")
	assert.Equal(t, 1, TicksPerFrame(10, 60))
}

func TestFrameDuration(t *testing.T) {
	assert.Equal(t, time.Duration(0), FrameDuration(0, 400))
	assert.Equal(t, 50*time.Millisecond, FrameDuration(8000, 400))
	assert.InDelta(t, float64(time.Second/60), float64(FrameDuration(24000, 400)), float64(time.Microsecond))
}

func TestLimiters(t *testing.T) {
	noop := NewNoOpLimiter()
	start := time.Now()
	for range 1000 {
		noop.WaitForNextFrame()
	}
	noop.Reset()
	assert.Less(t, time.Since(start), 100*time.Millisecond)

	adaptive := NewAdaptiveLimiter(2 * time.Millisecond)
	adaptive.Reset()
	start = time.Now()
	for range 5 {
		adaptive.WaitForNextFrame()
	}
	assert.GreaterOrEqual(t, time.Since(start), 7*time.Millisecond, "first frame is immediate, four more are paced")

	ticker := NewTickerLimiter(time.Millisecond)
	defer ticker.Stop()
	ticker.WaitForNextFrame()
	ticker.Reset()
	ticker.WaitForNextFrame()
}
