package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valerio/go-musicbox/musicbox/timing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "musicbox.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	clock, err := timing.Quantize(cfg.Clock())
	require.NoError(t, err)
	assert.Equal(t, uint16(196), clock.NoteHz)

	pc := cfg.Player()
	assert.Equal(t, uint8(9), pc.DefaultTempo10)
	assert.Equal(t, 64, pc.GuardLimit)
	assert.Equal(t, uint16(200), pc.SongGapTicks)
	assert.Equal(t, uint8(15), pc.Lights.MaxLevel)
	assert.Equal(t, uint8(16), pc.Lights.BarLength16)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
sample_rate_hz: 16000
led_bar_length16: 12
start_song: 2
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.SampleRateHz = 16000
	want.LEDBarLength16 = 12
	want.StartSong = 2
	assert.Equal(t, want, cfg)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "tempo: 9\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = Load(writeFile(t, "prescaler: 0\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero cpu", func(c *Config) { c.CPUHz = 0 }},
		{"zero sample rate", func(c *Config) { c.SampleRateHz = 0 }},
		{"zero note target", func(c *Config) { c.NoteTickTargetHz = 0 }},
		{"zero guard", func(c *Config) { c.GuardLimit = 0 }},
		{"zero bar", func(c *Config) { c.LEDBarLength16 = 0 }},
		{"zero min delay", func(c *Config) { c.MinDelayTicks = 0 }},
		{"zero song gap", func(c *Config) { c.SongGapTicks = 0 }},
		{"negative start song", func(c *Config) { c.StartSong = -1 }},
		{"unreachable audio rate", func(c *Config) { c.CPUHz = 100; c.Prescaler = 1024 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.StartSong = 1
	data, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "cpu_hz: 16500000")

	loaded, err := Load(writeFile(t, string(data)))
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
