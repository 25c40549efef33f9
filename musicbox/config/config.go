// Package config holds the music box settings: the timer clock, interpreter
// tunables and LED shape. Defaults match the Digispark firmware; a YAML file
// may override any subset.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/valerio/go-musicbox/musicbox/lights"
	"github.com/valerio/go-musicbox/musicbox/player"
	"github.com/valerio/go-musicbox/musicbox/timing"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	CPUHz            uint32 `yaml:"cpu_hz"`
	Prescaler        uint32 `yaml:"prescaler"`
	SampleRateHz     uint32 `yaml:"sample_rate_hz"`
	NoteTickTargetHz uint32 `yaml:"note_tick_target_hz"`

	DefaultTempo10 uint8  `yaml:"default_tempo10"`
	MinDelayTicks  uint8  `yaml:"min_delay_ticks"`
	GuardLimit     int    `yaml:"guard_limit"`
	SongGapTicks   uint16 `yaml:"song_gap_ticks"`

	LEDMaxLevel    uint8 `yaml:"led_max_level"`
	LEDBarLength16 uint8 `yaml:"led_bar_length16"`

	StartSong int `yaml:"start_song"`
}

func Default() Config {
	return Config{
		CPUHz:            timing.DefaultCPUHz,
		Prescaler:        timing.DefaultPrescaler,
		SampleRateHz:     timing.DefaultSampleRateHz,
		NoteTickTargetHz: timing.DefaultNoteTickTargetHz,
		DefaultTempo10:   player.DefaultTempo10,
		MinDelayTicks:    player.DefaultMinDelayTicks,
		GuardLimit:       player.DefaultGuardLimit,
		SongGapTicks:     player.DefaultSongGapTicks,
		LEDMaxLevel:      lights.DefaultMaxLevel,
		LEDBarLength16:   lights.DefaultBarLength16,
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := cfg.decode(data); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding config: %w", err)
	}
	return nil
}

// Validate rejects settings the firmware would refuse to build with.
func (c Config) Validate() error {
	switch {
	case c.CPUHz == 0, c.Prescaler == 0, c.SampleRateHz == 0, c.NoteTickTargetHz == 0:
		return fmt.Errorf("%w: clock values must be non-zero", ErrInvalidConfig)
	case c.GuardLimit <= 0:
		return fmt.Errorf("%w: guard_limit must be positive, got %d", ErrInvalidConfig, c.GuardLimit)
	case c.LEDBarLength16 == 0:
		return fmt.Errorf("%w: led_bar_length16 must be positive", ErrInvalidConfig)
	case c.MinDelayTicks == 0:
		return fmt.Errorf("%w: min_delay_ticks must be positive", ErrInvalidConfig)
	case c.SongGapTicks == 0:
		return fmt.Errorf("%w: song_gap_ticks must be positive", ErrInvalidConfig)
	case c.StartSong < 0:
		return fmt.Errorf("%w: start_song must not be negative", ErrInvalidConfig)
	}
	if _, err := timing.Quantize(c.Clock()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) Clock() timing.ClockConfig {
	return timing.ClockConfig{
		CPUHz:            c.CPUHz,
		Prescaler:        c.Prescaler,
		SampleRateHz:     c.SampleRateHz,
		NoteTickTargetHz: c.NoteTickTargetHz,
	}
}

func (c Config) Player() player.Config {
	return player.Config{
		DefaultTempo10: c.DefaultTempo10,
		MinDelayTicks:  c.MinDelayTicks,
		GuardLimit:     c.GuardLimit,
		SongGapTicks:   c.SongGapTicks,
		Lights: lights.Config{
			BarLength16: c.LEDBarLength16,
			MaxLevel:    c.LEDMaxLevel,
		},
	}
}

// Marshal renders the config as YAML, e.g. for a starter file.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
