package player

import "github.com/valerio/go-musicbox/musicbox/lights"

const (
	DefaultTempo10       = 9   // 90 BPM
	DefaultMinDelayTicks = 4   // shortest event, also used after a run of non-events
	DefaultGuardLimit    = 64  // instructions read per note-tick at most
	DefaultSongGapTicks  = 200 // silence between songs
	MinBPM               = 20  // slower tempos are raised to this
)

// Config tunes the interpreter.
type Config struct {
	DefaultTempo10 uint8
	MinDelayTicks  uint8
	GuardLimit     int
	SongGapTicks   uint16
	Lights         lights.Config
}

// DefaultConfig returns the firmware constants.
func DefaultConfig() Config {
	return Config{
		DefaultTempo10: DefaultTempo10,
		MinDelayTicks:  DefaultMinDelayTicks,
		GuardLimit:     DefaultGuardLimit,
		SongGapTicks:   DefaultSongGapTicks,
		Lights:         lights.DefaultConfig(),
	}
}
