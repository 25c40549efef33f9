package player

import (
	"github.com/valerio/go-musicbox/musicbox/fixed"
	"github.com/valerio/go-musicbox/musicbox/song"
	"github.com/valerio/go-musicbox/musicbox/synth"
	"github.com/valerio/go-musicbox/musicbox/timing"
)

// NotStarted is the cursor value before the first instruction is read.
const NotStarted = -2

// State is the interpreter position and tempo. It is replaced wholesale on
// song selection and updated in place by the interrupt handler.
type State struct {
	Song       int    // index into the song table
	Cursor     int    // byte offset of the current instruction, NotStarted before the first
	Length     int    // stream length in bytes
	Delay      uint16 // note-ticks until the next instruction is read
	Transpose  int8   // semitones added to every note
	TicksPer16 uint8  // note-ticks per sixteenth note
	Tempo10    uint8  // last tempo applied, BPM / 10

	DividerCount uint8 // audio ticks since the last note-tick
	Divider      uint8 // audio ticks per note-tick
}

// Stats counts handler events. The orchestrator compares successive values to
// log outside the handler.
type Stats struct {
	AudioTicks     uint64
	NoteTicks      uint64
	SongEnds       uint64
	GuardExhausted uint64
}

// Snapshot is a consistent copy of the player taken under the interrupt guard.
type Snapshot struct {
	State
	Stats

	SongName  string
	SongCount int
	Current   song.Song
	Clock     timing.Clock
	Channel   synth.Channel
	LED       uint8
	Breath    fixed.SQ8_8
}

// BPM returns the tempo implied by TicksPer16 at the measured note-tick rate.
func (s Snapshot) BPM() float64 {
	if s.TicksPer16 == 0 {
		return 0
	}
	return float64(s.Clock.NoteHz) * 15 / float64(s.TicksPer16)
}
