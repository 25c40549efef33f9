package debug

import (
	"github.com/valerio/go-musicbox/musicbox/disasm"
	"github.com/valerio/go-musicbox/musicbox/player"
	"github.com/valerio/go-musicbox/musicbox/song"
	"github.com/valerio/go-musicbox/musicbox/synth"
)

// listing window around the cursor
const (
	linesBefore = 2
	linesAfter  = 5
)

// ChannelState describes the synth voice.
type ChannelState struct {
	Increment     uint16
	EnvelopeIndex uint8
	Silent        bool
	FrequencyHz   float64
	Note          string // "" when silent or between table entries
}

// PlayerState is a display-ready copy of the interpreter.
type PlayerState struct {
	SongIndex int
	SongCount int
	SongName  string

	Cursor       int
	Length       int
	Delay        uint16
	Transpose    int8
	Tempo10      uint8
	TicksPer16   uint8
	BPM          float64
	DividerCount uint8
	Divider      uint8
	AudioHz      uint32
	NoteHz       uint16

	Instruction string
	Listing     []disasm.DisassemblyLine

	Channel    ChannelState
	LED        uint8
	BreathStep int16

	AudioTicks     uint64
	NoteTicks      uint64
	SongEnds       uint64
	GuardExhausted uint64

	Paused bool
}

// ExtractPlayerState converts a player snapshot for display.
func ExtractPlayerState(snap player.Snapshot) *PlayerState {
	s := &PlayerState{
		SongIndex:      snap.Song,
		SongCount:      snap.SongCount,
		SongName:       snap.SongName,
		Cursor:         snap.Cursor,
		Length:         snap.Length,
		Delay:          snap.Delay,
		Transpose:      snap.Transpose,
		Tempo10:        snap.Tempo10,
		TicksPer16:     snap.TicksPer16,
		BPM:            snap.BPM(),
		DividerCount:   snap.DividerCount,
		Divider:        snap.Divider,
		AudioHz:        snap.Clock.AudioHz,
		NoteHz:         snap.Clock.NoteHz,
		LED:            snap.LED,
		BreathStep:     int16(snap.Breath),
		AudioTicks:     snap.AudioTicks,
		NoteTicks:      snap.NoteTicks,
		SongEnds:       snap.SongEnds,
		GuardExhausted: snap.GuardExhausted,
	}

	if snap.Cursor == player.NotStarted {
		s.Instruction = "-"
	} else {
		s.Instruction = disasm.DisassembleAt(snap.Current, snap.Cursor).Instruction
	}
	s.Listing = disasm.DisassembleAround(snap.Current, snap.Cursor, linesBefore, linesAfter)

	ch := snap.Channel
	s.Channel = ChannelState{
		Increment:     ch.Increment(),
		EnvelopeIndex: ch.EnvelopeIndex(),
		Silent:        ch.Silent(),
	}
	if !ch.Silent() {
		s.Channel.FrequencyHz = synth.IncrementFrequency(ch.Increment(), snap.Clock.AudioHz)
		if note, ok := NoteForIncrement(ch.Increment()); ok {
			s.Channel.Note = song.NoteName(note)
		}
	}
	return s
}

// NoteForIncrement finds the MIDI note whose table increment is inc.
func NoteForIncrement(inc uint16) (uint8, bool) {
	for i, v := range synth.NoteIncrements {
		if v == inc {
			return uint8(synth.MIDIBase + i), true
		}
	}
	return 0, false
}
