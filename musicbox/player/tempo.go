package player

import (
	"github.com/valerio/go-musicbox/musicbox/fixed"
	"github.com/valerio/go-musicbox/musicbox/song"
	"github.com/valerio/go-musicbox/musicbox/timing"
)

// TicksPer16 converts a tempo in tens of BPM to note-ticks per sixteenth at
// noteHz, rounded and clamped to [1, 255]. A zero tempo10 means defaultTempo10,
// a zero noteHz means the nominal note-tick rate.
func TicksPer16(tempo10, defaultTempo10 uint8, noteHz uint16) uint8 {
	if tempo10 == 0 {
		tempo10 = defaultTempo10
	}
	bpm := max(uint32(tempo10)*10, MinBPM)

	hz := uint32(noteHz)
	if hz == 0 {
		hz = timing.DefaultNoteTickTargetHz
	}

	// a sixteenth is a quarter of a beat: hz * 60 / bpm / 4
	ticks := fixed.RoundDiv(hz*15, bpm)
	return uint8(fixed.Clamp(int32(ticks), 1, 255))
}

// applyTempo10 sets the song tempo and keeps the breath in step with it.
func (p *Player) applyTempo10(tempo10 uint8) {
	p.state.Tempo10 = tempo10
	if tempo10 == 0 {
		p.state.Tempo10 = p.cfg.DefaultTempo10
	}
	p.state.TicksPer16 = TicksPer16(tempo10, p.cfg.DefaultTempo10, p.clock.NoteHz)
	p.breath.ApplyTempo(p.state.TicksPer16)
}

// durationToTicks converts duration flags to note-ticks at the current tempo.
func (p *Player) durationToTicks(flags uint8) uint16 {
	ticks := uint16(song.DurationCount(flags)) * uint16(p.state.TicksPer16)
	return max(ticks, uint16(p.cfg.MinDelayTicks))
}
