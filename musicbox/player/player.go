// Package player is the music box interpreter. It walks the current song's
// instruction stream on the note-tick clock, drives the synth voice and keeps
// the LED breath in step with the tempo.
//
// Tick is the interrupt handler body: it never blocks, allocates or fails.
// Everything else mutates state inside the irq guard.
package player

import (
	"github.com/valerio/go-musicbox/musicbox/irq"
	"github.com/valerio/go-musicbox/musicbox/lights"
	"github.com/valerio/go-musicbox/musicbox/song"
	"github.com/valerio/go-musicbox/musicbox/synth"
	"github.com/valerio/go-musicbox/musicbox/timing"
)

// Player owns the voice, the breath generator and the interpreter state.
type Player struct {
	cfg   Config
	table song.Table
	clock timing.Clock
	line  *irq.Line

	state   State
	current song.Song
	ch      synth.Channel
	breath  *lights.Breath
	led     uint8
	stats   Stats
}

// New builds a player for table on clock. Control methods mask line while
// they run; pass the line the caller raises Tick on. A nil line gets a
// private one. Call Begin before the first Tick.
func New(cfg Config, table song.Table, clock timing.Clock, line *irq.Line) *Player {
	if line == nil {
		line = &irq.Line{}
	}
	if cfg.GuardLimit <= 0 {
		cfg.GuardLimit = DefaultGuardLimit
	}
	if clock.NoteDivider == 0 {
		clock.NoteDivider = 1
	}

	return &Player{
		cfg:    cfg,
		table:  table,
		clock:  clock,
		line:   line,
		breath: lights.New(cfg.Lights),
	}
}

// Tick runs one audio tick: render a sample, then every Divider ticks run a
// note-tick. It returns the speaker sample, the LED level and whether a
// note-tick happened.
func (p *Player) Tick() (sample, led uint8, noteTick bool) {
	sample = synth.RenderSample(&p.ch)
	p.stats.AudioTicks++

	p.state.DividerCount++
	if p.state.DividerCount >= p.state.Divider {
		p.state.DividerCount = 0
		p.noteTick()
		noteTick = true
	}
	return sample, p.led, noteTick
}

func (p *Player) noteTick() {
	p.stats.NoteTicks++
	p.led = p.breath.Tick()

	if p.state.Delay > 0 {
		p.state.Delay--
	}
	if p.state.Delay != 0 {
		return
	}

	for range p.cfg.GuardLimit {
		next := p.state.Cursor + 2
		if next < 0 || p.state.Length < 2 || next+1 >= p.state.Length {
			p.songEnd()
			return
		}
		p.state.Cursor = next

		op, val := p.current.Pair(next)
		switch {
		case op == song.Tempo:
			p.applyTempo10(val)
			continue
		case op == song.Trans:
			p.state.Transpose = int8(val)
			continue
		case op == song.Pause:
			p.state.Delay = p.durationToTicks(val)
			synth.Silence(&p.ch)
		case song.IsNote(op):
			p.state.Delay = p.durationToTicks(val)
			note := int(op) + int(p.state.Transpose)
			synth.NoteOn(&p.ch, uint8(min(max(note, 1), 127)))
		default:
			// reserved opcode, skip the pair
			continue
		}
		break
	}

	if p.state.Delay == 0 {
		// only tempo, transpose or unknown pairs within the guard
		p.stats.GuardExhausted++
		p.state.Delay = uint16(max(p.cfg.MinDelayTicks, 1))
		synth.Silence(&p.ch)
	}
}

// songEnd moves to the next song, leaving a gap of silence before it starts.
func (p *Player) songEnd() {
	p.stats.SongEnds++
	p.load(p.table.Index(p.state.Song + 1))
	p.state.Delay = max(p.cfg.SongGapTicks, 1)
}

// load resets the interpreter to the start of song i with the default tempo
// and darkens the LED. The divider counter is left alone.
func (p *Player) load(i int) {
	p.current = p.table.At(i)
	p.state.Song = p.table.Index(i)
	p.state.Cursor = NotStarted
	p.state.Length = p.current.Len()
	p.state.Transpose = 0
	p.state.Divider = p.clock.NoteDivider
	p.applyTempo10(0)
	synth.Silence(&p.ch)
	p.breath.Reset()
	p.led = 0
}
