package player

import (
	"github.com/valerio/go-musicbox/musicbox/song"
	"github.com/valerio/go-musicbox/musicbox/synth"
	"github.com/valerio/go-musicbox/musicbox/timing"
)

// Begin puts the player in its power-on state: song 0, not started, default
// tempo, silent voice and dark LED.
func (p *Player) Begin() {
	p.line.Critical(func() {
		synth.Begin(&p.ch)
		p.breath.Begin()
		p.led = 0
		p.state = State{}
		p.load(0)
		p.state.Delay = 1
	})
}

// SetSong selects song i from its start. An out-of-range index selects song 0.
func (p *Player) SetSong(i int) {
	p.line.Critical(func() { p.selectSong(i) })
}

// NextSong selects the following song, wrapping to the first.
func (p *Player) NextSong() {
	p.line.Critical(func() { p.selectSong(p.state.Song + 1) })
}

// PrevSong selects the preceding song, wrapping to the last.
func (p *Player) PrevSong() {
	p.line.Critical(func() {
		i := p.state.Song - 1
		if i < 0 {
			i = p.table.Len() - 1
		}
		p.selectSong(i)
	})
}

// Restart plays the current song again from its start.
func (p *Player) Restart() {
	p.line.Critical(func() { p.selectSong(p.state.Song) })
}

func (p *Player) selectSong(i int) {
	p.load(p.table.Index(i))
	p.state.Delay = 1
	p.state.DividerCount = 0
}

// Snapshot copies the player state under the guard.
func (p *Player) Snapshot() Snapshot {
	var snap Snapshot
	p.line.Critical(func() {
		snap = Snapshot{
			State:     p.state,
			Stats:     p.stats,
			SongName:  p.current.Name,
			SongCount: p.table.Len(),
			Current:   p.current,
			Clock:     p.clock,
			Channel:   p.ch,
			LED:       p.led,
			Breath:    p.breath.Step(),
		}
	})
	return snap
}

// Stats returns the handler event counters.
func (p *Player) Stats() Stats {
	var s Stats
	p.line.Critical(func() { s = p.stats })
	return s
}

// LED returns the level latched by the last note-tick, or 0 after a song
// change.
func (p *Player) LED() uint8 {
	var led uint8
	p.line.Critical(func() { led = p.led })
	return led
}

// Song returns the selected song index.
func (p *Player) Song() int {
	var i int
	p.line.Critical(func() { i = p.state.Song })
	return i
}

// Table returns the song table.
func (p *Player) Table() song.Table { return p.table }

// Clock returns the quantized timer the tempo math runs on.
func (p *Player) Clock() timing.Clock { return p.clock }
