// Package musicbox wires the player to its host: it quantizes the timer,
// raises the tick interrupt, collects the speaker samples and the LED level,
// and builds frames for a backend.
package musicbox

import (
	"fmt"
	"log/slog"

	"github.com/valerio/go-musicbox/musicbox/audio"
	"github.com/valerio/go-musicbox/musicbox/config"
	"github.com/valerio/go-musicbox/musicbox/debug"
	"github.com/valerio/go-musicbox/musicbox/input/action"
	"github.com/valerio/go-musicbox/musicbox/irq"
	"github.com/valerio/go-musicbox/musicbox/player"
	"github.com/valerio/go-musicbox/musicbox/song"
	"github.com/valerio/go-musicbox/musicbox/timing"
)

// silentSample is what the speaker pin sees while paused or muted.
const silentSample = 0

// MusicBox is the device: one interrupt line driving one player.
type MusicBox struct {
	cfg    config.Config
	clock  timing.Clock
	line   irq.Line
	player *player.Player
	buffer *audio.Buffer

	ticksPerFrame int
	frameCount    uint64
	paused        bool
	muted         bool

	service func()

	lastStats player.Stats
	lastSong  int
}

// New builds and powers on a music box playing table.
func New(cfg config.Config, table song.Table) (*MusicBox, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	clock, err := timing.Quantize(cfg.Clock())
	if err != nil {
		return nil, fmt.Errorf("quantizing clock: %w", err)
	}

	m := &MusicBox{
		cfg:           cfg,
		clock:         clock,
		buffer:        audio.NewBuffer(int(clock.AudioHz / 4)),
		ticksPerFrame: timing.TicksPerFrame(clock.AudioHz, timing.DefaultFPS),
	}
	m.player = player.New(cfg.Player(), table, clock, &m.line)
	m.service = m.serviceTick

	m.player.Begin()
	m.player.SetSong(cfg.StartSong)
	m.lastSong = m.player.Song()

	slog.Debug("Music box powered on", "clock", clock, "songs", table.Len(), "start_song", m.lastSong)
	return m, nil
}

func (m *MusicBox) serviceTick() {
	sample, _, _ := m.player.Tick()
	if m.muted {
		sample = silentSample
	}
	m.buffer.Push(sample)
}

// Tick runs one audio tick. While paused the player does not advance and
// the speaker is silent.
func (m *MusicBox) Tick() {
	if m.paused {
		m.buffer.Push(silentSample)
		return
	}
	m.line.Raise(m.service)
}

// RunTicks runs n audio ticks.
func (m *MusicBox) RunTicks(n int) {
	for range n {
		m.Tick()
	}
	m.logTransitions()
}

// RunUntilFrame runs one frame's worth of audio ticks.
func (m *MusicBox) RunUntilFrame() error {
	m.RunTicks(m.ticksPerFrame)
	m.frameCount++
	return nil
}

// logTransitions reports song changes and guard hits since the last call.
// It runs between handler invocations, never inside one.
func (m *MusicBox) logTransitions() {
	stats := m.player.Stats()
	if n := stats.GuardExhausted - m.lastStats.GuardExhausted; n > 0 {
		slog.Warn("Instruction guard exhausted", "song", m.lastSong, "count", n)
	}

	current := m.player.Song()
	if current != m.lastSong || stats.SongEnds != m.lastStats.SongEnds {
		slog.Debug("Song changed", "from", m.lastSong, "to", current, "song_ends", stats.SongEnds)
		m.lastSong = current
	}
	m.lastStats = stats
}

// GetCurrentFrame returns a frame a backend may keep.
func (m *MusicBox) GetCurrentFrame() *debug.Frame {
	return &debug.Frame{
		Number: m.frameCount,
		State:  m.ExtractDebugData(),
		LED:    m.LED(),
		Scope:  m.buffer.Scope(),
		Muted:  m.muted,
	}
}

// ExtractDebugData snapshots the player for display.
func (m *MusicBox) ExtractDebugData() *debug.PlayerState {
	s := debug.ExtractPlayerState(m.player.Snapshot())
	s.Paused = m.paused
	return s
}

// HandleAction applies a playback or emulator action. Only presses act.
func (m *MusicBox) HandleAction(act action.Action, pressed bool) {
	if !pressed {
		return
	}

	if i, ok := action.SongIndex(act); ok {
		m.SetSong(i)
		return
	}

	switch act {
	case action.SongNext:
		m.NextSong()
	case action.SongPrev:
		m.PrevSong()
	case action.SongRestart:
		m.Restart()
	case action.EmulatorPauseToggle:
		m.paused = !m.paused
		slog.Info("Playback paused", "paused", m.paused)
	case action.EmulatorMuteToggle:
		m.SetMuted(!m.muted)
		slog.Info("Speaker muted", "muted", m.muted)
	}
}

func (m *MusicBox) SetSong(i int) {
	m.player.SetSong(i)
	m.logTransitions()
}

func (m *MusicBox) NextSong() {
	m.player.NextSong()
	m.logTransitions()
}

func (m *MusicBox) PrevSong() {
	m.player.PrevSong()
	m.logTransitions()
}

func (m *MusicBox) Restart() {
	m.player.Restart()
	m.logTransitions()
}

// LED returns the garland level. Song changes darken it straight away, even
// while paused.
func (m *MusicBox) LED() uint8 { return m.player.LED() }

// SetMuted silences the speaker without stopping the player.
func (m *MusicBox) SetMuted(muted bool) {
	m.line.Critical(func() { m.muted = muted })
}

func (m *MusicBox) Muted() bool { return m.muted }

func (m *MusicBox) Paused() bool { return m.paused }

// Samples returns the speaker output as PCM. Real-time sinks pull from it.
func (m *MusicBox) Samples() *audio.Buffer { return m.buffer }

func (m *MusicBox) Clock() timing.Clock { return m.clock }

func (m *MusicBox) Player() *player.Player { return m.player }

func (m *MusicBox) FrameCount() uint64 { return m.frameCount }

func (m *MusicBox) TicksPerFrame() int { return m.ticksPerFrame }

// Interrupts returns how many tick handlers have run.
func (m *MusicBox) Interrupts() uint64 { return m.line.Serviced() }
