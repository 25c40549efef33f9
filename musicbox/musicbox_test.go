package musicbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valerio/go-musicbox/musicbox/audio"
	"github.com/valerio/go-musicbox/musicbox/config"
	"github.com/valerio/go-musicbox/musicbox/input/action"
	"github.com/valerio/go-musicbox/musicbox/song"
)

func newBox(t *testing.T) *MusicBox {
	t.Helper()
	m, err := New(config.Default(), song.Builtin())
	require.NoError(t, err)
	return m
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Prescaler = 0
	_, err := New(cfg, song.Builtin())
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNewStartSong(t *testing.T) {
	tests := []struct {
		name  string
		start int
		want  int
	}{
		{"first", 0, 0},
		{"second", 1, 1},
		{"out of range coerced", 99, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.StartSong = tt.start
			m, err := New(cfg, song.Builtin())
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Player().Song())
		})
	}
}

func TestRunUntilFrame(t *testing.T) {
	m := newBox(t)
	require.Equal(t, 400, m.TicksPerFrame(), "23982 Hz at 60 frames per second")

	require.NoError(t, m.RunUntilFrame())
	assert.Equal(t, uint64(1), m.FrameCount())
	assert.Equal(t, uint64(400), m.Interrupts())
	assert.Equal(t, 400, m.Samples().Len())

	stats := m.Player().Stats()
	assert.Equal(t, uint64(400), stats.AudioTicks)
	assert.Equal(t, uint64(400/122), stats.NoteTicks)
}

func TestFirstNoteSounds(t *testing.T) {
	m := newBox(t)
	require.NoError(t, m.RunUntilFrame())

	audible := false
	for _, s := range m.Samples().Drain() {
		if s != audio.PCM(0) {
			audible = true
		}
	}
	assert.True(t, audible, "the first note starts within the first frame")
}

func TestPauseStopsThePlayer(t *testing.T) {
	m := newBox(t)
	m.RunTicks(10)

	m.HandleAction(action.EmulatorPauseToggle, true)
	require.True(t, m.Paused())
	m.Samples().Drain()

	m.RunTicks(500)
	assert.Equal(t, uint64(10), m.Interrupts(), "paused ticks do not raise the interrupt")
	for _, s := range m.Samples().Drain() {
		require.Equal(t, audio.PCM(0), s)
	}
	assert.True(t, m.ExtractDebugData().Paused)

	m.HandleAction(action.EmulatorPauseToggle, false)
	assert.True(t, m.Paused(), "releases are ignored")
	m.HandleAction(action.EmulatorPauseToggle, true)
	assert.False(t, m.Paused())
}

func TestMuteKeepsPlaying(t *testing.T) {
	m := newBox(t)
	m.HandleAction(action.EmulatorMuteToggle, true)
	require.True(t, m.Muted())

	require.NoError(t, m.RunUntilFrame())
	assert.Equal(t, uint64(400), m.Interrupts())
	for _, s := range m.Samples().Drain() {
		require.Equal(t, audio.PCM(0), s)
	}
	snap := m.Player().Snapshot()
	assert.False(t, snap.Channel.Silent(), "the voice keeps running while muted")
	assert.True(t, m.GetCurrentFrame().Muted)
}

func TestSongActions(t *testing.T) {
	m := newBox(t)
	count := m.Player().Table().Len()
	require.Equal(t, 3, count)

	steps := []struct {
		act  action.Action
		want int
	}{
		{action.SongNext, 1},
		{action.SongNext, 2},
		{action.SongNext, 0},
		{action.SongPrev, 2},
		{action.SongSelect1, 1},
		{action.SongSelect9, 0},
		{action.SongRestart, 0},
	}
	for _, step := range steps {
		m.HandleAction(step.act, true)
		assert.Equal(t, step.want, m.Player().Song(), "after %s", step.act)
	}
}

func TestGetCurrentFrame(t *testing.T) {
	m := newBox(t)
	for range 3 {
		require.NoError(t, m.RunUntilFrame())
	}

	frame := m.GetCurrentFrame()
	assert.Equal(t, uint64(3), frame.Number)
	require.NotNil(t, frame.State)
	assert.Equal(t, "Jingle Bells", frame.State.SongName)
	assert.Equal(t, 3, frame.State.SongCount)
	assert.Len(t, frame.Scope, audio.DefaultScopeSize)
	assert.NotEmpty(t, frame.State.Listing)

	clone := frame.Clone()
	clone.Scope[0] = 42
	assert.NotEqual(t, clone.Scope[0], frame.Scope[0], "clones do not share samples")
}

func TestLEDBreathes(t *testing.T) {
	m := newBox(t)

	var peak uint8
	for range 120 {
		require.NoError(t, m.RunUntilFrame())
		peak = max(peak, m.LED())
	}
	assert.Greater(t, peak, uint8(0))
	assert.LessOrEqual(t, peak, uint8(config.Default().LEDMaxLevel))
}

func TestSongChangeDarkensLEDWhilePaused(t *testing.T) {
	m := newBox(t)
	for range 120 {
		require.NoError(t, m.RunUntilFrame())
		if m.LED() > 0 {
			break
		}
	}
	require.Positive(t, m.LED())

	m.HandleAction(action.EmulatorPauseToggle, true)
	m.HandleAction(action.SongNext, true)
	assert.Zero(t, m.LED())
	assert.Zero(t, m.GetCurrentFrame().LED)
	assert.Zero(t, m.GetCurrentFrame().State.LED)
}

func BenchmarkRunUntilFrame(b *testing.B) {
	m, err := New(config.Default(), song.Builtin())
	require.NoError(b, err)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.RunUntilFrame()
		m.Samples().Drain()
	}
}
