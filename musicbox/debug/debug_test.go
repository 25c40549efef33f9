package debug

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valerio/go-musicbox/musicbox/player"
	"github.com/valerio/go-musicbox/musicbox/song"
	"github.com/valerio/go-musicbox/musicbox/synth"
	"github.com/valerio/go-musicbox/musicbox/timing"
)

func newPlayer(t *testing.T) *player.Player {
	t.Helper()
	clock, err := timing.Quantize(timing.DefaultClockConfig())
	require.NoError(t, err)

	table := song.NewTable(song.MustParse("scale", "TEMPO, 12, C4F, L04, D4F, L04, E4F, L04"))
	p := player.New(player.DefaultConfig(), table, clock, nil)
	p.Begin()
	return p
}

func TestExtractPlayerStateNotStarted(t *testing.T) {
	s := ExtractPlayerState(newPlayer(t).Snapshot())

	assert.Equal(t, "scale", s.SongName)
	assert.Equal(t, 1, s.SongCount)
	assert.Equal(t, player.NotStarted, s.Cursor)
	assert.Equal(t, "-", s.Instruction)
	assert.True(t, s.Channel.Silent)
	assert.Empty(t, s.Channel.Note)
	assert.Equal(t, uint32(23982), s.AudioHz)
	assert.Equal(t, uint16(196), s.NoteHz)
	require.NotEmpty(t, s.Listing)
	assert.Equal(t, 0, s.Listing[0].Offset)
}

func TestExtractPlayerStatePlaying(t *testing.T) {
	p := newPlayer(t)
	for range 122 {
		p.Tick()
	}

	s := ExtractPlayerState(p.Snapshot())
	assert.Equal(t, 2, s.Cursor)
	assert.Equal(t, "NOTE C4 1/4", s.Instruction)
	assert.False(t, s.Channel.Silent)
	assert.Equal(t, "C4", s.Channel.Note)
	assert.InDelta(t, 261.6, s.Channel.FrequencyHz, 1)
	assert.Equal(t, uint8(12), s.Tempo10)
	assert.Equal(t, uint64(122), s.AudioTicks)
	assert.Equal(t, uint64(1), s.NoteTicks)
}

func TestNoteForIncrement(t *testing.T) {
	note, ok := NoteForIncrement(synth.IncrementFor(69))
	assert.True(t, ok)
	assert.Equal(t, uint8(69), note)

	_, ok = NoteForIncrement(0)
	assert.False(t, ok)
}

func TestFrameClone(t *testing.T) {
	f := &Frame{
		Number: 7,
		State:  &PlayerState{SongName: "a"},
		Scope:  []int16{1, 2, 3},
	}
	c := f.Clone()
	require.NotSame(t, f, c)
	assert.Equal(t, f, c)

	c.Scope[0] = 99
	c.State.SongName = "b"
	assert.Equal(t, int16(1), f.Scope[0], "scope must be deep copied")
	assert.Equal(t, "a", f.State.SongName, "state must be deep copied")

	var nilFrame *Frame
	assert.Nil(t, nilFrame.Clone())
}

func TestFormatState(t *testing.T) {
	p := newPlayer(t)
	for range 122 {
		p.Tick()
	}
	s := ExtractPlayerState(p.Snapshot())
	s.Paused = true

	var buf bytes.Buffer
	require.NoError(t, FormatState(&buf, s))
	out := buf.String()

	assert.Contains(t, out, `song       1/1 "scale"`)
	assert.Contains(t, out, "120 BPM nominal")
	assert.Contains(t, out, "voice      C4")
	assert.Contains(t, out, ">0002: NOTE C4 1/4")
	assert.Contains(t, out, "paused")

	buf.Reset()
	require.NoError(t, FormatState(&buf, nil))
	assert.Equal(t, "no player state\n", buf.String())
}

func TestSaveStateSnapshot(t *testing.T) {
	dir := t.TempDir()
	s := ExtractPlayerState(newPlayer(t).Snapshot())

	path, err := SaveStateSnapshot(s, "musicbox_state", dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, dir))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "voice      silent")

	_, err = SaveStateSnapshot(s, "x", dir+"/missing")
	assert.Error(t, err)
}
