package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWAVWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	w, err := NewWAVWriter(path, 23982)
	require.NoError(t, err)

	require.NoError(t, w.Write([]int16{0, 256, -256}))
	require.NoError(t, w.Write(nil))
	require.NoError(t, w.Write([]int16{32512, -32768}))
	assert.Equal(t, 5, w.Samples())
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	require.True(t, dec.IsValidFile())
	assert.Equal(t, uint32(23982), dec.SampleRate)
	assert.Equal(t, uint16(1), dec.NumChans)
	assert.Equal(t, uint16(16), dec.BitDepth)

	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 256, -256, 32512, -32768}, buf.Data)
}

func TestWAVWriterBadPath(t *testing.T) {
	_, err := NewWAVWriter(filepath.Join(t.TempDir(), "missing", "out.wav"), 24000)
	assert.Error(t, err)
}
