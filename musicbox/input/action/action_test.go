package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetInfo(t *testing.T) {
	tests := []struct {
		action   Action
		name     string
		category Category
	}{
		{SongNext, "SongNext", CategoryPlayback},
		{SongSelect0, "SongSelect0", CategoryPlayback},
		{SongSelect9, "SongSelect9", CategoryPlayback},
		{EmulatorQuit, "Quit", CategoryEmulator},
		{DebugLogLevelDecrease, "LogLevelDecrease", CategoryDebug},
		{Action(999), "Action(999)", CategoryEmulator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := GetInfo(tt.action)
			assert.Equal(t, tt.name, info.Name)
			assert.Equal(t, tt.name, tt.action.String())
			assert.Equal(t, tt.category, info.Category)
		})
	}

	assert.Equal(t, "Debug", CategoryDebug.String())
}

func TestSongIndex(t *testing.T) {
	n, ok := SongIndex(SongSelect4)
	assert.True(t, ok)
	assert.Equal(t, 4, n)

	_, ok = SongIndex(SongNext)
	assert.False(t, ok)
	_, ok = SongIndex(EmulatorPauseToggle)
	assert.False(t, ok)
}
