package terminal

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valerio/go-musicbox/musicbox/backend"
	"github.com/valerio/go-musicbox/musicbox/debug"
	"github.com/valerio/go-musicbox/musicbox/input/action"
	"github.com/valerio/go-musicbox/musicbox/input/event"
)

func newSimBackend(t *testing.T, width, height int, cfg backend.BackendConfig) (*Backend, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(width, height)

	b := New(0)
	require.NoError(t, b.initWithScreen(cfg, screen))
	t.Cleanup(func() { _ = b.Cleanup() })
	return b, screen
}

func rowText(screen tcell.SimulationScreen, y, width int) string {
	runes := make([]rune, 0, width)
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		runes = append(runes, r)
	}
	return string(runes)
}

func testFrame() *debug.Frame {
	return &debug.Frame{
		Number: 10,
		LED:    15,
		Scope:  []int16{0, 1000, -1000},
		State: &debug.PlayerState{
			SongIndex: 1, SongCount: 3, SongName: "Deck the Halls",
			Cursor: 4, Length: 268, Tempo10: 18, BPM: 180,
			Channel: debug.ChannelState{Silent: true},
		},
	}
}

func TestKeyMappings(t *testing.T) {
	assert.Equal(t, action.SongNext, keyMapping[tcell.KeyRight])
	assert.Equal(t, action.SongPrev, keyMapping[tcell.KeyLeft])
	assert.Equal(t, action.EmulatorQuit, keyMapping[tcell.KeyCtrlC])
	assert.Equal(t, action.EmulatorSnapshot, keyMapping[tcell.KeyF9])

	assert.Equal(t, action.SongSelect3, runeMapping['3'])
	assert.Equal(t, action.EmulatorPauseToggle, runeMapping[' '])
	assert.Equal(t, action.EmulatorMuteToggle, runeMapping['m'])
	_, ok := runeMapping['z']
	assert.False(t, ok)
}

func TestUpdateReturnsKeyEvents(t *testing.T) {
	b, screen := newSimBackend(t, 100, 30, backend.BackendConfig{})

	screen.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)

	events, err := b.Update(testFrame())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, backend.InputEvent{Action: action.SongNext, Type: event.Press}, events[0])
	assert.Equal(t, backend.InputEvent{Action: action.SongPrev, Type: event.Press}, events[1])

	events, err = b.Update(testFrame())
	require.NoError(t, err)
	assert.Empty(t, events, "queue is drained on each update")
}

func TestQuitStopsRendering(t *testing.T) {
	b, screen := newSimBackend(t, 100, 30, backend.BackendConfig{})
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	events, err := b.Update(testFrame())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, action.EmulatorQuit, events[0].Action)
	assert.False(t, b.running)
}

func TestRenderShowsSong(t *testing.T) {
	b, screen := newSimBackend(t, 100, 30, backend.BackendConfig{Title: "Music Box"})

	_, err := b.Update(testFrame())
	require.NoError(t, err)

	assert.Contains(t, rowText(screen, 0, 100), "Music Box")
	assert.Contains(t, rowText(screen, 2, leftPanelWidth), "LED")

	found := false
	for y := 0; y < 30; y++ {
		if strings.Contains(rowText(screen, y, leftPanelWidth), "Deck the Halls") {
			found = true
		}
	}
	assert.True(t, found, "song name should be drawn in the left panel")
}

func TestRenderTooSmall(t *testing.T) {
	b, screen := newSimBackend(t, 40, 10, backend.BackendConfig{})

	_, err := b.Update(testFrame())
	require.NoError(t, err)
	assert.Contains(t, rowText(screen, 5, 40), "Terminal too small")
}

func TestHandleAction(t *testing.T) {
	b, _ := newSimBackend(t, 100, 30, backend.BackendConfig{})

	b.HandleAction(action.EmulatorDebugToggle)
	assert.True(t, b.config.ShowDebug)
	b.HandleAction(action.EmulatorDebugToggle)
	assert.False(t, b.config.ShowDebug)

	b.HandleAction(action.DebugLogLevelIncrease)
	assert.Equal(t, slog.LevelDebug, b.logLevel)
	b.HandleAction(action.DebugLogLevelIncrease)
	assert.Equal(t, slog.LevelDebug, b.logLevel, "already at the most verbose level")

	for range 5 {
		b.HandleAction(action.DebugLogLevelDecrease)
	}
	assert.Equal(t, slog.LevelError, b.logLevel)
}

func TestUpdateKeepsACopyOfTheFrame(t *testing.T) {
	b, _ := newSimBackend(t, 100, 30, backend.BackendConfig{})

	frame := testFrame()
	_, err := b.Update(frame)
	require.NoError(t, err)

	// the producer reuses its frame for the next update
	frame.Number = 11
	frame.Scope[1] = 0
	frame.State.SongName = "Silent Night"
	frame.State.Cursor = 6

	require.NotNil(t, b.currentFrame)
	assert.NotSame(t, frame, b.currentFrame)
	assert.Equal(t, uint64(10), b.currentFrame.Number)
	assert.Equal(t, int16(1000), b.currentFrame.Scope[1])
	assert.Equal(t, "Deck the Halls", b.currentFrame.State.SongName)
	assert.Equal(t, 4, b.currentFrame.State.Cursor)
}

func TestInputManagerReceivesActions(t *testing.T) {
	var got []action.Action
	trigger := triggerFunc(func(act action.Action, _ event.Type) bool {
		got = append(got, act)
		return true
	})
	b, screen := newSimBackend(t, 100, 30, backend.BackendConfig{InputManager: trigger})

	screen.InjectKey(tcell.KeyRune, 'r', tcell.ModNone)
	_, err := b.Update(testFrame())
	require.NoError(t, err)
	assert.Equal(t, []action.Action{action.SongRestart}, got)
}

type triggerFunc func(action.Action, event.Type) bool

func (f triggerFunc) Trigger(act action.Action, evt event.Type) bool { return f(act, evt) }
