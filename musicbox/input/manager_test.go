package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/valerio/go-musicbox/musicbox/backend"
	"github.com/valerio/go-musicbox/musicbox/input/action"
	"github.com/valerio/go-musicbox/musicbox/input/event"
)

func TestManager_Debouncing(t *testing.T) {
	tests := []struct {
		name        string
		eventType   event.Type
		timeBetween time.Duration
		expectRuns  int
	}{
		{"rapid press is debounced", event.Press, 100 * time.Millisecond, 1},
		{"slow press passes", event.Press, 400 * time.Millisecond, 2},
		{"rapid release is debounced", event.Release, 10 * time.Millisecond, 1},
		{"hold is never debounced", event.Hold, time.Millisecond, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager()
			clock := time.Unix(1000, 0)
			m.now = func() time.Time { return clock }

			runs := 0
			m.On(action.SongNext, tt.eventType, func() { runs++ })

			assert.True(t, m.Trigger(action.SongNext, tt.eventType), "first event always passes")
			clock = clock.Add(tt.timeBetween)
			m.Trigger(action.SongNext, tt.eventType)

			assert.Equal(t, tt.expectRuns, runs)
		})
	}
}

func TestManager_Callbacks(t *testing.T) {
	m := NewManager()
	var order []string
	m.On(action.SongPrev, event.Press, func() { order = append(order, "first") })
	m.On(action.SongPrev, event.Press, func() { order = append(order, "second") })

	assert.True(t, m.Trigger(action.SongPrev, event.Press))
	assert.Equal(t, []string{"first", "second"}, order)

	assert.False(t, m.Trigger(action.SongRestart, event.Press), "no callbacks registered")
	assert.False(t, m.Trigger(action.SongPrev, event.Release), "no release callbacks registered")
}

func TestManager_ActionsDebounceIndependently(t *testing.T) {
	m := NewManager()
	next, prev := 0, 0
	m.On(action.SongNext, event.Press, func() { next++ })
	m.On(action.SongPrev, event.Press, func() { prev++ })

	m.Trigger(action.SongNext, event.Press)
	m.Trigger(action.SongPrev, event.Press)
	m.Trigger(action.SongNext, event.Press)

	assert.Equal(t, 1, next)
	assert.Equal(t, 1, prev)
}

func TestManager_HandleEvents(t *testing.T) {
	m := NewManager()
	clock := time.Unix(1000, 0)
	m.now = func() time.Time { return clock }

	var songs []string
	m.On(action.SongNext, event.Press, func() { songs = append(songs, "next") })
	m.On(action.SongPrev, event.Press, func() { songs = append(songs, "prev") })

	frame := []backend.InputEvent{
		{Action: action.SongNext, Type: event.Press},
		{Action: action.SongNext, Type: event.Press},
		{Action: action.SongNext, Type: event.Release},
		{Action: action.SongPrev, Type: event.Press},
	}
	assert.Equal(t, 2, m.HandleEvents(frame))
	assert.Equal(t, []string{"next", "prev"}, songs)

	clock = clock.Add(time.Second)
	assert.Equal(t, 1, m.HandleEvents(frame[:1]), "a later frame changes the song again")
	assert.Equal(t, 0, m.HandleEvents(nil))
}
