package input

import (
	"time"

	"github.com/valerio/go-musicbox/musicbox/backend"
	"github.com/valerio/go-musicbox/musicbox/input/action"
	"github.com/valerio/go-musicbox/musicbox/input/event"
)

const (
	// debounceDuration is the minimum time between debounced events
	debounceDuration = 300 * time.Millisecond
)

// Manager handles input actions and their associated callbacks
type Manager struct {
	handlers      map[action.Action]map[event.Type][]func()
	lastTriggered map[action.Action]map[event.Type]time.Time
	now           func() time.Time
}

func NewManager() *Manager {
	return &Manager{
		handlers:      make(map[action.Action]map[event.Type][]func()),
		lastTriggered: make(map[action.Action]map[event.Type]time.Time),
		now:           time.Now,
	}
}

// On registers a callback for a specific action and event type
func (m *Manager) On(act action.Action, evt event.Type, callback func()) {
	if m.handlers[act] == nil {
		m.handlers[act] = make(map[event.Type][]func())
	}
	m.handlers[act][evt] = append(m.handlers[act][evt], callback)
}

// Trigger runs the callbacks registered for act and evt. Press and Release
// are debounced per action. Returns whether anything ran.
func (m *Manager) Trigger(act action.Action, evt event.Type) bool {
	if evt == event.Press || evt == event.Release {
		now := m.now()
		if m.lastTriggered[act] == nil {
			m.lastTriggered[act] = make(map[event.Type]time.Time)
		}
		lastTime, seen := m.lastTriggered[act][evt]
		if seen && now.Sub(lastTime) < debounceDuration {
			return false
		}
		m.lastTriggered[act][evt] = now
	}

	return m.dispatch(act, evt)
}

// HandleEvents triggers a backend's events in the order they arrived and
// returns how many ran a callback. A song key bounced twice in one frame
// changes the song once.
func (m *Manager) HandleEvents(events []backend.InputEvent) int {
	handled := 0
	for _, evt := range events {
		if m.Trigger(evt.Action, evt.Type) {
			handled++
		}
	}
	return handled
}

func (m *Manager) dispatch(act action.Action, evt event.Type) bool {
	callbacks := m.handlers[act][evt]
	for _, callback := range callbacks {
		callback()
	}
	return len(callbacks) > 0
}
