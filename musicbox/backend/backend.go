package backend

import (
	"github.com/valerio/go-musicbox/musicbox/debug"
	"github.com/valerio/go-musicbox/musicbox/input/action"
	"github.com/valerio/go-musicbox/musicbox/input/event"
)

// Backend is a host platform for the music box: it shows the LED and the
// player state, and turns platform input into actions.
// Backends are responsible for:
// - Rendering frames to their specific output (terminal, SDL window, etc.)
// - Translating platform-specific events to InputEvents
// - Handling backend-specific features (snapshots, debug panels)
type Backend interface {
	// Init configures the backend. Required before calling Update.
	Init(config BackendConfig) error

	// Update renders the frame and returns the input collected since the
	// previous call. The frame is only valid for the duration of the call.
	Update(frame *debug.Frame) ([]InputEvent, error)

	// Cleanup resources when shutting down
	Cleanup() error
}

// InputEvent is an action raised by a backend.
type InputEvent struct {
	Action action.Action
	Type   event.Type
}

// Trigger dispatches actions to registered callbacks. *input.Manager
// satisfies it.
type Trigger interface {
	Trigger(act action.Action, evt event.Type) bool
}

// BackendConfig holds configuration for backends
type BackendConfig struct {
	Title     string
	Scale     int
	ShowDebug bool // Backends may ignore unsupported features
	Callbacks BackendCallbacks

	// InputManager, when set, receives actions directly in addition to the
	// events returned by Update.
	InputManager Trigger
}

// BackendCallbacks allows backends to communicate with the emulator
type BackendCallbacks struct {
	OnQuit func() // Backend requests shutdown (e.g., window close)

	// OnDebugMessage is optional.
	OnDebugMessage func(message string)
}

// ActionHandler is implemented by backends that react to actions themselves,
// such as toggling their debug panels.
type ActionHandler interface {
	HandleAction(act action.Action)
}
