package musicbox

import (
	"github.com/valerio/go-musicbox/musicbox/debug"
	"github.com/valerio/go-musicbox/musicbox/input/action"
)

// Emulator is what the run loop drives.
type Emulator interface {
	RunUntilFrame() error
	GetCurrentFrame() *debug.Frame
	HandleAction(act action.Action, pressed bool)
	ExtractDebugData() *debug.PlayerState
}

var _ Emulator = (*MusicBox)(nil)
