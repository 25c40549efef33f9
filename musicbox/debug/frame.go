package debug

import (
	clone "github.com/huandu/go-clone/generic"
)

// Frame is what a backend renders: the player state plus the outputs since
// the previous frame.
type Frame struct {
	Number uint64
	State  *PlayerState
	LED    uint8
	Scope  []int16 // recent speaker samples, oldest first
	Muted  bool
}

// Clone deep-copies the frame so a backend may keep it past the next frame.
func (f *Frame) Clone() *Frame {
	if f == nil {
		return nil
	}
	return clone.Clone(f)
}
