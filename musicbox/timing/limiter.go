package timing

import "time"

// Limiter paces the emulated interrupt against wall-clock time.
type Limiter interface {
	// WaitForNextFrame blocks until it's time for the next frame.
	// Returns immediately if timing is behind schedule.
	WaitForNextFrame()

	// Reset resets the timing state, useful after pauses.
	Reset()
}

// NewNoOpLimiter returns a limiter that doesn't limit (for headless mode).
func NewNoOpLimiter() Limiter {
	return &noOpLimiter{}
}

type noOpLimiter struct{}

func (n *noOpLimiter) WaitForNextFrame() {}
func (n *noOpLimiter) Reset()            {}

// DefaultFPS is the rate the run loop hands frames to a backend.
const DefaultFPS = 60

// TicksPerFrame returns how many audio ticks make up one frame at fps.
func TicksPerFrame(audioHz uint32, fps int) int {
	if fps <= 0 {
		fps = DefaultFPS
	}
	n := (int(audioHz) + fps/2) / fps
	return max(n, 1)
}

// FrameDuration returns the wall-clock time ticksPerFrame audio ticks take.
func FrameDuration(audioHz uint32, ticksPerFrame int) time.Duration {
	if audioHz == 0 {
		return 0
	}
	return time.Duration(int64(ticksPerFrame) * int64(time.Second) / int64(audioHz))
}
