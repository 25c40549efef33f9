// Package irq models the single timer interrupt of the music box. Code outside
// the handler that touches state the handler uses must hold a Guard, the same
// way firmware brackets such code with cli/sei.
package irq

import (
	"sync"
	"sync/atomic"
)

// Line is one interrupt source. The zero value is ready to use.
type Line struct {
	mu       sync.Mutex
	serviced atomic.Uint64
}

// Guard is a held critical section. Restore releases it exactly once.
type Guard struct {
	line     *Line
	restored bool
}

// Raise runs handler as one interrupt. It waits while a Guard is held, so the
// handler never observes a half-finished update.
func (l *Line) Raise(handler func()) {
	l.mu.Lock()
	handler()
	l.mu.Unlock()
	l.serviced.Add(1)
}

// Disable masks the line until the returned Guard is restored.
func (l *Line) Disable() *Guard {
	l.mu.Lock()
	return &Guard{line: l}
}

// Restore unmasks the line. Extra calls are no-ops.
func (g *Guard) Restore() {
	if g.restored {
		return
	}
	g.restored = true
	g.line.mu.Unlock()
}

// Critical runs fn with the line masked.
func (l *Line) Critical(fn func()) {
	g := l.Disable()
	defer g.Restore()
	fn()
}

// Serviced returns how many handlers have run.
func (l *Line) Serviced() uint64 {
	return l.serviced.Load()
}
