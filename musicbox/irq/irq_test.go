package irq

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRaiseCountsHandlers(t *testing.T) {
	var line Line
	runs := 0
	for range 10 {
		line.Raise(func() { runs++ })
	}
	assert.Equal(t, 10, runs)
	assert.Equal(t, uint64(10), line.Serviced())
}

func TestGuardExcludesHandler(t *testing.T) {
	var line Line
	var a, b int

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range 10000 {
			line.Raise(func() {
				assert.Equal(t, a, b, "handler saw a torn update")
			})
		}
	}()

	for range 10000 {
		line.Critical(func() {
			a++
			b++
		})
	}
	wg.Wait()
	assert.Equal(t, uint64(10000), line.Serviced())
}

func TestRestoreIsIdempotent(t *testing.T) {
	var line Line
	g := line.Disable()
	g.Restore()
	g.Restore()

	done := false
	line.Raise(func() { done = true })
	assert.True(t, done)
}

func TestCriticalRestoresOnPanic(t *testing.T) {
	var line Line
	assert.Panics(t, func() {
		line.Critical(func() { panic("boom") })
	})

	done := false
	line.Raise(func() { done = true })
	assert.True(t, done, "line must be unmasked after a panic")
}
