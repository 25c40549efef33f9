// Package audio moves speaker samples out of the emulated interrupt: a
// bounded buffer the handler writes into, a realtime oto sink and a WAV
// writer that read from it.
package audio

import "sync"

// Provider supplies PCM samples to a sink.
type Provider interface {
	GetSamples(count int) []int16
}

// DefaultScopeSize is how many recent samples Buffer keeps for display.
const DefaultScopeSize = 256

// PCM converts an unsigned 8-bit PWM duty to 16-bit PCM. A silent speaker
// (duty 0) is PCM 0, so note edges and decays stay off full-scale DC.
func PCM(sample uint8) int16 {
	return int16(sample) << 7
}

// Buffer is a bounded FIFO of PCM samples. When full, the oldest samples are
// dropped. It also keeps the most recent samples for a scope view, whether or
// not they have been consumed.
type Buffer struct {
	mu       sync.Mutex
	samples  []int16
	capacity int
	dropped  uint64

	scope    []int16
	scopePos int
}

func NewBuffer(capacity int) *Buffer {
	capacity = max(capacity, 1)
	return &Buffer{
		samples:  make([]int16, 0, capacity),
		capacity: capacity,
		scope:    make([]int16, DefaultScopeSize),
	}
}

// Push appends one speaker sample.
func (b *Buffer) Push(sample uint8) {
	pcm := PCM(sample)

	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.samples) >= b.capacity {
		// drop the oldest quarter in one go so a stalled sink does not
		// cost a copy per sample
		drop := max(b.capacity/4, 1)
		n := copy(b.samples, b.samples[drop:])
		b.samples = b.samples[:n]
		b.dropped += uint64(drop)
	}
	b.samples = append(b.samples, pcm)

	b.scope[b.scopePos] = pcm
	b.scopePos = (b.scopePos + 1) % len(b.scope)
}

// GetSamples removes and returns count samples, padding with silence when
// fewer are buffered.
func (b *Buffer) GetSamples(count int) []int16 {
	b.mu.Lock()
	defer b.mu.Unlock()

	samples := make([]int16, count)
	n := copy(samples, b.samples)
	rest := copy(b.samples, b.samples[n:])
	b.samples = b.samples[:rest]
	return samples
}

// Drain removes and returns everything buffered.
func (b *Buffer) Drain() []int16 {
	b.mu.Lock()
	defer b.mu.Unlock()

	samples := append([]int16(nil), b.samples...)
	b.samples = b.samples[:0]
	return samples
}

// Len returns the number of buffered samples.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.samples)
}

// Dropped returns how many samples were discarded because the buffer was full.
func (b *Buffer) Dropped() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}

// Scope returns the most recent samples, oldest first.
func (b *Buffer) Scope() []int16 {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]int16, 0, len(b.scope))
	out = append(out, b.scope[b.scopePos:]...)
	out = append(out, b.scope[:b.scopePos]...)
	return out
}

// Reset drops buffered samples and clears the scope.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.samples = b.samples[:0]
	clear(b.scope)
	b.scopePos = 0
}
