//go:build !headless

package audio

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const otoBufferSize = 60 * time.Millisecond

// OtoSink plays samples pulled from a Provider on the default output device.
type OtoSink struct {
	ctx      *oto.Context
	player   *oto.Player
	provider Provider
	started  bool
	mu       sync.Mutex
}

func NewOtoSink(sampleRate int, provider Provider) (*OtoSink, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   otoBufferSize,
	})
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	s := &OtoSink{ctx: ctx, provider: provider}
	s.player = ctx.NewPlayer(s)
	return s, nil
}

// Read implements io.Reader for the oto player.
func (s *OtoSink) Read(p []byte) (int, error) {
	samples := s.provider.GetSamples(len(p) / 2)
	for i, v := range samples {
		binary.LittleEndian.PutUint16(p[2*i:], uint16(v))
	}
	return len(samples) * 2, nil
}

func (s *OtoSink) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		s.player.Play()
		s.started = true
	}
}

func (s *OtoSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.started = false
	return s.player.Close()
}
