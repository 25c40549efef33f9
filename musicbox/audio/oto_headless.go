//go:build headless

package audio

import "errors"

var ErrNoAudioDevice = errors.New("audio output not built in (headless build)")

type OtoSink struct{}

func NewOtoSink(sampleRate int, provider Provider) (*OtoSink, error) {
	return nil, ErrNoAudioDevice
}

func (s *OtoSink) Read(p []byte) (int, error) { return len(p), nil }

func (s *OtoSink) Start() {}

func (s *OtoSink) Close() error { return nil }
