package main

import (
	"log/slog"

	"github.com/valerio/go-musicbox/musicbox"
	"github.com/valerio/go-musicbox/musicbox/audio"
)

// output consumes the speaker samples produced each frame.
type output interface {
	Flush(samples *audio.Buffer) error
	Close() error
}

// openOutput picks where the speaker goes: a WAV file when wavPath is set,
// nowhere in headless mode, the default audio device otherwise.
func openOutput(wavPath string, headless bool, box *musicbox.MusicBox) (output, error) {
	rate := int(box.Clock().AudioHz)

	if wavPath != "" {
		w, err := audio.NewWAVWriter(wavPath, rate)
		if err != nil {
			return nil, err
		}
		slog.Info("Recording speaker output", "path", wavPath, "sample_rate", rate)
		return &wavOutput{w: w, path: wavPath}, nil
	}

	if headless {
		return discardOutput{}, nil
	}

	sink, err := audio.NewOtoSink(rate, box.Samples())
	if err != nil {
		slog.Warn("Audio output unavailable, continuing without sound", "error", err)
		return discardOutput{}, nil
	}
	sink.Start()
	return deviceOutput{sink: sink}, nil
}

type wavOutput struct {
	w    *audio.WAVWriter
	path string
}

func (o *wavOutput) Flush(samples *audio.Buffer) error {
	return o.w.Write(samples.Drain())
}

func (o *wavOutput) Close() error {
	slog.Info("WAV file written", "path", o.path, "samples", o.w.Samples())
	return o.w.Close()
}

// deviceOutput leaves the buffer to the audio callback.
type deviceOutput struct {
	sink *audio.OtoSink
}

func (deviceOutput) Flush(*audio.Buffer) error { return nil }

func (o deviceOutput) Close() error { return o.sink.Close() }

type discardOutput struct{}

func (discardOutput) Flush(samples *audio.Buffer) error {
	samples.Drain()
	return nil
}

func (discardOutput) Close() error { return nil }
