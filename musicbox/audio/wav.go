package audio

import (
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	wavBitDepth  = 16
	wavChannels  = 1
	wavFormatPCM = 1
)

// WAVWriter encodes 16-bit mono PCM to a file.
type WAVWriter struct {
	f       *os.File
	enc     *wav.Encoder
	buf     *goaudio.IntBuffer
	written int
}

func NewWAVWriter(path string, sampleRate int) (*WAVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating wav file: %w", err)
	}

	return &WAVWriter{
		f:   f,
		enc: wav.NewEncoder(f, sampleRate, wavBitDepth, wavChannels, wavFormatPCM),
		buf: &goaudio.IntBuffer{
			Format: &goaudio.Format{
				NumChannels: wavChannels,
				SampleRate:  sampleRate,
			},
			SourceBitDepth: wavBitDepth,
		},
	}, nil
}

func (w *WAVWriter) Write(samples []int16) error {
	if len(samples) == 0 {
		return nil
	}

	w.buf.Data = w.buf.Data[:0]
	for _, s := range samples {
		w.buf.Data = append(w.buf.Data, int(s))
	}
	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("encoding wav: %w", err)
	}
	w.written += len(samples)
	return nil
}

// Samples returns how many samples have been written.
func (w *WAVWriter) Samples() int { return w.written }

// Close finalizes the header and closes the file.
func (w *WAVWriter) Close() error {
	if err := w.enc.Close(); err != nil {
		w.f.Close()
		return fmt.Errorf("finalizing wav: %w", err)
	}
	return w.f.Close()
}
