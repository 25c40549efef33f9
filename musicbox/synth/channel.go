// Package synth implements the mono DDS voice of the music box: a 16-bit
// phase accumulator stepping through a 64-entry waveform, scaled by a decaying
// envelope.
package synth

import (
	"github.com/valerio/go-musicbox/musicbox/fixed"
)

// Channel is the state of the single synth voice.
type Channel struct {
	phase     uint16
	increment uint16
	envelope  fixed.Q8_8 // integer part indexes Envelope, >= EnvelopeLength is silent
}

// Begin puts the channel in its power-on state: phase zero and silent.
func Begin(ch *Channel) {
	ch.phase = 0
	Silence(ch)
}

// Silence stops the channel. The phase is left alone so the next NoteOn is the
// only thing that restarts it.
func Silence(ch *Channel) {
	ch.increment = 0
	ch.envelope = silentEnvelope
}

// NoteOn starts midiNote at full volume. Notes outside the table range are
// clamped to its first or last entry.
func NoteOn(ch *Channel, midiNote uint8) {
	ch.increment = NoteIncrements[noteIndex(midiNote)]
	ch.envelope = 0
	ch.phase = 0
}

// RenderSample advances the channel by one audio tick and returns the PWM
// duty for it (0..255).
func RenderSample(ch *Channel) uint8 {
	ch.phase += ch.increment

	envIndex := ch.envelope.Int()
	if envIndex >= EnvelopeLength {
		return 0
	}

	ch.envelope++

	wave := Waveform[(ch.phase>>waveformShift)&waveformMask]
	env := Envelope[envIndex]

	return uint8((uint16(wave) * uint16(env)) >> 8)
}

// IncrementFor returns the phase increment NoteOn would use for midiNote.
func IncrementFor(midiNote uint8) uint16 {
	return NoteIncrements[noteIndex(midiNote)]
}

func noteIndex(midiNote uint8) int {
	return int(fixed.Clamp(int32(midiNote)-MIDIBase, 0, NoteCount-1))
}

// Phase returns the current phase accumulator.
func (ch Channel) Phase() uint16 { return ch.phase }

// Increment returns the phase step per sample, 0 when silenced.
func (ch Channel) Increment() uint16 { return ch.increment }

// EnvelopeIndex returns the integer part of the envelope position.
func (ch Channel) EnvelopeIndex() uint8 { return ch.envelope.Int() }

// Silent reports whether RenderSample currently outputs zero.
func (ch Channel) Silent() bool { return ch.envelope.Int() >= EnvelopeLength }
