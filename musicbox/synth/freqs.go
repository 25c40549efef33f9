package synth

import "math"

// NoteFrequency returns the equal-temperament frequency of a MIDI note (A4 = 440 Hz).
func NoteFrequency(midiNote int) float64 {
	return 440 * math.Pow(2, float64(midiNote-69)/12)
}

// ComputeIncrements builds a NoteIncrements table for the given audio rate.
// It is not used on the tick path; it exists so the table can be regenerated
// when the sample rate changes.
func ComputeIncrements(sampleHz uint32) [NoteCount]uint16 {
	var table [NoteCount]uint16
	if sampleHz == 0 {
		return table
	}
	for i := range table {
		inc := math.Round(NoteFrequency(MIDIBase+i) * 65536 / float64(sampleHz))
		if inc > math.MaxUint16 {
			inc = math.MaxUint16
		}
		table[i] = uint16(inc)
	}
	return table
}

// IncrementFrequency converts a phase increment back to Hz at the given rate.
func IncrementFrequency(increment uint16, sampleHz uint32) float64 {
	return float64(increment) * float64(sampleHz) / 65536
}
