package synth

// Table layout constants
const (
	// MIDIBase is the MIDI note of the first NoteIncrements entry (A0).
	MIDIBase = 21

	// NoteCount is the number of entries in NoteIncrements (A0..C9).
	NoteCount = 100

	// waveformBits is log2 of the waveform table size.
	waveformBits = 6
	waveformMask = 1<<waveformBits - 1

	// waveformShift selects the top waveformBits of the 16-bit phase.
	waveformShift = 16 - waveformBits

	// EnvelopeLength is the number of audible envelope steps. Envelope
	// indices at or above it are silent.
	EnvelopeLength = 128

	// silentEnvelope is the Q8.8 envelope position that marks a silent channel.
	silentEnvelope = EnvelopeLength << 8

	// ReferenceSampleHz is the audio rate NoteIncrements was computed for.
	ReferenceSampleHz = 24000
)

// NoteIncrements holds the DDS phase increment per sample for MIDI notes
// MIDIBase..MIDIBase+NoteCount-1 at ReferenceSampleHz.
// Output frequency is increment * sampleHz / 65536. Use ComputeIncrements (or
// cmd/gen_notes_table) to regenerate it for another rate.
var NoteIncrements = [NoteCount]uint16{
	75, 80, 84, 89, 95, 100, 106, 113, 119, 126, 134, 142,
	150, 159, 169, 179, 189, 200, 212, 225, 238, 253, 268, 284,
	300, 318, 337, 357, 378, 401, 425, 450, 477, 505, 535, 567,
	601, 636, 674, 714, 757, 802, 850, 900, 954, 1010, 1070, 1134,
	1201, 1273, 1349, 1429, 1514, 1604, 1699, 1800, 1907, 2021, 2141, 2268,
	2403, 2546, 2697, 2858, 3028, 3208, 3398, 3600, 3814, 4041, 4282, 4536,
	4806, 5092, 5395, 5715, 6055, 6415, 6797, 7201, 7629, 8083, 8563, 9072,
	9612, 10184, 10789, 11431, 12110, 12830, 13593, 14402, 15258, 16165, 17127, 18145,
	19224, 20367, 21578, 22861,
}

// Waveform is one period of the note waveform, a raised sin^2 shape centred
// on 128.
var Waveform = [1 << waveformBits]uint8{
	128, 152, 173, 191, 207, 220, 230, 238, 244, 248, 251, 253, 254, 255, 255, 255,
	255, 255, 255, 255, 254, 253, 251, 248, 244, 238, 230, 220, 207, 191, 173, 152,
	128, 104, 83, 65, 49, 36, 26, 18, 12, 8, 5, 3, 2, 1, 1, 1,
	1, 1, 1, 1, 2, 3, 5, 8, 12, 18, 26, 36, 49, 65, 83, 104,
}

// Envelope is the amplitude curve of a plucked note, indexed by the integer
// part of the channel envelope position. It never increases.
// Source: Roman Lut, http://www.deep-shadows.com/hax/wordpress/?page_id=1111
var Envelope = [EnvelopeLength]uint8{
	0xFF, 0xFA, 0xF5, 0xF0, 0xEB, 0xE7, 0xE2, 0xDE, 0xD9, 0xD5, 0xD1, 0xCD, 0xC9, 0xC5, 0xC1, 0xBD,
	0xB9, 0xB6, 0xB2, 0xAE, 0xAB, 0xA8, 0xA4, 0xA1, 0x9E, 0x9B, 0x98, 0x95, 0x92, 0x8F, 0x8C, 0x89,
	0x86, 0x84, 0x81, 0x7F, 0x7C, 0x7A, 0x77, 0x75, 0x73, 0x70, 0x6E, 0x6C, 0x6A, 0x68, 0x66, 0x64,
	0x62, 0x60, 0x5E, 0x5C, 0x5A, 0x58, 0x57, 0x55, 0x53, 0x52, 0x50, 0x4E, 0x4D, 0x4B, 0x4A, 0x48,
	0x47, 0x45, 0x44, 0x43, 0x41, 0x40, 0x3F, 0x3E, 0x3C, 0x3B, 0x3A, 0x39, 0x38, 0x37, 0x36, 0x35,
	0x33, 0x32, 0x31, 0x30, 0x30, 0x2F, 0x2E, 0x2D, 0x2C, 0x2B, 0x2A, 0x29, 0x28, 0x27, 0x26, 0x25,
	0x23, 0x22, 0x21, 0x20, 0x1F, 0x1E, 0x1D, 0x1C, 0x1A, 0x19, 0x18, 0x17, 0x16, 0x15, 0x14, 0x13,
	0x11, 0x10, 0x0F, 0x0E, 0x0D, 0x0C, 0x0B, 0x0A, 0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x00, 0x00,
}
