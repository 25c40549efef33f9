package song

// Opcode is the first byte of an instruction pair.
type Opcode = uint8

const (
	Pause Opcode = 0x00 // operand: duration flags
	Trans Opcode = 0xFE // operand: signed semitone offset
	Tempo Opcode = 0xFF // operand: BPM / 10

	// NoteMin and NoteMax bound the MIDI note opcodes. The operand is the
	// duration flags.
	NoteMin Opcode = 1
	NoteMax Opcode = 127
)

// DurationMask selects the sixteenth-note count from a duration operand.
// The remaining bits are reserved and ignored by the player.
const DurationMask = 0x1F

// Duration counts in sixteenth notes. A count of zero is read as a whole note.
const (
	L16 uint8 = 1
	L08 uint8 = 2
	L8D uint8 = 3
	L04 uint8 = 4
	L4D uint8 = 6
	L02 uint8 = 8
	L2D uint8 = 12
	L01 uint8 = 16
	L1D uint8 = 24
)

var durationTokens = map[string]uint8{
	"L16": L16,
	"L08": L08,
	"L8D": L8D,
	"L04": L04,
	"L4D": L4D,
	"L02": L02,
	"L2D": L2D,
	"L01": L01,
	"L1D": L1D,
}

var opcodeTokens = map[string]uint8{
	"PAUSE": Pause,
	"TRANS": Trans,
	"TEMPO": Tempo,
}

// IsNote reports whether op starts a note event.
func IsNote(op Opcode) bool {
	return op >= NoteMin && op <= NoteMax
}

// DurationCount returns the sixteenth-note count encoded in a duration
// operand, with zero meaning a whole note.
func DurationCount(flags uint8) uint8 {
	count := flags & DurationMask
	if count == 0 {
		return L01
	}
	return count
}

// DurationName returns the token for a duration operand, or "" when the
// count has no token of its own.
func DurationName(flags uint8) string {
	count := DurationCount(flags)
	for name, v := range durationTokens {
		if v == count {
			return name
		}
	}
	return ""
}
