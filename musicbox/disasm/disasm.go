package disasm

import (
	"fmt"

	"github.com/valerio/go-musicbox/musicbox/song"
)

// InstructionLength is the size of every instruction in bytes.
const InstructionLength = 2

// DisassemblyLine represents a single disassembled instruction
type DisassemblyLine struct {
	Offset      int
	Opcode      uint8
	Operand     uint8
	Instruction string
}

var durationText = map[uint8]string{
	song.L16: "1/16",
	song.L08: "1/8",
	song.L8D: "1/8.",
	song.L04: "1/4",
	song.L4D: "1/4.",
	song.L02: "1/2",
	song.L2D: "1/2.",
	song.L01: "1/1",
	song.L1D: "1/1.",
}

// DurationText formats a duration operand as a note value, e.g. 6 -> "1/4.".
func DurationText(flags uint8) string {
	count := song.DurationCount(flags)
	if text, ok := durationText[count]; ok {
		return text
	}
	return fmt.Sprintf("%d/16", count)
}

// DisassembleAt disassembles the instruction at byte offset pos.
func DisassembleAt(s song.Song, pos int) DisassemblyLine {
	if pos < 0 || pos >= s.Len() {
		return DisassemblyLine{Offset: pos, Instruction: "END"}
	}
	if pos+1 >= s.Len() {
		// dangling byte, the player never reaches it
		b := s.Bytes()[pos]
		return DisassemblyLine{Offset: pos, Opcode: b, Instruction: fmt.Sprintf("DATA 0x%02X", b)}
	}

	op, val := s.Pair(pos)
	line := DisassemblyLine{Offset: pos, Opcode: op, Operand: val}

	switch {
	case op == song.Tempo:
		if val == 0 {
			line.Instruction = "TEMPO 0 (default)"
		} else {
			line.Instruction = fmt.Sprintf("TEMPO %d (%d BPM)", val, int(val)*10)
		}
	case op == song.Trans:
		line.Instruction = fmt.Sprintf("TRANS %+d", int8(val))
	case op == song.Pause:
		line.Instruction = "PAUSE " + DurationText(val)
	case song.IsNote(op):
		line.Instruction = fmt.Sprintf("NOTE %s %s", song.NoteName(op), DurationText(val))
	default:
		line.Instruction = fmt.Sprintf("DATA 0x%02X,0x%02X", op, val)
	}
	return line
}

// DisassembleRange disassembles up to count instructions starting at pos.
func DisassembleRange(s song.Song, pos, count int) []DisassemblyLine {
	lines := make([]DisassemblyLine, 0, count)
	for i := 0; i < count && pos < s.Len(); i++ {
		lines = append(lines, DisassembleAt(s, pos))
		pos += InstructionLength
	}
	return lines
}

// Disassemble disassembles the whole stream.
func Disassemble(s song.Song) []DisassemblyLine {
	return DisassembleRange(s, 0, (s.Len()+1)/InstructionLength)
}

// DisassembleAround returns instructions before, at, and after cursor.
// A negative cursor (song not started) is treated as the first instruction.
func DisassembleAround(s song.Song, cursor, before, after int) []DisassemblyLine {
	if cursor < 0 {
		cursor = 0
	}
	start := cursor - before*InstructionLength
	if start < 0 {
		start = 0
	}
	count := (cursor-start)/InstructionLength + 1 + after
	return DisassembleRange(s, start, count)
}

// FormatDisassemblyLine formats a disassembly line for display
func FormatDisassemblyLine(line DisassemblyLine, isCurrent bool) string {
	prefix := " "
	if isCurrent {
		prefix = ">"
	}
	return fmt.Sprintf("%s%04d: %s", prefix, line.Offset, line.Instruction)
}
