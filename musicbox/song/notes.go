package song

import (
	"fmt"
	"strconv"
)

const (
	minOctave = 1
	maxOctave = 7
)

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// letter -> semitone of the natural note
var naturals = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// NoteName formats a MIDI note as scientific pitch, e.g. 60 -> "C4", 61 -> "C#4".
func NoteName(midiNote uint8) string {
	octave := int(midiNote)/12 - 1
	return noteNames[midiNote%12] + strconv.Itoa(octave)
}

// NoteToken formats a MIDI note as a source token (C4F natural, C4D sharp).
// Notes outside octaves 1..7 are written as plain numbers.
func NoteToken(midiNote uint8) string {
	if midiNote == Pause {
		return "PAUSE"
	}
	octave := int(midiNote)/12 - 1
	if octave < minOctave || octave > maxOctave {
		return strconv.Itoa(int(midiNote))
	}
	name := noteNames[midiNote%12]
	if len(name) == 2 {
		return fmt.Sprintf("%c%dD", name[0], octave)
	}
	return fmt.Sprintf("%s%dF", name, octave)
}

// parseNoteToken decodes tokens like C4F or A3D.
func parseNoteToken(tok string) (uint8, bool) {
	if len(tok) != 3 {
		return 0, false
	}
	sem, ok := naturals[tok[0]]
	if !ok {
		return 0, false
	}
	octave := int(tok[1] - '0')
	if octave < minOctave || octave > maxOctave {
		return 0, false
	}
	switch tok[2] {
	case 'F':
	case 'D':
		// E and B have no sharp
		if tok[0] == 'E' || tok[0] == 'B' {
			return 0, false
		}
		sem++
	default:
		return 0, false
	}
	return uint8((octave+1)*12 + sem), true
}
