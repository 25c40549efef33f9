package song

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownToken = errors.New("unknown token")
	ErrOddLength    = errors.New("stream length is odd")
	ErrOutOfRange   = errors.New("value out of byte range")
)

// ParseError locates a bad token in song source.
type ParseError struct {
	Song  string
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("song %q line %d: %q: %v", e.Song, e.Line, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseSource compiles song source into a Song. The source is a list of
// comma or whitespace separated tokens with // line comments:
//
//	TEMPO, 22, TRANS, 40,   // ~220 BPM
//	C3F, L04, A3F, L04,
//
// Tokens are opcodes (PAUSE, TEMPO, TRANS), notes (C4F natural, C4D sharp),
// durations (L01 .. L16, dotted L1D L2D L4D L8D) or integers in -128..255.
// Negative integers are stored as two's complement.
func ParseSource(name, src string) (Song, error) {
	var data []byte

	sc := bufio.NewScanner(strings.NewReader(src))
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.Index(text, "//"); i >= 0 {
			text = text[:i]
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\r'
		})
		for _, tok := range fields {
			b, err := parseToken(tok)
			if err != nil {
				return Song{}, &ParseError{Song: name, Line: line, Token: tok, Err: err}
			}
			data = append(data, b)
		}
	}
	if err := sc.Err(); err != nil {
		return Song{}, fmt.Errorf("reading song %q: %w", name, err)
	}

	if len(data)%2 != 0 {
		return Song{}, fmt.Errorf("song %q: %d bytes: %w", name, len(data), ErrOddLength)
	}
	return Song{Name: name, data: data}, nil
}

// MustParse is ParseSource for literals known to be valid.
func MustParse(name, src string) Song {
	s, err := ParseSource(name, src)
	if err != nil {
		panic(err)
	}
	return s
}

func parseToken(tok string) (uint8, error) {
	upper := strings.ToUpper(tok)
	if v, ok := opcodeTokens[upper]; ok {
		return v, nil
	}
	if v, ok := durationTokens[upper]; ok {
		return v, nil
	}
	if v, ok := parseNoteToken(upper); ok {
		return v, nil
	}

	n, err := strconv.ParseInt(tok, 0, 16)
	if err != nil {
		return 0, ErrUnknownToken
	}
	if n < -128 || n > 255 {
		return 0, ErrOutOfRange
	}
	return uint8(n), nil
}

// Format renders a song back to source, one instruction per line.
func Format(s Song) string {
	var b strings.Builder
	for pos := 0; pos+1 < s.Len(); pos += 2 {
		op, val := s.Pair(pos)
		switch {
		case op == Tempo:
			fmt.Fprintf(&b, "TEMPO, %d,\n", val)
		case op == Trans:
			fmt.Fprintf(&b, "TRANS, %d,\n", int8(val))
		case op == Pause || IsNote(op):
			dur := DurationName(val)
			if dur == "" || durationTokens[dur] != val {
				dur = strconv.Itoa(int(val))
			}
			fmt.Fprintf(&b, "%s, %s,\n", NoteToken(op), dur)
		default:
			fmt.Fprintf(&b, "%d, %d,\n", op, val)
		}
	}
	return b.String()
}
