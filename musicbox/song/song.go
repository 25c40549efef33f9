// Package song holds the music box instruction streams: (opcode, operand)
// byte pairs, the ordered table songs are selected from, and the text and
// YAML formats they are written in.
package song

// Song is an immutable instruction stream. The length travels with the data;
// there is no end marker.
type Song struct {
	Name string
	data []byte
}

// New copies data into a Song.
func New(name string, data []byte) Song {
	return Song{Name: name, data: append([]byte(nil), data...)}
}

// Len returns the stream length in bytes.
func (s Song) Len() int { return len(s.data) }

// Pair returns the instruction at byte offset pos. The caller checks bounds.
func (s Song) Pair(pos int) (op Opcode, operand uint8) {
	return s.data[pos], s.data[pos+1]
}

// Bytes returns a copy of the stream.
func (s Song) Bytes() []byte {
	return append([]byte(nil), s.data...)
}

// Table is the ordered list of selectable songs.
type Table struct {
	songs []Song
}

// NewTable builds a table. An empty table holds one empty song so that index
// 0 is always valid.
func NewTable(songs ...Song) Table {
	if len(songs) == 0 {
		songs = []Song{New("empty", nil)}
	}
	return Table{songs: append([]Song(nil), songs...)}
}

// Len returns the number of songs, at least 1.
func (t Table) Len() int {
	if len(t.songs) == 0 {
		return 1
	}
	return len(t.songs)
}

// Index coerces an out-of-range song index to 0.
func (t Table) Index(i int) int {
	if i < 0 || i >= t.Len() {
		return 0
	}
	return i
}

// At returns song i, or song 0 when i is out of range.
func (t Table) At(i int) Song {
	if len(t.songs) == 0 {
		return Song{Name: "empty"}
	}
	return t.songs[t.Index(i)]
}

// Names lists the song names in table order.
func (t Table) Names() []string {
	names := make([]string, 0, t.Len())
	for i := range t.Len() {
		names = append(names, t.At(i).Name)
	}
	return names
}
