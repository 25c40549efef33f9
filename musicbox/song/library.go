package song

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptyLibrary is returned when a library file lists no songs.
var ErrEmptyLibrary = errors.New("song library is empty")

type libraryFile struct {
	Songs []librarySong `yaml:"songs"`
}

// librarySong holds either source text or raw stream bytes.
type librarySong struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source,omitempty"`
	Data   []int  `yaml:"data,flow,omitempty"`
}

// LoadYAML reads a song library:
//
//	songs:
//	  - name: Scale
//	    source: |
//	      TEMPO, 12,
//	      C4F, L04, D4F, L04, E4F, L04,
//	  - name: Raw
//	    data: [255, 9, 60, 4]
func LoadYAML(r io.Reader) (Table, error) {
	var f libraryFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Table{}, ErrEmptyLibrary
		}
		return Table{}, fmt.Errorf("decoding song library: %w", err)
	}
	if len(f.Songs) == 0 {
		return Table{}, ErrEmptyLibrary
	}

	songs := make([]Song, 0, len(f.Songs))
	for i, entry := range f.Songs {
		name := entry.Name
		if name == "" {
			name = fmt.Sprintf("song %d", i)
		}

		s, err := entry.compile(name)
		if err != nil {
			return Table{}, err
		}
		songs = append(songs, s)
	}
	return NewTable(songs...), nil
}

// LoadFile is LoadYAML on a file path.
func LoadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("opening song library: %w", err)
	}
	defer f.Close()

	t, err := LoadYAML(f)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func (e librarySong) compile(name string) (Song, error) {
	if e.Source != "" && len(e.Data) > 0 {
		return Song{}, fmt.Errorf("song %q: both source and data are set", name)
	}
	if e.Source != "" {
		return ParseSource(name, e.Source)
	}

	data := make([]byte, 0, len(e.Data))
	for i, v := range e.Data {
		if v < -128 || v > 255 {
			return Song{}, fmt.Errorf("song %q byte %d: %d: %w", name, i, v, ErrOutOfRange)
		}
		data = append(data, uint8(v))
	}
	if len(data)%2 != 0 {
		return Song{}, fmt.Errorf("song %q: %d bytes: %w", name, len(data), ErrOddLength)
	}
	return Song{Name: name, data: data}, nil
}
