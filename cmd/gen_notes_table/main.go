package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"

	"github.com/valerio/go-musicbox/musicbox/song"
	"github.com/valerio/go-musicbox/musicbox/synth"
	"github.com/valerio/go-musicbox/musicbox/timing"
)

func main() {
	var (
		out  string
		rate uint
		pkg  string
	)
	flag.StringVar(&out, "out", "", "File to write (default stdout)")
	flag.UintVar(&rate, "rate", 0, "Audio tick rate in Hz (default: the rate the default clock quantizes to)")
	flag.StringVar(&pkg, "package", "synth", "Package name of the generated file")
	flag.Parse()

	if rate == 0 {
		clock, err := timing.Quantize(timing.DefaultClockConfig())
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		rate = uint(clock.AudioHz)
	}

	table := synth.ComputeIncrements(uint32(rate))

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by gen_notes_table -rate %d; DO NOT EDIT.\n\n", rate)
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "// NoteIncrements holds the 16-bit phase step per sample for MIDI notes\n")
	fmt.Fprintf(&buf, "// %d..%d at %d Hz.\n", synth.MIDIBase, synth.MIDIBase+synth.NoteCount-1, rate)
	fmt.Fprintf(&buf, "var NoteIncrements = [NoteCount]uint16{\n")
	for i, inc := range table {
		note := uint8(synth.MIDIBase + i)
		fmt.Fprintf(&buf, "%d, // %s %.2f Hz\n", inc, song.NoteName(note), synth.NoteFrequency(int(note)))
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: formatting output: %v\n", err)
		os.Exit(1)
	}

	if out == "" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(out, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "error: writing %s: %v\n", out, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d notes to %s\n", len(table), out)
}
