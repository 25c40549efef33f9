package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/valerio/go-musicbox/musicbox/disasm"
)

// FormatState writes a text dump of s.
func FormatState(w io.Writer, s *PlayerState) error {
	if s == nil {
		_, err := fmt.Fprintln(w, "no player state")
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "song       %d/%d %q\n", s.SongIndex+1, s.SongCount, s.SongName)
	fmt.Fprintf(&b, "position   %d/%d  delay %d  transpose %+d\n", s.Cursor, s.Length, s.Delay, s.Transpose)
	fmt.Fprintf(&b, "tempo      %d BPM nominal, %.1f BPM actual, %d ticks/16th\n", int(s.Tempo10)*10, s.BPM, s.TicksPer16)
	fmt.Fprintf(&b, "clock      %d Hz audio, %d Hz note-tick (/%d, at %d)\n", s.AudioHz, s.NoteHz, s.Divider, s.DividerCount)
	fmt.Fprintf(&b, "instr      %s\n", s.Instruction)

	if s.Channel.Silent {
		fmt.Fprintf(&b, "voice      silent\n")
	} else {
		fmt.Fprintf(&b, "voice      %s %.1f Hz  inc %d  env %d/128\n",
			noteOrDash(s.Channel.Note), s.Channel.FrequencyHz, s.Channel.Increment, s.Channel.EnvelopeIndex)
	}
	fmt.Fprintf(&b, "led        %d  step %d\n", s.LED, s.BreathStep)
	fmt.Fprintf(&b, "ticks      %d audio, %d note, %d song ends, %d guard hits\n",
		s.AudioTicks, s.NoteTicks, s.SongEnds, s.GuardExhausted)
	if s.Paused {
		b.WriteString("paused\n")
	}

	for _, line := range s.Listing {
		b.WriteString(disasm.FormatDisassemblyLine(line, line.Offset == s.Cursor))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func noteOrDash(n string) string {
	if n == "" {
		return "-"
	}
	return n
}

// SaveStateSnapshot writes the text dump to a timestamped file in directory
// (the working directory when empty) and returns its path.
func SaveStateSnapshot(s *PlayerState, baseName, directory string) (string, error) {
	outputDir := directory
	if outputDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		outputDir = cwd
	}

	timestamp := time.Now().Format("20060102_150405.000")
	filePath := filepath.Join(outputDir, fmt.Sprintf("%s_%s.txt", baseName, timestamp))

	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", filePath, err)
	}
	defer file.Close()

	if err := FormatState(file, s); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}

	slog.Info("Snapshot saved", "path", filePath)
	return filePath, nil
}
