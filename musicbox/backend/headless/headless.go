package headless

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/valerio/go-musicbox/musicbox/backend"
	"github.com/valerio/go-musicbox/musicbox/debug"
	"github.com/valerio/go-musicbox/musicbox/input/action"
	"github.com/valerio/go-musicbox/musicbox/input/event"
)

// Backend implements the Backend interface for automated runs and batch
// rendering. It draws nothing and quits after a fixed number of frames.
type Backend struct {
	config         backend.BackendConfig
	frameCount     int
	maxFrames      int // 0 runs until the caller stops
	snapshotConfig SnapshotConfig
	lastSong       int
	peakLED        uint8
}

// SnapshotConfig holds configuration for state snapshots
type SnapshotConfig struct {
	Enabled   bool
	Interval  int    // Save snapshot every N frames
	Directory string // Directory to save snapshots
	BaseName  string // prefix for snapshot filenames
}

func New(maxFrames int, snapshotConfig SnapshotConfig) *Backend {
	return &Backend{
		maxFrames:      maxFrames,
		snapshotConfig: snapshotConfig,
		lastSong:       -1,
	}
}

func (h *Backend) Init(config backend.BackendConfig) error {
	h.config = config

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	slog.SetDefault(slog.New(handler))

	slog.Info("Running headless mode",
		"frames", h.maxFrames,
		"snapshot_interval", h.snapshotConfig.Interval,
		"snapshot_dir", h.snapshotConfig.Directory)

	return nil
}

// Update tracks the frame, saves snapshots, and raises EmulatorQuit once
// the frame budget is spent.
func (h *Backend) Update(frame *debug.Frame) ([]backend.InputEvent, error) {
	var events []backend.InputEvent

	h.frameCount++
	if frame != nil {
		h.observe(frame)
	}

	if h.snapshotConfig.Enabled && h.frameCount%h.snapshotConfig.Interval == 0 {
		h.saveSnapshot(frame)
	}

	if h.frameCount%60 == 0 {
		slog.Info("Frame progress", "completed", h.frameCount, "total", h.maxFrames, "peak_led", h.peakLED)
		h.peakLED = 0
	}

	if h.maxFrames > 0 && h.frameCount >= h.maxFrames {
		if h.snapshotConfig.Enabled && h.frameCount%h.snapshotConfig.Interval != 0 {
			h.saveSnapshot(frame)
		}

		if h.snapshotConfig.Enabled {
			slog.Info("Headless execution completed", "frames", h.frameCount, "snapshots_saved_to", h.snapshotConfig.Directory)
		} else {
			slog.Info("Headless execution completed", "frames", h.frameCount)
		}

		events = append(events, backend.InputEvent{Action: action.EmulatorQuit, Type: event.Press})
		if h.config.InputManager != nil {
			h.config.InputManager.Trigger(action.EmulatorQuit, event.Press)
		}
	}

	return events, nil
}

func (h *Backend) Cleanup() error {
	return nil
}

// Frames returns how many frames Update has seen.
func (h *Backend) Frames() int {
	return h.frameCount
}

func (h *Backend) observe(frame *debug.Frame) {
	if frame.LED > h.peakLED {
		h.peakLED = frame.LED
	}

	s := frame.State
	if s == nil || s.SongIndex == h.lastSong {
		return
	}
	h.lastSong = s.SongIndex
	slog.Debug("Now playing", "frame", h.frameCount, "song", s.SongIndex, "name", s.SongName)
}

// CreateSnapshotConfig creates a snapshot configuration from CLI parameters.
// A zero interval disables snapshots. An empty directory gets a temp dir.
func CreateSnapshotConfig(interval int, directory, sourcePath string) (SnapshotConfig, error) {
	config := SnapshotConfig{
		Enabled:  interval > 0,
		Interval: interval,
		BaseName: "musicbox",
	}

	if !config.Enabled {
		return config, nil
	}

	if directory == "" {
		tempDir, err := os.MkdirTemp("", "musicbox-snapshots-*")
		if err != nil {
			return config, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
		config.Directory = tempDir
	} else {
		if err := os.MkdirAll(directory, 0755); err != nil {
			return config, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
		config.Directory = directory
	}

	if sourcePath != "" {
		config.BaseName = strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	}

	return config, nil
}

func (h *Backend) saveSnapshot(frame *debug.Frame) {
	var state *debug.PlayerState
	if frame != nil {
		state = frame.State
	}

	baseName := fmt.Sprintf("%s_frame_%d", h.snapshotConfig.BaseName, h.frameCount)
	if _, err := debug.SaveStateSnapshot(state, baseName, h.snapshotConfig.Directory); err != nil {
		slog.Error("Failed to save snapshot", "frame", h.frameCount, "error", err)
	}
}
