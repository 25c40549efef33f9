package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/urfave/cli"

	"github.com/valerio/go-musicbox/musicbox"
	"github.com/valerio/go-musicbox/musicbox/backend"
	"github.com/valerio/go-musicbox/musicbox/backend/headless"
	"github.com/valerio/go-musicbox/musicbox/backend/sdl2"
	"github.com/valerio/go-musicbox/musicbox/backend/terminal"
	"github.com/valerio/go-musicbox/musicbox/config"
	"github.com/valerio/go-musicbox/musicbox/disasm"
	"github.com/valerio/go-musicbox/musicbox/input"
	"github.com/valerio/go-musicbox/musicbox/input/action"
	"github.com/valerio/go-musicbox/musicbox/input/event"
	"github.com/valerio/go-musicbox/musicbox/song"
	"github.com/valerio/go-musicbox/musicbox/timing"
)

func main() {
	app := cli.NewApp()
	app.Name = "musicbox"
	app.Description = "An emulated Christmas music box: one DDS voice, bytecode songs and a breathing LED garland"
	app.Usage = "musicbox [options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "Path to a YAML config file (defaults match the firmware)",
		},
		cli.StringFlag{
			Name:  "songs",
			Usage: "Path to a YAML song library (default: built-in songs)",
		},
		cli.IntFlag{
			Name:  "song",
			Usage: "Index of the song to start with",
		},
		cli.StringFlag{
			Name:  "backend",
			Usage: "Backend to use: terminal, sdl2 or headless",
			Value: "terminal",
		},
		cli.Float64Flag{
			Name:  "seconds",
			Usage: "Seconds of playback to emulate in headless mode (required for headless)",
		},
		cli.StringFlag{
			Name:  "wav",
			Usage: "Write the speaker output to a WAV file instead of the audio device",
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save state snapshots every N frames in headless mode (0 = disabled)",
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save state snapshots (default: temp directory)",
		},
		cli.BoolFlag{
			Name:  "mute",
			Usage: "Start with the speaker muted",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Show the player debug panels",
		},
		cli.BoolFlag{
			Name:  "list",
			Usage: "List the songs and exit",
		},
		cli.BoolFlag{
			Name:  "disasm",
			Usage: "Print the disassembly of the selected song (all songs without --song) and exit",
		},
		cli.BoolFlag{
			Name:  "dump-config",
			Usage: "Print the effective config as YAML and exit",
		},
	}
	app.Action = runMusicBox

	if err := app.Run(os.Args); err != nil {
		slog.Error("Error running music box", "error", err)
		os.Exit(1)
	}
}

func runMusicBox(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("song") {
		cfg.StartSong = c.Int("song")
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	table, err := loadSongs(c.String("songs"))
	if err != nil {
		return err
	}

	switch {
	case c.Bool("dump-config"):
		out, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	case c.Bool("list"):
		return listSongs(os.Stdout, table)
	case c.Bool("disasm"):
		if c.IsSet("song") {
			return printDisassembly(os.Stdout, table.At(cfg.StartSong))
		}
		for i := 0; i < table.Len(); i++ {
			if err := printDisassembly(os.Stdout, table.At(i)); err != nil {
				return err
			}
		}
		return nil
	}

	box, err := musicbox.New(cfg, table)
	if err != nil {
		return err
	}
	box.SetMuted(c.Bool("mute"))

	be, limiter, err := createBackend(c, cfg, box)
	if err != nil {
		return err
	}

	out, err := openOutput(c.String("wav"), c.String("backend") == "headless", box)
	if err != nil {
		return err
	}
	defer func() {
		if err := out.Close(); err != nil {
			slog.Error("Failed to close audio output", "error", err)
		}
	}()

	return run(c, box, be, limiter, out)
}

func loadSongs(path string) (song.Table, error) {
	if path == "" {
		return song.Builtin(), nil
	}
	table, err := song.LoadFile(path)
	if err != nil {
		return song.Table{}, err
	}
	slog.Debug("Loaded song library", "path", path, "songs", table.Len())
	return table, nil
}

func listSongs(w io.Writer, table song.Table) error {
	for i, name := range table.Names() {
		s := table.At(i)
		if _, err := fmt.Fprintf(w, "%2d  %-32s %4d bytes\n", i, name, s.Len()); err != nil {
			return err
		}
	}
	return nil
}

func printDisassembly(w io.Writer, s song.Song) error {
	if _, err := fmt.Fprintf(w, "; %s (%d bytes)\n", s.Name, s.Len()); err != nil {
		return err
	}
	for _, line := range disasm.Disassemble(s) {
		if _, err := fmt.Fprintln(w, disasm.FormatDisassemblyLine(line, false)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func createBackend(c *cli.Context, cfg config.Config, box *musicbox.MusicBox) (backend.Backend, timing.Limiter, error) {
	frameTime := timing.FrameDuration(box.Clock().AudioHz, box.TicksPerFrame())

	switch c.String("backend") {
	case "headless":
		seconds := c.Float64("seconds")
		if seconds <= 0 {
			return nil, nil, errors.New("headless mode requires --seconds option with a positive value")
		}
		frames := int(math.Ceil(seconds * timing.DefaultFPS))

		snapshotConfig, err := headless.CreateSnapshotConfig(
			c.Int("snapshot-interval"), c.String("snapshot-dir"), c.String("songs"))
		if err != nil {
			return nil, nil, err
		}
		return headless.New(frames, snapshotConfig), timing.NewNoOpLimiter(), nil
	case "terminal":
		return terminal.New(cfg.LEDMaxLevel), timing.NewTickerLimiter(frameTime), nil
	case "sdl2":
		return sdl2.New(cfg.LEDMaxLevel), timing.NewAdaptiveLimiter(frameTime), nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q (want terminal, sdl2 or headless)", c.String("backend"))
	}
}

func run(c *cli.Context, box *musicbox.MusicBox, be backend.Backend, limiter timing.Limiter, out output) error {
	running := true
	quit := func() { running = false }

	if stopper, ok := limiter.(interface{ Stop() }); ok {
		defer stopper.Stop()
	}

	manager := input.NewManager()
	registerCallbacks(manager, box, be, limiter, quit)

	err := be.Init(backend.BackendConfig{
		Title:     "Music Box",
		Scale:     2,
		ShowDebug: c.Bool("debug"),
		Callbacks: backend.BackendCallbacks{
			OnQuit: quit,
			OnDebugMessage: func(message string) {
				slog.Debug("Backend message", "message", message)
			},
		},
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := be.Cleanup(); err != nil {
			slog.Error("Failed to clean up backend", "error", err)
		}
	}()

	slog.Info("Music box running",
		"backend", c.String("backend"),
		"clock", box.Clock(),
		"song", box.Player().Song(),
		"name", box.Player().Table().At(box.Player().Song()).Name)

	for running {
		if err := box.RunUntilFrame(); err != nil {
			return err
		}
		if err := out.Flush(box.Samples()); err != nil {
			return err
		}

		events, err := be.Update(box.GetCurrentFrame())
		if err != nil {
			return err
		}
		manager.HandleEvents(events)

		limiter.WaitForNextFrame()
	}

	stats := box.Player().Stats()
	slog.Info("Music box stopped",
		"frames", box.FrameCount(),
		"audio_ticks", stats.AudioTicks,
		"note_ticks", stats.NoteTicks,
		"song_ends", stats.SongEnds,
		"guard_exhausted", stats.GuardExhausted,
		"dropped_samples", box.Samples().Dropped())
	return nil
}

func registerCallbacks(m *input.Manager, box *musicbox.MusicBox, be backend.Backend, limiter timing.Limiter, quit func()) {
	playback := []action.Action{
		action.SongNext, action.SongPrev, action.SongRestart,
		action.SongSelect0, action.SongSelect1, action.SongSelect2, action.SongSelect3, action.SongSelect4,
		action.SongSelect5, action.SongSelect6, action.SongSelect7, action.SongSelect8, action.SongSelect9,
		action.EmulatorMuteToggle,
	}
	for _, act := range playback {
		m.On(act, event.Press, func() { box.HandleAction(act, true) })
	}

	m.On(action.EmulatorPauseToggle, event.Press, func() {
		box.HandleAction(action.EmulatorPauseToggle, true)
		if !box.Paused() {
			limiter.Reset()
		}
	})
	m.On(action.EmulatorQuit, event.Press, quit)

	if h, ok := be.(backend.ActionHandler); ok {
		for _, act := range []action.Action{
			action.EmulatorSnapshot,
			action.EmulatorDebugToggle,
			action.DebugLogLevelIncrease,
			action.DebugLogLevelDecrease,
		} {
			m.On(act, event.Press, func() { h.HandleAction(act) })
		}
	}
}
