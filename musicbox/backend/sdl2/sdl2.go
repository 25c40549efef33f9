//go:build sdl2

package sdl2

import (
	"fmt"
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/valerio/go-musicbox/musicbox/backend"
	"github.com/valerio/go-musicbox/musicbox/debug"
	"github.com/valerio/go-musicbox/musicbox/input"
	"github.com/valerio/go-musicbox/musicbox/input/action"
	"github.com/valerio/go-musicbox/musicbox/input/event"
	"github.com/valerio/go-musicbox/musicbox/lights"
)

const (
	windowWidth  = 480
	windowHeight = 240
	bulbCount    = 12
	bulbSize     = 24
	bulbY        = 40
	scopeTop     = 110
	scopeHeight  = 100
)

// Backend implements the Backend interface using SDL2 bindings.
// It shows the garland as a row of bulbs over an oscilloscope of the speaker.
// Note: building this requires SDL2 development libraries installed.
type Backend struct {
	window     *sdl.Window
	renderer   *sdl.Renderer
	running    bool
	maxLED     uint8
	config     backend.BackendConfig
	eventQueue []backend.InputEvent

	currentFrame *debug.Frame
}

// New creates a new SDL2 backend
func New(maxLED uint8) *Backend {
	if maxLED == 0 {
		maxLED = lights.DefaultMaxLevel
	}
	return &Backend{maxLED: maxLED}
}

// Init initializes the SDL2 backend
func (s *Backend) Init(config backend.BackendConfig) error {
	s.config = config

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("failed to initialize SDL2: %w", err)
	}

	scale := int32(config.Scale)
	if scale < 1 {
		scale = 1
	}

	window, err := sdl.CreateWindow(
		config.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		windowWidth*scale,
		windowHeight*scale,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("failed to create window: %w", err)
	}
	s.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	if err := renderer.SetLogicalSize(windowWidth, windowHeight); err != nil {
		slog.Warn("Failed to set logical size", "error", err)
	}
	s.renderer = renderer
	s.running = true

	slog.Info("SDL2 backend initialized")
	return nil
}

// Update renders a frame and processes events
func (s *Backend) Update(frame *debug.Frame) ([]backend.InputEvent, error) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		s.handleEvent(ev)
	}

	events := s.eventQueue
	s.eventQueue = nil

	if !s.running {
		return events, nil
	}

	s.currentFrame = frame
	if frame != nil {
		s.renderFrame(frame)
	}
	return events, nil
}

// Cleanup cleans up SDL2 resources
func (s *Backend) Cleanup() error {
	slog.Info("Cleaning up SDL2 backend")

	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()

	return nil
}

// HandleAction processes backend-specific actions
func (s *Backend) HandleAction(act action.Action) {
	switch act {
	case action.EmulatorSnapshot:
		if s.currentFrame == nil {
			return
		}
		if _, err := debug.SaveStateSnapshot(s.currentFrame.State, "musicbox_snapshot", ""); err != nil {
			slog.Error("Failed to save snapshot", "error", err)
		}
	case action.EmulatorDebugToggle:
		s.config.ShowDebug = !s.config.ShowDebug
		s.updateTitle()
	}
}

func (s *Backend) handleEvent(ev sdl.Event) {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		s.queue(action.EmulatorQuit)
		if s.config.Callbacks.OnQuit != nil {
			s.config.Callbacks.OnQuit()
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
			if act, exists := keyMapping[e.Keysym.Sym]; exists {
				s.queue(act)
			}
		}
	}
}

func (s *Backend) queue(act action.Action) {
	if act == action.EmulatorQuit {
		s.running = false
	}
	s.eventQueue = append(s.eventQueue, backend.InputEvent{Action: act, Type: event.Press})
	if s.config.InputManager != nil {
		s.config.InputManager.Trigger(act, event.Press)
	}
}

// sdlKeyNameMap converts SDL keycodes to key names used in default mappings
var sdlKeyNameMap = map[sdl.Keycode]string{
	sdl.K_LEFT:   "Left",
	sdl.K_RIGHT:  "Right",
	sdl.K_ESCAPE: "Escape",
	sdl.K_SPACE:  "Space",
	sdl.K_F9:     "F9",
	sdl.K_F10:    "F10",
	sdl.K_EQUALS: "=",
	sdl.K_MINUS:  "-",
	sdl.K_PLUS:   "+",
}

func buildKeyMapping() map[sdl.Keycode]action.Action {
	mapping := make(map[sdl.Keycode]action.Action)
	for key, name := range sdlKeyNameMap {
		if act, ok := input.GetDefaultMapping(name); ok {
			mapping[key] = act
		}
	}
	// letters and digits share their ASCII code with the SDL keycode
	for r := sdl.Keycode('0'); r <= 'z'; r++ {
		if act, ok := input.GetDefaultMapping(string(rune(r))); ok {
			mapping[r] = act
		}
	}
	return mapping
}

var keyMapping = buildKeyMapping()

func (s *Backend) updateTitle() {
	title := s.config.Title
	if s.config.ShowDebug && s.currentFrame != nil && s.currentFrame.State != nil {
		st := s.currentFrame.State
		title = fmt.Sprintf("%s - %d/%d %s @%d", title, st.SongIndex+1, st.SongCount, st.SongName, st.Cursor)
	}
	s.window.SetTitle(title)
}

func (s *Backend) renderFrame(frame *debug.Frame) {
	s.renderer.SetDrawColor(16, 16, 24, 255)
	s.renderer.Clear()

	gray := uint8(255)
	if frame.LED < s.maxLED {
		gray = uint8(uint16(frame.LED) * 255 / uint16(s.maxLED))
	}

	// wire
	s.renderer.SetDrawColor(40, 70, 40, 255)
	s.renderer.DrawLine(0, bulbY+bulbSize/2, windowWidth, bulbY+bulbSize/2)

	s.renderer.SetDrawColor(gray, uint8(uint16(gray)*4/5), gray/4, 255)
	spacing := int32(windowWidth / bulbCount)
	for i := int32(0); i < bulbCount; i++ {
		rect := sdl.Rect{X: i*spacing + (spacing-bulbSize)/2, Y: bulbY, W: bulbSize, H: bulbSize}
		s.renderer.FillRect(&rect)
	}

	if !frame.Muted && len(frame.Scope) > 1 {
		s.renderer.SetDrawColor(80, 200, 120, 255)
		points := make([]sdl.Point, len(frame.Scope))
		for i, sample := range frame.Scope {
			x := int32(i) * windowWidth / int32(len(frame.Scope)-1)
			y := scopeTop + scopeHeight/2 - int32(sample)*scopeHeight/65536
			points[i] = sdl.Point{X: x, Y: y}
		}
		s.renderer.DrawLines(points)
	}

	if s.config.ShowDebug {
		s.updateTitle()
	}
	s.renderer.Present()
}
