package terminal

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/valerio/go-musicbox/musicbox/backend"
	"github.com/valerio/go-musicbox/musicbox/backend/terminal/render"
	"github.com/valerio/go-musicbox/musicbox/debug"
	"github.com/valerio/go-musicbox/musicbox/disasm"
	"github.com/valerio/go-musicbox/musicbox/input"
	"github.com/valerio/go-musicbox/musicbox/input/action"
	"github.com/valerio/go-musicbox/musicbox/input/event"
	"github.com/valerio/go-musicbox/musicbox/lights"
)

const (
	leftPanelWidth = 40
	garlandLength  = 16
	scopeHeight    = 8
	statusHeight   = 9
	listingHeight  = 8
	minTermWidth   = 80
	minTermHeight  = 24
	logCapacity    = 200
)

var logLevels = []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}

// Backend implements the Backend interface using tcell for terminal rendering
type Backend struct {
	screen     tcell.Screen
	running    bool
	logBuffer  *render.LogBuffer
	logLevel   slog.Level
	maxLED     uint8
	config     backend.BackendConfig
	eventQueue []backend.InputEvent
	signals    chan os.Signal

	currentFrame *debug.Frame
}

// New creates a new terminal backend. maxLED is the brightness the garland
// shows as fully lit; 0 uses the firmware default.
func New(maxLED uint8) *Backend {
	if maxLED == 0 {
		maxLED = lights.DefaultMaxLevel
	}
	return &Backend{
		logLevel: slog.LevelInfo,
		maxLED:   maxLED,
	}
}

// Init initializes the terminal backend
func (t *Backend) Init(config backend.BackendConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	return t.initWithScreen(config, screen)
}

func (t *Backend) initWithScreen(config backend.BackendConfig, screen tcell.Screen) error {
	t.config = config
	t.screen = screen
	t.running = true
	t.eventQueue = nil

	// Everything is captured; the log panel filters on t.logLevel.
	t.logBuffer = render.NewLogBuffer(logCapacity)
	slog.SetDefault(slog.New(render.NewLogBufferHandler(t.logBuffer, slog.LevelDebug)))

	slog.Info("Terminal backend initialized")
	if config.ShowDebug {
		slog.Debug("Debug mode enabled")
	}

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	t.signals = make(chan os.Signal, 1)
	signal.Notify(t.signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)

	return nil
}

// Update renders a frame and returns the queued input events
func (t *Backend) Update(frame *debug.Frame) ([]backend.InputEvent, error) {
	select {
	case sig := <-t.signals:
		slog.Info("Received signal", "signal", sig)
		t.queue(action.EmulatorQuit)
	default:
	}

	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			t.processKeyEvent(ev)
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}

	events := t.eventQueue
	t.eventQueue = nil
	for _, evt := range events {
		slog.Debug("UI event", "action", action.GetInfo(evt.Action).Description, "type", evt.Type)
	}

	if !t.running {
		return events, nil
	}

	// kept for snapshots taken between updates
	t.currentFrame = frame.Clone()
	t.render(frame)
	t.screen.Show()

	return events, nil
}

// Cleanup cleans up terminal resources
func (t *Backend) Cleanup() error {
	if t.signals != nil {
		signal.Stop(t.signals)
	}
	if t.screen != nil {
		slog.Info("Cleaning up terminal backend")
		t.screen.Fini()
	}
	return nil
}

// HandleAction processes backend-specific actions
func (t *Backend) HandleAction(act action.Action) {
	switch act {
	case action.EmulatorSnapshot:
		if t.currentFrame == nil {
			return
		}
		if _, err := debug.SaveStateSnapshot(t.currentFrame.State, "musicbox_snapshot", ""); err != nil {
			slog.Error("Failed to save snapshot", "error", err)
		}
	case action.EmulatorDebugToggle:
		t.config.ShowDebug = !t.config.ShowDebug
		if t.config.ShowDebug {
			slog.Info("Debug display enabled")
		} else {
			slog.Info("Debug display disabled")
		}
	case action.DebugLogLevelIncrease:
		t.changeLogLevel(1)
	case action.DebugLogLevelDecrease:
		t.changeLogLevel(-1)
	}
}

func (t *Backend) queue(act action.Action) {
	if act == action.EmulatorQuit {
		t.running = false
	}
	evt := backend.InputEvent{Action: act, Type: event.Press}
	t.eventQueue = append(t.eventQueue, evt)
	if t.config.InputManager != nil {
		t.config.InputManager.Trigger(evt.Action, evt.Type)
	}
}

func (t *Backend) processKeyEvent(ev *tcell.EventKey) {
	if act, exists := keyMapping[ev.Key()]; exists {
		t.queue(act)
		return
	}

	if ev.Key() == tcell.KeyRune {
		if act, exists := runeMapping[ev.Rune()]; exists {
			slog.Debug("Key event (rune)", "rune", string(ev.Rune()), "action", action.GetInfo(act).Description)
			t.queue(act)
		}
	}
}

// tcellKeyNameMap converts tcell keys to key names used in default mappings
var tcellKeyNameMap = map[tcell.Key]string{
	tcell.KeyLeft:   "Left",
	tcell.KeyRight:  "Right",
	tcell.KeyEscape: "Escape",
	tcell.KeyF9:     "F9",
	tcell.KeyF10:    "F10",
}

// runeKeyName converts a rune to the key name used in default mappings
func runeKeyName(r rune) string {
	if r == ' ' {
		return "Space"
	}
	return string(r)
}

// buildKeyMapping creates the key mapping from default mappings
func buildKeyMapping() map[tcell.Key]action.Action {
	mapping := make(map[tcell.Key]action.Action)
	for key, keyName := range tcellKeyNameMap {
		if act, ok := input.GetDefaultMapping(keyName); ok {
			mapping[key] = act
		}
	}
	mapping[tcell.KeyCtrlC] = action.EmulatorQuit
	return mapping
}

// buildRuneMapping maps every printable ASCII rune that has a default action
func buildRuneMapping() map[rune]action.Action {
	mapping := make(map[rune]action.Action)
	for r := rune(' '); r <= '~'; r++ {
		if act, ok := input.GetDefaultMapping(runeKeyName(r)); ok {
			mapping[r] = act
		}
	}
	return mapping
}

var (
	keyMapping  = buildKeyMapping()
	runeMapping = buildRuneMapping()
)

func (t *Backend) changeLogLevel(direction int) {
	idx := 0
	for i, l := range logLevels {
		if l == t.logLevel {
			idx = i
		}
	}

	// increasing verbosity moves toward Debug
	idx -= direction
	if idx < 0 || idx >= len(logLevels) {
		return
	}

	oldLevel := t.logLevel
	t.logLevel = logLevels[idx]
	slog.Info("Log filter changed", "from", oldLevel, "to", t.logLevel)
}

func (t *Backend) render(frame *debug.Frame) {
	termWidth, termHeight := t.screen.Size()
	t.screen.Clear()

	if termWidth < minTermWidth || termHeight < minTermHeight {
		style := tcell.StyleDefault.Foreground(tcell.ColorRed)
		msg := fmt.Sprintf("Terminal too small! Need at least %dx%d", minTermWidth, minTermHeight)
		t.drawText(0, termHeight/2, termWidth, msg, style)
		return
	}

	dividerX := leftPanelWidth
	rightX := dividerX + 2
	rightWidth := termWidth - rightX

	t.drawBorders(termWidth, termHeight, dividerX)
	if frame != nil {
		t.drawBox(frame, 2, 2, leftPanelWidth-3)
	}

	logsY := 1
	if t.config.ShowDebug && frame != nil && frame.State != nil {
		t.drawStatus(frame.State, rightX, 1, rightWidth)
		t.drawListing(frame.State, rightX, statusHeight+2, rightWidth)
		logsY = statusHeight + listingHeight + 3
	}
	t.drawLogs(rightX, logsY, rightWidth, termHeight)
}

func (t *Backend) drawText(x, y, width int, text string, style tcell.Style) {
	i := 0
	for _, ch := range text {
		if i >= width {
			break
		}
		t.screen.SetContent(x+i, y, ch, nil, style)
		i++
	}
}

func (t *Backend) drawBorders(termWidth, termHeight, dividerX int) {
	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	for y := 0; y < termHeight-1; y++ {
		t.screen.SetContent(dividerX, y, '│', nil, borderStyle)
	}

	title := " " + t.config.Title + " "
	if t.config.Title == "" {
		title = " Music Box "
	}
	t.drawText(1, 0, dividerX-2, title, titleStyle)

	startX := dividerX + 2
	logTitleY := 0
	if t.config.ShowDebug {
		t.drawText(startX, 0, termWidth-startX, " Player ", titleStyle)

		for _, y := range []int{statusHeight + 1, statusHeight + listingHeight + 2} {
			for x := dividerX + 1; x < termWidth; x++ {
				t.screen.SetContent(x, y, '─', nil, borderStyle)
			}
			t.screen.SetContent(dividerX, y, '├', nil, borderStyle)
		}
		t.drawText(startX, statusHeight+1, termWidth-startX, " Song ", titleStyle)
		logTitleY = statusHeight + listingHeight + 2
	}

	logTitle := fmt.Sprintf(" Logs [%s] (-/+ filter) ", render.LevelName(t.logLevel))
	t.drawText(startX+12, logTitleY, termWidth-startX-12, logTitle, titleStyle)

	help := " ←/→ song  0-9 select  R restart  SPACE pause  M mute  F9 snapshot  F10 debug  Q quit "
	t.drawText(0, termHeight-1, termWidth, help, borderStyle)
}

// drawBox draws the garland, the speaker scope, and the song line.
func (t *Backend) drawBox(frame *debug.Frame, x, y, width int) {
	labelStyle := tcell.StyleDefault.Foreground(tcell.ColorSilver)

	gray := render.LEDGray(frame.LED, t.maxLED)
	ledColor := tcell.NewRGBColor(int32(gray), int32(gray)*4/5, int32(gray)/4)
	ledStyle := tcell.StyleDefault.Foreground(ledColor).Background(tcell.ColorBlack)
	ch := render.LEDRune(frame.LED, t.maxLED)

	t.drawText(x, y, width, "LED", labelStyle)
	for i := 0; i < garlandLength && i*2 < width-4; i++ {
		t.screen.SetContent(x+4+i*2, y, ch, nil, ledStyle)
	}
	bar := fmt.Sprintf("%s %3d", render.LevelBar(frame.LED, t.maxLED, width-8), frame.LED)
	t.drawText(x, y+1, width, bar, ledStyle)

	scopeY := y + 3
	t.drawText(x, scopeY, width, "Speaker", labelStyle)
	if frame.Muted {
		t.drawText(x+8, scopeY, width-8, "(muted)", tcell.StyleDefault.Foreground(tcell.ColorRed))
	}
	scopeStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for col, row := range render.ScopeRows(frame.Scope, width, scopeHeight) {
		t.screen.SetContent(x+col, scopeY+1+row, '•', nil, scopeStyle)
	}

	s := frame.State
	if s == nil {
		return
	}
	infoY := scopeY + scopeHeight + 2
	songStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	t.drawText(x, infoY, width, fmt.Sprintf("Song %d/%d", s.SongIndex+1, s.SongCount), labelStyle)
	t.drawText(x, infoY+1, width, s.SongName, songStyle)
	t.drawText(x, infoY+2, width, fmt.Sprintf("%.0f BPM  %s", s.BPM, noteLabel(s)), labelStyle)
	if s.Paused {
		t.drawText(x, infoY+4, width, "PAUSED", tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	}
}

func noteLabel(s *debug.PlayerState) string {
	if s.Channel.Silent {
		return "rest"
	}
	if s.Channel.Note == "" {
		return fmt.Sprintf("%.1f Hz", s.Channel.FrequencyHz)
	}
	return s.Channel.Note
}

func (t *Backend) drawStatus(s *debug.PlayerState, x, y, width int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	lines := []string{
		fmt.Sprintf("Cursor: %d/%d  Delay: %d", s.Cursor, s.Length, s.Delay),
		fmt.Sprintf("Tempo: %d (%.1f BPM)  Ticks/16: %d", s.Tempo10, s.BPM, s.TicksPer16),
		fmt.Sprintf("Transpose: %+d", s.Transpose),
		fmt.Sprintf("Clock: %d Hz / %d = %d Hz  [%d]", s.AudioHz, s.Divider, s.NoteHz, s.DividerCount),
		fmt.Sprintf("Voice: inc %d  env %d", s.Channel.Increment, s.Channel.EnvelopeIndex),
		fmt.Sprintf("Breath step: %d", s.BreathStep),
		fmt.Sprintf("Ticks: %d audio  %d note", s.AudioTicks, s.NoteTicks),
		fmt.Sprintf("Song ends: %d  Guard hits: %d", s.SongEnds, s.GuardExhausted),
	}
	for i, line := range lines {
		if i >= statusHeight {
			break
		}
		t.drawText(x, y+i, width, line, style)
	}
}

func (t *Backend) drawListing(s *debug.PlayerState, x, y, width int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	currentStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)

	for i, line := range s.Listing {
		if i >= listingHeight-1 {
			break
		}
		current := line.Offset == s.Cursor
		useStyle := style
		if current {
			useStyle = currentStyle
		}
		t.drawText(x, y+1+i, width, disasm.FormatDisassemblyLine(line, current), useStyle)
	}
}

func (t *Backend) drawLogs(startX, startY, width, termHeight int) {
	availableHeight := termHeight - startY - 2
	if width <= 0 || availableHeight <= 0 {
		return
	}

	debugStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	infoStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	warnStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	errStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	for i, entry := range t.logBuffer.Recent(availableHeight, t.logLevel) {
		style := infoStyle
		switch {
		case entry.Level < slog.LevelInfo:
			style = debugStyle
		case entry.Level >= slog.LevelError:
			style = errStyle
		case entry.Level >= slog.LevelWarn:
			style = warnStyle
		}

		text := render.FormatLogEntry(entry)
		if len(text) > width && width > 3 {
			text = text[:width-3] + "..."
		}
		t.drawText(startX, startY+1+i, width, text, style)
	}
}
