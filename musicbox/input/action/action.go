package action

import "fmt"

// Action represents input actions that can be performed on the music box
type Action int

const (
	// Music box controls, the two buttons of the real device plus a few extras
	SongNext Action = iota
	SongPrev
	SongRestart
	SongSelect0
	SongSelect1
	SongSelect2
	SongSelect3
	SongSelect4
	SongSelect5
	SongSelect6
	SongSelect7
	SongSelect8
	SongSelect9

	// Emulator features
	EmulatorPauseToggle
	EmulatorDebugToggle
	EmulatorSnapshot
	EmulatorMuteToggle
	EmulatorQuit

	// Debug controls
	DebugLogLevelIncrease
	DebugLogLevelDecrease
)

// Category groups actions for help screens.
type Category int

const (
	CategoryPlayback Category = iota
	CategoryEmulator
	CategoryDebug
)

func (c Category) String() string {
	switch c {
	case CategoryPlayback:
		return "Playback"
	case CategoryEmulator:
		return "Emulator"
	case CategoryDebug:
		return "Debug"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Info describes an action.
type Info struct {
	Name        string
	Description string
	Category    Category
}

var infos = map[Action]Info{
	SongNext:              {"SongNext", "Next song", CategoryPlayback},
	SongPrev:              {"SongPrev", "Previous song", CategoryPlayback},
	SongRestart:           {"SongRestart", "Restart the current song", CategoryPlayback},
	EmulatorPauseToggle:   {"PauseToggle", "Pause or resume", CategoryEmulator},
	EmulatorDebugToggle:   {"DebugToggle", "Show or hide the debug panel", CategoryEmulator},
	EmulatorSnapshot:      {"Snapshot", "Save a state snapshot", CategoryEmulator},
	EmulatorMuteToggle:    {"MuteToggle", "Mute or unmute the speaker", CategoryEmulator},
	EmulatorQuit:          {"Quit", "Quit", CategoryEmulator},
	DebugLogLevelIncrease: {"LogLevelIncrease", "More verbose logging", CategoryDebug},
	DebugLogLevelDecrease: {"LogLevelDecrease", "Less verbose logging", CategoryDebug},
}

// GetInfo returns the description of an action.
func GetInfo(a Action) Info {
	if info, ok := infos[a]; ok {
		return info
	}
	if n, ok := SongIndex(a); ok {
		return Info{fmt.Sprintf("SongSelect%d", n), fmt.Sprintf("Play song %d", n), CategoryPlayback}
	}
	return Info{Name: fmt.Sprintf("Action(%d)", int(a)), Category: CategoryEmulator}
}

func (a Action) String() string { return GetInfo(a).Name }

// SongIndex returns the song a SongSelect action picks.
func SongIndex(a Action) (int, bool) {
	if a >= SongSelect0 && a <= SongSelect9 {
		return int(a - SongSelect0), true
	}
	return 0, false
}
