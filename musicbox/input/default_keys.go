package input

import "github.com/valerio/go-musicbox/musicbox/input/action"

// DefaultKeyMap provides default key mappings that work across backends.
// Backends can use these mappings as a base and override/extend as needed.
var DefaultKeyMap = map[string]action.Action{
	// The two device buttons
	"Right": action.SongNext,
	"Left":  action.SongPrev,
	"n":     action.SongNext,
	"b":     action.SongPrev,
	"r":     action.SongRestart,

	"0": action.SongSelect0,
	"1": action.SongSelect1,
	"2": action.SongSelect2,
	"3": action.SongSelect3,
	"4": action.SongSelect4,
	"5": action.SongSelect5,
	"6": action.SongSelect6,
	"7": action.SongSelect7,
	"8": action.SongSelect8,
	"9": action.SongSelect9,

	// Emulator controls
	"Space":  action.EmulatorPauseToggle,
	"p":      action.EmulatorPauseToggle, // Alternative key
	"m":      action.EmulatorMuteToggle,
	"F9":     action.EmulatorSnapshot,
	"F10":    action.EmulatorDebugToggle,
	"Escape": action.EmulatorQuit,
	"q":      action.EmulatorQuit,

	// Debug controls
	"+": action.DebugLogLevelIncrease,
	"=": action.DebugLogLevelIncrease, // Alternative without shift
	"-": action.DebugLogLevelDecrease,
	"_": action.DebugLogLevelDecrease, // Alternative with shift
}

// GetDefaultMapping returns the default action for a key, if one exists
func GetDefaultMapping(key string) (action.Action, bool) {
	act, ok := DefaultKeyMap[key]
	return act, ok
}
