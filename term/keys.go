package term

import (
	"github.com/automoto/bugcrossing/core"
	"github.com/gdamore/tcell/v2"
)

// Command is what a key press asks the game to do.
type Command int

const (
	CommandNone Command = iota
	CommandMove
	CommandRestart
	CommandQuit
)

var runeDirections = map[rune]core.Direction{
	'h': core.DirLeft,
	'l': core.DirRight,
	'k': core.DirUp,
	'j': core.DirDown,
}

var keyDirections = map[tcell.Key]core.Direction{
	tcell.KeyLeft:  core.DirLeft,
	tcell.KeyRight: core.DirRight,
	tcell.KeyUp:    core.DirUp,
	tcell.KeyDown:  core.DirDown,
}

// MapKey translates a key event. Unmapped keys return CommandNone.
func MapKey(ev *tcell.EventKey) (Command, core.Direction) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit, core.DirNone
	case tcell.KeyRune:
		r := ev.Rune()
		if d, ok := runeDirections[r]; ok {
			return CommandMove, d
		}
		switch r {
		case 'r', 'R':
			return CommandRestart, core.DirNone
		case 'q':
			return CommandQuit, core.DirNone
		}
		return CommandNone, core.DirNone
	}
	if d, ok := keyDirections[ev.Key()]; ok {
		return CommandMove, d
	}
	return CommandNone, core.DirNone
}
