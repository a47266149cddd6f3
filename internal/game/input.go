package game

import (
	"clue-hunter/internal/session"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionFire
	ActionPause
	ActionRestart
	ActionQuit
	ActionAnswer1
	ActionAnswer2
	ActionAnswer3
	ActionAnswer4
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEnter:
		return ActionFire
	}

	// Rune keys.
	switch ev.Rune() {
	case 'w', 'W', 'k', 'K':
		return ActionUp
	case 's', 'S', 'j', 'J':
		return ActionDown
	case 'd', 'D', 'l', 'L':
		return ActionRight
	case 'a', 'A', 'h', 'H':
		return ActionLeft
	case ' ', 'f', 'F':
		return ActionFire
	case 'p', 'P':
		return ActionPause
	case 'r', 'R':
		return ActionRestart
	case 'q', 'Q':
		return ActionQuit
	case '1':
		return ActionAnswer1
	case '2':
		return ActionAnswer2
	case '3':
		return ActionAnswer3
	case '4':
		return ActionAnswer4
	}
	return ActionNone
}

// actionKey returns the held-input key behind a movement or fire action.
func actionKey(a Action) (session.Key, bool) {
	switch a {
	case ActionUp:
		return session.KeyUp, true
	case ActionDown:
		return session.KeyDown, true
	case ActionLeft:
		return session.KeyLeft, true
	case ActionRight:
		return session.KeyRight, true
	case ActionFire:
		return session.KeyFire, true
	}
	return 0, false
}
