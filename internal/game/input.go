package game

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm
	ActionBuy
	ActionSell
	ActionFilter
	ActionContinue
	ActionLeaderboard
	ActionAgain
	ActionBack
	ActionQuit
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyEnter:
		return ActionConfirm
	case tcell.KeyEscape:
		return ActionBack
	case tcell.KeyCtrlC:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return ActionUp
	case 'j', 'J':
		return ActionDown
	case 'h', 'H':
		return ActionLeft
	case 'l', 'L':
		return ActionRight
	case ' ':
		return ActionConfirm
	case 'b', 'B':
		return ActionBuy
	case 's', 'S':
		return ActionSell
	case 'f', 'F':
		return ActionFilter
	case 'c', 'C':
		return ActionContinue
	case 't', 'T':
		return ActionLeaderboard
	case 'r', 'R':
		return ActionAgain
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// quickSelect returns the zero-based index for digit keys 1-9, or -1.
func quickSelect(ev *tcell.EventKey) int {
	if ev.Key() != tcell.KeyRune {
		return -1
	}
	if r := ev.Rune(); r >= '1' && r <= '9' {
		return int(r - '1')
	}
	return -1
}
