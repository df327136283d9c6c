package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/game"
)

// KeyTable maps terminal keys to game actions
type KeyTable struct {
	// Special keys (arrows, Escape, Ctrl+*)
	SpecialKeys map[tcell.Key]game.Action

	// Printable rune bindings
	Runes map[rune]game.Action
}

// DefaultKeyTable binds arrows for steering, vi motions as aliases, q/Esc/Ctrl-C to quit
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]game.Action{
			tcell.KeyUp:     game.ActionMoveUp,
			tcell.KeyDown:   game.ActionMoveDown,
			tcell.KeyLeft:   game.ActionMoveLeft,
			tcell.KeyRight:  game.ActionMoveRight,
			tcell.KeyEscape: game.ActionQuit,
			tcell.KeyCtrlC:  game.ActionQuit,
		},
		Runes: map[rune]game.Action{
			'k': game.ActionMoveUp,
			'j': game.ActionMoveDown,
			'h': game.ActionMoveLeft,
			'l': game.ActionMoveRight,
			'q': game.ActionQuit,
			'Q': game.ActionQuit,
		},
	}
}

// Translate resolves a terminal event to an action
// Anything unbound, including non-key events, yields ActionNone
func (kt *KeyTable) Translate(ev tcell.Event) game.Action {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return game.ActionNone
	}

	if key.Key() == tcell.KeyRune {
		// Modified runes (Alt+q etc.) are not bindings
		if key.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) != 0 {
			return game.ActionNone
		}
		if a, ok := kt.Runes[key.Rune()]; ok {
			return a
		}
		return game.ActionNone
	}

	if a, ok := kt.SpecialKeys[key.Key()]; ok {
		return a
	}
	return game.ActionNone
}
