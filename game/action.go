package game

// Action is a recognized player input
type Action int

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:      "none",
	ActionMoveUp:    "move_up",
	ActionMoveDown:  "move_down",
	ActionMoveLeft:  "move_left",
	ActionMoveRight: "move_right",
	ActionQuit:      "quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// direction maps movement actions to headings
func (a Action) direction() (Direction, bool) {
	switch a {
	case ActionMoveUp:
		return Up, true
	case ActionMoveDown:
		return Down, true
	case ActionMoveLeft:
		return Left, true
	case ActionMoveRight:
		return Right, true
	}
	return 0, false
}
