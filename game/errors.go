package game

import (
	"errors"

	"github.com/lixenwraith/snake/core"
)

var (
	// ErrInvalidDimensions aliases the core sentinel so callers only import game
	ErrInvalidDimensions = core.ErrInvalidDimensions

	// ErrBoardTooSmall is returned when the board cannot hold the initial two segments
	ErrBoardTooSmall = errors.New("board too small for initial snake")

	// ErrQuit signals the owning loop that the player asked to quit
	ErrQuit = errors.New("quit requested")
)
