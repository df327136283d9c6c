package core

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned when a board dimension is not positive
var ErrInvalidDimensions = errors.New("invalid board dimensions")

// Point represents a cell coordinate on the board
// Valid points satisfy 0 <= X < Width and 0 <= Y < Height
type Point struct {
	X, Y int
}

// Size holds board dimensions in cells
type Size struct {
	Width, Height int
}

// Validate reports ErrInvalidDimensions for zero or negative dimensions
func (s Size) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, s.Width, s.Height)
	}
	return nil
}

// Contains reports whether p lies within the board
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
