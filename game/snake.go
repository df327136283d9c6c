package game

import (
	"fmt"

	"github.com/lixenwraith/snake/core"
)

// Snake is the ordered body, tail at the front and head at the back
type Snake struct {
	body      *Deque[core.Point]
	direction Direction
	grow      int // pending growth units, each keeps the tail for one extra tick
}

// NewSnake places a two segment snake in the middle of the board heading down
// Segments are (W/2, H/2) then (W/2, H/2-1), so the head starts above the tail
func NewSnake(size core.Size) (*Snake, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}
	if size.Height/2 < 1 {
		return nil, fmt.Errorf("%w: height %d", ErrBoardTooSmall, size.Height)
	}

	x, y := size.Width/2, size.Height/2

	body := NewDeque[core.Point](8)
	body.PushBack(core.Point{X: x, Y: y})
	body.PushBack(core.Point{X: x, Y: y - 1})

	return &Snake{
		body:      body,
		direction: Down,
	}, nil
}

// Grow schedules one unit of growth applied on subsequent moves
func (s *Snake) Grow() {
	s.grow++
}

// Pending returns the number of growth units not yet applied
func (s *Snake) Pending() int {
	return s.grow
}

// Direction returns the current heading
func (s *Snake) Direction() Direction {
	return s.direction
}

// SetDirection overwrites the heading, reversal included
func (s *Snake) SetDirection(d Direction) {
	s.direction = d
}

// Move advances the snake one cell and returns the tail as it was before the move
// With growth pending the tail is kept, otherwise it is removed
func (s *Snake) Move(size core.Size) core.Point {
	tail, ok := s.body.Front()
	if !ok {
		panic("snake: move on empty body")
	}

	if s.grow > 0 {
		s.grow--
	} else {
		s.body.PopFront()
	}

	// A two segment snake can pop down to one, never to zero
	head, ok := s.body.Back()
	if !ok {
		panic("snake: body emptied during move")
	}
	s.body.PushBack(s.direction.Advance(head, size))

	return tail
}

// Head returns the most recently added segment
func (s *Snake) Head() core.Point {
	p, _ := s.body.Back()
	return p
}

// Tail returns the oldest segment
func (s *Snake) Tail() core.Point {
	p, _ := s.body.Front()
	return p
}

// Len returns the number of body segments
func (s *Snake) Len() int {
	return s.body.Len()
}

// Contains reports whether any segment occupies p
func (s *Snake) Contains(p core.Point) bool {
	for i := 0; i < s.body.Len(); i++ {
		if s.body.At(i) == p {
			return true
		}
	}
	return false
}

// ForEach visits segments tail to head
func (s *Snake) ForEach(fn func(core.Point)) {
	s.body.ForEach(fn)
}

// Positions returns a copy of the segments tail to head
func (s *Snake) Positions() []core.Point {
	return s.body.Slice()
}
