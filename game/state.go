package game

import (
	"github.com/lixenwraith/snake/core"
)

// StepResult describes what a single tick changed
type StepResult struct {
	Tick  uint64
	Tail  core.Point // cell the snake occupied at its tail before moving
	Ate   bool       // fruit was consumed this tick
	Fruit core.Point // fruit position after the tick
}

// State owns the grid, the snake and the fruit
// Single writer: only the owning loop calls its methods
type State struct {
	size   core.Size
	grid   *core.Grid
	snake  *Snake
	fruit  core.Point
	source FruitSource
	tick   uint64
}

// NewState builds a board of the given size with its snake and first fruit
// Call Init before the first Step to project them onto the grid
func NewState(size core.Size, source FruitSource) (*State, error) {
	grid, err := core.NewGrid(size.Height, size.Width)
	if err != nil {
		return nil, err
	}

	snake, err := NewSnake(size)
	if err != nil {
		return nil, err
	}

	return &State{
		size:   size,
		grid:   grid,
		snake:  snake,
		fruit:  source.NewFruitPosition(size),
		source: source,
	}, nil
}

// Init draws the fruit then the snake, so an initial overlap shows the body
func (s *State) Init() {
	s.grid.DrawFruit(s.fruit)
	s.grid.DrawSnake(s.snake, s.snake.Tail())
}

// KeyboardAction applies one input; ErrQuit is returned for ActionQuit
// Unrecognized actions are ignored
func (s *State) KeyboardAction(a Action) error {
	if a == ActionQuit {
		return ErrQuit
	}
	if d, ok := a.direction(); ok {
		s.snake.SetDirection(d)
	}
	return nil
}

// Step runs one tick: move, redraw body, consume fruit, redraw fruit
func (s *State) Step() StepResult {
	s.tick++

	tail := s.snake.Move(s.size)
	s.grid.DrawSnake(s.snake, tail)

	// Any segment on the fruit counts, not only the head
	ate := s.snake.Contains(s.fruit)
	if ate {
		s.fruit = s.source.NewFruitPosition(s.size)
		s.snake.Grow()
	}

	s.grid.DrawFruit(s.fruit)

	return StepResult{
		Tick:  s.tick,
		Tail:  tail,
		Ate:   ate,
		Fruit: s.fruit,
	}
}

// Frame returns a read-only snapshot of the grid for rendering
func (s *State) Frame() core.Snapshot {
	return s.grid.Snapshot()
}

// Size returns the board dimensions
func (s *State) Size() core.Size {
	return s.size
}

// Snake exposes the snake for inspection
func (s *State) Snake() *Snake {
	return s.snake
}

// Fruit returns the current fruit position
func (s *State) Fruit() core.Point {
	return s.fruit
}

// Tick returns the number of steps taken
func (s *State) Tick() uint64 {
	return s.tick
}
