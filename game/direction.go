package game

import "github.com/lixenwraith/snake/core"

// Direction is the snake heading
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Advance moves p one cell in direction d on a toroidal board of the given size
// Leaving one edge re-enters from the opposite edge
func (d Direction) Advance(p core.Point, size core.Size) core.Point {
	switch d {
	case Up:
		if p.Y == 0 {
			p.Y = size.Height - 1
		} else {
			p.Y--
		}
	case Down:
		p.Y++
		if p.Y >= size.Height {
			p.Y = 0
		}
	case Left:
		if p.X == 0 {
			p.X = size.Width - 1
		} else {
			p.X--
		}
	case Right:
		p.X++
		if p.X >= size.Width {
			p.X = 0
		}
	}
	return p
}
