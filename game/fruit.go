package game

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/snake/core"
)

// FruitSource produces fruit placements
type FruitSource interface {
	NewFruitPosition(size core.Size) core.Point
}

// Spawner draws fruit positions uniformly over the whole board
// Positions under the snake are not rejected
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner; seed 0 seeds from the clock
func NewSpawner(seed uint64) *Spawner {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Spawner{rng: rand.New(rand.NewSource(seed))}
}

// NewFruitPosition draws X in [0,W) and Y in [0,H) independently
func (s *Spawner) NewFruitPosition(size core.Size) core.Point {
	return core.Point{
		X: s.rng.Intn(size.Width),
		Y: s.rng.Intn(size.Height),
	}
}
