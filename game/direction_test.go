package game

import (
	"testing"

	"github.com/lixenwraith/snake/core"
)

func TestAdvanceWrapsAtBoundaries(t *testing.T) {
	size := core.Size{Width: 5, Height: 3}

	tests := []struct {
		name string
		dir  Direction
		from core.Point
		want core.Point
	}{
		{"left edge heading left", Left, core.Point{X: 0, Y: 1}, core.Point{X: 4, Y: 1}},
		{"right edge heading right", Right, core.Point{X: 4, Y: 1}, core.Point{X: 0, Y: 1}},
		{"top edge heading up", Up, core.Point{X: 2, Y: 0}, core.Point{X: 2, Y: 2}},
		{"bottom edge heading down", Down, core.Point{X: 2, Y: 2}, core.Point{X: 2, Y: 0}},
		{"interior left", Left, core.Point{X: 2, Y: 1}, core.Point{X: 1, Y: 1}},
		{"interior right", Right, core.Point{X: 2, Y: 1}, core.Point{X: 3, Y: 1}},
		{"interior up", Up, core.Point{X: 2, Y: 1}, core.Point{X: 2, Y: 0}},
		{"interior down", Down, core.Point{X: 2, Y: 1}, core.Point{X: 2, Y: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.dir.Advance(tt.from, size)
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			if !size.Contains(got) {
				t.Errorf("Result %v out of range", got)
			}
		})
	}
}

func TestAdvanceStaysInRangeEverywhere(t *testing.T) {
	size := core.Size{Width: 3, Height: 4}

	for _, dir := range []Direction{Up, Down, Left, Right} {
		for y := 0; y < size.Height; y++ {
			for x := 0; x < size.Width; x++ {
				got := dir.Advance(core.Point{X: x, Y: y}, size)
				if !size.Contains(got) {
					t.Errorf("%v from (%d,%d) produced out of range %v", dir, x, y, got)
				}
			}
		}
	}
}

func TestDirectionString(t *testing.T) {
	if Up.String() != "up" || Right.String() != "right" {
		t.Errorf("Unexpected direction names: %s, %s", Up, Right)
	}
	if Direction(99).String() != "unknown" {
		t.Errorf("Expected unknown, got %s", Direction(99))
	}
}
