package core

import (
	"bytes"
	"errors"
	"testing"
)

type segmentList []Point

func (s segmentList) ForEach(fn func(Point)) {
	for _, p := range s {
		fn(p)
	}
}

func TestNewGrid(t *testing.T) {
	width, height := 7, 5
	g, err := NewGrid(height, width)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if g.Width() != width {
		t.Errorf("Expected width %d, got %d", width, g.Width())
	}
	if g.Height() != height {
		t.Errorf("Expected height %d, got %d", height, g.Height())
	}

	// Verify all cells are initialized to background
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sym, ok := g.Get(Point{X: x, Y: y})
			if !ok {
				t.Errorf("Expected cell at (%d, %d) to exist", x, y)
			}
			if sym != SymbolBackground {
				t.Errorf("Expected cell at (%d, %d) to be background, got %q", x, y, sym)
			}
		}
	}
}

func TestNewGridRejectsZeroDimensions(t *testing.T) {
	tests := []struct {
		name          string
		height, width int
	}{
		{"zero height", 0, 10},
		{"zero width", 10, 0},
		{"both zero", 0, 0},
		{"negative", -1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.height, tt.width)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("Expected ErrInvalidDimensions, got %v", err)
			}
			if g != nil {
				t.Error("Expected nil grid on failure")
			}
		})
	}
}

func TestGetSetCell(t *testing.T) {
	g, _ := NewGrid(4, 4)

	if !g.Set(Point{X: 1, Y: 2}, SymbolFruit) {
		t.Error("Expected Set to succeed")
	}
	sym, ok := g.Get(Point{X: 1, Y: 2})
	if !ok || sym != SymbolFruit {
		t.Errorf("Expected fruit at (1,2), got %q (ok=%v)", sym, ok)
	}

	// Out of range
	if g.Set(Point{X: -1, Y: 0}, SymbolBody) {
		t.Error("Expected Set to fail for negative x")
	}
	if g.Set(Point{X: 0, Y: 4}, SymbolBody) {
		t.Error("Expected Set to fail for y out of bounds")
	}
	if _, ok := g.Get(Point{X: 4, Y: 0}); ok {
		t.Error("Expected Get to fail for x out of bounds")
	}
}

func TestDrawSnakeErasesBeforeRedraw(t *testing.T) {
	g, _ := NewGrid(4, 4)

	body := segmentList{{X: 2, Y: 1}, {X: 2, Y: 2}}
	g.DrawSnake(body, Point{X: 0, Y: 0})

	for _, p := range body {
		if sym, _ := g.Get(p); sym != SymbolBody {
			t.Errorf("Expected body at %v, got %q", p, sym)
		}
	}

	// Old tail still in body (growth tick): redraw must win over erase
	g.DrawSnake(body, Point{X: 2, Y: 1})
	if sym, _ := g.Get(Point{X: 2, Y: 1}); sym != SymbolBody {
		t.Errorf("Expected retained tail to stay body, got %q", sym)
	}

	// Old tail left the body: must be cleared
	g.DrawSnake(segmentList{{X: 2, Y: 2}, {X: 2, Y: 3}}, Point{X: 2, Y: 1})
	if sym, _ := g.Get(Point{X: 2, Y: 1}); sym != SymbolBackground {
		t.Errorf("Expected erased tail to be background, got %q", sym)
	}
}

func TestDrawFruitOverwritesBody(t *testing.T) {
	g, _ := NewGrid(3, 3)
	p := Point{X: 1, Y: 1}

	g.Set(p, SymbolBody)
	g.DrawFruit(p)

	if sym, _ := g.Get(p); sym != SymbolFruit {
		t.Errorf("Expected fruit to overwrite body, got %q", sym)
	}
}

func TestSnapshotIsIndependentCopy(t *testing.T) {
	g, _ := NewGrid(2, 3)
	g.Set(Point{X: 0, Y: 0}, SymbolBody)

	snap := g.Snapshot()
	if snap.Width() != 3 || snap.Height() != 2 {
		t.Fatalf("Expected 3x2 snapshot, got %dx%d", snap.Width(), snap.Height())
	}

	g.Set(Point{X: 0, Y: 0}, SymbolFruit)
	if snap.At(0, 0) != SymbolBody {
		t.Errorf("Expected snapshot to keep body, got %q", snap.At(0, 0))
	}

	expected := "o..\n..."
	if snap.String() != expected {
		t.Errorf("Expected %q, got %q", expected, snap.String())
	}
}

func TestSnapshotIdempotent(t *testing.T) {
	g, _ := NewGrid(5, 5)
	g.DrawSnake(segmentList{{X: 2, Y: 2}, {X: 2, Y: 1}}, Point{})
	g.DrawFruit(Point{X: 4, Y: 4})

	first := g.Snapshot().Bytes()
	for i := 0; i < 10; i++ {
		if next := g.Snapshot().Bytes(); !bytes.Equal(first, next) {
			t.Fatalf("Snapshot %d differs: %q vs %q", i, first, next)
		}
	}
}

func TestSizeContains(t *testing.T) {
	s := Size{Width: 3, Height: 2}

	if !s.Contains(Point{X: 2, Y: 1}) {
		t.Error("Expected (2,1) inside 3x2")
	}
	if s.Contains(Point{X: 3, Y: 0}) {
		t.Error("Expected (3,0) outside 3x2")
	}
	if s.Contains(Point{X: 0, Y: -1}) {
		t.Error("Expected (0,-1) outside 3x2")
	}
}
