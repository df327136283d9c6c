package core

// Symbol is the display symbol stored in a grid cell
type Symbol byte

const (
	SymbolBackground Symbol = '.'
	SymbolBody       Symbol = 'o'
	SymbolFruit      Symbol = '*'
)

// Segments is anything that can enumerate the cells it occupies
type Segments interface {
	ForEach(fn func(Point))
}

// Grid is the fixed-size symbol matrix projected from snake and fruit state
// It is updated incrementally: callers erase what moved away and draw what arrived
type Grid struct {
	width  int
	height int
	cells  [][]Symbol
}

// NewGrid creates a grid filled with background symbols
func NewGrid(height, width int) (*Grid, error) {
	if err := (Size{Width: width, Height: height}).Validate(); err != nil {
		return nil, err
	}

	cells := make([][]Symbol, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]Symbol, width)
		for x := 0; x < width; x++ {
			cells[y][x] = SymbolBackground
		}
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// Width returns the grid width
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height
func (g *Grid) Height() int {
	return g.height
}

// Size returns the grid dimensions
func (g *Grid) Size() Size {
	return Size{Width: g.width, Height: g.height}
}

// Get returns the symbol at p
func (g *Grid) Get(p Point) (Symbol, bool) {
	if !g.Size().Contains(p) {
		return 0, false
	}
	return g.cells[p.Y][p.X], true
}

// Set overwrites the symbol at p, returns false if p is out of range
func (g *Grid) Set(p Point, s Symbol) bool {
	if !g.Size().Contains(p) {
		return false
	}
	g.cells[p.Y][p.X] = s
	return true
}

// DrawSnake erases oldTail then paints every body segment
// Erase must come first: while growing the old tail is still part of the body
func (g *Grid) DrawSnake(body Segments, oldTail Point) {
	g.Set(oldTail, SymbolBackground)
	body.ForEach(func(p Point) {
		g.Set(p, SymbolBody)
	})
}

// DrawFruit paints the fruit symbol over whatever occupies p
func (g *Grid) DrawFruit(p Point) {
	g.Set(p, SymbolFruit)
}

// Snapshot returns a deep copy of the current cells
func (g *Grid) Snapshot() Snapshot {
	rows := make([][]Symbol, g.height)
	for y := range g.cells {
		rows[y] = make([]Symbol, g.width)
		copy(rows[y], g.cells[y])
	}
	return Snapshot{rows: rows}
}

// Snapshot is a read-only frame of the grid taken once per tick
type Snapshot struct {
	rows [][]Symbol
}

// Width returns the frame width, 0 for an empty frame
func (s Snapshot) Width() int {
	if len(s.rows) == 0 {
		return 0
	}
	return len(s.rows[0])
}

// Height returns the frame height
func (s Snapshot) Height() int {
	return len(s.rows)
}

// At returns the symbol at column x, row y
func (s Snapshot) At(x, y int) Symbol {
	return s.rows[y][x]
}

// Bytes serializes the frame row by row, rows separated by '\n'
func (s Snapshot) Bytes() []byte {
	out := make([]byte, 0, s.Height()*(s.Width()+1))
	for y, row := range s.rows {
		if y > 0 {
			out = append(out, '\n')
		}
		for _, sym := range row {
			out = append(out, byte(sym))
		}
	}
	return out
}

// String renders the frame the same way as Bytes
func (s Snapshot) String() string {
	return string(s.Bytes())
}
