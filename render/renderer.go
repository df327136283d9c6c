package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/core"
)

const (
	// CellWidth is the number of terminal columns per grid cell: " c "
	CellWidth = 3

	// HelpText is the static line printed under the board
	HelpText = "q to exit; Control with arrow keys"
)

// Renderer draws grid snapshots to a tcell screen
type Renderer struct {
	screen tcell.Screen
	styles SymbolStyles
}

// NewRenderer creates a renderer with the default palette
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		styles: DefaultSymbolStyles(),
	}
}

// Render clears the screen, draws the frame and the help line, then shows it
func (r *Renderer) Render(frame core.Snapshot) {
	r.screen.Clear()
	bg := r.styles.StyleFor(core.SymbolBackground)

	for y := 0; y < frame.Height(); y++ {
		for x := 0; x < frame.Width(); x++ {
			sym := frame.At(x, y)
			col := x * CellWidth
			r.screen.SetContent(col, y, ' ', nil, bg)
			r.screen.SetContent(col+1, y, rune(sym), nil, r.styles.StyleFor(sym))
			r.screen.SetContent(col+2, y, ' ', nil, bg)
		}
	}

	// One blank row between board and help text
	r.drawText(0, frame.Height()+1, HelpText, tcell.StyleDefault.Foreground(RgbHelpText))

	r.screen.Show()
}

// Sync repaints the whole screen, used after a terminal resize
func (r *Renderer) Sync() {
	r.screen.Sync()
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
