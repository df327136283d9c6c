package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/core"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbGridDot    = tcell.NewRGBColor(70, 72, 90)    // Dim gray for empty cells
	RgbSnakeBody  = tcell.NewRGBColor(0, 200, 0)     // Normal Green
	RgbFruit      = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbHelpText   = tcell.NewRGBColor(180, 180, 180) // Brighter gray
)

// SymbolStyles maps each grid symbol to its terminal style
type SymbolStyles map[core.Symbol]tcell.Style

// DefaultSymbolStyles returns the standard palette on the game background
func DefaultSymbolStyles() SymbolStyles {
	base := tcell.StyleDefault.Background(RgbBackground)
	return SymbolStyles{
		core.SymbolBackground: base.Foreground(RgbGridDot),
		core.SymbolBody:       base.Foreground(RgbSnakeBody).Bold(true),
		core.SymbolFruit:      base.Foreground(RgbFruit).Bold(true),
	}
}

// StyleFor returns the style for s, falling back to the background style
func (ss SymbolStyles) StyleFor(s core.Symbol) tcell.Style {
	if st, ok := ss[s]; ok {
		return st
	}
	return ss[core.SymbolBackground]
}
