// Package termhost draws aerolabel overlays into a terminal through tcell.
//
// The terminal is treated as a pixel surface of CellW x CellH pixels per
// cell, so the core's pixel layout carries over unchanged and is snapped
// to whole cells when drawn.
package termhost

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/phanxgames/aerolabel"
)

// Default cell size in pixels, roughly a 16px monospace font.
const (
	DefaultCellW = 8
	DefaultCellH = 16
)

// Canvas implements aerolabel.Surface and aerolabel.TextMeasurer on a
// tcell screen. A CellW or CellH of zero or less means the default.
type Canvas struct {
	Screen       tcell.Screen
	CellW, CellH int
}

// NewCanvas wraps an initialized screen.
func NewCanvas(screen tcell.Screen) *Canvas {
	return &Canvas{Screen: screen, CellW: DefaultCellW, CellH: DefaultCellH}
}

// PixelSize returns the screen size in pixels.
func (c *Canvas) PixelSize() (width, height int) {
	cols, rows := c.Screen.Size()
	cw, ch := c.cellSize()
	return cols * cw, rows * ch
}

func (c *Canvas) cellSize() (w, h int) {
	w, h = c.CellW, c.CellH
	if w <= 0 {
		w = DefaultCellW
	}
	if h <= 0 {
		h = DefaultCellH
	}
	return w, h
}

// MeasureString returns the width of s in pixels, counting wide runes as
// two cells.
func (c *Canvas) MeasureString(s string) int {
	cw, _ := c.cellSize()
	return runewidth.StringWidth(s) * cw
}

// cell maps a pixel position (origin bottom-left) to a cell column and row
// (origin top-left).
func (c *Canvas) cell(x, y int) (col, row int) {
	_, rows := c.Screen.Size()
	cw, ch := c.cellSize()
	return floorDiv(x, cw), rows - 1 - floorDiv(y, ch)
}

// DrawBox fills every cell whose center lies inside b. Terminals have no
// alpha, so the color is composited over black.
func (c *Canvas) DrawBox(b aerolabel.Box, col aerolabel.Color) {
	style := tcell.StyleDefault.Background(premultiplied(col))
	cols, rows := c.Screen.Size()
	cw, ch := c.cellSize()

	left, top := c.cell(b.Left+cw/2, b.Top-ch/2)
	right, bottom := c.cell(b.Right-cw/2, b.Bottom+ch/2)
	for row := max(top, 0); row <= min(bottom, rows-1); row++ {
		for x := max(left, 0); x <= min(right, cols-1); x++ {
			c.Screen.SetContent(x, row, ' ', nil, style)
		}
	}
}

// DrawString writes s starting at the cell containing (x, y), keeping the
// background already in each cell.
func (c *Canvas) DrawString(s string, x, y int, col aerolabel.Color) {
	cols, rows := c.Screen.Size()
	cx, row := c.cell(x, y)
	if row < 0 || row >= rows {
		return
	}
	fg := premultiplied(col)
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if cx >= cols {
			return
		}
		if cx >= 0 {
			_, _, style, _ := c.Screen.GetContent(cx, row)
			c.Screen.SetContent(cx, row, r, nil, style.Foreground(fg))
		}
		cx += w
	}
}

func premultiplied(col aerolabel.Color) tcell.Color {
	a := min(max(col.A, 0), 1)
	return tcell.NewRGBColor(channel(col.R*a), channel(col.G*a), channel(col.B*a))
}

func channel(v float64) int32 {
	return int32(min(max(v, 0), 1)*255 + 0.5)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
