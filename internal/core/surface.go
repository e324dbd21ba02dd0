package core

import (
	"math"
	"unicode/utf8"
)

// Surface is an immediate-mode drawing target for one frame.
// Coordinates are world pixels; text is positioned by its baseline.
type Surface interface {
	FillRect(x, y, w, h float64, c Color)
	FillOval(x, y, w, h float64, c Color)
	DrawLine(x1, y1, x2, y2 float64, c Color)
	DrawText(text string, x, y float64, font Font, c Color)
	TextWidth(text string, font Font) float64
}

// Glyphs used when rasterizing onto a character screen.
const (
	GlyphSolid = '█'
	GlyphDot   = '●'
	GlyphVLine = '│'
	GlyphHLine = '─'
	GlyphPoint = '·'
)

// Canvas projects a world of WorldW x WorldH pixels onto a character Screen.
type Canvas struct {
	screen *Screen
	worldW float64
	worldH float64
}

// Ensure Canvas implements Surface
var _ Surface = (*Canvas)(nil)

// NewCanvas wraps a screen so that the world rectangle fills it entirely.
func NewCanvas(screen *Screen, worldW, worldH float64) *Canvas {
	return &Canvas{screen: screen, worldW: worldW, worldH: worldH}
}

// Screen returns the underlying character buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// cellW returns the world width of one character cell.
func (c *Canvas) cellW() float64 {
	if c.screen.Width() == 0 {
		return c.worldW
	}
	return c.worldW / float64(c.screen.Width())
}

// cellH returns the world height of one character cell.
func (c *Canvas) cellH() float64 {
	if c.screen.Height() == 0 {
		return c.worldH
	}
	return c.worldH / float64(c.screen.Height())
}

// toCell converts a world point to the cell that contains it.
func (c *Canvas) toCell(x, y float64) (int, int) {
	return int(math.Floor(x / c.cellW())), int(math.Floor(y / c.cellH()))
}

// span returns the cells covered by [x, x+w) on one axis. Non-empty spans
// smaller than a cell still cover the cell they start in.
func span(x, w, cell float64) (int, int) {
	lo := int(math.Floor(x / cell))
	hi := int(math.Ceil((x + w) / cell))
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

// glyphFor picks the rune used to fill an area of the given color.
func glyphFor(col Color) rune {
	if col == ColorBlack {
		return ' '
	}
	return GlyphSolid
}

// FillRect fills every cell the rectangle touches.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, x1 := span(x, w, c.cellW())
	y0, y1 := span(y, h, c.cellH())
	g := glyphFor(col)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			c.screen.SetCell(cx, cy, g, col)
		}
	}
}

// FillOval fills the cells whose centers lie inside the ellipse bounded by the
// rectangle. An oval no bigger than one cell is drawn as a dot.
func (c *Canvas) FillOval(x, y, w, h float64, col Color) {
	if w <= 0 || h <= 0 {
		return
	}
	cw, ch := c.cellW(), c.cellH()
	x0, x1 := span(x, w, cw)
	y0, y1 := span(y, h, ch)
	if x1-x0 <= 1 && y1-y0 <= 1 {
		cx, cy := c.toCell(x+w/2, y+h/2)
		c.screen.SetCell(cx, cy, GlyphDot, col)
		return
	}

	rx, ry := w/2, h/2
	ox, oy := x+rx, y+ry
	filled := false
	g := glyphFor(col)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			px := (float64(cx)+0.5)*cw - ox
			py := (float64(cy)+0.5)*ch - oy
			if (px*px)/(rx*rx)+(py*py)/(ry*ry) <= 1 {
				c.screen.SetCell(cx, cy, g, col)
				filled = true
			}
		}
	}
	if !filled {
		cx, cy := c.toCell(ox, oy)
		c.screen.SetCell(cx, cy, GlyphDot, col)
	}
}

// DrawLine rasterizes a line with Bresenham's algorithm in cell space.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64, col Color) {
	cx1, cy1 := c.toCell(x1, y1)
	cx2, cy2 := c.toCell(x2, y2)

	g := GlyphPoint
	switch {
	case cx1 == cx2:
		g = GlyphVLine
	case cy1 == cy2:
		g = GlyphHLine
	}

	dx := Abs(cx2 - cx1)
	dy := -Abs(cy2 - cy1)
	sx, sy := 1, 1
	if cx1 > cx2 {
		sx = -1
	}
	if cy1 > cy2 {
		sy = -1
	}
	e := dx + dy
	x, y := cx1, cy1
	for {
		c.screen.SetCell(x, y, g, col)
		if x == cx2 && y == cy2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// DrawText writes text on the row just above the baseline y.
func (c *Canvas) DrawText(text string, x, y float64, _ Font, col Color) {
	cx, cy := c.toCell(x, math.Max(0, y-1))
	c.screen.DrawText(cx, cy, text, col)
}

// TextWidth returns the world width of text, one cell per rune.
func (c *Canvas) TextWidth(text string, _ Font) float64 {
	return float64(utf8.RuneCountInString(text)) * c.cellW()
}
