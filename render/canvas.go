package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/ja-nei/core"
)

// Canvas clips drawing to the screen and applies the color mode
type Canvas struct {
	screen        tcell.Screen
	width, height int
	plain         bool
}

// NewCanvas wraps screen; plain drops all colors and keeps attributes only
func NewCanvas(screen tcell.Screen, plain bool) *Canvas {
	c := &Canvas{screen: screen, plain: plain}
	c.Resize()
	return c
}

// Resize re-reads the screen dimensions
func (c *Canvas) Resize() {
	c.width, c.height = c.screen.Size()
}

// Size returns the cell grid dimensions
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Viewport returns the cell grid as a float size
func (c *Canvas) Viewport() core.Size {
	return core.Size{W: float64(c.width), H: float64(c.height)}
}

// Plain reports whether colors are suppressed
func (c *Canvas) Plain() bool {
	return c.plain
}

// Style builds a foreground/background style honoring the color mode
func (c *Canvas) Style(fg, bg tcell.Color) tcell.Style {
	if c.plain {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(fg).Background(bg)
}

// Set draws one rune, ignoring cells off screen
func (c *Canvas) Set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.screen.SetContent(x, y, r, nil, style)
}

// Text draws s from (x, y) and returns the columns it occupied
// Wide runes take two cells; text past the right edge is dropped
func (c *Canvas) Text(x, y int, s string, style tcell.Style) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > c.width {
			break
		}
		c.Set(col, y, r, style)
		col += w
	}
	return col - x
}

// TextCentered draws s centered horizontally within r on row y
func (c *Canvas) TextCentered(r core.Rect, y int, s string, style tcell.Style) {
	s = runewidth.Truncate(s, max(r.Width, 0), "…")
	x := r.X + (r.Width-runewidth.StringWidth(s))/2
	c.Text(x, y, s, style)
}

// Fill paints every cell of r with a blank in style
func (c *Canvas) Fill(r core.Rect, style tcell.Style) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			c.Set(x, y, ' ', style)
		}
	}
}

// Frame draws a rounded border along the edge of r
func (c *Canvas) Frame(r core.Rect, style tcell.Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	right, bottom := r.X+r.Width-1, r.Y+r.Height-1
	for x := r.X + 1; x < right; x++ {
		c.Set(x, r.Y, '─', style)
		c.Set(x, bottom, '─', style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		c.Set(r.X, y, '│', style)
		c.Set(right, y, '│', style)
	}
	c.Set(r.X, r.Y, '╭', style)
	c.Set(right, r.Y, '╮', style)
	c.Set(r.X, bottom, '╰', style)
	c.Set(right, bottom, '╯', style)
}

// Panel fills r and frames it
func (c *Canvas) Panel(r core.Rect, fill, border tcell.Style) {
	c.Fill(r, fill)
	c.Frame(r, border)
}

// Clear paints the whole grid with the page background
func (c *Canvas) Clear() {
	c.Fill(core.Rect{Width: c.width, Height: c.height}, c.Style(RgbText, RgbBackground))
}
