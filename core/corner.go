package core

import "fmt"

// Corner is a screen corner a floating widget docks to
type Corner int

const (
	CornerBottomLeft Corner = iota
	CornerBottomRight
	CornerTopLeft
	CornerTopRight
)

var cornerNames = [...]string{"bottom-left", "bottom-right", "top-left", "top-right"}

func (c Corner) String() string {
	if c < 0 || int(c) >= len(cornerNames) {
		return "unknown"
	}
	return cornerNames[c]
}

// Next cycles through the corners in declaration order
func (c Corner) Next() Corner {
	return (c + 1) % Corner(len(cornerNames))
}

// ParseCorner maps a name like "top-right" to its Corner
func ParseCorner(name string) (Corner, error) {
	for i, n := range cornerNames {
		if n == name {
			return Corner(i), nil
		}
	}
	return CornerBottomLeft, fmt.Errorf("unknown corner %q", name)
}

// Dock places a w×h box in the corner of a screen, margin cells from the edges
func (c Corner) Dock(screenW, screenH, w, h, margin int) Rect {
	x, y := margin, screenH-h-margin
	switch c {
	case CornerBottomRight:
		x = screenW - w - margin
	case CornerTopLeft:
		y = margin
	case CornerTopRight:
		x, y = screenW-w-margin, margin
	}
	return Rect{X: max(x, 0), Y: max(y, 0), Width: w, Height: h}
}
