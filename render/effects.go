package render

import (
	"time"

	"github.com/lixenwraith/ja-nei/celebration"
	"github.com/lixenwraith/ja-nei/core"
)

// DrawElements draws the live decorative elements at their positions for now
// Hearts fade out over their rise, sparkles keep their own opacity
func DrawElements(c *Canvas, elements []celebration.DecorativeElement, now time.Time) {
	viewport := c.Viewport()
	for _, el := range elements {
		x, y := el.PositionAt(now, viewport).Cell()

		var base core.RGB
		opacity := el.Opacity
		switch el.Kind {
		case celebration.KindHeart:
			base = core.RGBRose
			opacity = 1 - 0.7*el.Progress(now)
		default:
			base = core.RGBGold
		}

		style := c.Style(ElementColor(base, opacity), RgbBackground)
		if el.Size >= 1.5 {
			style = style.Bold(true)
		}
		c.Set(x, y, el.Glyph, style)
	}
}
