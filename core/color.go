package core

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Palette used by the page
var (
	RGBBlack    = RGB{0, 0, 0}
	RGBRose     = RGB{255, 105, 180}
	RGBBlush    = RGB{255, 182, 193}
	RGBCream    = RGB{255, 245, 238}
	RGBWine     = RGB{139, 0, 70}
	RGBGold     = RGB{255, 215, 0}
	RGBSlate    = RGB{90, 90, 110}
	RGBBackdrop = RGB{28, 10, 24}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Fade blends c toward the backdrop, opacity 1 keeps c unchanged
func (c RGB) Fade(backdrop RGB, opacity float64) RGB {
	return backdrop.Blend(c, opacity)
}
