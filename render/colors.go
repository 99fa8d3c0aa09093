package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ja-nei/core"
)

// Color converts a palette entry to a tcell color
func Color(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// RGB color definitions for the page
var (
	RgbBackground = Color(core.RGBBackdrop) // Deep wine backdrop
	RgbText       = Color(core.RGBCream)    // Body text
	RgbQuestion   = Color(core.RGBBlush)    // Ask screen headline
	RgbMuted      = Color(core.RGBSlate)    // Hints and empty bars

	RgbAcceptBg     = Color(core.RGBRose)           // Accept button fill
	RgbAcceptText   = Color(core.RGBCream)          // Accept button label
	RgbRejectBg     = tcell.NewRGBColor(60, 60, 72) // Reject button fill
	RgbRejectText   = Color(core.RGBCream)          // Reject button label
	RgbDodgeCueBg   = Color(core.RGBWine)           // Reject button while dodging
	RgbFocusBorder  = Color(core.RGBGold)           // Border of the focused button
	RgbButtonBorder = Color(core.RGBBlush)          // Border of unfocused buttons
	RgbCounter      = Color(core.RGBBlush)          // Reject attempt counter

	RgbCardBg     = tcell.NewRGBColor(45, 18, 38) // Plan card fill
	RgbCardBorder = Color(core.RGBRose)           // Plan card frame

	RgbPlayerBg       = tcell.NewRGBColor(38, 16, 32) // Music player fill
	RgbPlayerBorder   = Color(core.RGBBlush)          // Music player frame
	RgbProgressFilled = Color(core.RGBRose)           // Played part of the song
	RgbProgressEmpty  = Color(core.RGBSlate)          // Remaining part of the song

	RgbToastBg    = Color(core.RGBRose)            // Toast fill
	RgbToastText  = Color(core.RGBBlack)           // Toast text
	RgbModalBg    = tcell.NewRGBColor(70, 20, 30)  // Error modal fill
	RgbModalFrame = tcell.NewRGBColor(255, 80, 80) // Error modal frame
)

// ElementColor returns the glyph color of a decorative element, faded toward
// the backdrop by opacity
func ElementColor(base core.RGB, opacity float64) tcell.Color {
	return Color(base.Fade(core.RGBBackdrop, opacity))
}
