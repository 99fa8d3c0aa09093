package render

import (
	"fmt"
		"time"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/ja-nei/constants"
	"github.com/lixenwraith/ja-nei/core"
)

// PlayerView is what the music widget shows
type PlayerView struct {
	Title    string
	Playing  bool
	Position time.Duration
	Duration time.Duration
	Volume   float64
	Expanded bool
	Corner   core.Corner
	Song     int // 1-based index of the loaded song
	Songs    int
}

// PlayerLayout locates the widget and its clickable parts on screen
type PlayerLayout struct {
	Box      core.Rect
	Toggle   core.Rect // play/pause icon
	Progress core.Rect // seek bar
}

// FormatClock renders a duration as m:ss
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	s := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// FormatVolume renders a 0..1 volume as a percentage, e.g. "70%"
func FormatVolume(v float64) string {
	return fmt.Sprintf("%d%%", int(v*100+0.5))
}

// LayoutPlayer docks the widget in its corner of a w×h screen
func LayoutPlayer(w, h int, v PlayerView) PlayerLayout {
	width, height := constants.PlayerCollapsedWidth, constants.PlayerCollapsedHeight
	if v.Expanded {
		width, height = constants.PlayerExpandedWidth, constants.PlayerExpandedHeight
	}
	box := v.Corner.Dock(w, h, width, height, constants.PlayerMargin)

	row := box.Y + 1
	toggle := core.Rect{X: box.X + 2, Y: row, Width: 1, Height: 1}
	if v.Expanded {
		toggle.Y = box.Y + 2
		return PlayerLayout{
			Box:      box,
			Toggle:   toggle,
			Progress: core.Rect{X: box.X + 2, Y: box.Y + 3, Width: box.Width - 4, Height: 1},
		}
	}

	// "▶ 0:42 ━━━━──── 70%"
	bar := core.Rect{X: box.X + 5 + len(FormatClock(v.Position)), Y: row, Height: 1}
	bar.Width = max(box.X+box.Width-3-len(FormatVolume(v.Volume))-bar.X, 0)
	return PlayerLayout{Box: box, Toggle: toggle, Progress: bar}
}

// SeekFraction maps a click column on the progress bar to a song fraction
func (l PlayerLayout) SeekFraction(x, y int) (float64, bool) {
	if !l.Progress.Contains(x, y) {
		return 0, false
	}
	if l.Progress.Width <= 1 {
		return 0, true
	}
	return float64(x-l.Progress.X) / float64(l.Progress.Width-1), true
}

// DrawPlayer draws the music widget and returns its layout
func DrawPlayer(c *Canvas, v PlayerView) PlayerLayout {
	w, h := c.Size()
	l := LayoutPlayer(w, h, v)
	fill := c.Style(RgbText, RgbPlayerBg)
	c.Panel(l.Box, fill, c.Style(RgbPlayerBorder, RgbPlayerBg))

	icon := '▶'
	if v.Playing {
		icon = '‖'
	}
	iconStyle := c.Style(RgbProgressFilled, RgbPlayerBg).Bold(true)

	if !v.Expanded {
		c.Set(l.Toggle.X, l.Toggle.Y, icon, iconStyle)
		c.Text(l.Toggle.X+2, l.Toggle.Y, FormatClock(v.Position), fill)
		drawBar(c, l.Progress, progress(v))
		c.Text(l.Progress.X+l.Progress.Width+1, l.Progress.Y, FormatVolume(v.Volume), fill)
		return l
	}

	inner := l.Box.Width - 4
	title := v.Title
	if v.Songs > 1 {
		title = fmt.Sprintf("♪ %d/%d %s", v.Song, v.Songs, title)
	} else {
		title = "♪ " + title
	}
	c.Text(l.Box.X+2, l.Box.Y+1, runewidth.Truncate(title, inner, "…"), fill.Bold(true))

	c.Set(l.Toggle.X, l.Toggle.Y, icon, iconStyle)
	c.Text(l.Toggle.X+2, l.Toggle.Y, FormatClock(v.Position)+" / "+FormatClock(v.Duration), fill)

	drawBar(c, l.Progress, progress(v))

	vol := "Vol " + FormatVolume(v.Volume)
	volBar := core.Rect{X: l.Box.X + 2 + len(vol) + 1, Y: l.Box.Y + 4, Width: inner - len(vol) - 1, Height: 1}
	c.Text(l.Box.X+2, volBar.Y, vol, fill)
	drawBar(c, volBar, v.Volume)

	hints := "p play  n next  +/- vol  x less"
	c.Text(l.Box.X+2, l.Box.Y+5, runewidth.Truncate(hints, inner, ""), c.Style(RgbMuted, RgbPlayerBg))
	return l
}

func progress(v PlayerView) float64 {
	if v.Duration <= 0 {
		return 0
	}
	return float64(v.Position) / float64(v.Duration)
}

// drawBar draws a horizontal gauge filled to fraction f
func drawBar(c *Canvas, r core.Rect, f float64) {
	f = min(max(f, 0), 1)
	filled := int(f*float64(r.Width) + 0.5)
	on := c.Style(RgbProgressFilled, RgbPlayerBg)
	off := c.Style(RgbProgressEmpty, RgbPlayerBg)
	for i := 0; i < r.Width; i++ {
		if i < filled {
			c.Set(r.X+i, r.Y, '━', on)
		} else {
			c.Set(r.X+i, r.Y, '─', off)
		}
	}
}
