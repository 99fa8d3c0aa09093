package render

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/ja-nei/constants"
	"github.com/lixenwraith/ja-nei/core"
)

// ButtonSize returns the cell footprint of a button labeled label at scale
func ButtonSize(label string, scale float64) (int, int) {
	base := max(constants.ButtonBaseWidth, runewidth.StringWidth(label)+4)
	w := int(math.Round(float64(base) * scale))
	h := int(math.Round(float64(constants.ButtonBaseHeight) * scale))
	return max(w, base), max(h, constants.ButtonBaseHeight)
}

// ButtonRect sizes a button and centers it on (cx, cy)
func ButtonRect(label string, scale float64, cx, cy int) core.Rect {
	w, h := ButtonSize(label, scale)
	return core.Rect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}

// ButtonStyle selects a button's colors
type ButtonStyle struct {
	Fill, Text tcell.Color
	Focused    bool
}

// DrawButton draws a framed button with its label on the middle row
func DrawButton(c *Canvas, r core.Rect, label string, bs ButtonStyle) {
	border := RgbButtonBorder
	if bs.Focused {
		border = RgbFocusBorder
	}
	fill := c.Style(bs.Text, bs.Fill)
	frame := c.Style(border, bs.Fill)
	text := fill.Bold(true)
	if c.Plain() && bs.Focused {
		text = text.Reverse(true)
	}
	c.Panel(r, fill, frame)
	c.TextCentered(core.Rect{X: r.X + 1, Width: r.Width - 2}, r.Y+r.Height/2, label, text)
}

// Wrap breaks s into lines no wider than width, splitting on spaces
// Words longer than width are cut
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			for runewidth.StringWidth(word) > width {
				head := runewidth.Truncate(word, width, "")
				if head == "" {
					_, size := utf8.DecodeRuneInString(word)
					head = word[:size]
				}
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				lines = append(lines, head)
				word = word[len(head):]
			}
			switch {
			case line == "":
				line = word
			case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// DrawCard draws a framed card of fixed width centered at column cx, top row y,
// with a bold title and the given body lines
func DrawCard(c *Canvas, cx, y int, title string, body []string) core.Rect {
	w, _ := c.Size()
	width := min(constants.CardWidth, w-2)
	inner := width - 4

	var lines []string
	for _, l := range body {
		lines = append(lines, Wrap(l, inner)...)
	}
	r := core.Rect{X: cx - width/2, Y: y, Width: width, Height: len(lines) + 4}
	c.Panel(r, c.Style(RgbText, RgbCardBg), c.Style(RgbCardBorder, RgbCardBg))
	c.TextCentered(core.Rect{X: r.X + 2, Width: inner}, r.Y+1, title, c.Style(RgbQuestion, RgbCardBg).Bold(true))
	for i, l := range lines {
		c.Text(r.X+2, r.Y+3+i, l, c.Style(RgbText, RgbCardBg))
	}
	return r
}

// DrawToast draws a one-line notice at the top center
func DrawToast(c *Canvas, msg string) {
	w, _ := c.Size()
	msg = runewidth.Truncate(" "+msg+" ", max(w-2, 0), "… ")
	width := runewidth.StringWidth(msg)
	r := core.Rect{X: (w - width) / 2, Y: 0, Width: width, Height: 1}
	style := c.Style(RgbToastText, RgbToastBg)
	if c.Plain() {
		style = style.Reverse(true)
	}
	c.Text(r.X, r.Y, msg, style)
}

// DrawModal draws a centered blocking dialog and returns its frame
func DrawModal(c *Canvas, title, msg, hint string) core.Rect {
	w, h := c.Size()
	width := min(56, w-2)
	inner := width - 4
	lines := Wrap(msg, inner)
	height := len(lines) + 6
	r := core.Rect{X: (w - width) / 2, Y: (h - height) / 2, Width: width, Height: height}

	fill := c.Style(RgbText, RgbModalBg)
	c.Panel(r, fill, c.Style(RgbModalFrame, RgbModalBg))
	c.TextCentered(core.Rect{X: r.X + 2, Width: inner}, r.Y+1, title, fill.Bold(true))
	for i, l := range lines {
		c.Text(r.X+2, r.Y+3+i, l, fill)
	}
	c.TextCentered(core.Rect{X: r.X + 2, Width: inner}, r.Y+r.Height-2, hint, c.Style(RgbMuted, RgbModalBg))
	return r
}
