package app

import (
	"strings"

	"github.com/lixenwraith/ja-nei/core"
	"github.com/lixenwraith/ja-nei/evasion"
	"github.com/lixenwraith/ja-nei/itinerary"
	"github.com/lixenwraith/ja-nei/render"
)

// draw renders one frame: page, decorations, player, notices, dialog
func (g *Game) draw() {
	c := g.canvas
	c.Clear()

	if g.screenKind == evasion.ScreenSuccess {
		g.drawSuccess()
	} else {
		g.drawAsk()
	}

	render.DrawElements(c, g.elements, g.clock.Now())

	if g.player != nil {
		g.playerView = render.DrawPlayer(c, g.playerState())
	}
	if g.toast != "" {
		render.DrawToast(c, g.toast)
	}
	if g.modal != nil {
		render.DrawModal(c, g.modal.title, g.modal.message, "Enter zum Schliesse")
	}
	g.screen.Show()
}

func (g *Game) drawAsk() {
	c := g.canvas
	w, h := c.Size()
	page := g.cfg.Page
	full := core.Rect{Width: w}

	g.layout()
	c.TextCentered(full, h/2-4, page.Question, c.Style(render.RgbQuestion, render.RgbBackground).Bold(true))

	accept := render.ButtonStyle{Fill: render.RgbAcceptBg, Text: render.RgbAcceptText, Focused: g.focus == focusAccept}
	reject := render.ButtonStyle{Fill: render.RgbRejectBg, Text: render.RgbRejectText, Focused: g.focus == focusReject}
	if g.dodging {
		reject.Fill = render.RgbDodgeCueBg
	}

	// An elevated reject control is drawn over the accept control
	if g.rejectLayer > 0 {
		render.DrawButton(c, g.acceptRect, page.AcceptLabel, accept)
		render.DrawButton(c, g.rejectRect, page.RejectLabel, reject)
	} else {
		render.DrawButton(c, g.rejectRect, page.RejectLabel, reject)
		render.DrawButton(c, g.acceptRect, page.AcceptLabel, accept)
	}

	if g.counter != "" {
		y := max(g.acceptRect.Y+g.acceptRect.Height, h/2+2) + 1
		c.TextCentered(full, y, g.counter, c.Style(render.RgbCounter, render.RgbBackground))
	}
}

func (g *Game) drawSuccess() {
	c := g.canvas
	w, _ := c.Size()
	page := g.cfg.Page
	full := core.Rect{Width: w}
	bg := render.RgbBackground

	c.TextCentered(full, 2, page.SuccessTitle, c.Style(render.RgbQuestion, bg).Bold(true))
	c.TextCentered(full, 4, page.SuccessMessage, c.Style(render.RgbText, bg))

	card := render.DrawCard(c, w/2, 6, g.plan.Heading(), PlanLines(g.plan))
	c.TextCentered(full, card.Y+card.Height+1, "t Text · i Kalender · d Word · a alli", c.Style(render.RgbMuted, bg))
}

// PlanLines is the inline plan document body, one line per entry
func PlanLines(plan itinerary.Plan) []string {
	text := itinerary.FormatText(plan)
	// Drop the heading and blank line, the card shows the heading as its title
	_, body, _ := strings.Cut(text, "\n\n")
	return strings.Split(strings.TrimRight(body, "\n"), "\n")
}

func (g *Game) playerState() render.PlayerView {
	v := render.PlayerView{
		Playing:  !g.player.Paused(),
		Position: g.player.Position(),
		Duration: g.player.Duration(),
		Volume:   g.player.Volume(),
		Expanded: g.playerExpanded,
		Corner:   g.playerCorner,
		Songs:    len(g.player.Songs()),
	}
	if song, ok := g.player.Current(); ok {
		v.Title = song.Title
		for i, s := range g.player.Songs() {
			if s.Key == song.Key {
				v.Song = i + 1
			}
		}
	}
	return v
}
