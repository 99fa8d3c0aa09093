package app

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/ja-nei/constants"
	"github.com/lixenwraith/ja-nei/evasion"
)

// Action is a user intent decoded from a key
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionFocusNext
	ActionFocusPrev
	ActionActivate
	ActionDismiss
	ActionPlayToggle
	ActionNextSong
	ActionSelectSong
	ActionVolumeUp
	ActionVolumeDown
	ActionSeekBack
	ActionSeekForward
	ActionPlayerExpand
	ActionPlayerCorner
	ActionExportText
	ActionExportCalendar
	ActionExportDocument
	ActionExportAll
)

// KeyAction maps a key press to its action; r is the rune for KeyRune
func KeyAction(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEscape:
		return ActionDismiss
	case tcell.KeyTab, tcell.KeyRight:
		return ActionFocusNext
	case tcell.KeyBacktab, tcell.KeyLeft:
		return ActionFocusPrev
	case tcell.KeyEnter:
		return ActionActivate
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	switch r {
	case ' ':
		return ActionActivate
	case 'q':
		return ActionQuit
	case 'p':
		return ActionPlayToggle
	case 'n':
		return ActionNextSong
	case '+', '=':
		return ActionVolumeUp
	case '-', '_':
		return ActionVolumeDown
	case '<', ',':
		return ActionSeekBack
	case '>', '.':
		return ActionSeekForward
	case 'x':
		return ActionPlayerExpand
	case 'o':
		return ActionPlayerCorner
	case 't':
		return ActionExportText
	case 'i':
		return ActionExportCalendar
	case 'd':
		return ActionExportDocument
	case 'a':
		return ActionExportAll
	}
	if r >= '1' && r <= '9' {
		return ActionSelectSong
	}
	return ActionNone
}

// handleEvent processes one terminal event, returning false to quit
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.Dispatch(KeyAction(ev.Key(), ev.Rune()), ev.Rune())
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && g.lastButtons&tcell.Button1 == 0
		g.lastButtons = buttons
		if pressed {
			x, y := ev.Position()
			g.Click(x, y)
		}
	case *tcell.EventResize:
		g.canvas.Resize()
		g.screen.Sync()
	}
	return true
}

// Dispatch applies an action, returning false to quit
// While the error dialog is open only dismissal and quit are honored
func (g *Game) Dispatch(a Action, r rune) bool {
	if a == ActionQuit {
		return false
	}
	if g.modal != nil {
		if a == ActionDismiss || a == ActionActivate {
			g.modal = nil
		}
		return true
	}

	switch a {
	case ActionDismiss:
		return false
	case ActionFocusNext, ActionFocusPrev:
		if g.screenKind == evasion.ScreenAsk {
			g.focus = 1 - g.focus
		}
	case ActionActivate:
		if g.screenKind == evasion.ScreenAsk {
			g.activate(g.focus)
		}
	case ActionPlayToggle:
		if g.player != nil {
			g.playerResult("toggle", g.player.Toggle())
		}
	case ActionNextSong:
		if g.player != nil {
			g.playerResult("next", g.player.Next())
		}
	case ActionSelectSong:
		if g.player != nil {
			g.playerResult("select", g.player.Select(string(r)))
		}
	case ActionVolumeUp, ActionVolumeDown:
		if g.player != nil {
			step := constants.VolumeStep
			if a == ActionVolumeDown {
				step = -step
			}
			g.player.SetVolume(g.player.Volume() + step)
		}
	case ActionSeekBack, ActionSeekForward:
		if g.player != nil {
			step := constants.SeekStep
			if a == ActionSeekBack {
				step = -step
			}
			g.playerResult("seek", g.player.SeekFraction(g.player.Progress()+step))
		}
	case ActionPlayerExpand:
		g.playerExpanded = !g.playerExpanded
	case ActionPlayerCorner:
		g.playerCorner = g.playerCorner.Next()
	case ActionExportText, ActionExportCalendar, ActionExportDocument, ActionExportAll:
		if g.screenKind == evasion.ScreenSuccess {
			g.exportAction(a)
		}
	}
	return true
}

// Click handles a primary button press at cell (x, y)
// Floating layers are hit-tested top-down: dialog, player, reject, accept
func (g *Game) Click(x, y int) {
	if g.modal != nil {
		return
	}

	if g.player != nil && g.playerView.Box.Contains(x, y) {
		if g.playerView.Toggle.Contains(x, y) {
			g.playerResult("toggle", g.player.Toggle())
		} else if f, ok := g.playerView.SeekFraction(x, y); ok {
			g.playerResult("seek", g.player.SeekFraction(f))
		}
		return
	}

	if g.screenKind != evasion.ScreenAsk {
		return
	}
	g.layout()
	switch {
	case g.rejectRect.Contains(x, y):
		g.focus = focusReject
		g.activate(focusReject)
	case g.acceptRect.Contains(x, y):
		g.focus = focusAccept
		g.activate(focusAccept)
	}
}

func (g *Game) activate(target focusTarget) {
	if target == focusReject {
		g.controller.OnRejectActivation()
		return
	}
	g.controller.OnAcceptActivation()
}

// playerResult logs a failed player action; the player has already shown it
// to the user through its error event
func (g *Game) playerResult(action string, err error) {
	if err != nil {
		g.logger.Debug("player action failed", zap.String("action", action), zap.Error(err))
	}
}
