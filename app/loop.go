package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ja-nei/constants"
	"github.com/lixenwraith/ja-nei/core"
)

// OpenScreen initializes the terminal with mouse reporting and registers it
// for restoration on crash
func OpenScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	core.SetCrashRestore(screen.Fini)
	return screen, nil
}

// Frame advances one tick: due timers, player progress, notice expiry, redraw
func (g *Game) Frame() {
	g.sched.Run()
	if g.player != nil {
		g.player.Poll()
	}
	if g.toast != "" && !g.clock.Now().Before(g.toastUntil) {
		g.toast = ""
	}
	g.draw()
}

// Run drives the page until the user quits
func (g *Game) Run() {
	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, constants.EventBufferSize)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	})

	g.Frame()
	for {
		select {
		case ev := <-eventChan:
			if !g.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			g.Frame()
		}
	}
}

// Close releases audio and restores the terminal
func (g *Game) Close() {
	if g.player != nil {
		g.player.Close()
	}
	core.SetCrashRestore(nil)
	g.screen.Fini()
}
