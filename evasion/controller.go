package evasion

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/ja-nei/constants"
	"github.com/lixenwraith/ja-nei/core"
	"github.com/lixenwraith/ja-nei/engine"
)

// Surface is the host view the controller drives
type Surface interface {
	// Viewport returns the current viewport dimensions, read on every attempt
	Viewport() core.Size
	// RejectSize returns the current reject control dimensions
	RejectSize() core.Size

	SetCounterLabel(text string)
	SetAcceptScale(scale float64)
	SetDodging(active bool)

	// PlaceReject moves the reject control out of layout to pos, drawn at layer
	PlaceReject(pos core.Point, layer int)
	// RestoreReject returns the reject control to its default layout slot
	RestoreReject()

	ShowScreen(s Screen)
}

// Celebrator is started once per acceptance
type Celebrator interface {
	Start()
}

// Controller owns the reject/accept control pair and their coupled state
type Controller struct {
	surface    Surface
	celebrator Celebrator
	sched      *engine.Scheduler
	rng        core.Rand
	params     Params
	logger     *zap.Logger

	dodgeCue   time.Duration
	resetDelay time.Duration

	state  InteractionState
	screen Screen

	// dodgeGen lets only the latest cue expiry clear the dodge flag
	dodgeGen uint64
}

// NewController creates a controller in the initial Ask state
// celebrator may be nil when no celebration is wired
func NewController(surface Surface, celebrator Celebrator, sched *engine.Scheduler, rng core.Rand, params Params, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		surface:    surface,
		celebrator: celebrator,
		sched:      sched,
		rng:        rng,
		params:     params,
		logger:     logger,
		dodgeCue:   constants.DodgeCueDuration,
		resetDelay: constants.ResetDelay,
		state:      InitialState(),
		screen:     ScreenAsk,
	}
}

// SetTiming overrides the dodge cue and reset delays
func (c *Controller) SetTiming(dodgeCue, resetDelay time.Duration) {
	c.dodgeCue = dodgeCue
	c.resetDelay = resetDelay
}

// State returns a copy of the interaction state
func (c *Controller) State() InteractionState {
	return c.state
}

// Screen returns the active screen
func (c *Controller) Screen() Screen {
	return c.screen
}

// OnRejectActivation handles a click, press or Enter/Space on the reject control
// The control never completes its activation; each attempt dodges instead
func (c *Controller) OnRejectActivation() {
	c.state.AttemptCount++
	c.surface.SetCounterLabel(c.CounterLabel())

	c.state.CompanionScale = c.params.CompanionScale(c.state.AttemptCount)
	c.surface.SetAcceptScale(c.state.CompanionScale)

	c.dodgeGen++
	gen := c.dodgeGen
	c.surface.SetDodging(true)
	c.sched.After(c.dodgeCue, func() {
		if c.dodgeGen == gen {
			c.surface.SetDodging(false)
		}
	})

	pos := Relocate(c.surface.Viewport(), c.surface.RejectSize(), c.params.Padding, c.rng)
	c.state.RejectPosition = pos
	c.state.Relocated = true
	c.surface.PlaceReject(pos, constants.RejectLayer)

	c.logger.Debug("reject dodged",
		zap.Int("attempt", c.state.AttemptCount),
		zap.Float64("scale", c.state.CompanionScale),
		zap.Float64("x", pos.X),
		zap.Float64("y", pos.Y))
}

// OnAcceptActivation switches to the success screen, starts the celebration
// and schedules the interaction reset
func (c *Controller) OnAcceptActivation() {
	c.screen = ScreenSuccess
	c.surface.ShowScreen(ScreenSuccess)

	if c.celebrator != nil {
		c.celebrator.Start()
	}

	c.logger.Info("accepted", zap.Int("attempts", c.state.AttemptCount))

	c.sched.After(c.resetDelay, c.reset)
}

// CounterLabel formats the visible attempt counter, empty before any attempt
func (c *Controller) CounterLabel() string {
	if c.state.AttemptCount == 0 {
		return ""
	}
	return fmt.Sprintf("%s: %d", c.params.CounterPrefix, c.state.AttemptCount)
}

func (c *Controller) reset() {
	c.state = InitialState()
	c.surface.SetAcceptScale(c.state.CompanionScale)
	c.surface.RestoreReject()
	c.surface.SetCounterLabel("")
	c.logger.Debug("interaction state reset")
}
