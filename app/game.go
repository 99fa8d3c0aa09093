package app

import (
	"math"
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/ja-nei/audio"
	"github.com/lixenwraith/ja-nei/celebration"
	"github.com/lixenwraith/ja-nei/config"
	"github.com/lixenwraith/ja-nei/constants"
	"github.com/lixenwraith/ja-nei/core"
	"github.com/lixenwraith/ja-nei/engine"
	"github.com/lixenwraith/ja-nei/evasion"
	"github.com/lixenwraith/ja-nei/itinerary"
	"github.com/lixenwraith/ja-nei/render"
)

// Options wires a Game; zero fields get production defaults
type Options struct {
	Config *config.Config
	Plan   itinerary.Plan
	Logger *zap.Logger
	Plain  bool

	// Clock defaults to the monotonic wall clock
	Clock engine.TimeProvider
	// Rand defaults to a generator seeded from the evasion config
	Rand core.Rand
	// Output defaults to the system speaker; ignored when music is disabled
	Output audio.Output
	// Decoder defaults to mp3/wav file decoding
	Decoder audio.Decoder
}

type focusTarget int

const (
	focusAccept focusTarget = iota
	focusReject
)

type modal struct {
	title, message string
}

// Game is the terminal host of the page: it owns the screen, implements the
// evasion surface and the celebration layer, and runs the frame loop
type Game struct {
	screen tcell.Screen
	canvas *render.Canvas
	cfg    *config.Config
	plan   itinerary.Plan
	logger *zap.Logger

	clock      engine.TimeProvider
	sched      *engine.Scheduler
	controller *evasion.Controller
	party      *celebration.Scheduler
	player     *audio.Player

	// Ask screen view state, driven by the controller
	screenKind   evasion.Screen
	acceptScale  float64
	counter      string
	dodging      bool
	rejectPos    core.Point
	rejectPlaced bool
	rejectLayer  int
	focus        focusTarget

	// Hit areas from the last frame
	acceptRect core.Rect
	rejectRect core.Rect
	playerView render.PlayerLayout

	playerExpanded bool
	playerCorner   core.Corner

	elements []celebration.DecorativeElement

	toast      string
	toastUntil time.Time
	modal      *modal

	lastButtons tcell.ButtonMask
}

// New builds a game on an initialized screen
func New(screen tcell.Screen, opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := opts.Clock
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	rng := opts.Rand
	if rng == nil {
		rng = core.NewRand(cfg.Evasion.Seed)
	}

	g := &Game{
		screen:         screen,
		canvas:         render.NewCanvas(screen, opts.Plain),
		cfg:            cfg,
		plan:           opts.Plan,
		logger:         logger,
		clock:          clock,
		sched:          engine.NewScheduler(clock),
		screenKind:     evasion.ScreenAsk,
		acceptScale:    1,
		playerExpanded: cfg.Music.Expanded,
		playerCorner:   cfg.PlayerCorner(),
	}

	var music celebration.Music
	if cfg.Music.Enabled && len(cfg.Music.Songs) > 0 {
		g.player = g.newPlayer(opts.Output, opts.Decoder)
		music = g.player
	}

	g.party = celebration.NewScheduler(g, music, g.sched, rng, cfg.CelebrationParams(), logger.Named("celebration"))
	g.controller = evasion.NewController(g, g.party, g.sched, rng, cfg.EvasionParams(), logger.Named("evasion"))
	g.controller.SetTiming(cfg.DodgeCue(), cfg.ResetDelay())
	return g
}

func (g *Game) newPlayer(out audio.Output, decode audio.Decoder) *audio.Player {
	if out == nil {
		out = audio.SpeakerOutput()
	}
	p := audio.NewPlayer(g.cfg.Songs(), out, decode, g.logger.Named("audio"))
	p.SetVolume(g.cfg.Music.Volume)
	p.SetEvents(audio.Events{
		OnError: func(err error) {
			g.notify("Musik: " + err.Error())
		},
	})

	key := g.cfg.Music.Default
	if key == "" {
		key = g.cfg.Music.Songs[0].Key
	}
	if err := p.Select(key); err != nil {
		g.logger.Warn("continuing without audio", zap.Error(err))
	}
	return p
}

// Controller exposes the evasion controller
func (g *Game) Controller() *evasion.Controller {
	return g.controller
}

// Scheduler exposes the timer queue driven by the frame loop
func (g *Game) Scheduler() *engine.Scheduler {
	return g.sched
}

// Player returns the music player, nil when music is disabled
func (g *Game) Player() *audio.Player {
	return g.player
}

// Viewport implements evasion.Surface and celebration.Layer
func (g *Game) Viewport() core.Size {
	return g.canvas.Viewport()
}

// RejectSize implements evasion.Surface
func (g *Game) RejectSize() core.Size {
	w, h := render.ButtonSize(g.cfg.Page.RejectLabel, 1)
	return core.Size{W: float64(w), H: float64(h)}
}

// SetCounterLabel implements evasion.Surface
func (g *Game) SetCounterLabel(text string) {
	g.counter = text
}

// SetAcceptScale implements evasion.Surface
func (g *Game) SetAcceptScale(scale float64) {
	g.acceptScale = scale
}

// SetDodging implements evasion.Surface
func (g *Game) SetDodging(active bool) {
	g.dodging = active
}

// PlaceReject implements evasion.Surface
func (g *Game) PlaceReject(pos core.Point, layer int) {
	g.rejectPos = pos
	g.rejectPlaced = true
	g.rejectLayer = layer
}

// RestoreReject implements evasion.Surface
func (g *Game) RestoreReject() {
	g.rejectPlaced = false
	g.rejectLayer = 0
	g.rejectPos = core.Point{}
}

// ShowScreen implements evasion.Surface
func (g *Game) ShowScreen(s evasion.Screen) {
	g.screenKind = s
}

// Spawn implements celebration.Layer
func (g *Game) Spawn(el celebration.DecorativeElement) {
	g.elements = append(g.elements, el)
}

// Remove implements celebration.Layer
func (g *Game) Remove(id celebration.ElementID) {
	for i, el := range g.elements {
		if el.ID == id {
			g.elements = append(g.elements[:i], g.elements[i+1:]...)
			return
		}
	}
}

// Elements returns a snapshot of the live decorative elements
func (g *Game) Elements() []celebration.DecorativeElement {
	return slices.Clone(g.elements)
}

// layout computes the Ask screen button rectangles for the current state
func (g *Game) layout() {
	w, h := g.canvas.Size()
	cy := h / 2
	cfg := g.cfg.Page

	acceptW, _ := render.ButtonSize(cfg.AcceptLabel, 1)
	rejectW, rejectH := render.ButtonSize(cfg.RejectLabel, 1)
	gap := constants.ButtonGap

	acceptCX := w/2 - gap/2 - acceptW/2
	g.acceptRect = render.ButtonRect(cfg.AcceptLabel, g.acceptScale, acceptCX, cy)

	if g.rejectPlaced {
		x, y := g.rejectPos.Cell()
		g.rejectRect = core.Rect{X: x, Y: y, Width: rejectW, Height: rejectH}
		return
	}
	rejectCX := w/2 + gap/2 + int(math.Ceil(float64(rejectW)/2))
	g.rejectRect = render.ButtonRect(cfg.RejectLabel, 1, rejectCX, cy)
}

// notify shows a transient message on the top row
func (g *Game) notify(msg string) {
	g.toast = msg
	g.toastUntil = g.clock.Now().Add(constants.ToastDuration)
}

// fail opens the blocking error dialog
func (g *Game) fail(title string, err error) {
	g.logger.Warn(title, zap.Error(err))
	g.modal = &modal{title: title, message: err.Error()}
}
