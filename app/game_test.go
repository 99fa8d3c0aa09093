package app

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"go.uber.org/goleak"

	"github.com/lixenwraith/ja-nei/audio"
	"github.com/lixenwraith/ja-nei/celebration"
	"github.com/lixenwraith/ja-nei/config"
	"github.com/lixenwraith/ja-nei/core"
	"github.com/lixenwraith/ja-nei/engine"
	"github.com/lixenwraith/ja-nei/evasion"
	"github.com/lixenwraith/ja-nei/itinerary"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// MockScreen is a minimal tcell.Screen keeping the drawn runes
type MockScreen struct {
	tcell.Screen
	width, height int
	cells         map[[2]int]rune
	shows         int
}

func newMockScreen(w, h int) *MockScreen {
	return &MockScreen{width: w, height: h, cells: make(map[[2]int]rune)}
}

func (m *MockScreen) Size() (int, int) { return m.width, m.height }
func (m *MockScreen) Show()            { m.shows++ }
func (m *MockScreen) Sync()            {}
func (m *MockScreen) Fini()            {}

func (m *MockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = mainc
}

func (m *MockScreen) text() string {
	var b strings.Builder
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			r := m.cells[[2]int{x, y}]
			if r == 0 {
				r = ' '
			}
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

var epoch = time.Date(2026, 2, 13, 18, 0, 0, 0, time.UTC)

type harness struct {
	game   *Game
	screen *MockScreen
	clock  *engine.VirtualClock
}

func newHarness(t *testing.T, mutate func(*config.Config), opts Options) *harness {
	t.Helper()
	cfg := config.Default()
	cfg.Music.Enabled = false
	cfg.Itinerary.OutDir = t.TempDir()
	if mutate != nil {
		mutate(&cfg)
	}
	plan, err := cfg.Plan()
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	screen := newMockScreen(80, 24)
	clock := engine.NewVirtualClock(epoch)
	opts.Config = &cfg
	opts.Plan = plan
	opts.Clock = clock
	if opts.Rand == nil {
		opts.Rand = core.NewSequenceRand(0.5, 0.25, 0.75)
	}
	return &harness{game: New(screen, opts), screen: screen, clock: clock}
}

// advance moves virtual time in frame-sized steps, running one frame per step
func (h *harness) advance(d time.Duration) {
	step := 16 * time.Millisecond
	h.game.Frame()
	for elapsed := time.Duration(0); elapsed < d; elapsed += step {
		h.clock.Advance(min(step, d-elapsed))
		h.game.Frame()
	}
}

func center(r core.Rect) (int, int) {
	return r.Center()
}

func TestRejectClickDodges(t *testing.T) {
	h := newHarness(t, nil, Options{})
	g := h.game
	g.Frame()

	before := g.rejectRect
	g.Click(center(before))

	state := g.Controller().State()
	if state.AttemptCount != 1 || !state.Relocated {
		t.Fatalf("Expected one relocation, got %+v", state)
	}
	if g.counter != "Nei-Versuech: 1" {
		t.Errorf("Expected counter label, got %q", g.counter)
	}
	if math.Abs(g.acceptScale-1.15) > 1e-9 {
		t.Errorf("Expected accept scale 1.15, got %v", g.acceptScale)
	}
	if !g.dodging || g.rejectLayer == 0 {
		t.Errorf("Expected dodge cue on an elevated control, dodging=%v layer=%d", g.dodging, g.rejectLayer)
	}
	if g.Controller().Screen() != evasion.ScreenAsk {
		t.Error("Expected reject click to never leave the ask screen")
	}

	h.advance(300 * time.Millisecond)
	if g.dodging {
		t.Error("Expected dodge cue cleared after 300ms")
	}

	g.layout()
	r := g.rejectRect
	if r.X < 1 || r.Y < 1 || r.X+r.Width > 79 || r.Y+r.Height > 23 {
		t.Errorf("Expected relocated control inside the padded viewport, got %+v", r)
	}
}

func TestRejectKeepsDodgingAcrossResize(t *testing.T) {
	h := newHarness(t, nil, Options{Rand: core.NewSequenceRand(1, 1)})
	g := h.game

	h.screen.width, h.screen.height = 40, 12
	g.handleEvent(tcell.NewEventResize(40, 12))

	g.Dispatch(ActionFocusNext, 0)
	g.Dispatch(ActionActivate, 0)

	// Maximum random values land on the far padded edge of the new viewport
	g.layout()
	if g.rejectRect.X != 29 || g.rejectRect.Y != 8 {
		t.Errorf("Expected reject at (29,8) for a 40x12 viewport, got %+v", g.rejectRect)
	}
}

func TestKeyboardActivation(t *testing.T) {
	h := newHarness(t, nil, Options{})
	g := h.game

	if g.focus != focusAccept {
		t.Fatal("Expected accept focused initially")
	}
	g.Dispatch(ActionFocusNext, 0)
	if g.focus != focusReject {
		t.Fatal("Expected Tab to move focus to reject")
	}

	g.Dispatch(KeyAction(tcell.KeyEnter, 0), 0)
	g.Dispatch(KeyAction(tcell.KeyRune, ' '), ' ')
	if got := g.Controller().State().AttemptCount; got != 2 {
		t.Errorf("Expected Enter and Space to dodge, got %d attempts", got)
	}

	g.Dispatch(ActionFocusPrev, 0)
	g.Dispatch(ActionActivate, 0)
	if g.Controller().Screen() != evasion.ScreenSuccess {
		t.Error("Expected activating accept to show the success screen")
	}
}

func TestMousePressEdge(t *testing.T) {
	h := newHarness(t, nil, Options{})
	g := h.game
	g.layout()
	x, y := center(g.rejectRect)

	g.handleEvent(tcell.NewEventMouse(x, y, tcell.Button1, 0))
	g.handleEvent(tcell.NewEventMouse(x, y, tcell.Button1, 0))
	if got := g.Controller().State().AttemptCount; got != 1 {
		t.Errorf("Expected a held button to count once, got %d", got)
	}

	g.handleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, 0))
	g.layout()
	x, y = center(g.rejectRect)
	g.handleEvent(tcell.NewEventMouse(x, y, tcell.Button1, 0))
	if got := g.Controller().State().AttemptCount; got != 2 {
		t.Errorf("Expected a second press to count, got %d", got)
	}
}

func TestAcceptCelebratesAndResets(t *testing.T) {
	h := newHarness(t, nil, Options{})
	g := h.game

	g.Dispatch(ActionFocusNext, 0)
	for i := 0; i < 3; i++ {
		g.Dispatch(ActionActivate, 0)
	}
	g.Dispatch(ActionFocusPrev, 0)
	g.layout()
	g.Click(center(g.acceptRect))

	if g.Controller().Screen() != evasion.ScreenSuccess || g.screenKind != evasion.ScreenSuccess {
		t.Fatal("Expected success screen")
	}

	h.advance(499 * time.Millisecond)
	if g.Controller().State().AttemptCount != 3 {
		t.Error("Expected state kept before the reset delay")
	}
	if len(g.Elements()) == 0 {
		t.Error("Expected decorations spawned")
	}

	h.advance(16 * time.Millisecond)
	state := g.Controller().State()
	if state != evasion.InitialState() {
		t.Errorf("Expected initial state after reset, got %+v", state)
	}
	if g.counter != "" || g.acceptScale != 1 || g.rejectPlaced {
		t.Errorf("Expected view restored, counter=%q scale=%v placed=%v", g.counter, g.acceptScale, g.rejectPlaced)
	}
	if g.screenKind != evasion.ScreenSuccess {
		t.Error("Expected success screen to stay after the reset")
	}

	h.advance(5 * time.Second)
	if n := len(g.Elements()); n != 0 {
		t.Errorf("Expected every decoration retired, %d left", n)
	}
}

func TestQuitAndDismiss(t *testing.T) {
	h := newHarness(t, nil, Options{})
	g := h.game

	if g.Dispatch(KeyAction(tcell.KeyRune, 'q'), 'q') {
		t.Error("Expected q to quit")
	}
	if g.Dispatch(KeyAction(tcell.KeyCtrlC, 0), 0) {
		t.Error("Expected Ctrl-C to quit")
	}
	if g.Dispatch(KeyAction(tcell.KeyEscape, 0), 0) {
		t.Error("Expected Esc without a dialog to quit")
	}
}

func TestExportOnlyFromSuccess(t *testing.T) {
	h := newHarness(t, nil, Options{})
	g := h.game
	dir := g.cfg.Itinerary.OutDir

	g.Dispatch(ActionExportText, 't')
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Fatalf("Expected no export from the ask screen, got %d files", len(entries))
	}

	g.Dispatch(ActionActivate, 0)
	g.Dispatch(ActionExportText, 't')

	data, err := os.ReadFile(filepath.Join(dir, "plan-2026-02-13.txt"))
	if err != nil {
		t.Fatalf("Expected text export: %v", err)
	}
	if !strings.HasPrefix(string(data), "Euse Plan 13.02.2026\n\n17:30 — ") {
		t.Errorf("Unexpected text export %q", data)
	}
	if !strings.Contains(g.toast, "plan-2026-02-13.txt") {
		t.Errorf("Expected saved notice, got %q", g.toast)
	}

	g.Dispatch(ActionExportAll, 'a')
	for _, ext := range []string{"txt", "ics", "docx"} {
		if _, err := os.Stat(filepath.Join(dir, "plan-2026-02-13."+ext)); err != nil {
			t.Errorf("Expected %s export: %v", ext, err)
		}
	}
}

func TestExportFailureBlocksUntilDismissed(t *testing.T) {
	h := newHarness(t, nil, Options{})
	g := h.game

	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	g.cfg.Itinerary.OutDir = filepath.Join(blocker, "sub")

	g.Dispatch(ActionActivate, 0)
	g.Dispatch(ActionExportCalendar, 'i')
	if g.modal == nil {
		t.Fatal("Expected error dialog after a failed export")
	}

	g.Frame()
	if !strings.Contains(h.screen.text(), "Enter zum Schliesse") {
		t.Error("Expected dialog drawn")
	}

	g.Dispatch(ActionExportText, 't')
	g.Dispatch(ActionPlayerCorner, 'o')
	if g.playerCorner != core.CornerBottomLeft {
		t.Error("Expected input blocked behind the dialog")
	}
	if g.Dispatch(ActionQuit, 'q') {
		t.Error("Expected quit honored behind the dialog")
	}

	g.Dispatch(ActionActivate, 0)
	if g.modal != nil {
		t.Error("Expected Enter to dismiss the dialog")
	}
}

func TestToastExpires(t *testing.T) {
	h := newHarness(t, nil, Options{})
	g := h.game

	g.notify("hallo")
	h.advance(2999 * time.Millisecond)
	if g.toast == "" {
		t.Fatal("Expected notice still visible")
	}
	h.advance(16 * time.Millisecond)
	if g.toast != "" {
		t.Error("Expected notice gone after 3s")
	}
}

func TestDrawScreens(t *testing.T) {
	h := newHarness(t, nil, Options{})
	g := h.game

	g.Frame()
	out := h.screen.text()
	if !strings.Contains(out, "Wötsch mis Valentine si?") || !strings.Contains(out, "Ja") || !strings.Contains(out, "Nei") {
		t.Errorf("Expected question and both buttons drawn:\n%s", out)
	}

	g.Dispatch(ActionFocusNext, 0)
	g.Dispatch(ActionActivate, 0)
	g.Frame()
	if out := h.screen.text(); !strings.Contains(out, "Nei-Versuech: 1") {
		t.Errorf("Expected counter drawn:\n%s", out)
	}

	g.Dispatch(ActionFocusPrev, 0)
	g.Dispatch(ActionActivate, 0)
	h.screen.cells = make(map[[2]int]rune)
	g.Frame()
	out = h.screen.text()
	for _, want := range []string{"Juhuiii!", "Euse Plan 13.02.2026", "18:00 — Apéro am See"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q on the success screen:\n%s", want, out)
		}
	}
}

func TestPlanLines(t *testing.T) {
	plan := itinerary.Plan{
		Title: "Euse Plan",
		Date:  epoch,
		Items: []itinerary.Item{{Time: "18:00", Activity: "Dinner"}, {}, {Time: "20:00", Activity: "Kino"}},
	}
	got := PlanLines(plan)
	if len(got) != 2 || got[0] != "18:00 — Dinner" || got[1] != "20:00 — Kino" {
		t.Errorf("Unexpected plan lines %q", got)
	}
}

func TestKeyAction(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want Action
	}{
		{tcell.KeyTab, 0, ActionFocusNext},
		{tcell.KeyBacktab, 0, ActionFocusPrev},
		{tcell.KeyEnter, 0, ActionActivate},
		{tcell.KeyRune, ' ', ActionActivate},
		{tcell.KeyRune, 'p', ActionPlayToggle},
		{tcell.KeyRune, '2', ActionSelectSong},
		{tcell.KeyRune, '+', ActionVolumeUp},
		{tcell.KeyRune, '-', ActionVolumeDown},
		{tcell.KeyRune, 'x', ActionPlayerExpand},
		{tcell.KeyRune, 'd', ActionExportDocument},
		{tcell.KeyRune, 'z', ActionNone},
		{tcell.KeyF1, 0, ActionNone},
	}
	for _, tt := range tests {
		if got := KeyAction(tt.key, tt.r); got != tt.want {
			t.Errorf("KeyAction(%v, %q): Expected %v, got %v", tt.key, tt.r, tt.want, got)
		}
	}
}

// silentOutput accepts streamers without a device
type silentOutput struct {
	played int
}

func (o *silentOutput) Init(beep.SampleRate, int) error { return nil }
func (o *silentOutput) Play(beep.Streamer)              { o.played++ }
func (o *silentOutput) Lock()                           {}
func (o *silentOutput) Unlock()                         {}
func (o *silentOutput) Clear()                          {}
func (o *silentOutput) Close()                          {}

type toneSource struct {
	beep.StreamSeeker
}

func (toneSource) Close() error { return nil }

func toneDecoder(path string) (beep.StreamSeekCloser, beep.Format, error) {
	format := beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2}
	sine, err := generators.SineTone(format.SampleRate, 440)
	if err != nil {
		return nil, beep.Format{}, err
	}
	buf := beep.NewBuffer(format)
	buf.Append(beep.Take(format.SampleRate.N(10*time.Second), sine))
	return toneSource{buf.Streamer(0, buf.Len())}, format, nil
}

func newMusicHarness(t *testing.T) (*harness, *silentOutput) {
	out := &silentOutput{}
	h := newHarness(t, func(cfg *config.Config) { cfg.Music.Enabled = true }, Options{
		Output:  out,
		Decoder: audio.Decoder(toneDecoder),
	})
	return h, out
}

func TestMusicPreloadedAndStartedOnAccept(t *testing.T) {
	h, out := newMusicHarness(t)
	g := h.game
	p := g.Player()

	if song, ok := p.Current(); !ok || song.Key != "1" {
		t.Fatalf("Expected first song preloaded, got %+v", song)
	}
	if !p.Paused() || out.played != 0 {
		t.Error("Expected no playback before acceptance")
	}
	if p.Volume() != 0.7 {
		t.Errorf("Expected 70%% volume, got %v", p.Volume())
	}

	g.Dispatch(ActionActivate, 0)
	if p.Paused() || out.played != 1 {
		t.Error("Expected acceptance to start the music")
	}

	// A second batch does not restart playing music
	g.party.Start()
	if out.played != 1 {
		t.Errorf("Expected playing music left alone, got %d queues", out.played)
	}
}

func TestPlayerWidgetControls(t *testing.T) {
	h, _ := newMusicHarness(t)
	g := h.game
	p := g.Player()
	g.Frame()

	g.Click(g.playerView.Toggle.X, g.playerView.Toggle.Y)
	if p.Paused() {
		t.Fatal("Expected widget click to start playback")
	}

	bar := g.playerView.Progress
	g.Click(bar.X+bar.Width-1, bar.Y)
	if p.Progress() < 0.99 {
		t.Errorf("Expected seek to the end, got %v", p.Progress())
	}

	g.Dispatch(ActionVolumeDown, '-')
	if v := p.Volume(); v < 0.59 || v > 0.61 {
		t.Errorf("Expected volume 60%%, got %v", v)
	}

	g.Dispatch(ActionSelectSong, '2')
	if song, _ := p.Current(); song.Key != "2" || p.Paused() {
		t.Errorf("Expected song 2 playing, got %s paused=%v", song.Key, p.Paused())
	}

	g.Dispatch(ActionPlayerExpand, 'x')
	g.Dispatch(ActionPlayerCorner, 'o')
	g.Frame()
	if g.playerView.Box.Width != 40 || g.playerView.Box.X != 39 {
		t.Errorf("Expected expanded widget bottom-right, got %+v", g.playerView.Box)
	}

	g.Close()
	if p.Duration() != 0 {
		t.Error("Expected player released on close")
	}
}

func TestUnknownSongKeyNotifies(t *testing.T) {
	h, _ := newMusicHarness(t)
	g := h.game

	g.Dispatch(ActionSelectSong, '3')
	if !strings.Contains(g.toast, "unknown song") {
		t.Errorf("Expected unknown song notice, got %q", g.toast)
	}
	if song, _ := g.Player().Current(); song.Key != "1" {
		t.Errorf("Expected song 1 kept, got %s", song.Key)
	}
	g.Close()
}

func TestElementsSnapshot(t *testing.T) {
	h := newHarness(t, nil, Options{})
	g := h.game

	for id := celebration.ElementID(1); id <= 3; id++ {
		g.Spawn(celebration.DecorativeElement{ID: id, Kind: celebration.KindHeart})
	}
	held := g.Elements()
	g.Remove(1)

	if len(held) != 3 || held[0].ID != 1 || held[1].ID != 2 || held[2].ID != 3 {
		t.Errorf("Expected held snapshot unchanged, got %+v", held)
	}
	if got := g.Elements(); len(got) != 2 || got[0].ID != 2 || got[1].ID != 3 {
		t.Errorf("Expected elements 2 and 3 left, got %+v", got)
	}
}
