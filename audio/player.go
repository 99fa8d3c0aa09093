package audio

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"go.uber.org/zap"

	"github.com/lixenwraith/ja-nei/constants"
)

var (
	// ErrNoSource is returned when playback is requested before a song loaded
	ErrNoSource = errors.New("no audio source loaded")
	// ErrUnknownSong is returned by Select for keys not in the song list
	ErrUnknownSong = errors.New("unknown song")
	// ErrOutput wraps audio device initialization failures
	ErrOutput = errors.New("audio output unavailable")
	// ErrLoad wraps source open/decode failures
	ErrLoad = errors.New("audio source failed to load")
)

// Song is one selectable track
type Song struct {
	Key   string
	Title string
	Path  string
}

// Events are the playback notifications, all invoked on the caller's goroutine
type Events struct {
	OnMetadata func(duration time.Duration)
	OnPosition func(position, duration time.Duration)
	OnError    func(err error)
}

// Player is the media playback surface: play/pause, position, duration,
// volume, seeking and song selection over a beep output
// Methods are called from the UI goroutine; streamer state shared with the
// output goroutine is touched only under the output lock
// Every failure is both returned and emitted on OnError
type Player struct {
	out    Output
	decode Decoder
	sr     beep.SampleRate
	logger *zap.Logger
	events Events

	songs   []Song
	current int

	initialized bool
	queued      bool

	stream beep.StreamSeekCloser
	format beep.Format
	ctrl   *beep.Ctrl
	volume *effects.Volume
	ended  *atomic.Bool

	level   float64
	lastPos time.Duration
}

// NewPlayer creates a player with no song loaded
// decode defaults to DecodeFile, logger to a no-op
func NewPlayer(songs []Song, out Output, decode Decoder, logger *zap.Logger) *Player {
	if decode == nil {
		decode = DecodeFile
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Player{
		out:     out,
		decode:  decode,
		sr:      beep.SampleRate(constants.SampleRate),
		logger:  logger,
		songs:   songs,
		current: -1,
		level:   constants.DefaultVolume,
	}
}

// SetEvents replaces the event callbacks
func (p *Player) SetEvents(e Events) {
	p.events = e
}

// Songs returns the selectable tracks
func (p *Player) Songs() []Song {
	return p.songs
}

// Current returns the loaded song
func (p *Player) Current() (Song, bool) {
	if p.current < 0 {
		return Song{}, false
	}
	return p.songs[p.current], true
}

// Select stops playback, swaps the source to the song with key and resumes
// if it was playing
func (p *Player) Select(key string) error {
	idx := -1
	for i, s := range p.songs {
		if s.Key == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		err := fmt.Errorf("%w: %q", ErrUnknownSong, key)
		p.fail(err)
		return err
	}

	wasPlaying := !p.Paused()
	p.Pause()

	if err := p.load(idx); err != nil {
		return err
	}
	if wasPlaying {
		return p.Play()
	}
	return nil
}

// Next selects the song after the current one, wrapping around
func (p *Player) Next() error {
	if len(p.songs) == 0 {
		p.fail(ErrNoSource)
		return ErrNoSource
	}
	return p.Select(p.songs[(p.current+1)%len(p.songs)].Key)
}

func (p *Player) load(idx int) error {
	p.unload()
	p.current = idx
	song := p.songs[idx]

	stream, format, err := p.decode(song.Path)
	if err != nil {
		err = fmt.Errorf("%w: %s: %w", ErrLoad, song.Path, err)
		p.fail(err)
		return err
	}

	var src beep.Streamer = stream
	if format.SampleRate != p.sr {
		src = beep.Resample(constants.ResampleQuality, format.SampleRate, p.sr, stream)
	}

	ended := &atomic.Bool{}
	ctrl := &beep.Ctrl{Streamer: src, Paused: true}
	vol := &effects.Volume{
		Streamer: beep.Seq(ctrl, beep.Callback(func() { ended.Store(true) })),
		Base:     2,
	}

	p.stream, p.format = stream, format
	p.ctrl, p.volume, p.ended = ctrl, vol, ended
	p.queued = false
	p.lastPos = 0
	p.applyVolume()

	duration := format.SampleRate.D(stream.Len())
	p.logger.Debug("song loaded", zap.String("song", song.Title), zap.Duration("duration", duration))
	if p.events.OnMetadata != nil {
		p.events.OnMetadata(duration)
	}
	return nil
}

// unload detaches the current streamer from the output and closes its source
func (p *Player) unload() {
	if p.ctrl == nil {
		return
	}
	p.out.Lock()
	p.ctrl.Paused = true
	p.ctrl.Streamer = nil
	p.out.Unlock()

	if err := p.stream.Close(); err != nil {
		p.logger.Debug("closing audio source", zap.Error(err))
	}
	p.stream, p.ctrl, p.volume, p.ended = nil, nil, nil, nil
	p.queued = false
}

// Play starts or resumes playback, initializing the output on first use
// A finished track restarts from the beginning
func (p *Player) Play() error {
	if p.ctrl == nil {
		p.fail(ErrNoSource)
		return ErrNoSource
	}

	if !p.initialized {
		if err := p.out.Init(p.sr, p.sr.N(constants.SpeakerBuffer)); err != nil {
			err = fmt.Errorf("%w: %w", ErrOutput, err)
			p.fail(err)
			return err
		}
		p.initialized = true
	}

	if p.ended.Load() {
		p.queued = false
	}

	p.out.Lock()
	if p.stream.Position() >= p.stream.Len() {
		if err := p.stream.Seek(0); err != nil {
			p.out.Unlock()
			p.fail(err)
			return err
		}
	}
	if !p.queued {
		// The previous sequence drained; rebuild the tail callback around the same ctrl
		p.ended.Store(false)
		ended := p.ended
		p.volume.Streamer = beep.Seq(p.ctrl, beep.Callback(func() { ended.Store(true) }))
	}
	p.ctrl.Paused = false
	p.out.Unlock()

	if !p.queued {
		p.out.Play(p.volume)
		p.queued = true
	}
	return nil
}

// Pause halts playback, keeping the position
func (p *Player) Pause() {
	if p.ctrl == nil {
		return
	}
	p.out.Lock()
	p.ctrl.Paused = true
	p.out.Unlock()
}

// Paused reports whether playback is halted; true when nothing is loaded
func (p *Player) Paused() bool {
	if p.ctrl == nil {
		return true
	}
	p.out.Lock()
	defer p.out.Unlock()
	return p.ctrl.Paused || !p.queued
}

// Toggle flips between playing and paused
func (p *Player) Toggle() error {
	if p.Paused() {
		return p.Play()
	}
	p.Pause()
	return nil
}

// SetVolume sets the linear volume, clamped to [0, 1]
func (p *Player) SetVolume(v float64) {
	p.level = math.Min(1, math.Max(0, v))
	p.applyVolume()
}

// Volume returns the linear volume in [0, 1]
func (p *Player) Volume() float64 {
	return p.level
}

func (p *Player) applyVolume() {
	if p.volume == nil {
		return
	}
	p.out.Lock()
	defer p.out.Unlock()
	if p.level <= 0 {
		p.volume.Silent = true
		return
	}
	p.volume.Silent = false
	// gain = 2^Volume, so log2 maps the linear level onto beep's scale
	p.volume.Volume = math.Log2(p.level)
}

// Position returns the current playback position
func (p *Player) Position() time.Duration {
	if p.stream == nil {
		return 0
	}
	p.out.Lock()
	defer p.out.Unlock()
	return p.format.SampleRate.D(p.stream.Position())
}

// Duration returns the loaded song length
func (p *Player) Duration() time.Duration {
	if p.stream == nil {
		return 0
	}
	return p.format.SampleRate.D(p.stream.Len())
}

// Progress returns the position as a fraction of the duration
func (p *Player) Progress() float64 {
	d := p.Duration()
	if d <= 0 {
		return 0
	}
	return float64(p.Position()) / float64(d)
}

// SeekFraction jumps to fraction f of the song, clamped to [0, 1]
func (p *Player) SeekFraction(f float64) error {
	if p.stream == nil {
		p.fail(ErrNoSource)
		return ErrNoSource
	}
	f = math.Min(1, math.Max(0, f))

	p.out.Lock()
	pos := int(f * float64(p.stream.Len()))
	if pos >= p.stream.Len() {
		pos = p.stream.Len() - 1
	}
	if pos < 0 {
		pos = 0
	}
	err := p.stream.Seek(pos)
	p.out.Unlock()

	if err != nil {
		err = fmt.Errorf("seek: %w", err)
		p.fail(err)
	}
	return err
}

// Poll emits a position update when playback moved and notices the end of
// the track, leaving the player paused at the end
// Called once per frame
func (p *Player) Poll() {
	if p.stream == nil {
		return
	}
	if p.ended.Load() && p.queued {
		p.out.Lock()
		p.ctrl.Paused = true
		p.out.Unlock()
		p.queued = false
	}

	pos := p.Position()
	if pos == p.lastPos {
		return
	}
	p.lastPos = pos
	if p.events.OnPosition != nil {
		p.events.OnPosition(pos, p.Duration())
	}
}

// Close detaches and closes the current source and releases the output
func (p *Player) Close() {
	p.unload()
	if p.initialized {
		p.out.Clear()
		p.out.Close()
		p.initialized = false
	}
}

func (p *Player) fail(err error) {
	p.logger.Warn("audio playback error", zap.Error(err))
	if p.events.OnError != nil {
		p.events.OnError(err)
	}
}
