package celebration

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/ja-nei/constants"
	"github.com/lixenwraith/ja-nei/core"
	"github.com/lixenwraith/ja-nei/engine"
)

// Layer is the visual layer decorative elements are drawn on
type Layer interface {
	// Viewport returns the current viewport, read at each spawn
	Viewport() core.Size
	Spawn(el DecorativeElement)
	Remove(id ElementID)
}

// Music is the playback surface the celebration starts
type Music interface {
	Paused() bool
	Play() error
}

// Params tunes both decorative sequences
type Params struct {
	HeartCount    int
	HeartStagger  time.Duration
	HeartLifetime time.Duration
	HeartDrift    float64

	SparkleCount    int
	SparkleStagger  time.Duration
	SparkleLifetime time.Duration
	SparkleGlyphs   []rune
}

// DefaultParams returns the page defaults
func DefaultParams() Params {
	return Params{
		HeartCount:      constants.HeartCount,
		HeartStagger:    constants.HeartStagger,
		HeartLifetime:   constants.HeartLifetime,
		HeartDrift:      constants.HeartDriftRange,
		SparkleCount:    constants.SparkleCount,
		SparkleStagger:  constants.SparkleStagger,
		SparkleLifetime: constants.SparkleLifetime,
		SparkleGlyphs:   constants.SparkleGlyphs,
	}
}

// Scheduler emits staggered, self-retiring hearts and sparkles
// Batches are fire-and-forget: nothing cancels them and overlapping batches
// do not interact
type Scheduler struct {
	layer  Layer
	music  Music
	sched  *engine.Scheduler
	rng    core.Rand
	params Params
	logger *zap.Logger

	nextID  ElementID
	batches uint64
}

// NewScheduler creates a celebration scheduler, music may be nil
func NewScheduler(layer Layer, music Music, sched *engine.Scheduler, rng core.Rand, params Params, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(params.SparkleGlyphs) == 0 {
		params.SparkleGlyphs = constants.SparkleGlyphs
	}
	return &Scheduler{
		layer:  layer,
		music:  music,
		sched:  sched,
		rng:    rng,
		params: params,
		logger: logger,
	}
}

// Batches returns how many times Start has run
func (s *Scheduler) Batches() uint64 {
	return s.batches
}

// Start begins music playback if paused and schedules one batch of hearts
// and one batch of sparkles
// A playback failure is logged and never prevents the batch
func (s *Scheduler) Start() {
	if s.music != nil && s.music.Paused() {
		if err := s.music.Play(); err != nil {
			s.logger.Warn("celebration music did not start", zap.Error(err))
		}
	}

	s.batches++
	batch := s.batches

	for i := 0; i < s.params.HeartCount; i++ {
		s.sched.After(time.Duration(i)*s.params.HeartStagger, func() {
			s.spawnHeart(batch)
		})
	}

	for i := 0; i < s.params.SparkleCount; i++ {
		s.sched.After(time.Duration(i)*s.params.SparkleStagger, func() {
			s.spawnSparkle(batch)
		})
	}

	s.logger.Debug("celebration batch scheduled",
		zap.Uint64("batch", batch),
		zap.Int("hearts", s.params.HeartCount),
		zap.Int("sparkles", s.params.SparkleCount))
}

func (s *Scheduler) spawnHeart(batch uint64) {
	viewport := s.layer.Viewport()
	startX := s.rng.Float64() * viewport.W
	drift := (s.rng.Float64() - 0.5) * s.params.HeartDrift

	el := DecorativeElement{
		ID:        s.allocID(),
		Batch:     batch,
		Kind:      KindHeart,
		Glyph:     constants.HeartGlyph,
		Spawn:     core.Point{X: startX, Y: viewport.H},
		Drift:     drift,
		Lifetime:  s.params.HeartLifetime,
		SpawnedAt: s.sched.Now(),
	}
	s.place(el)
}

func (s *Scheduler) spawnSparkle(batch uint64) {
	viewport := s.layer.Viewport()
	glyph := s.params.SparkleGlyphs[s.rng.IntN(len(s.params.SparkleGlyphs))]

	el := DecorativeElement{
		ID:    s.allocID(),
		Batch: batch,
		Kind:  KindSparkle,
		Glyph: glyph,
		Spawn: core.Point{X: s.rng.Float64() * viewport.W, Y: 0},
	}
	el.Size = constants.SparkleSizeMin + s.rng.Float64()*constants.SparkleSizeSpan
	el.Opacity = constants.SparkleOpacityMin + s.rng.Float64()*constants.SparkleOpacitySpan
	el.FallDuration = constants.SparkleFallMin + time.Duration(s.rng.Float64()*float64(constants.SparkleFallSpan))
	el.Rotation = s.rng.Float64() * constants.SparkleRotationSpan
	el.Lifetime = s.params.SparkleLifetime
	el.SpawnedAt = s.sched.Now()

	s.place(el)
}

// place hands the element to the layer and schedules its own retirement
func (s *Scheduler) place(el DecorativeElement) {
	s.layer.Spawn(el)
	id := el.ID
	s.sched.After(el.Lifetime, func() {
		s.layer.Remove(id)
	})
}

func (s *Scheduler) allocID() ElementID {
	s.nextID++
	return s.nextID
}
