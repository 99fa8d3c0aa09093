package celebration

import (
	"time"

	"github.com/lixenwraith/ja-nei/core"
)

// Kind distinguishes the two decorative sequences
type Kind int

const (
	KindHeart Kind = iota
	KindSparkle
)

func (k Kind) String() string {
	if k == KindHeart {
		return "heart"
	}
	return "sparkle"
}

// ElementID identifies a spawned element for its later removal
type ElementID uint64

// DecorativeElement is a purely cosmetic, self-retiring visual artifact
// The layer owns it after Spawn; nothing reads it back
type DecorativeElement struct {
	ID    ElementID
	Batch uint64
	Kind  Kind
	Glyph rune

	// Spawn is the starting position, bottom edge for hearts and top edge for sparkles
	Spawn core.Point
	// Drift is the horizontal offset a heart reaches by the end of its rise
	Drift float64

	// Sparkle appearance, zero for hearts
	Size         float64
	Opacity      float64
	Rotation     float64
	FallDuration time.Duration

	Lifetime  time.Duration
	SpawnedAt time.Time
}

// Progress returns how far through its lifetime the element is at now, in [0, 1]
func (e DecorativeElement) Progress(now time.Time) float64 {
	if e.Lifetime <= 0 {
		return 1
	}
	p := float64(now.Sub(e.SpawnedAt)) / float64(e.Lifetime)
	return min(max(p, 0), 1)
}

// PositionAt returns where the element is drawn at now within viewport
// Hearts rise from the bottom while drifting sideways, sparkles fall over
// their own fall duration and rest at the bottom until retired
func (e DecorativeElement) PositionAt(now time.Time, viewport core.Size) core.Point {
	switch e.Kind {
	case KindHeart:
		p := e.Progress(now)
		return core.Point{
			X: e.Spawn.X + e.Drift*p,
			Y: e.Spawn.Y - (viewport.H+1)*p,
		}
	default:
		fall := e.FallDuration
		if fall <= 0 {
			fall = e.Lifetime
		}
		p := 1.0
		if fall > 0 {
			p = min(max(float64(now.Sub(e.SpawnedAt))/float64(fall), 0), 1)
		}
		// ease-in
		return core.Point{
			X: e.Spawn.X,
			Y: e.Spawn.Y + (viewport.H-1-e.Spawn.Y)*p*p,
		}
	}
}
