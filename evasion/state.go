package evasion

import (
	"math"

	"github.com/lixenwraith/ja-nei/constants"
	"github.com/lixenwraith/ja-nei/core"
)

// Screen identifies the active page screen, exactly one is shown at a time
type Screen int

const (
	ScreenAsk Screen = iota
	ScreenSuccess
)

func (s Screen) String() string {
	switch s {
	case ScreenAsk:
		return "ask"
	case ScreenSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// InteractionState is the mutable state owned by the controller
type InteractionState struct {
	AttemptCount   int
	CompanionScale float64

	// RejectPosition is meaningful only when Relocated is set
	RejectPosition core.Point
	Relocated      bool
}

// InitialState returns the state at page load and after reset
func InitialState() InteractionState {
	return InteractionState{
		AttemptCount:   0,
		CompanionScale: constants.InitialScale,
	}
}

// Params tunes the controller
type Params struct {
	ScaleIncrement float64
	MaxScale       float64
	Padding        float64
	CounterPrefix  string
}

// DefaultParams returns the page defaults
func DefaultParams() Params {
	return Params{
		ScaleIncrement: constants.ScaleIncrement,
		MaxScale:       constants.MaxScale,
		Padding:        constants.RejectPadding,
		CounterPrefix:  constants.CounterLabelPrefix,
	}
}

// CompanionScale derives the accept scale from the attempt count
// Computed from the count rather than accumulated so the clamp is reached
// exactly on the attempt where increment × count meets the maximum
func (p Params) CompanionScale(attempts int) float64 {
	if attempts <= 0 {
		return constants.InitialScale
	}
	return math.Min(p.MaxScale, constants.InitialScale+p.ScaleIncrement*float64(attempts))
}

// Relocate picks a position for a control of size control inside viewport,
// at least padding away from every edge
// Bounds are recomputed on every call; an undersized viewport collapses the
// range to the padding corner rather than going negative
func Relocate(viewport, control core.Size, padding float64, rng core.Rand) core.Point {
	minX, maxX := core.ClampRange(padding, viewport.W-control.W-padding)
	minY, maxY := core.ClampRange(padding, viewport.H-control.H-padding)

	return core.Point{
		X: rng.Float64()*(maxX-minX) + minX,
		Y: rng.Float64()*(maxY-minY) + minY,
	}
}
