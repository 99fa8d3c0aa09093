package constants

import "time"

// Heart Constants
const (
	// HeartCount is the number of hearts per celebration batch
	HeartCount = 15

	// HeartStagger is the spawn offset between consecutive hearts
	HeartStagger = 100 * time.Millisecond

	// HeartLifetime is how long each heart lives after its own spawn
	HeartLifetime = 2500 * time.Millisecond

	// HeartDriftRange is the total horizontal drift span, centred on zero (cells)
	HeartDriftRange = 20.0

	// HeartGlyph is drawn for every heart
	HeartGlyph = '💗'
)

// Sparkle Constants
const (
	// SparkleCount is the number of sparkles per celebration batch
	SparkleCount = 12

	// SparkleStagger is the spawn offset between consecutive sparkles
	SparkleStagger = 80 * time.Millisecond

	// SparkleLifetime is how long each sparkle lives after its own spawn
	SparkleLifetime = 4000 * time.Millisecond

	// Randomized sparkle appearance ranges: value = min + rand*span
	SparkleSizeMin      = 0.8
	SparkleSizeSpan     = 1.2
	SparkleOpacityMin   = 0.3
	SparkleOpacitySpan  = 0.7
	SparkleRotationSpan = 360.0
	SparkleFallMin      = 2 * time.Second
	SparkleFallSpan     = 2 * time.Second
)

// SparkleGlyphs is the fixed set sparkles are drawn from uniformly
var SparkleGlyphs = []rune{'✨', '💕', '🌹', '⭐', '💑'}
