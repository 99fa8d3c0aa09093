package constants

import "time"

// Evasion Constants
const (
	// ScaleIncrement is how much the accept control grows per rejection attempt
	ScaleIncrement = 0.15

	// InitialScale is the accept control scale at session start
	InitialScale = 1.0

	// MaxScale caps the accept control scale
	MaxScale = 2.5

	// RejectPadding keeps the relocated reject control this far from every viewport edge (cells)
	RejectPadding = 1.0

	// RejectLayer is the z-order given to a relocated reject control, above card content
	RejectLayer = 5
)

// Evasion Timing Constants (in milliseconds)
const (
	// DodgeCueMs is how long the reject control shows the dodge cue
	DodgeCueMs = 300

	// ResetDelayMs is the delay between acceptance and interaction state reset
	ResetDelayMs = 500

	// DodgeCueDuration is the duration of the dodge cue
	DodgeCueDuration = DodgeCueMs * time.Millisecond

	// ResetDelay is the duration before interaction state is reset after acceptance
	ResetDelay = ResetDelayMs * time.Millisecond
)

// CounterLabelPrefix prefixes the visible attempt counter
const CounterLabelPrefix = "Nei-Versuech"
