package constants

import "time"

// Frame Timing Constants
const (
	// FrameUpdateInterval drives rendering and scheduler draining (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventBufferSize is the capacity of the input event channel
	EventBufferSize = 100

	// ToastDuration is how long a non-blocking notification stays visible
	ToastDuration = 3 * time.Second
)

// Button Layout Constants (cells)
const (
	// ButtonBaseWidth is the unscaled width of a boxed button
	ButtonBaseWidth = 10

	// ButtonBaseHeight is the unscaled height of a boxed button
	ButtonBaseHeight = 3

	// ButtonGap separates accept and reject in their default layout
	ButtonGap = 4

	// CardWidth is the width of the question card
	CardWidth = 48
)

// Music Player Widget Layout (cells)
const (
	PlayerCollapsedWidth  = 28
	PlayerExpandedWidth   = 40
	PlayerCollapsedHeight = 3
	PlayerExpandedHeight  = 7
	PlayerMargin          = 1
)
