package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the tick interval: input, step and render once per frame
	FrameUpdateInterval = 80 * time.Millisecond

	// MinFrameInterval bounds configured intervals to keep the loop from spinning
	MinFrameInterval = 10 * time.Millisecond
)

// Board Constants
const (
	DefaultBoardWidth  = 20
	DefaultBoardHeight = 20

	// MinBoardHeight is the smallest height holding the two initial segments
	MinBoardHeight = 2
)
