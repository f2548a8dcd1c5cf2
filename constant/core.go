package constant

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the simulation and rendering interval (~60 FPS), one tick per frame
	FrameUpdateInterval = 16 * time.Millisecond
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "vi-pong.log"

	// MaxLogSize triggers rotation at startup, 10MB
	MaxLogSize = 10 * 1024 * 1024
)
