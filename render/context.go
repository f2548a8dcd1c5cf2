package render

import "github.com/lixenwraith/vi-pong/core"

// Status carries host-side flags that are not part of match state
type Status struct {
	Paused bool
	Muted  bool
}

// RenderContext is everything a layer needs to draw one frame
type RenderContext struct {
	Snapshot core.Snapshot
	Viewport core.Viewport
	Status   Status

	// Screen dimensions in cells
	Width, Height int
}
