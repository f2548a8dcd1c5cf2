package render

import (
	"cmp"
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-pong/constant"
	"github.com/lixenwraith/vi-pong/core"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
}

// RenderOrchestrator coordinates the render pipeline
// Call RenderFrame and Resize from one goroutine
type RenderOrchestrator struct {
	screen    tcell.Screen
	court     core.Court
	viewport  core.Viewport
	width     int
	height    int
	renderers []rendererEntry
}

// NewRenderOrchestrator creates an orchestrator sized from the screen
func NewRenderOrchestrator(screen tcell.Screen, court core.Court) *RenderOrchestrator {
	o := &RenderOrchestrator{
		screen:    screen,
		court:     court,
		renderers: make([]rendererEntry, 0, 8),
	}
	o.fit()
	return o
}

// Register adds a layer at the given priority
// Layers sharing a priority draw in registration order
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	o.renderers = append(o.renderers, rendererEntry{renderer: r, priority: priority})
	slices.SortStableFunc(o.renderers, func(a, b rendererEntry) int {
		return cmp.Compare(a.priority, b.priority)
	})
}

// Resize refits the viewport to the current screen size and syncs the terminal
func (o *RenderOrchestrator) Resize() {
	o.fit()
	o.screen.Sync()
}

// Viewport returns the current court-to-cell mapping
func (o *RenderOrchestrator) Viewport() core.Viewport {
	return o.viewport
}

// RenderFrame executes the render pipeline: clear, render all, show
func (o *RenderOrchestrator) RenderFrame(snap core.Snapshot, status Status) {
	ctx := RenderContext{
		Snapshot: snap,
		Viewport: o.viewport,
		Status:   status,
		Width:    o.width,
		Height:   o.height,
	}

	o.screen.SetStyle(DefaultStyle)
	o.screen.Clear()

	for _, entry := range o.renderers {
		// Skip if renderer implements VisibilityToggle and is not visible
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.screen)
	}

	o.screen.Show()
}

func (o *RenderOrchestrator) fit() {
	o.width, o.height = o.screen.Size()
	o.viewport = core.NewViewport(o.width, o.height, constant.ScoreBarRows, o.court)
}
