package renderers

import "github.com/lixenwraith/vi-pong/render"

// RegisterAll installs the standard layer set in draw order
func RegisterAll(o *render.RenderOrchestrator) {
	o.Register(NewBackgroundRenderer(), render.PriorityBackground)
	o.Register(NewCenterLineRenderer(), render.PriorityGrid)
	o.Register(NewPaddleRenderer(), render.PriorityEntities)
	o.Register(NewBallRenderer(), render.PriorityEntities)
	o.Register(NewScoreRenderer(), render.PriorityUI)
	o.Register(NewPauseRenderer(), render.PriorityOverlay)
}
