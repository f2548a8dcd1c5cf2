package renderers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-pong/render"
)

// BackgroundRenderer fills the court area with the background color
type BackgroundRenderer struct{}

func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{}
}

// Render implements SystemRenderer
func (r *BackgroundRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	vp := ctx.Viewport
	for row := vp.Top; row < vp.Top+vp.Rows && row < ctx.Height; row++ {
		for col := vp.Left; col < vp.Left+vp.Cols && col < ctx.Width; col++ {
			screen.SetContent(col, row, ' ', nil, render.DefaultStyle)
		}
	}
}
