package renderers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-pong/render"
)

// PauseRenderer shows a banner across the court while the match is paused
type PauseRenderer struct {
	style tcell.Style
}

func NewPauseRenderer() *PauseRenderer {
	return &PauseRenderer{
		style: tcell.StyleDefault.Background(render.RgbOverlayBg).Foreground(render.RgbOverlayFg).Bold(true),
	}
}

// Render implements SystemRenderer
func (r *PauseRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	if !ctx.Status.Paused {
		return
	}
	const banner = " PAUSED "
	vp := ctx.Viewport
	row := vp.Top + vp.Rows/2
	col := (ctx.Width - len(banner)) / 2
	if col < 0 {
		col = 0
	}
	render.DrawText(screen, col, row, banner, r.style)
}
