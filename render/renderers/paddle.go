package renderers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-pong/constant"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/render"
)

// PaddleRenderer draws both paddles as solid blocks
type PaddleRenderer struct {
	style tcell.Style
}

func NewPaddleRenderer() *PaddleRenderer {
	return &PaddleRenderer{style: render.DefaultStyle.Foreground(render.RgbForeground)}
}

// Render implements SystemRenderer
func (r *PaddleRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	r.drawPaddle(ctx, screen, ctx.Snapshot.Player)
	r.drawPaddle(ctx, screen, ctx.Snapshot.AI)
}

func (r *PaddleRenderer) drawPaddle(ctx render.RenderContext, screen tcell.Screen, p core.PaddleView) {
	vp := ctx.Viewport
	c0, c1 := render.CellSpan(p.X, p.W, vp.CellWidth())
	r0, r1 := render.CellSpan(p.Y, p.H, vp.CellHeight())

	for row := vp.Top + r0; row <= vp.Top+r1; row++ {
		for col := vp.Left + c0; col <= vp.Left+c1; col++ {
			if !vp.ContainsCell(col, row) {
				continue
			}
			screen.SetContent(col, row, constant.GlyphBlock, nil, r.style)
		}
	}
}
