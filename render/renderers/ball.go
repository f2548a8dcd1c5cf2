package renderers

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-pong/constant"
	"github.com/lixenwraith/vi-pong/render"
)

// BallRenderer rasterizes the ball as the cells whose centers fall inside its radius
type BallRenderer struct {
	style tcell.Style
}

func NewBallRenderer() *BallRenderer {
	return &BallRenderer{style: render.DefaultStyle.Foreground(render.RgbForeground)}
}

// Render implements SystemRenderer
func (r *BallRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	vp := ctx.Viewport
	b := ctx.Snapshot.Ball
	rr := b.R * b.R

	c0 := vp.ToCellX(b.X - b.R)
	c1 := vp.ToCellX(b.X + b.R)
	r0 := vp.ToCellY(b.Y - b.R)
	r1 := vp.ToCellY(b.Y + b.R)

	drawn := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if !vp.ContainsCell(col, row) {
				continue
			}
			x, y := vp.CellCenter(col, row)
			dx, dy := x-b.X, y-b.Y
			if dx*dx+dy*dy < rr {
				screen.SetContent(col, row, constant.GlyphBlock, nil, r.style)
				drawn = true
			}
		}
	}
	if drawn {
		return
	}

	// Ball smaller than a cell: mark the cell holding its center
	col, row := vp.ToCellX(b.X), vp.ToCellY(b.Y)
	if math.IsNaN(b.X) || math.IsNaN(b.Y) || !vp.ContainsCell(col, row) {
		return
	}
	screen.SetContent(col, row, constant.GlyphBall, nil, r.style)
}
