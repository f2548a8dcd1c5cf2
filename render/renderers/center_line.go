package renderers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-pong/constant"
	"github.com/lixenwraith/vi-pong/render"
)

// CenterLineRenderer draws the dashed divider at half court width
type CenterLineRenderer struct {
	dash, gap int
	style     tcell.Style
}

func NewCenterLineRenderer() *CenterLineRenderer {
	return &CenterLineRenderer{
		dash:  constant.CenterLineDash,
		gap:   constant.CenterLineGap,
		style: render.DefaultStyle.Foreground(render.RgbCenterLine),
	}
}

// Render implements SystemRenderer
func (r *CenterLineRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	vp := ctx.Viewport
	col := vp.ToCellX(ctx.Snapshot.Court.Width / 2)
	if col < 0 || col >= ctx.Width {
		return
	}
	period := r.dash + r.gap
	for row := vp.Top; row < vp.Top+vp.Rows && row < ctx.Height; row++ {
		if (row-vp.Top)%period < r.dash {
			screen.SetContent(col, row, constant.GlyphCenterLine, nil, r.style)
		}
	}
}
