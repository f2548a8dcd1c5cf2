package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-pong/render"
)

// ScoreRenderer draws the score bar in the reserved top row
type ScoreRenderer struct {
	barStyle    tcell.Style
	scoreStyle  tcell.Style
	playerStyle tcell.Style
	aiStyle     tcell.Style
	hintStyle   tcell.Style
}

func NewScoreRenderer() *ScoreRenderer {
	bar := tcell.StyleDefault.Background(render.RgbScoreBar)
	return &ScoreRenderer{
		barStyle:    bar,
		scoreStyle:  bar.Foreground(render.RgbScoreText).Bold(true),
		playerStyle: bar.Foreground(render.RgbPlayerName),
		aiStyle:     bar.Foreground(render.RgbAIName),
		hintStyle:   bar.Foreground(render.RgbHintText),
	}
}

// Render implements SystemRenderer
func (r *ScoreRenderer) Render(ctx render.RenderContext, screen tcell.Screen) {
	if ctx.Viewport.Top < 1 || ctx.Height < 1 {
		return
	}
	render.FillRow(screen, 0, ' ', r.barStyle)

	score := ctx.Snapshot.Score
	digits := fmt.Sprintf(" %d : %d ", score.Player, score.AI)
	const player, ai = "PLAYER", "AI"

	total := len(player) + len(digits) + len(ai)
	x := (ctx.Width - total) / 2
	if x < 0 {
		x = 0
	}
	render.DrawText(screen, x, 0, player, r.playerStyle)
	x += len(player)
	render.DrawText(screen, x, 0, digits, r.scoreStyle)
	x += len(digits)
	render.DrawText(screen, x, 0, ai, r.aiStyle)

	if ctx.Status.Muted {
		render.DrawText(screen, 1, 0, "MUTE", r.hintStyle)
	}

	hint := "p:pause m:mute q:quit"
	if hx := ctx.Width - len(hint) - 1; hx > x+len(ai) {
		render.DrawText(screen, hx, 0, hint, r.hintStyle)
	}
}
