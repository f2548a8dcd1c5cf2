package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/vmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvance_FreeFlight(t *testing.T) {
	b := core.Ball{X: 400, Y: 250, VX: 5, VY: -3, Radius: 12}
	out := Advance(&b, testCourt, playerPaddle(0), aiPaddle(0), DefaultTuning(), &seqRand{vals: []float64{0.5}})

	assert.Equal(t, core.SideNone, out.Scored)
	assert.Equal(t, core.EventNone, out.Events)
	assert.Equal(t, 405.0, b.X)
	assert.Equal(t, 247.0, b.Y)
	assert.Equal(t, 5.0, b.VX)
	assert.Equal(t, -3.0, b.VY)
}

func TestAdvance_TopWallReflects(t *testing.T) {
	b := core.Ball{X: 400, Y: 13, VX: 5, VY: -3, Radius: 12}
	out := Advance(&b, testCourt, playerPaddle(0), aiPaddle(0), DefaultTuning(), &seqRand{vals: []float64{0.5}})

	assert.True(t, out.Events.Has(core.EventWallBounce))
	assert.Greater(t, b.VY, 0.0)
	// Single corrective step: 13 - 3 = 10, then 10 + 3
	assert.Equal(t, 13.0, b.Y)
}

func TestAdvance_BottomWallReflects(t *testing.T) {
	b := core.Ball{X: 400, Y: 487, VX: 5, VY: 3, Radius: 12}
	out := Advance(&b, testCourt, playerPaddle(0), aiPaddle(0), DefaultTuning(), &seqRand{vals: []float64{0.5}})

	assert.True(t, out.Events.Has(core.EventWallBounce))
	assert.Less(t, b.VY, 0.0)
	assert.Equal(t, 487.0, b.Y)
}

// A ball already past a wall before the tick leaves it moving back into the court
func TestAdvance_PenetratedWallReflects(t *testing.T) {
	tests := []struct {
		name  string
		y, vy float64
		wantY float64
	}{
		{"top overlap", 5, -3, 5},
		{"top center outside", -4, -3, -4},
		{"bottom overlap", 495, 3, 495},
		{"bottom center outside", 504, 3, 504},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := core.Ball{X: 400, Y: tt.y, VX: 5, VY: tt.vy, Radius: 12}
			out := Advance(&b, testCourt, playerPaddle(0), aiPaddle(0), DefaultTuning(), &seqRand{vals: []float64{0.5}})

			assert.True(t, out.Events.Has(core.EventWallBounce))
			assert.Equal(t, -tt.vy, b.VY)
			if tt.vy < 0 {
				assert.Greater(t, b.VY, 0.0)
			} else {
				assert.Less(t, b.VY, 0.0)
			}
			assert.Equal(t, tt.wantY, b.Y)
		})
	}
}

func TestAdvance_PlayerPaddleHit(t *testing.T) {
	b := core.Ball{X: 45, Y: 250, VX: -5, VY: 0, Radius: 12}
	player := playerPaddle(205)
	out := Advance(&b, testCourt, player, aiPaddle(0), DefaultTuning(), &seqRand{vals: []float64{0.5}})

	assert.True(t, out.Events.Has(core.EventPlayerHit))
	assert.Equal(t, core.SideNone, out.Scored)
	assert.Greater(t, b.VX, 0.0)
	assert.GreaterOrEqual(t, b.X, player.X+player.Width)
	assert.Equal(t, player.X+player.Width+b.Radius, b.X)
	// Center hit adds no spin
	assert.Equal(t, 0.0, b.VY)
}

func TestAdvance_PlayerPaddleSpin(t *testing.T) {
	b := core.Ball{X: 45, Y: 270, VX: -5, VY: 1, Radius: 12}
	Advance(&b, testCourt, playerPaddle(205), aiPaddle(0), DefaultTuning(), &seqRand{vals: []float64{0.5}})

	// After the step y = 271, offset from paddle center 250 is 21
	assert.InDelta(t, 1+21*0.09, b.VY, 1e-12)
}

func TestAdvance_PlayerPaddleIgnoredWhenMovingAway(t *testing.T) {
	b := core.Ball{X: 35, Y: 250, VX: 1, VY: 0, Radius: 12}
	out := Advance(&b, testCourt, playerPaddle(205), aiPaddle(0), DefaultTuning(), &seqRand{vals: []float64{0.5}})

	assert.False(t, out.Events.Has(core.EventHit))
	assert.Equal(t, 1.0, b.VX)
	assert.Equal(t, 36.0, b.X)
}

func TestAdvance_AIPaddleHitAtCenter(t *testing.T) {
	ai := aiPaddle(200)
	b := core.Ball{X: ai.X - 4, Y: 245, VX: 4, VY: 0, Radius: 12}
	out := Advance(&b, testCourt, playerPaddle(0), ai, DefaultTuning(), &seqRand{vals: []float64{0.5}})

	assert.True(t, out.Events.Has(core.EventAIHit))
	assert.Equal(t, -4.0, b.VX)
	// (245 - (200 + 45)) * 0.09 = 0
	assert.Equal(t, 0.0, b.VY)
	assert.Equal(t, ai.X-b.Radius, b.X)
	assert.LessOrEqual(t, b.X, ai.X)
}

func TestAdvance_AIPaddleIgnoredWhenMovingAway(t *testing.T) {
	ai := aiPaddle(200)
	b := core.Ball{X: ai.X + 2, Y: 245, VX: -1, VY: 0, Radius: 12}
	out := Advance(&b, testCourt, playerPaddle(0), ai, DefaultTuning(), &seqRand{vals: []float64{0.5}})

	assert.False(t, out.Events.Has(core.EventHit))
	assert.Equal(t, -1.0, b.VX)
}

func TestAdvance_LeftBoundaryAIScores(t *testing.T) {
	b := core.Ball{X: 5, Y: 250, VX: -5, VY: 0, Radius: 12}
	out := Advance(&b, testCourt, playerPaddle(0), aiPaddle(0), DefaultTuning(), vmath.NewFastRand(1))

	assert.Equal(t, core.SideAI, out.Scored)
	assert.True(t, out.Events.Has(core.EventAIScored))
	assert.Equal(t, 400.0, b.X)
	assert.Equal(t, 250.0, b.Y)
}

func TestAdvance_RightBoundaryPlayerScores(t *testing.T) {
	b := core.Ball{X: 795, Y: 250, VX: 5, VY: 0, Radius: 12}
	out := Advance(&b, testCourt, playerPaddle(0), aiPaddle(0), DefaultTuning(), vmath.NewFastRand(1))

	assert.Equal(t, core.SidePlayer, out.Scored)
	assert.True(t, out.Events.Has(core.EventPlayerScored))
	assert.Equal(t, 400.0, b.X)
	assert.Equal(t, 250.0, b.Y)
}

func TestAdvance_MissScoresSameTick(t *testing.T) {
	// Fast ball skips past the paddle face in one step, no grace tick
	b := core.Ball{X: 60, Y: 250, VX: -60, VY: 0, Radius: 12}
	out := Advance(&b, testCourt, playerPaddle(205), aiPaddle(0), DefaultTuning(), vmath.NewFastRand(5))

	assert.False(t, out.Events.Has(core.EventPlayerHit))
	assert.Equal(t, core.SideAI, out.Scored)
}

func TestAdvance_WallThenPaddleSameTick(t *testing.T) {
	// Ball near the top-left corner with the paddle pinned at the top
	b := core.Ball{X: 46, Y: 14, VX: -5, VY: -4, Radius: 12}
	out := Advance(&b, testCourt, playerPaddle(0), aiPaddle(200), DefaultTuning(), &seqRand{vals: []float64{0.5}})

	require.True(t, out.Events.Has(core.EventWallBounce))
	require.True(t, out.Events.Has(core.EventPlayerHit))
	assert.Greater(t, b.VX, 0.0)
	// Wall: y 10 -> vy 4 -> y 14, then spin (14 - 45) * 0.09
	assert.InDelta(t, 4+(14-45)*0.09, b.VY, 1e-12)
}

func TestAdvance_HighSpeedWallDoesNotPanic(t *testing.T) {
	// Known tunneling approximation stays finite and in sync
	b := core.Ball{X: 400, Y: 20, VX: 1, VY: -100, Radius: 12}
	rng := vmath.NewFastRand(9)
	for i := 0; i < 50; i++ {
		Advance(&b, testCourt, playerPaddle(0), aiPaddle(0), DefaultTuning(), rng)
	}
	assert.False(t, math.IsNaN(b.X) || math.IsNaN(b.Y), "ball position became NaN")
}
