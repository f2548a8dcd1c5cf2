package physics

import (
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/vmath"
)

// TrackPaddle returns the AI paddle's next vertical position
// The paddle closes a fixed fraction of the distance to the ball-centered target each tick,
// then the result is clamped into the court
func TrackPaddle(ai core.Paddle, ball core.Ball, court core.Court, smoothing float64) float64 {
	target := ball.Y - ai.Height/2
	next := ai.Y + (target-ai.Y)*smoothing
	return vmath.Clamp(next, 0, court.Height-ai.Height)
}
