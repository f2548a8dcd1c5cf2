package physics

import (
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Outcome reports the result of one Advance
type Outcome struct {
	Scored core.Side
	Events core.Events
}

// Advance moves the ball one tick and resolves collisions in fixed order:
// wall, player paddle, AI paddle, then scoring
// A paddle miss is followed by the boundary check within the same tick
func Advance(b *core.Ball, court core.Court, player, ai core.Paddle, t Tuning, rng Rand) Outcome {
	var out Outcome

	// Euler step, fixed tick
	b.X += b.VX
	b.Y += b.VY

	if bounceWalls(b, court) {
		out.Events |= core.EventWallBounce
	}

	if b.VX < 0 && touches(b, player) {
		deflect(b, player, t.SpinFactor)
		b.X = player.X + player.Width + b.Radius
		out.Events |= core.EventPlayerHit
	}

	if b.VX > 0 && touches(b, ai) {
		deflect(b, ai, t.SpinFactor)
		b.X = ai.X - b.Radius
		out.Events |= core.EventAIHit
	}

	switch {
	case b.X-b.Radius < 0:
		out.Scored = core.SideAI
	case b.X+b.Radius > court.Width:
		out.Scored = core.SidePlayer
	}

	if out.Scored != core.SideNone {
		out.Events |= core.ScoredEvent(out.Scored)
		Reset(b, court, t, rng)
	}

	return out
}

// bounceWalls reflects vy off top/bottom with a single corrective step
// Not a reflection to the contact point, a fast ball may still end a tick past the wall
func bounceWalls(b *core.Ball, court core.Court) bool {
	if b.Y-b.Radius < 0 || b.Y+b.Radius > court.Height {
		b.VY = -b.VY
		b.Y += b.VY
		return true
	}
	return false
}

func touches(b *core.Ball, p core.Paddle) bool {
	return vmath.CircleIntersectsRect(b.X, b.Y, b.Radius, p.X, p.Y, p.Width, p.Height)
}

// deflect flips vx and adds spin from the signed offset to paddle center
func deflect(b *core.Ball, p core.Paddle, spin float64) {
	b.VX = -b.VX
	b.VY += (b.Y - p.CenterY()) * spin
}
