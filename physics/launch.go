package physics

import (
	"math"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Reset recenters the ball and launches it with a random angle, speed and direction
// Draw order is angle, speed, direction so a seeded source replays identically
func Reset(b *core.Ball, court core.Court, t Tuning, rng Rand) {
	b.X, b.Y = court.Center()

	maxAngle := vmath.Radians(t.LaunchAngleMaxDeg)
	angle := vmath.Uniform(rng.Float64(), -maxAngle, maxAngle)
	speed := vmath.Uniform(rng.Float64(), t.LaunchSpeedMin, t.LaunchSpeedMax)

	dir := 1.0
	if rng.Float64() < 0.5 {
		dir = -1
	}

	b.VX = dir * speed * math.Cos(angle)
	b.VY = speed * math.Sin(angle)
}
