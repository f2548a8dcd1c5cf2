package engine

import (
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/physics"
)

// Match is the sole mutable root of a game session
// Only one goroutine may call Tick/Step; SetPointerY is safe from any goroutine
type Match struct {
	params Params
	rng    physics.Rand

	player core.Paddle
	ai     core.Paddle
	ball   core.Ball
	score  core.Score

	tick   uint64
	events core.Events

	pointer input.PointerSlot
}

// NewMatch creates a match with both paddles centered and the ball served
func NewMatch(p Params, rng physics.Rand) *Match {
	m := &Match{
		params: p,
		rng:    rng,
	}

	startY := (p.Court.Height - p.PaddleHeight) / 2
	m.player = core.Paddle{X: p.PlayerX(), Width: p.PaddleWidth, Height: p.PaddleHeight}
	m.player.SetY(startY, p.Court)
	m.ai = core.Paddle{X: p.AIX(), Width: p.PaddleWidth, Height: p.PaddleHeight}
	m.ai.SetY(startY, p.Court)

	m.ball.Radius = p.BallRadius
	physics.Reset(&m.ball, p.Court, p.Tuning, rng)

	return m
}

// SetPointerY records the latest pointer position in court space for the next Step
func (m *Match) SetPointerY(y float64) {
	m.pointer.Store(y)
}

// Step runs one tick with the pointer value sampled from the input slot
func (m *Match) Step() core.Snapshot {
	if y, ok := m.pointer.Take(); ok {
		return m.Tick(&y)
	}
	return m.Tick(nil)
}

// Tick advances the match one step
// pointerY is the pointer's court-space Y, nil leaves the player paddle in place
func (m *Match) Tick(pointerY *float64) core.Snapshot {
	court := m.params.Court

	if pointerY != nil {
		m.player.SetY(*pointerY-m.player.Height/2, court)
	}

	m.ai.SetY(physics.TrackPaddle(m.ai, m.ball, court, m.params.Tuning.Smoothing), court)

	out := physics.Advance(&m.ball, court, m.player, m.ai, m.params.Tuning, m.rng)
	m.score.Award(out.Scored)

	m.tick++
	m.events = out.Events

	return m.Snapshot()
}

// Snapshot returns a copy of the current state
func (m *Match) Snapshot() core.Snapshot {
	return core.Snapshot{
		Tick:   m.tick,
		Court:  m.params.Court,
		Player: core.ViewPaddle(m.player),
		AI:     core.ViewPaddle(m.ai),
		Ball:   core.ViewBall(m.ball),
		Score:  m.score,
		Events: m.events,
	}
}

// Score returns the current score
func (m *Match) Score() core.Score {
	return m.score
}
