package physics

import "github.com/lixenwraith/vi-pong/core"

// seqRand replays a fixed sequence of draws, wrapping around
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

var testCourt = core.Court{Width: 800, Height: 500}

func playerPaddle(y float64) core.Paddle {
	return core.Paddle{X: 20, Y: y, Width: 12, Height: 90}
}

func aiPaddle(y float64) core.Paddle {
	return core.Paddle{X: 768, Y: y, Width: 12, Height: 90}
}
