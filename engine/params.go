package engine

import (
	"github.com/lixenwraith/vi-pong/constant"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/physics"
)

// Params fixes the geometry and physics of a match at creation
type Params struct {
	Court        core.Court
	PaddleWidth  float64
	PaddleHeight float64
	PaddleOffset float64 // gap between a side edge and the paddle's outer face
	BallRadius   float64
	Tuning       physics.Tuning
}

// DefaultParams returns the reference 800x500 setup
func DefaultParams() Params {
	return Params{
		Court:        core.Court{Width: constant.CourtWidth, Height: constant.CourtHeight},
		PaddleWidth:  constant.PaddleWidth,
		PaddleHeight: constant.PaddleHeight,
		PaddleOffset: constant.PaddleOffset,
		BallRadius:   constant.BallRadius,
		Tuning:       physics.DefaultTuning(),
	}
}

// PlayerX returns the player paddle's fixed X
func (p Params) PlayerX() float64 {
	return p.PaddleOffset
}

// AIX returns the AI paddle's fixed X, mirrored from the player's
func (p Params) AIX() float64 {
	return p.Court.Width - p.PaddleOffset - p.PaddleWidth
}
