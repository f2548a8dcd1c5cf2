package core

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// PaddleView is the drawable part of a paddle
type PaddleView struct {
	X, Y, W, H float64
}

// BallView is the drawable part of the ball
type BallView struct {
	X, Y, R float64
}

// Snapshot is a value copy of match state after a tick, safe to hand to renderers
type Snapshot struct {
	Tick   uint64
	Court  Court
	Player PaddleView
	AI     PaddleView
	Ball   BallView
	Score  Score
	Events Events
}

// ViewPaddle copies the drawable fields of p
func ViewPaddle(p Paddle) PaddleView {
	return PaddleView{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// ViewBall copies the drawable fields of b
func ViewBall(b Ball) BallView {
	return BallView{X: b.X, Y: b.Y, R: b.Radius}
}

// Checksum digests the numeric state for replay and desync comparison
// Events are excluded, two runs that reach the same state hash equal regardless of history
func (s Snapshot) Checksum() uint64 {
	d := xxhash.New()
	var buf [8]byte

	putFloat := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		_, _ = d.Write(buf[:])
	}
	putInt := func(i uint64) {
		binary.LittleEndian.PutUint64(buf[:], i)
		_, _ = d.Write(buf[:])
	}

	putInt(s.Tick)
	putFloat(s.Court.Width)
	putFloat(s.Court.Height)
	for _, p := range [2]PaddleView{s.Player, s.AI} {
		putFloat(p.X)
		putFloat(p.Y)
		putFloat(p.W)
		putFloat(p.H)
	}
	putFloat(s.Ball.X)
	putFloat(s.Ball.Y)
	putFloat(s.Ball.R)
	putInt(uint64(s.Score.Player))
	putInt(uint64(s.Score.AI))

	return d.Sum64()
}
