package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleSnapshot() Snapshot {
	return Snapshot{
		Tick:   12,
		Court:  Court{Width: 800, Height: 500},
		Player: PaddleView{X: 20, Y: 205, W: 12, H: 90},
		AI:     PaddleView{X: 768, Y: 100, W: 12, H: 90},
		Ball:   BallView{X: 400, Y: 250, R: 12},
		Score:  Score{Player: 2, AI: 3},
	}
}

func TestSnapshot_ChecksumStable(t *testing.T) {
	a := sampleSnapshot()
	b := sampleSnapshot()
	assert.Equal(t, a.Checksum(), b.Checksum())

	// Events do not participate
	b.Events = EventWallBounce
	assert.Equal(t, a.Checksum(), b.Checksum())
}

func TestSnapshot_ChecksumSensitive(t *testing.T) {
	base := sampleSnapshot().Checksum()

	moved := sampleSnapshot()
	moved.Ball.Y += 0.0001
	assert.NotEqual(t, base, moved.Checksum())

	scored := sampleSnapshot()
	scored.Score.AI++
	assert.NotEqual(t, base, scored.Checksum())

	swapped := sampleSnapshot()
	swapped.Player, swapped.AI = swapped.AI, swapped.Player
	assert.NotEqual(t, base, swapped.Checksum())
}

func TestViewConversions(t *testing.T) {
	p := Paddle{X: 1, Y: 2, Width: 3, Height: 4}
	assert.Equal(t, PaddleView{X: 1, Y: 2, W: 3, H: 4}, ViewPaddle(p))

	b := Ball{X: 5, Y: 6, VX: 7, VY: 8, Radius: 9}
	assert.Equal(t, BallView{X: 5, Y: 6, R: 9}, ViewBall(b))
}
