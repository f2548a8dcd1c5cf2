package core

import "github.com/lixenwraith/vi-pong/vmath"

// Court is the fixed play field, origin top-left, Y grows downward
type Court struct {
	Width  float64
	Height float64
}

// Center returns the court midpoint
func (c Court) Center() (x, y float64) {
	return c.Width / 2, c.Height / 2
}

// Paddle is an axis-aligned rectangle with a fixed X and a clamped Y
type Paddle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// SetY writes the vertical position clamped into [0, court.Height - Height]
// All writes to Y go through here so the bound holds after every operation
func (p *Paddle) SetY(y float64, c Court) {
	p.Y = vmath.Clamp(y, 0, c.Height-p.Height)
}

// CenterY returns the vertical midpoint of the paddle
func (p Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

// Ball is the moving circle, velocity in court units per tick
type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// Speed returns the velocity magnitude
func (b Ball) Speed() float64 {
	return vmath.Magnitude(b.VX, b.VY)
}
