package vmath

import "math"

// --- Scalars ---

// Clamp restricts v to [lo, hi]
// When hi < lo the lower bound wins, so a paddle taller than the court pins to 0
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Radians converts degrees to radians
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Magnitude returns the length of vector (x, y)
func Magnitude(x, y float64) float64 { return math.Hypot(x, y) }

// Uniform maps u in [0, 1) linearly onto [lo, hi)
func Uniform(u, lo, hi float64) float64 {
	return lo + u*(hi-lo)
}
