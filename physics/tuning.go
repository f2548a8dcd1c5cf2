package physics

import "github.com/lixenwraith/vi-pong/constant"

// Rand is the random source consumed by ball resets, *vmath.FastRand satisfies it
type Rand interface {
	Float64() float64
}

// Tuning holds the per-tick physics parameters, fixed for a match
type Tuning struct {
	SpinFactor        float64 // vy gained per court unit of contact offset from paddle center
	Smoothing         float64 // AI per-tick convergence fraction
	LaunchSpeedMin    float64
	LaunchSpeedMax    float64
	LaunchAngleMaxDeg float64 // launch angle drawn from [-max, +max] degrees
}

// DefaultTuning returns the reference tuning
func DefaultTuning() Tuning {
	return Tuning{
		SpinFactor:        constant.SpinFactor,
		Smoothing:         constant.AISmoothing,
		LaunchSpeedMin:    constant.LaunchSpeedMin,
		LaunchSpeedMax:    constant.LaunchSpeedMax,
		LaunchAngleMaxDeg: constant.LaunchAngleMaxDeg,
	}
}
