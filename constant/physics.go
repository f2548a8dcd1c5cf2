package constant

// Ball physics, per tick (no delta-time scaling)
const (
	// SpinFactor scales paddle-contact offset into vertical velocity
	SpinFactor = 0.09

	// LaunchSpeedMin and LaunchSpeedMax bound the speed picked on reset
	LaunchSpeedMin = 5.0
	LaunchSpeedMax = 6.5

	// LaunchAngleMaxDeg bounds the launch angle from horizontal, symmetric around 0
	LaunchAngleMaxDeg = 45.0
)

// AI tracking
const (
	// AISmoothing is the fixed per-tick fraction of the distance to target covered by the AI paddle
	AISmoothing = 0.08
)
