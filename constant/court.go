package constant

// Court geometry in court units
// Values match the reference 800x500 play field
const (
	CourtWidth  = 800.0
	CourtHeight = 500.0
)

// Paddle geometry
const (
	PaddleWidth  = 12.0
	PaddleHeight = 90.0

	// PaddleOffset is the gap between a court side edge and the paddle's outer face
	// Player paddle sits at X = PaddleOffset, AI paddle at X = CourtWidth - PaddleOffset - PaddleWidth
	PaddleOffset = 20.0
)

// BallRadius is constant for the session
const BallRadius = 12.0
