package constant

// Terminal layout
const (
	// ScoreBarRows is reserved above the court for the score line
	ScoreBarRows = 1

	// CenterLineDash and CenterLineGap define the dashed center line pattern in rows
	CenterLineDash = 1
	CenterLineGap  = 1
)

// Glyphs
const (
	GlyphBlock      = '█'
	GlyphBall       = '●'
	GlyphCenterLine = '┊'
)

// Input
const (
	// KeyStep is the virtual pointer displacement per arrow key press in court units
	KeyStep = 25.0
)
