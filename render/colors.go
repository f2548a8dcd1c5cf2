package render

import "github.com/gdamore/tcell/v2"

// Court palette
var (
	RgbBackground = tcell.NewRGBColor(17, 17, 17)    // Near-black court
	RgbForeground = tcell.NewRGBColor(255, 255, 255) // Paddles and ball
	RgbCenterLine = tcell.NewRGBColor(140, 140, 140) // Dimmed dashes
)

// UI palette
var (
	RgbScoreBar   = tcell.NewRGBColor(40, 40, 48)    // Score row background
	RgbScoreText  = tcell.NewRGBColor(255, 255, 255) // Score digits
	RgbHintText   = tcell.NewRGBColor(150, 150, 150) // Key hints
	RgbPlayerName = tcell.NewRGBColor(100, 200, 100) // Player label
	RgbAIName     = tcell.NewRGBColor(255, 100, 100) // AI label
	RgbOverlayBg  = tcell.NewRGBColor(255, 165, 0)   // Pause banner
	RgbOverlayFg  = tcell.NewRGBColor(0, 0, 0)
)

// DefaultStyle is the court background style every layer starts from
var DefaultStyle = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbForeground)
