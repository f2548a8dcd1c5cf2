package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Esc, Ctrl+C
	IntentTogglePause // p, Space
	IntentToggleMute  // m
	IntentResize      // Terminal resize event

	// Paddle control
	IntentPointer // Mouse motion or arrow/j/k, carries court-space Y
)

// Intent is the adapter-level result of one terminal event
type Intent struct {
	Type IntentType

	// PointerY is the court-space vertical coordinate for IntentPointer
	PointerY float64

	// Width and Height carry the new screen size for IntentResize
	Width, Height int
}
