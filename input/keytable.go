package input

import "github.com/gdamore/tcell/v2"

// PointerStep is a virtual pointer displacement in key steps, -1 up, +1 down
type PointerStep int8

// KeyEntry describes what a key does
type KeyEntry struct {
	Intent IntentType
	Step   PointerStep
}

// KeyTable maps keys to behaviors
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyCtrlQ:  {Intent: IntentQuit},
			tcell.KeyUp:     {Intent: IntentPointer, Step: -1},
			tcell.KeyDown:   {Intent: IntentPointer, Step: 1},
		},
		Runes: map[rune]KeyEntry{
			'q': {Intent: IntentQuit},
			'p': {Intent: IntentTogglePause},
			' ': {Intent: IntentTogglePause},
			'm': {Intent: IntentToggleMute},
			'k': {Intent: IntentPointer, Step: -1},
			'j': {Intent: IntentPointer, Step: 1},
		},
	}
}

// Lookup resolves a key event, ok is false for unbound keys
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		entry, ok := kt.Runes[ev.Rune()]
		return entry, ok
	}
	entry, ok := kt.SpecialKeys[ev.Key()]
	return entry, ok
}
