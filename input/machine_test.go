package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/stretchr/testify/assert"
)

var testCourt = core.Court{Width: 800, Height: 500}

// 80x51 screen, 1 score row: every court row spans 10 units
func newTestMachine() *Machine {
	return NewMachine(testCourt, 80, 51, 1, 25)
}

func TestMachine_MouseMapsToCourt(t *testing.T) {
	m := newTestMachine()

	intent := m.Process(tcell.NewEventMouse(40, 26, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, IntentPointer, intent.Type)
	assert.Equal(t, 255.0, intent.PointerY)

	// Score row maps above the court, clamped to 0
	intent = m.Process(tcell.NewEventMouse(40, 0, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, 0.0, intent.PointerY)
}

func TestMachine_KeysMoveVirtualPointer(t *testing.T) {
	m := newTestMachine()

	// Pointer starts at mid court
	intent := m.Process(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	assert.Equal(t, IntentPointer, intent.Type)
	assert.Equal(t, 225.0, intent.PointerY)

	intent = m.Process(tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone))
	assert.Equal(t, 250.0, intent.PointerY)

	for i := 0; i < 100; i++ {
		intent = m.Process(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	}
	assert.Equal(t, 500.0, intent.PointerY)
}

func TestMachine_SystemKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want IntentType
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{"ctrl c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{"pause", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), IntentTogglePause},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), IntentTogglePause},
		{"mute", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), IntentToggleMute},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine()
			assert.Equal(t, tt.want, m.Process(tt.ev).Type)
		})
	}
}

func TestMachine_ResizeRemaps(t *testing.T) {
	m := newTestMachine()

	intent := m.Process(tcell.NewEventResize(100, 26))
	assert.Equal(t, IntentResize, intent.Type)
	assert.Equal(t, 100, intent.Width)
	assert.Equal(t, 26, intent.Height)

	// 25 rows over 500 units, row 1 is the first court row
	intent = m.Process(tcell.NewEventMouse(0, 1, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, 10.0, intent.PointerY)
}
