package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Machine translates terminal events into court-space intents
// It owns the screen-to-court mapping and a virtual pointer driven by keys
// Not safe for concurrent use, run it on the event polling goroutine
type Machine struct {
	keyTable    *KeyTable
	court       core.Court
	reservedTop int
	keyStep     float64

	viewport core.Viewport
	pointerY float64
}

// NewMachine creates a machine for a w x h screen with reservedTop rows above the court
func NewMachine(court core.Court, w, h, reservedTop int, keyStep float64) *Machine {
	m := &Machine{
		keyTable:    DefaultKeyTable(),
		court:       court,
		reservedTop: reservedTop,
		keyStep:     keyStep,
		pointerY:    court.Height / 2,
	}
	m.viewport = core.NewViewport(w, h, reservedTop, court)
	return m
}

// Process parses one terminal event
func (m *Machine) Process(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		m.viewport = core.NewViewport(w, h, m.reservedTop, m.court)
		return Intent{Type: IntentResize, Width: w, Height: h}
	}
	return Intent{Type: IntentNone}
}

func (m *Machine) processKey(ev *tcell.EventKey) Intent {
	entry, ok := m.keyTable.Lookup(ev)
	if !ok {
		return Intent{Type: IntentNone}
	}

	if entry.Intent == IntentPointer {
		m.setPointer(m.pointerY + float64(entry.Step)*m.keyStep)
		return Intent{Type: IntentPointer, PointerY: m.pointerY}
	}
	return Intent{Type: entry.Intent}
}

func (m *Machine) processMouse(ev *tcell.EventMouse) Intent {
	_, row := ev.Position()
	m.setPointer(m.viewport.ToCourtY(row))
	return Intent{Type: IntentPointer, PointerY: m.pointerY}
}

// setPointer keeps the virtual pointer on the court so key presses never accumulate off-screen
func (m *Machine) setPointer(y float64) {
	m.pointerY = vmath.Clamp(y, 0, m.court.Height)
}
