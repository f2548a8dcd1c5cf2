package input

import "sync"

// PointerSlot is a single-slot, last-writer-wins pointer value
// The input goroutine stores, the tick goroutine takes once per tick
type PointerSlot struct {
	mu    sync.Mutex
	y     float64
	fresh bool
}

// Store overwrites any value not yet taken
func (s *PointerSlot) Store(y float64) {
	s.mu.Lock()
	s.y = y
	s.fresh = true
	s.mu.Unlock()
}

// Take returns the latest value stored since the previous Take
// ok is false when nothing new arrived
func (s *PointerSlot) Take() (y float64, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.fresh {
		return 0, false
	}
	s.fresh = false
	return s.y, true
}
