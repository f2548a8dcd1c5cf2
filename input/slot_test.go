package input

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointerSlot_Empty(t *testing.T) {
	var s PointerSlot
	_, ok := s.Take()
	assert.False(t, ok)
}

func TestPointerSlot_LastWriterWins(t *testing.T) {
	var s PointerSlot
	s.Store(10)
	s.Store(20)
	s.Store(30)

	y, ok := s.Take()
	require.True(t, ok)
	assert.Equal(t, 30.0, y)

	// Consumed
	_, ok = s.Take()
	assert.False(t, ok)
}

func TestPointerSlot_Concurrent(t *testing.T) {
	var s PointerSlot
	var wg sync.WaitGroup

	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(base float64) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				s.Store(base + float64(i))
			}
		}(float64(w * 1000))
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			if y, ok := s.Take(); ok {
				assert.GreaterOrEqual(t, y, 0.0)
				assert.Less(t, y, 4000.0)
			}
		}
	}()

	wg.Wait()
	<-done

	y, ok := s.Take()
	if ok {
		assert.Less(t, y, 4000.0)
	}
}
