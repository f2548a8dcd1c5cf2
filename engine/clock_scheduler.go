package engine

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// ErrSchedulerRunning is returned when Run is called on a scheduler that is already running
var ErrSchedulerRunning = errors.New("clock scheduler already running")

// Frame is passed to the frame callback once per tick
type Frame struct {
	Number uint64 // monotonically increasing, counts paused frames too
	Paused bool   // game update should be skipped, render only
}

// FrameFunc handles one frame, a non-nil error stops the scheduler
type FrameFunc func(Frame) error

// ClockScheduler drives a frame callback on a fixed interval
// Pause is advisory: frames keep firing so the host can render a paused view
type ClockScheduler struct {
	clock    clockwork.Clock
	interval time.Duration
	logger   *zap.Logger

	isPaused   atomic.Bool
	running    atomic.Bool
	frameCount atomic.Uint64
}

// NewClockScheduler creates a scheduler on the given clock, a nil logger discards output
func NewClockScheduler(clock clockwork.Clock, interval time.Duration, logger *zap.Logger) *ClockScheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClockScheduler{
		clock:    clock,
		interval: interval,
		logger:   logger,
	}
}

// Run fires fn on every tick until ctx is done or fn fails
// Returns ctx.Err() on cancellation and the wrapped callback error otherwise
func (cs *ClockScheduler) Run(ctx context.Context, fn FrameFunc) error {
	if !cs.running.CompareAndSwap(false, true) {
		return ErrSchedulerRunning
	}
	defer cs.running.Store(false)

	ticker := cs.clock.NewTicker(cs.interval)
	defer ticker.Stop()

	cs.logger.Debug("scheduler started", zap.Duration("interval", cs.interval))

	for {
		select {
		case <-ctx.Done():
			cs.logger.Debug("scheduler stopped", zap.Uint64("frames", cs.frameCount.Load()))
			return ctx.Err()

		case <-ticker.Chan():
			frame := Frame{
				Number: cs.frameCount.Add(1),
				Paused: cs.isPaused.Load(),
			}
			if err := fn(frame); err != nil {
				return fmt.Errorf("frame %d: %w", frame.Number, err)
			}
		}
	}
}

// TogglePause flips the pause flag and returns the new state
func (cs *ClockScheduler) TogglePause() bool {
	for {
		old := cs.isPaused.Load()
		if cs.isPaused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsPaused reports the pause flag
func (cs *ClockScheduler) IsPaused() bool {
	return cs.isPaused.Load()
}

// FrameCount returns frames fired so far
func (cs *ClockScheduler) FrameCount() uint64 {
	return cs.frameCount.Load()
}
