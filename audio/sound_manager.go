package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-pong/constant"
	"github.com/lixenwraith/vi-pong/core"
)

// SoundManager plays match cues through the speaker
// Every method is safe to call when the speaker never initialized
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	cache       map[Cue]*beep.Buffer
	initialized bool
	muted       atomic.Bool
}

// NewSoundManager creates a sound manager with all cue buffers pre-rendered
func NewSoundManager() *SoundManager {
	sm := &SoundManager{
		mixer: &beep.Mixer{},
		cache: make(map[Cue]*beep.Buffer, 3),
	}
	for _, c := range []Cue{CueHit, CueWall, CueScore} {
		sm.cache[c] = newCueBuffer(synthesize(c))
	}
	return sm
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(constant.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// Initialized reports whether output is live
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// Play queues one cue, returns false if nothing was queued
func (sm *SoundManager) Play(c Cue) bool {
	if sm.muted.Load() {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}
	buf, ok := sm.cache[c]
	if !ok || buf.Len() == 0 {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(cueStreamer(buf, constant.AudioVolume))
	speaker.Unlock()
	return true
}

// PlayEvents queues the cues for a tick's events
func (sm *SoundManager) PlayEvents(ev core.Events) {
	for _, c := range CuesFor(ev) {
		sm.Play(c)
	}
}
