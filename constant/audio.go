package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Paddle hit cue
const (
	HitSoundFreq     = 660.0
	HitSoundDuration = 40 * time.Millisecond
)

// Wall bounce cue
const (
	WallSoundFreq     = 330.0
	WallSoundDuration = 30 * time.Millisecond
)

// Score cue, two descending tones
const (
	ScoreSoundFreqHigh = 523.25
	ScoreSoundFreqLow  = 261.63
	ScoreSoundDuration = 120 * time.Millisecond
)

// AudioVolume is the linear gain applied to every cue
const AudioVolume = 0.25
