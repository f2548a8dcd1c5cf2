package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-pong/constant"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

func sampleCount(d time.Duration) int {
	return int(float64(constant.AudioSampleRate) * d.Seconds())
}

// oscillator generates raw waveform samples
func oscillator(waveType int, freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(constant.AudioSampleRate)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies a linear attack/release in place
func applyEnvelope(buf floatBuffer, attack, release time.Duration) {
	total := len(buf)
	attackSamples := sampleCount(attack)
	releaseSamples := sampleCount(release)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// synthesize renders the buffer for a cue
func synthesize(c Cue) floatBuffer {
	switch c {
	case CueHit:
		buf := oscillator(waveSquare, constant.HitSoundFreq, sampleCount(constant.HitSoundDuration))
		applyEnvelope(buf, 2*time.Millisecond, 20*time.Millisecond)
		return buf
	case CueWall:
		buf := oscillator(waveSine, constant.WallSoundFreq, sampleCount(constant.WallSoundDuration))
		applyEnvelope(buf, 2*time.Millisecond, 15*time.Millisecond)
		return buf
	case CueScore:
		high := oscillator(waveSine, constant.ScoreSoundFreqHigh, sampleCount(constant.ScoreSoundDuration))
		low := oscillator(waveSine, constant.ScoreSoundFreqLow, sampleCount(constant.ScoreSoundDuration))
		applyEnvelope(high, 5*time.Millisecond, 30*time.Millisecond)
		applyEnvelope(low, 5*time.Millisecond, 60*time.Millisecond)
		return append(high, low...)
	default:
		return nil
	}
}

// format is the encoding cue buffers are stored in
var format = beep.Format{
	SampleRate:  beep.SampleRate(constant.AudioSampleRate),
	NumChannels: 2,
	Precision:   3,
}

// newCueBuffer encodes mono samples into a replayable stereo beep buffer
func newCueBuffer(samples floatBuffer) *beep.Buffer {
	pos := 0
	mono := beep.StreamerFunc(func(out [][2]float64) (int, bool) {
		if pos >= len(samples) {
			return 0, false
		}
		n := copy2(out, samples[pos:])
		pos += n
		return n, true
	})

	buf := beep.NewBuffer(format)
	buf.Append(mono)
	return buf
}

// copy2 duplicates src into both channels of dst, returns samples written
func copy2(dst [][2]float64, src floatBuffer) int {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i][0] = src[i]
		dst[i][1] = src[i]
	}
	return n
}

// cueStreamer plays buf once from the start at linear gain
func cueStreamer(buf *beep.Buffer, gain float64) beep.Streamer {
	return &effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   math.Log2(gain),
	}
}
