package audio

import "github.com/lixenwraith/vi-pong/core"

// Cue identifies a sound effect
type Cue uint8

const (
	CueNone Cue = iota
	CueHit
	CueWall
	CueScore
)

func (c Cue) String() string {
	switch c {
	case CueHit:
		return "hit"
	case CueWall:
		return "wall"
	case CueScore:
		return "score"
	default:
		return "none"
	}
}

// CuesFor maps a tick's events to cues, scoring first
// At most one cue per kind is returned
func CuesFor(ev core.Events) []Cue {
	if ev == core.EventNone {
		return nil
	}
	cues := make([]Cue, 0, 3)
	if ev.Has(core.EventScored) {
		cues = append(cues, CueScore)
	}
	if ev.Has(core.EventHit) {
		cues = append(cues, CueHit)
	}
	if ev.Has(core.EventWallBounce) {
		cues = append(cues, CueWall)
	}
	return cues
}
