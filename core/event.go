package core

// Events is a bit set of what happened during one tick
// Events are observational, consumers (audio, logging) never feed back into physics
type Events uint8

const (
	EventWallBounce Events = 1 << iota
	EventPlayerHit
	EventAIHit
	EventPlayerScored
	EventAIScored

	EventNone   Events = 0
	EventHit           = EventPlayerHit | EventAIHit
	EventScored        = EventPlayerScored | EventAIScored
)

// Has reports whether any bit of mask is set
func (e Events) Has(mask Events) bool {
	return e&mask != 0
}

// ScoredEvent maps a scoring side to its event bit
func ScoredEvent(side Side) Events {
	switch side {
	case SidePlayer:
		return EventPlayerScored
	case SideAI:
		return EventAIScored
	default:
		return EventNone
	}
}

// ScoredSide returns the side that scored during the tick, SideNone if nobody did
func (e Events) ScoredSide() Side {
	switch {
	case e.Has(EventPlayerScored):
		return SidePlayer
	case e.Has(EventAIScored):
		return SideAI
	default:
		return SideNone
	}
}
