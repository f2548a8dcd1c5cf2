package core

// Side identifies a participant
type Side uint8

const (
	SideNone Side = iota
	SidePlayer
	SideAI
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideAI:
		return "ai"
	default:
		return "none"
	}
}

// Score counters only ever grow, one point per scoring event
type Score struct {
	Player int
	AI     int
}

// Award adds one point to the given side, SideNone is ignored
func (s *Score) Award(side Side) {
	switch side {
	case SidePlayer:
		s.Player++
	case SideAI:
		s.AI++
	}
}
