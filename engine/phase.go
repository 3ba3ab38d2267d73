package engine

// Phase is the round state of the game
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhasePlaying:
		return "Playing"
	case PhaseEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// validTransitions is the round state machine
// Ended returns to Playing only through a restart
var validTransitions = map[Phase][]Phase{
	PhaseNotStarted: {PhasePlaying},
	PhasePlaying:    {PhaseEnded},
	PhaseEnded:      {PhasePlaying},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to Phase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}
