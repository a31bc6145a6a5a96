package engine

// Phase is the top-level game state
type Phase uint8

const (
	// PhasePlaying runs physics and obstacle motion every frame
	PhasePlaying Phase = iota
	// PhaseGameOver freezes the world until a restart tap
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

var validTransitions = map[Phase][]Phase{
	PhasePlaying:  {PhaseGameOver},
	PhaseGameOver: {PhasePlaying},
}

// CanTransition checks whether from -> to is a legal phase change
func CanTransition(from, to Phase) bool {
	for _, p := range validTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}
