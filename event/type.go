package event

// InputType represents the kind of host input delivered to the simulation
type InputType uint8

const (
	// InputTap is a discrete tap/press
	// Trigger: host gesture layer | Consumer: engine.Game frame drain
	InputTap InputType = iota + 1
)

func (t InputType) String() string {
	switch t {
	case InputTap:
		return "tap"
	default:
		return "unknown"
	}
}

// InputEvent is one queued host input
// Seq is assigned by the queue in push order
type InputEvent struct {
	Type InputType
	Seq  uint64
}
