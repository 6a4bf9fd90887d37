package entity

// Status is the game lifecycle state.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusIdle
	StatusStopped
)

func (that Status) String() string {
	switch that {
	case StatusPlaying:
		return "playing"
	case StatusIdle:
		return "idle"
	case StatusStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

func (that Status) IsPlaying() bool {
	return that == StatusPlaying
}

func (that Status) IsIdle() bool {
	return that == StatusIdle
}

func (that Status) IsStopped() bool {
	return that == StatusStopped
}
