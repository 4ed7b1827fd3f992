package core

// Cue is a sound-worthy moment in a tick, raised by games and consumed
// by the audio layer.
type Cue int

const (
	CueJump Cue = iota
	CuePoint
	CueCoin
	CueLevelUp
	CueCrash
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CuePoint:
		return "point"
	case CueCoin:
		return "coin"
	case CueLevelUp:
		return "level_up"
	case CueCrash:
		return "crash"
	default:
		return "unknown"
	}
}
