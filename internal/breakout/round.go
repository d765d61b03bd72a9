package breakout

// State is the phase of a game.
type State uint8

const (
	AwaitingServe State = iota
	InPlay
	LifeLost
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case AwaitingServe:
		return "awaiting-serve"
	case InPlay:
		return "in-play"
	case LifeLost:
		return "life-lost"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// Terminal reports whether the game is over.
func (s State) Terminal() bool {
	return s == Won || s == Lost
}

// Round is the game-wide state shared by the tick systems.
type Round struct {
	State  State
	Lives  int
	Bricks int
}
