package engine

// GameState is the session lifecycle.
type GameState uint8

const (
	StateIdle GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateEnteringName
)

func (s GameState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	case StateEnteringName:
		return "entering_name"
	}
	return "unknown"
}
