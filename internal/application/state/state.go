package state

// GameState is the phase of the playing scene
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateVictory
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateVictory:
		return "Victory"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Finished reports whether the bout has a result
func (s GameState) Finished() bool {
	return s == StateVictory || s == StateGameOver
}
