package component

// GamePhase — фаза забега. Переход Running → GameOver односторонний.
type GamePhase int

const (
	Running GamePhase = iota
	GameOver
)

func (p GamePhase) String() string {
	switch p {
	case Running:
		return "running"
	case GameOver:
		return "game over"
	}
	return "unknown"
}
