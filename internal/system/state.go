// internal/system/state.go
package system

import (
	"go-dragon-shooter/internal/component"
	"go-dragon-shooter/internal/event"
	"log"
)

// StateSystem ведёт игровое время, счёт и фазу забега.
// Переход в GameOver необратим и публикуется ровно один раз.
type StateSystem struct {
	GameTime     float64
	TimeLimit    float64
	Score        float64
	WinningScore float64

	phase           component.GamePhase
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(timeLimit, winningScore float64, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		TimeLimit:       timeLimit,
		WinningScore:    winningScore,
		phase:           component.Running,
		eventDispatcher: eventDispatcher,
	}
}

func (s *StateSystem) Phase() component.GamePhase { return s.phase }

func (s *StateSystem) IsOver() bool { return s.phase == component.GameOver }

// Won — счёт строго больше порога победы.
func (s *StateSystem) Won() bool { return s.Score > s.WinningScore }

// AdvanceTime двигает игровое время, пока игра идёт, и проверяет лимит.
func (s *StateSystem) AdvanceTime(deltaTime float64) {
	if !s.IsOver() {
		s.GameTime += deltaTime
	}
	if s.GameTime > s.TimeLimit {
		s.SwitchToGameOver()
	}
}

// Penalize снимает половину ценности врага при столкновении с игроком.
func (s *StateSystem) Penalize(enemyScore float64) {
	if !s.IsOver() {
		s.Score -= enemyScore * 0.5
	}
}

// Reward начисляет очки за побеждённого врага и сразу проверяет победу.
func (s *StateSystem) Reward(enemyScore float64) {
	if !s.IsOver() {
		s.Score += enemyScore
	}
	if s.Won() {
		s.SwitchToGameOver()
	}
}

func (s *StateSystem) SwitchToGameOver() {
	if s.IsOver() {
		return
	}
	s.phase = component.GameOver
	outcome := event.Outcome{Won: s.Won(), Score: s.Score}
	log.Printf("Game over at %.1fs: score %g, won=%v", s.GameTime*0.001, s.Score, outcome.Won)
	s.eventDispatcher.Emit(event.GameOver, outcome)
}
