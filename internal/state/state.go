// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-dragon-shooter/internal/app"
	"go-dragon-shooter/internal/audio"
	"go-dragon-shooter/internal/config"
	"go-dragon-shooter/internal/defs"
	"go-dragon-shooter/internal/input"
	"go-dragon-shooter/pkg/render"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// InputSource отдаёт снимок ввода на кадр.
type InputSource interface {
	Poll() input.Snapshot
}

// Deps — общие ресурсы, которые состояния передают друг другу.
type Deps struct {
	Tuning  config.Tuning
	Library defs.Library
	Sprites app.SpriteSource
	Fonts   *render.FontSet
	Sound   *audio.SoundManager // nil — без звука
	Seed    int64
	Input   InputSource
	// JustPressed сообщает о нажатии клавиши в этом кадре.
	JustPressed func(ebiten.Key) bool
}

// withDefaults подставляет ввод ebiten, если он не задан.
func (d Deps) withDefaults() Deps {
	if d.Input == nil {
		d.Input = input.NewPoller()
	}
	if d.JustPressed == nil {
		d.JustPressed = inpututil.IsKeyJustPressed
	}
	return d
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current возвращает активное состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
