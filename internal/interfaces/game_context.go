// internal/interfaces/game_context.go
package interfaces

import "go-dragon-shooter/internal/event"

// WorldContext — то, что сущности видят в мире: размеры, скорость прокрутки,
// общий запас снарядов и шина событий. Мир владеет сущностями, не наоборот.
type WorldContext interface {
	Width() float64
	Height() float64
	Speed() float64
	// ConsumeAmmo списывает один снаряд; false, если запас пуст.
	ConsumeAmmo() bool
	Dispatch(e event.Event)
}
