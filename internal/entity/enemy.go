// internal/entity/enemy.go
package entity

import (
	"go-dragon-shooter/internal/component"
	"go-dragon-shooter/internal/config"
	"go-dragon-shooter/internal/defs"
	"go-dragon-shooter/internal/interfaces"
	"go-dragon-shooter/internal/utils"
	"go-dragon-shooter/pkg/render"
)

// Enemy — дракон-противник. Вариант задаётся тегом Kind; все различия
// (размер, жизни, диапазон скорости) берутся из определения при создании.
type Enemy struct {
	component.Rect
	Kind              defs.EnemyKind
	SpeedX            float64
	Lives             int
	Score             float64
	FrameY            int
	Animator          component.Animator
	MarkedForDeletion bool

	world  interfaces.WorldContext
	sprite *render.Sprite
}

// NewEnemy ставит врага у правого края мира на случайную высоту
// в пределах верхних 90% и выбирает скорость из диапазона варианта.
func NewEnemy(world interfaces.WorldContext, def defs.EnemyDefinition, rng *utils.PRNGService, sprite *render.Sprite) *Enemy {
	return &Enemy{
		Rect: component.Rect{
			X:      world.Width(),
			Y:      rng.Float64() * (world.Height()*config.EnemySpawnBand - def.Height),
			Width:  def.Width,
			Height: def.Height,
		},
		Kind:     def.Kind,
		SpeedX:   def.SpeedMax - rng.Float64()*(def.SpeedMax-def.SpeedMin),
		Lives:    def.Lives,
		Score:    def.Score(),
		FrameY:   def.FrameY,
		Animator: component.NewAnimator(config.AnimationFPS, config.EnemyMaxFrame),
		world:    world,
		sprite:   sprite,
	}
}

func (e *Enemy) Update(deltaTime float64) {
	e.X += e.SpeedX - e.world.Speed()
	if e.Right() < 0 {
		e.MarkedForDeletion = true
	}
	e.Animator.Advance(deltaTime)
}

// Defeated сообщает, что жизни кончились.
func (e *Enemy) Defeated() bool { return e.Lives <= 0 }

// Hit снимает одну жизнь. Возвращает true, если это попадание добило врага;
// побеждённого врага повторные попадания не трогают.
func (e *Enemy) Hit() bool {
	if e.Defeated() {
		return false
	}
	e.Lives--
	if e.Lives == 0 {
		e.MarkedForDeletion = true
		return true
	}
	return false
}

func (e *Enemy) Draw(s render.Surface) {
	s.Blit(e.sprite,
		render.Rect{X: float64(e.Animator.FrameX) * e.Width, Y: float64(e.FrameY) * e.Height, W: e.Width, H: e.Height},
		render.Rect{X: e.X, Y: e.Y, W: e.Width, H: e.Height},
	)
}

func (e *Enemy) Deleted() bool { return e.MarkedForDeletion }
