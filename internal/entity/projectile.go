// internal/entity/projectile.go
package entity

import (
	"go-dragon-shooter/internal/component"
	"go-dragon-shooter/internal/config"
	"go-dragon-shooter/internal/interfaces"
	"go-dragon-shooter/pkg/render"
)

// Projectile — огненный шар, летит вправо с постоянной скоростью.
type Projectile struct {
	component.Rect
	Speed             float64
	Animator          component.Animator
	MarkedForDeletion bool

	world  interfaces.WorldContext
	sprite *render.Sprite
}

func NewProjectile(world interfaces.WorldContext, x, y, speed float64, sprite *render.Sprite) *Projectile {
	return &Projectile{
		Rect: component.Rect{
			X:      x,
			Y:      y,
			Width:  config.ProjectileWidth,
			Height: config.ProjectileHeight,
		},
		Speed:    speed,
		Animator: component.NewAnimator(config.AnimationFPS, config.ProjectileMaxFrame),
		world:    world,
		sprite:   sprite,
	}
}

func (p *Projectile) Update(deltaTime float64) {
	p.X += p.Speed
	p.Animator.Advance(deltaTime)
	if p.X > p.world.Width()*config.ProjectileBoundary {
		p.MarkedForDeletion = true
	}
}

func (p *Projectile) Draw(s render.Surface) {
	s.Blit(p.sprite,
		render.Rect{X: float64(p.Animator.FrameX) * p.Width, W: p.Width, H: p.Height},
		render.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height},
	)
}

func (p *Projectile) Deleted() bool { return p.MarkedForDeletion }
