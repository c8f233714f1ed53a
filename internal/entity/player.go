// internal/entity/player.go
package entity

import (
	"go-dragon-shooter/internal/component"
	"go-dragon-shooter/internal/config"
	"go-dragon-shooter/internal/event"
	"go-dragon-shooter/internal/input"
	"go-dragon-shooter/internal/interfaces"
	"go-dragon-shooter/internal/utils"
	"go-dragon-shooter/pkg/render"
)

// Player — дракон игрока. X фиксирован, двигается только по вертикали.
// Владеет своими снарядами.
type Player struct {
	component.Rect
	SpeedY      float64
	MaxSpeed    float64
	FrameY      int
	Animator    component.Animator
	Projectiles []*Projectile

	world            interfaces.WorldContext
	rng              *utils.PRNGService
	sprite           *render.Sprite
	projectileSprite *render.Sprite
}

func NewPlayer(world interfaces.WorldContext, maxSpeed float64, rng *utils.PRNGService, sprite, projectileSprite *render.Sprite) *Player {
	return &Player{
		Rect: component.Rect{
			X:      config.PlayerX,
			Y:      config.PlayerY,
			Width:  config.PlayerWidth,
			Height: config.PlayerHeight,
		},
		MaxSpeed:         maxSpeed,
		Animator:         component.NewAnimator(config.AnimationFPS, config.PlayerMaxFrame),
		world:            world,
		rng:              rng,
		sprite:           sprite,
		projectileSprite: projectileSprite,
	}
}

// MinY и MaxY — вертикальные границы: спрайт может уйти за край на 20% своей высоты.
func (p *Player) MinY() float64 { return -p.Height * 0.2 }
func (p *Player) MaxY() float64 { return p.world.Height() - p.Height*0.8 }

func (p *Player) Update(deltaTime float64, in input.Snapshot) {
	switch {
	case in.Holding(input.Up):
		p.SpeedY = -p.MaxSpeed
	case in.Holding(input.Down):
		p.SpeedY = p.MaxSpeed
	default:
		p.SpeedY = 0
	}
	p.Y = utils.Clamp(p.Y+p.SpeedY, p.MinY(), p.MaxY())

	for _, proj := range p.Projectiles {
		proj.Update(deltaTime)
	}
	p.Projectiles = Sweep(p.Projectiles)

	p.Animator.Advance(deltaTime)
}

// ShootTop выпускает снаряд, если есть патроны. Звук выстрела
// публикуется в любом случае, даже при пустом запасе.
func (p *Player) ShootTop() bool {
	fired := false
	if p.world.ConsumeAmmo() {
		speed := p.rng.Range(config.ProjectileMinSpeed, config.ProjectileMaxSpeed)
		p.Projectiles = append(p.Projectiles, NewProjectile(p.world,
			p.X+config.ProjectileOffsetX, p.Y+config.ProjectileOffsetY, speed, p.projectileSprite))
		fired = true
	}
	p.world.Dispatch(event.Event{Type: event.ShotFired})
	return fired
}

// Draw рисует игрока, затем его снаряды поверх.
func (p *Player) Draw(s render.Surface) {
	s.Blit(p.sprite,
		render.Rect{X: float64(p.Animator.FrameX) * p.Width, Y: float64(p.FrameY) * p.Height, W: p.Width, H: p.Height},
		render.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height},
	)
	for _, proj := range p.Projectiles {
		proj.Draw(s)
	}
}
