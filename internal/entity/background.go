package entity

import (
	"go-dragon-shooter/internal/config"
	"go-dragon-shooter/internal/interfaces"
	"go-dragon-shooter/pkg/render"
)

// Layer — один бесшовно зацикленный слой параллакса.
type Layer struct {
	X, Y          float64
	Width, Height float64
	SpeedModifier float64

	world  interfaces.WorldContext
	sprite *render.Sprite
}

func NewLayer(world interfaces.WorldContext, sprite *render.Sprite, speedModifier float64) *Layer {
	return &Layer{
		Width:         config.LayerWidth,
		Height:        config.LayerHeight,
		SpeedModifier: speedModifier,
		world:         world,
		sprite:        sprite,
	}
}

// Update сдвигает слой влево. Сброс проверяется до сдвига, поэтому X
// может на один тик оказаться на -Width.
func (l *Layer) Update() {
	if l.X <= -l.Width {
		l.X = 0
	}
	l.X -= l.world.Speed() * l.SpeedModifier
}

// Draw рисует плитку дважды, чтобы закрыть шов.
func (l *Layer) Draw(s render.Surface) {
	src := render.Rect{W: l.Width, H: l.Height}
	s.Blit(l.sprite, src, render.Rect{X: l.X, Y: l.Y, W: l.Width, H: l.Height})
	s.Blit(l.sprite, src, render.Rect{X: l.X + l.Width, Y: l.Y, W: l.Width, H: l.Height})
}

// Background — основные слои плюс передний, который рисуется поверх сущностей.
type Background struct {
	Layers     []*Layer
	Foreground *Layer
}

// NewBackground строит слои по config.LayerSpeedModifiers; последний становится передним.
func NewBackground(world interfaces.WorldContext, sprites []*render.Sprite) *Background {
	mods := config.LayerSpeedModifiers
	b := &Background{}
	for i, mod := range mods {
		var sprite *render.Sprite
		if i < len(sprites) {
			sprite = sprites[i]
		}
		layer := NewLayer(world, sprite, mod)
		if i == len(mods)-1 {
			b.Foreground = layer
		} else {
			b.Layers = append(b.Layers, layer)
		}
	}
	return b
}

func (b *Background) Update() {
	for _, l := range b.Layers {
		l.Update()
	}
}

func (b *Background) UpdateForeground() {
	b.Foreground.Update()
}

func (b *Background) Draw(s render.Surface) {
	for _, l := range b.Layers {
		l.Draw(s)
	}
}

func (b *Background) DrawForeground(s render.Surface) {
	b.Foreground.Draw(s)
}
