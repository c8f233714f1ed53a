// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1000
	ScreenHeight = 500

	WorldSpeed   = 1.0     // скорость прокрутки мира, px за кадр
	TimeLimit    = 50000.0 // мс
	WinningScore = 80.0

	InitialAmmo  = 20
	MaxAmmo      = 50
	AmmoInterval = 500.0 // мс между пополнениями

	EnemyInterval = 1000.0 // мс между попытками спавна

	PlayerX        = 20.0
	PlayerY        = 100.0
	PlayerWidth    = 144.0
	PlayerHeight   = 128.0
	PlayerMaxSpeed = 4.0
	PlayerMaxFrame = 2

	ProjectileWidth    = 36.25
	ProjectileHeight   = 20.0
	ProjectileOffsetX  = 95.0
	ProjectileOffsetY  = 70.0
	ProjectileMinSpeed = 2.8
	ProjectileMaxSpeed = 3.0
	ProjectileMaxFrame = 3
	ProjectileBoundary = 0.8 // доля ширины мира, после которой снаряд удаляется

	EnemyMaxFrame  = 2
	EnemySpawnBand = 0.9 // враги появляются в верхних 90% высоты

	AnimationFPS = 10

	LayerWidth  = 576.0
	LayerHeight = 324.0

	FontSize         = 25
	HeadlineFontSize = 70
	ShadowOffset     = 2.0

	AmmoBarX       = 20.0
	AmmoBarY       = 50.0
	AmmoBarStep    = 5.0
	AmmoBarWidth   = 3.0
	AmmoBarHeight  = 20.0
	ScoreTextY     = 40.0
	TimerTextY     = 100.0
	OverlayMarginX = 20.0

	WindowTitle = "Dragon Shooter"
)

// Множители скорости слоёв фона, от дальнего к переднему.
var LayerSpeedModifiers = []float64{0.1, 0.6, 1.0, 1.5}

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	TextLightColor  = color.RGBA{255, 255, 255, 255}
	TextShadowColor = color.RGBA{0, 0, 0, 255}
	AmmoColor       = color.RGBA{255, 255, 255, 255}
)

// Логические имена спрайтов.
const (
	SpritePlayer     = "player"
	SpriteRedDragon  = "red-dragon"
	SpriteGoldDragon = "gold-dragon"
	SpriteFireball   = "fireball"
	SpriteLayer1     = "layer1"
	SpriteLayer2     = "layer2"
	SpriteLayer3     = "layer3"
	SpriteLayer4     = "layer4"
)

// LayerSprites перечисляет спрайты слоёв фона в порядке LayerSpeedModifiers.
var LayerSprites = []string{SpriteLayer1, SpriteLayer2, SpriteLayer3, SpriteLayer4}
