// internal/defs/enemies.go
package defs

import "go-dragon-shooter/internal/config"

// EnemyKind — тег варианта врага. Вся разница между вариантами живёт в EnemyDefinition.
type EnemyKind string

const (
	RedDragon  EnemyKind = "RED_DRAGON"
	GoldDragon EnemyKind = "GOLD_DRAGON"
)

// EnemyDefinition holds all the static data for a specific kind of enemy.
// Speed is sampled from (SpeedMin, SpeedMax]; both bounds are negative (leftward).
type EnemyDefinition struct {
	Kind     EnemyKind `yaml:"kind"`
	Name     string    `yaml:"name"`
	Sprite   string    `yaml:"sprite"`
	Width    float64   `yaml:"width"`
	Height   float64   `yaml:"height"`
	Lives    int       `yaml:"lives"`
	SpeedMin float64   `yaml:"speed_min"`
	SpeedMax float64   `yaml:"speed_max"`
	FrameY   int       `yaml:"frame_y"`
}

// Score равен начальному числу жизней.
func (d EnemyDefinition) Score() float64 {
	return float64(d.Lives)
}

// DefaultEnemyLibrary возвращает встроенные определения драконов.
func DefaultEnemyLibrary() map[EnemyKind]EnemyDefinition {
	return map[EnemyKind]EnemyDefinition{
		RedDragon: {
			Kind:     RedDragon,
			Name:     "Red Dragon",
			Sprite:   config.SpriteRedDragon,
			Width:    144,
			Height:   128,
			Lives:    5,
			SpeedMin: -1.2,
			SpeedMax: -0.2,
		},
		GoldDragon: {
			Kind:     GoldDragon,
			Name:     "Gold Dragon",
			Sprite:   config.SpriteGoldDragon,
			Width:    144,
			Height:   128,
			Lives:    10,
			SpeedMin: -4.7,
			SpeedMax: -0.5,
		},
	}
}
