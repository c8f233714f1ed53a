package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning — параметры одного забега, которые можно переопределить из файла.
type Tuning struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Speed          float64 `yaml:"speed"`
	TimeLimit      float64 `yaml:"time_limit_ms"`
	WinningScore   float64 `yaml:"winning_score"`
	InitialAmmo    int     `yaml:"initial_ammo"`
	MaxAmmo        int     `yaml:"max_ammo"`
	AmmoInterval   float64 `yaml:"ammo_interval_ms"`
	EnemyInterval  float64 `yaml:"enemy_interval_ms"`
	PlayerMaxSpeed float64 `yaml:"player_max_speed"`
}

// DefaultTuning возвращает значения из const-блока.
func DefaultTuning() Tuning {
	return Tuning{
		Width:          ScreenWidth,
		Height:         ScreenHeight,
		Speed:          WorldSpeed,
		TimeLimit:      TimeLimit,
		WinningScore:   WinningScore,
		InitialAmmo:    InitialAmmo,
		MaxAmmo:        MaxAmmo,
		AmmoInterval:   AmmoInterval,
		EnemyInterval:  EnemyInterval,
		PlayerMaxSpeed: PlayerMaxSpeed,
	}
}

// LoadTuning накладывает YAML-файл поверх значений по умолчанию.
// Пустой путь или отсутствующий файл не считаются ошибкой.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return t, nil
	}
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}

	if err := yaml.Unmarshal(data, &t); err != nil {
		return DefaultTuning(), fmt.Errorf("failed to unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return DefaultTuning(), fmt.Errorf("invalid tuning in %s: %w", path, err)
	}
	return t, nil
}

// Validate проверяет, что значения допустимы для симуляции.
func (t Tuning) Validate() error {
	switch {
	case t.Width <= 0 || t.Height <= 0:
		return fmt.Errorf("world size must be positive, got %gx%g", t.Width, t.Height)
	case t.TimeLimit <= 0:
		return fmt.Errorf("time limit must be positive, got %g", t.TimeLimit)
	case t.AmmoInterval <= 0 || t.EnemyInterval <= 0:
		return errors.New("timer intervals must be positive")
	case t.InitialAmmo < 0 || t.MaxAmmo < t.InitialAmmo:
		return fmt.Errorf("ammo must satisfy 0 <= initial (%d) <= max (%d)", t.InitialAmmo, t.MaxAmmo)
	case t.PlayerMaxSpeed < 0:
		return fmt.Errorf("player max speed must not be negative, got %g", t.PlayerMaxSpeed)
	}
	return nil
}
