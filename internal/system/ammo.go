package system

import "go-dragon-shooter/internal/component"

// AmmoSystem пополняет и списывает общий запас снарядов.
type AmmoSystem struct {
	ammo *component.Ammo
}

func NewAmmoSystem(ammo *component.Ammo) *AmmoSystem {
	return &AmmoSystem{ammo: ammo}
}

// Update: когда таймер превысил интервал, добавляется один снаряд (не выше Max)
// и таймер обнуляется; иначе таймер копится.
func (s *AmmoSystem) Update(deltaTime float64) {
	a := s.ammo
	if a.Timer > a.Interval {
		if a.Current < a.Max {
			a.Current++
		}
		a.Timer = 0
	} else {
		a.Timer += deltaTime
	}
}

// Consume списывает один снаряд, если он есть.
func (s *AmmoSystem) Consume() bool {
	if s.ammo.Current <= 0 {
		return false
	}
	s.ammo.Current--
	return true
}
