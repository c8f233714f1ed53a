package entity

import (
	"go-dragon-shooter/internal/event"
	"go-dragon-shooter/internal/interfaces"
	"go-dragon-shooter/pkg/render"
)

// fakeWorld — минимальный WorldContext для тестов сущностей.
type fakeWorld struct {
	width, height, speed float64
	ammo                 int
	events               []event.Event
}

var _ interfaces.WorldContext = (*fakeWorld)(nil)

func newFakeWorld() *fakeWorld {
	return &fakeWorld{width: 1000, height: 500, speed: 1, ammo: 20}
}

func (w *fakeWorld) Width() float64  { return w.width }
func (w *fakeWorld) Height() float64 { return w.height }
func (w *fakeWorld) Speed() float64  { return w.speed }

func (w *fakeWorld) ConsumeAmmo() bool {
	if w.ammo <= 0 {
		return false
	}
	w.ammo--
	return true
}

func (w *fakeWorld) Dispatch(e event.Event) { w.events = append(w.events, e) }

func (w *fakeWorld) count(t event.EventType) int {
	n := 0
	for _, e := range w.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func sprite(name string) *render.Sprite { return &render.Sprite{Name: name} }
