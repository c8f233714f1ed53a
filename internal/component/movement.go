// component/movement.go
package component

// Rect — прямоугольник сущности: позиция и неизменный размер.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right возвращает правую границу.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom возвращает нижнюю границу.
func (r Rect) Bottom() float64 { return r.Y + r.Height }
