// Package rendertest provides a recording render.Surface for tests.
package rendertest

import (
	"image/color"

	"go-dragon-shooter/pkg/render"
)

// Op — одна записанная операция отрисовки.
type Op struct {
	Kind   string // "clear", "blit", "fill", "text"
	Sprite string
	Src    render.Rect
	Dst    render.Rect
	Text   string
	Style  render.TextStyle
	Color  color.Color
}

// Recorder implements render.Surface by remembering every call.
type Recorder struct {
	Ops []Op
}

var _ render.Surface = (*Recorder)(nil)

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops, Op{Kind: "clear"})
}

func (r *Recorder) Blit(sprite *render.Sprite, src, dst render.Rect) {
	name := ""
	if sprite != nil {
		name = sprite.Name
	}
	r.Ops = append(r.Ops, Op{Kind: "blit", Sprite: name, Src: src, Dst: dst})
}

func (r *Recorder) FillRect(dst render.Rect, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "fill", Dst: dst, Color: clr})
}

func (r *Recorder) Text(s string, x, y float64, style render.TextStyle) {
	r.Ops = append(r.Ops, Op{Kind: "text", Text: s, Dst: render.Rect{X: x, Y: y}, Style: style})
}

// Sprites returns the sprite names of all blits in call order.
func (r *Recorder) Sprites() []string {
	var names []string
	for _, op := range r.Ops {
		if op.Kind == "blit" {
			names = append(names, op.Sprite)
		}
	}
	return names
}

// Texts returns all drawn strings in call order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// Count returns the number of ops of the given kind.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
