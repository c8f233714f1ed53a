package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ Surface = (*EbitenSurface)(nil)

// EbitenSurface рисует в *ebiten.Image.
type EbitenSurface struct {
	dst   *ebiten.Image
	fonts *FontSet
}

func NewEbitenSurface(dst *ebiten.Image, fonts *FontSet) *EbitenSurface {
	return &EbitenSurface{dst: dst, fonts: fonts}
}

func (s *EbitenSurface) Clear() {
	s.dst.Clear()
}

func (s *EbitenSurface) Blit(sprite *Sprite, src, dst Rect) {
	if sprite == nil || sprite.Image == nil || src.W <= 0 || src.H <= 0 {
		return
	}
	// Кадры бывают дробной ширины (36.25 px), округляем до пикселя.
	r := image.Rect(
		int(math.Round(src.X)), int(math.Round(src.Y)),
		int(math.Round(src.X+src.W)), int(math.Round(src.Y+src.H)),
	)
	frame := sprite.Image.SubImage(r).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/src.W, dst.H/src.H)
	op.GeoM.Translate(dst.X, dst.Y)
	s.dst.DrawImage(frame, op)
}

func (s *EbitenSurface) FillRect(dst Rect, clr color.Color) {
	vector.DrawFilledRect(s.dst, float32(dst.X), float32(dst.Y), float32(dst.W), float32(dst.H), clr, false)
}

func (s *EbitenSurface) Text(str string, x, y float64, style TextStyle) {
	face, scale := s.fonts.Face(style.Size)
	ascent := face.Metrics().HAscent * scale

	draw := func(dx, dy float64, clr color.Color) {
		op := &text.DrawOptions{}
		if style.Align == AlignCenter {
			op.PrimaryAlign = text.AlignCenter
		}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x+dx, y-ascent+dy)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(s.dst, str, face, op)
	}

	if style.Shadow != nil {
		draw(style.ShadowOffset, style.ShadowOffset, style.Shadow)
	}
	draw(0, 0, style.Color)
}
