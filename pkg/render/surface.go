package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Rect — прямоугольник в пикселях холста.
type Rect struct {
	X, Y, W, H float64
}

// Sprite — изображение (обычно спрайт-лист) с логическим именем.
type Sprite struct {
	Name  string
	Image *ebiten.Image
}

// Align — горизонтальное выравнивание текста относительно точки привязки.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
)

// TextStyle описывает оформление строки. Y точки привязки — базовая линия.
type TextStyle struct {
	Size         float64
	Color        color.Color
	Shadow       color.Color // nil — без тени
	ShadowOffset float64
	Align        Align
}

// Surface — 2D-контекст, в который рисует мир.
type Surface interface {
	Clear()
	// Blit копирует область src спрайта в область dst холста.
	Blit(sprite *Sprite, src, dst Rect)
	FillRect(dst Rect, clr color.Color)
	Text(s string, x, y float64, style TextStyle)
}
