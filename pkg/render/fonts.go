package render

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// basicfont.Face7x13 имеет высоту строки 13 px.
const fallbackFontHeight = 13.0

// FontSet отдаёт шрифт нужного размера. Если TTF не загружен,
// используется растровый basicfont с масштабированием.
type FontSet struct {
	ttf      *opentype.Font
	faces    map[float64]text.Face
	fallback text.Face
}

// NewFontSet загружает TTF по пути. Отсутствующий файл не ошибка.
func NewFontSet(path string) (*FontSet, error) {
	fs := &FontSet{
		faces:    make(map[float64]text.Face),
		fallback: text.NewGoXFace(basicfont.Face7x13),
	}
	if path == "" {
		return fs, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("Font %s not found, using basicfont", path)
		return fs, nil
	}
	if err != nil {
		return fs, fmt.Errorf("failed to read font: %w", err)
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		return fs, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	fs.ttf = tt
	return fs, nil
}

// Face возвращает шрифт и масштаб, который нужно применить при отрисовке.
func (f *FontSet) Face(size float64) (text.Face, float64) {
	if f.ttf == nil {
		return f.fallback, size / fallbackFontHeight
	}
	if face, ok := f.faces[size]; ok {
		return face, 1
	}
	goFace, err := opentype.NewFace(f.ttf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("Failed to build %gpx face, using basicfont: %v", size, err)
		return f.fallback, size / fallbackFontHeight
	}
	face := text.NewGoXFace(goFace)
	f.faces[size] = face
	return face, 1
}
