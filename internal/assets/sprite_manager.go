package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"go-dragon-shooter/internal/config"
	"go-dragon-shooter/pkg/render"
)

// Sheet описывает спрайт-лист: кадры идут слева направо, ряды сверху вниз.
type Sheet struct {
	Name          string
	Width, Height float64 // размер одного кадра
	Frames        int
	Rows          int
	Color         color.RGBA // цвет заглушки, если PNG нет
}

// SheetSize возвращает размер всего листа в пикселях.
func (s Sheet) SheetSize() (int, int) {
	rows := s.Rows
	if rows < 1 {
		rows = 1
	}
	return int(s.Width*float64(s.Frames) + 0.5), int(s.Height*float64(rows) + 0.5)
}

// DefaultSheets перечисляет все листы, которые ждёт мир.
func DefaultSheets() []Sheet {
	sheets := []Sheet{
		{Name: config.SpritePlayer, Width: config.PlayerWidth, Height: config.PlayerHeight, Frames: config.PlayerMaxFrame + 1, Color: color.RGBA{70, 130, 220, 255}},
		{Name: config.SpriteRedDragon, Width: 144, Height: 128, Frames: config.EnemyMaxFrame + 1, Color: color.RGBA{200, 40, 40, 255}},
		{Name: config.SpriteGoldDragon, Width: 144, Height: 128, Frames: config.EnemyMaxFrame + 1, Color: color.RGBA{230, 180, 40, 255}},
		{Name: config.SpriteFireball, Width: config.ProjectileWidth, Height: config.ProjectileHeight, Frames: config.ProjectileMaxFrame + 1, Color: color.RGBA{255, 120, 0, 255}},
	}
	layerColors := []color.RGBA{{40, 30, 60, 255}, {70, 45, 80, 255}, {100, 60, 70, 255}, {30, 20, 25, 160}}
	for i, name := range config.LayerSprites {
		sheets = append(sheets, Sheet{Name: name, Width: config.LayerWidth, Height: config.LayerHeight, Frames: 1, Color: layerColors[i%len(layerColors)]})
	}
	return sheets
}

// SpriteManager загружает и кэширует спрайт-листы.
type SpriteManager struct {
	dir     string
	sprites map[string]*render.Sprite
}

func NewSpriteManager(dir string) *SpriteManager {
	return &SpriteManager{
		dir:     dir,
		sprites: make(map[string]*render.Sprite),
	}
}

// Path возвращает ожидаемый путь к PNG листа.
func (m *SpriteManager) Path(name string) string {
	return filepath.Join(m.dir, fmt.Sprintf("%s.png", name))
}

// loadSingleSheet берёт PNG с диска, а если его нет — рисует цветную заглушку.
func (m *SpriteManager) loadSingleSheet(sheet Sheet) {
	if _, ok := m.sprites[sheet.Name]; ok {
		return
	}

	path := m.Path(sheet.Name)
	img, _, err := ebitenutil.NewImageFromFile(path)
	switch {
	case err == nil:
		log.Printf("Successfully loaded sprite sheet %s", path)
	case errors.Is(err, os.ErrNotExist):
		img = placeholderSheet(sheet)
	default:
		log.Printf("WARNING: Failed to load sprite sheet %s: %v. Using placeholder.", path, err)
		img = placeholderSheet(sheet)
	}

	m.sprites[sheet.Name] = &render.Sprite{Name: sheet.Name, Image: img}
}

// LoadSheets загружает все листы.
func (m *SpriteManager) LoadSheets(sheets []Sheet) {
	missing := 0
	for _, sheet := range sheets {
		if _, err := os.Stat(m.Path(sheet.Name)); err != nil {
			missing++
		}
		m.loadSingleSheet(sheet)
	}
	if missing > 0 {
		log.Printf("%d of %d sprite sheets missing in %s, placeholders generated", missing, len(sheets), m.dir)
	}
}

// Sprite возвращает лист по имени или nil.
func (m *SpriteManager) Sprite(name string) *render.Sprite {
	return m.sprites[name]
}

// Cleanup освобождает все изображения.
func (m *SpriteManager) Cleanup() {
	for name, sprite := range m.sprites {
		if sprite.Image != nil {
			sprite.Image.Deallocate()
		}
		delete(m.sprites, name)
	}
	log.Println("All sprite sheets unloaded.")
}

// placeholderSheet заливает каждый кадр своим оттенком, чтобы анимация была заметна.
func placeholderSheet(sheet Sheet) *ebiten.Image {
	w, h := sheet.SheetSize()
	img := ebiten.NewImage(w, h)
	rows := sheet.Rows
	if rows < 1 {
		rows = 1
	}
	for row := 0; row < rows; row++ {
		for frame := 0; frame < sheet.Frames; frame++ {
			r := image.Rect(
				int(float64(frame)*sheet.Width), int(float64(row)*sheet.Height),
				int(float64(frame+1)*sheet.Width), int(float64(row+1)*sheet.Height),
			)
			clr := render.ScaleColor(sheet.Color, 1+0.15*float64(frame))
			if row%2 == 1 {
				clr = render.DarkenColor(clr)
			}
			img.SubImage(r).(*ebiten.Image).Fill(clr)
		}
	}
	return img
}
