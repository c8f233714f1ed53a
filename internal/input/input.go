package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Direction — набор удерживаемых направлений (битовая маска).
type Direction uint8

const (
	Up Direction = 1 << iota
	Down
)

// Snapshot — состояние ввода на один тик. Fire срабатывает по фронту нажатия.
type Snapshot struct {
	Held Direction
	Fire bool
}

// Holding сообщает, удерживается ли направление d.
func (s Snapshot) Holding(d Direction) bool {
	return s.Held&d != 0
}

// Poller читает клавиатуру через ebiten.
type Poller struct {
	UpKeys   []ebiten.Key
	DownKeys []ebiten.Key
	FireKeys []ebiten.Key
}

// NewPoller — стрелки вверх/вниз и пробел.
func NewPoller() *Poller {
	return &Poller{
		UpKeys:   []ebiten.Key{ebiten.KeyArrowUp},
		DownKeys: []ebiten.Key{ebiten.KeyArrowDown},
		FireKeys: []ebiten.Key{ebiten.KeySpace},
	}
}

// Poll снимает состояние клавиатуры для текущего кадра.
func (p *Poller) Poll() Snapshot {
	var s Snapshot
	if anyPressed(p.UpKeys) {
		s.Held |= Up
	}
	if anyPressed(p.DownKeys) {
		s.Held |= Down
	}
	for _, k := range p.FireKeys {
		if inpututil.IsKeyJustPressed(k) {
			s.Fire = true
		}
	}
	return s
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
