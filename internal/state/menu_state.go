// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-dragon-shooter/internal/config"
	"go-dragon-shooter/pkg/render"
)

const menuHint = "Press SPACE to take flight"

// MenuState — титульный экран, пробел начинает забег.
type MenuState struct {
	sm   *StateMachine
	deps Deps
}

func NewMenuState(sm *StateMachine, deps Deps) *MenuState {
	return &MenuState{sm: sm, deps: deps.withDefaults()}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if m.deps.JustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.deps))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	m.DrawTo(render.NewEbitenSurface(screen, m.deps.Fonts))
}

// DrawTo рисует заголовок и подсказку по центру экрана.
func (m *MenuState) DrawTo(s render.Surface) {
	cx, cy := m.deps.Tuning.Width*0.5, m.deps.Tuning.Height*0.5
	style := render.TextStyle{
		Size:         config.HeadlineFontSize,
		Color:        config.TextLightColor,
		Shadow:       config.TextShadowColor,
		ShadowOffset: config.ShadowOffset,
		Align:        render.AlignCenter,
	}
	s.Text(config.WindowTitle, cx, cy-20, style)
	style.Size = config.FontSize
	s.Text(menuHint, cx, cy+20, style)
}

func (m *MenuState) Exit() {}
