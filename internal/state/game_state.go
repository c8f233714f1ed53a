// internal/state/game_state.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"go-dragon-shooter/internal/app"
	"go-dragon-shooter/internal/config"
	"go-dragon-shooter/internal/event"
	"go-dragon-shooter/internal/utils"
	"go-dragon-shooter/pkg/render"
)

const restartHint = "Press ENTER to fly again"

// GameState — идущий забег. После конца игры Enter начинает новый.
type GameState struct {
	sm    *StateMachine
	deps  Deps
	world *app.World
}

func NewGameState(sm *StateMachine, deps Deps) *GameState {
	deps = deps.withDefaults()
	dispatcher := event.NewDispatcher()
	if deps.Sound != nil {
		deps.Sound.Subscribe(dispatcher)
	}
	world := app.NewWorld(deps.Tuning, deps.Library, deps.Sprites, dispatcher, utils.NewPRNGService(deps.Seed))
	return &GameState{sm: sm, deps: deps, world: world}
}

// World exposes the running simulation.
func (g *GameState) World() *app.World {
	return g.world
}

func (g *GameState) Enter() {
	log.Printf("Run started: %gx%g, limit %.0fs, target score %g",
		g.deps.Tuning.Width, g.deps.Tuning.Height, g.deps.Tuning.TimeLimit*0.001, g.deps.Tuning.WinningScore)
}

func (g *GameState) Update(deltaTime float64) {
	if g.deps.Sound != nil && g.deps.JustPressed(ebiten.KeyM) {
		g.deps.Sound.SetMuted(!g.deps.Sound.Muted())
	}

	if g.world.IsOver() && g.deps.JustPressed(ebiten.KeyEnter) {
		g.sm.SetState(NewGameState(g.sm, g.deps))
		return
	}

	g.world.Update(deltaTime, g.deps.Input.Poll())
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.DrawTo(render.NewEbitenSurface(screen, g.deps.Fonts))
}

// DrawTo рисует мир и, после конца игры, подсказку о рестарте.
func (g *GameState) DrawTo(s render.Surface) {
	g.world.Draw(s)
	if g.world.IsOver() {
		s.Text(restartHint, g.deps.Tuning.Width*0.5, g.deps.Tuning.Height-30, render.TextStyle{
			Size:         config.FontSize,
			Color:        config.TextLightColor,
			Shadow:       config.TextShadowColor,
			ShadowOffset: config.ShadowOffset,
			Align:        render.AlignCenter,
		})
	}
}

func (g *GameState) Exit() {
	log.Printf("Run finished: score %g after %.1fs", g.world.Score(), g.world.GameTime()*0.001)
}
