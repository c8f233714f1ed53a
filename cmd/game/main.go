// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-dragon-shooter/internal/assets"
	"go-dragon-shooter/internal/audio"
	"go-dragon-shooter/internal/config"
	"go-dragon-shooter/internal/defs"
	"go-dragon-shooter/internal/state"
	"go-dragon-shooter/internal/utils"
	"go-dragon-shooter/pkg/render"
)

type AppGame struct {
	stateMachine *state.StateMachine
	clock        utils.FrameClock
	start        time.Time
	width        int
	height       int
}

// Update получает deltaTime в миллисекундах из монотонных меток кадра.
func (a *AppGame) Update() error {
	timestamp := float64(time.Since(a.start).Microseconds()) / 1000
	a.stateMachine.Update(a.clock.Tick(timestamp))
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("WARNING: %v", err)
	}
	env := config.FromEnv()

	if env.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(env.PprofAddr, nil))
		}()
	}

	tuning, err := config.LoadTuning(env.TuningPath)
	if err != nil {
		log.Printf("WARNING: %v. Using default tuning.", err)
	}
	library, err := defs.LoadDefinitions(env.EnemiesPath)
	if err != nil {
		log.Printf("WARNING: %v. Using built-in enemies.", err)
	}

	sprites := assets.NewSpriteManager(env.AssetsDir)
	sprites.LoadSheets(assets.DefaultSheets())
	defer sprites.Cleanup()

	fonts, err := render.NewFontSet(filepath.Join(env.AssetsDir, "fonts", "Cinzel-Regular.ttf"))
	if err != nil {
		log.Printf("WARNING: %v", err)
	}

	var sound *audio.SoundManager
	if !env.Mute {
		sound = audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			log.Printf("Audio disabled: %v", err)
			sound = nil
		} else {
			defer sound.Cleanup()
		}
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewMenuState(sm, state.Deps{
		Tuning:  tuning,
		Library: library,
		Sprites: sprites,
		Fonts:   fonts,
		Sound:   sound,
		Seed:    env.Seed,
	}))

	app := &AppGame{
		stateMachine: sm,
		start:        time.Now(),
		width:        int(tuning.Width),
		height:       int(tuning.Height),
	}
	ebiten.SetWindowSize(app.width, app.height)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
