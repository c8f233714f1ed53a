// internal/app/world.go
package app

import (
	"log"

	"go-dragon-shooter/internal/component"
	"go-dragon-shooter/internal/config"
	"go-dragon-shooter/internal/defs"
	"go-dragon-shooter/internal/entity"
	"go-dragon-shooter/internal/event"
	"go-dragon-shooter/internal/input"
	"go-dragon-shooter/internal/interfaces"
	"go-dragon-shooter/internal/system"
	"go-dragon-shooter/internal/ui"
	"go-dragon-shooter/internal/utils"
	"go-dragon-shooter/pkg/render"
)

// SpriteSource отдаёт спрайт по логическому имени.
type SpriteSource interface {
	Sprite(name string) *render.Sprite
}

// World holds the state of one run and advances it frame by frame.
type World struct {
	Tuning          config.Tuning
	Library         defs.Library
	Background      *entity.Background
	Player          *entity.Player
	Enemies         []*entity.Enemy
	Overlay         *ui.Overlay
	Ammo            *component.Ammo
	AmmoSystem      *system.AmmoSystem
	SpawnSystem     *system.SpawnSystem
	StateSystem     *system.StateSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	sprites SpriteSource
}

var _ interfaces.WorldContext = (*World)(nil)

// NewWorld initializes a fresh run.
func NewWorld(tuning config.Tuning, lib defs.Library, sprites SpriteSource, dispatcher *event.Dispatcher, rng *utils.PRNGService) *World {
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	w := &World{
		Tuning:          tuning,
		Library:         lib,
		Overlay:         ui.NewOverlay(),
		EventDispatcher: dispatcher,
		Rng:             rng,
		sprites:         sprites,
		Ammo: &component.Ammo{
			Current:  tuning.InitialAmmo,
			Max:      tuning.MaxAmmo,
			Interval: tuning.AmmoInterval,
		},
	}
	w.AmmoSystem = system.NewAmmoSystem(w.Ammo)
	w.SpawnSystem = system.NewSpawnSystem(tuning.EnemyInterval, lib.Spawns, rng)
	w.StateSystem = system.NewStateSystem(tuning.TimeLimit, tuning.WinningScore, dispatcher)

	layers := make([]*render.Sprite, 0, len(config.LayerSprites))
	for _, name := range config.LayerSprites {
		layers = append(layers, sprites.Sprite(name))
	}
	w.Background = entity.NewBackground(w, layers)
	w.Player = entity.NewPlayer(w, tuning.PlayerMaxSpeed, rng,
		sprites.Sprite(config.SpritePlayer), sprites.Sprite(config.SpriteFireball))

	return w
}

// --- interfaces.WorldContext ---

func (w *World) Width() float64  { return w.Tuning.Width }
func (w *World) Height() float64 { return w.Tuning.Height }
func (w *World) Speed() float64  { return w.Tuning.Speed }

func (w *World) ConsumeAmmo() bool { return w.AmmoSystem.Consume() }

func (w *World) Dispatch(e event.Event) { w.EventDispatcher.Dispatch(e) }

// --- Public Accessors ---

func (w *World) Score() float64    { return w.StateSystem.Score }
func (w *World) GameTime() float64 { return w.StateSystem.GameTime }
func (w *World) IsOver() bool      { return w.StateSystem.IsOver() }
func (w *World) Won() bool         { return w.StateSystem.Won() }

// Update progresses the run by one frame. Fire в снимке ввода обрабатывается
// до остальной логики кадра, как нажатие клавиши до тика.
func (w *World) Update(deltaTime float64, in input.Snapshot) {
	if in.Fire {
		w.Player.ShootTop()
	}

	w.StateSystem.AdvanceTime(deltaTime)
	w.Background.Update()
	w.Background.UpdateForeground()
	w.Player.Update(deltaTime, in)
	w.AmmoSystem.Update(deltaTime)

	for _, enemy := range w.Enemies {
		enemy.Update(deltaTime)
		w.resolveCollisions(enemy)
	}
	w.Enemies = entity.Sweep(w.Enemies)

	if kind, ok := w.SpawnSystem.Update(deltaTime, w.StateSystem.IsOver()); ok && kind != "" {
		w.AddEnemy(kind)
	}
}

// resolveCollisions проверяет врага против игрока и всех снарядов игрока.
// Помеченный врагом игрока враг всё ещё может быть добит снарядами в том же кадре.
func (w *World) resolveCollisions(enemy *entity.Enemy) {
	if system.CheckCollision(w.Player.Rect, enemy.Rect) {
		enemy.MarkedForDeletion = true
		w.EventDispatcher.Emit(event.PlayerHit, enemy.Kind)
		w.StateSystem.Penalize(enemy.Score)
	}

	for _, proj := range w.Player.Projectiles {
		if !system.CheckCollision(proj.Rect, enemy.Rect) {
			continue
		}
		proj.MarkedForDeletion = true
		if enemy.Hit() {
			w.EventDispatcher.Emit(event.EnemyExploded, enemy.Kind)
			w.StateSystem.Reward(enemy.Score)
		}
	}
}

// AddEnemy создаёт врага указанного варианта у правого края.
func (w *World) AddEnemy(kind defs.EnemyKind) *entity.Enemy {
	def, ok := w.Library.Enemies[kind]
	if !ok {
		log.Printf("Unknown enemy kind %q, skipping spawn", kind)
		return nil
	}
	enemy := entity.NewEnemy(w, def, w.Rng, w.sprites.Sprite(def.Sprite))
	w.Enemies = append(w.Enemies, enemy)
	w.EventDispatcher.Emit(event.EnemySpawned, kind)
	return enemy
}

// Draw: основные слои фона, оверлей, игрок со снарядами, враги, передний слой.
func (w *World) Draw(s render.Surface) {
	w.Background.Draw(s)
	w.Overlay.Draw(s, ui.HUDState{
		Width:    w.Width(),
		Height:   w.Height(),
		Score:    w.Score(),
		GameTime: w.GameTime(),
		Ammo:     w.Ammo.Current,
		Over:     w.IsOver(),
		Won:      w.Won(),
	})
	w.Player.Draw(s)
	for _, enemy := range w.Enemies {
		enemy.Draw(s)
	}
	w.Background.DrawForeground(s)
}
