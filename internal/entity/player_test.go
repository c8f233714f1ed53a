package entity

import (
	"testing"

	"go-dragon-shooter/internal/config"
	"go-dragon-shooter/internal/event"
	"go-dragon-shooter/internal/input"
	"go-dragon-shooter/internal/utils"
	"go-dragon-shooter/pkg/render/rendertest"

	"pgregory.net/rapid"
)

func newTestPlayer(w *fakeWorld) *Player {
	return NewPlayer(w, config.PlayerMaxSpeed, utils.NewPRNGService(1), sprite("player"), sprite("fireball"))
}

func TestPlayerMovement(t *testing.T) {
	w := newFakeWorld()
	p := newTestPlayer(w)

	p.Update(16, input.Snapshot{Held: input.Up})
	if p.Y != 96 || p.SpeedY != -4 {
		t.Errorf("after Up: y=%g speed=%g, want 96/-4", p.Y, p.SpeedY)
	}
	p.Update(16, input.Snapshot{Held: input.Down})
	if p.Y != 100 {
		t.Errorf("after Down: y=%g, want 100", p.Y)
	}
	// Up wins when both are held
	p.Update(16, input.Snapshot{Held: input.Up | input.Down})
	if p.Y != 96 {
		t.Errorf("after Up+Down: y=%g, want 96", p.Y)
	}
	p.Update(16, input.Snapshot{})
	if p.Y != 96 || p.SpeedY != 0 {
		t.Errorf("idle: y=%g speed=%g", p.Y, p.SpeedY)
	}
}

func TestPlayerClampedToBounds(t *testing.T) {
	w := newFakeWorld()
	p := newTestPlayer(w)

	for i := 0; i < 200; i++ {
		p.Update(16, input.Snapshot{Held: input.Up})
	}
	if p.Y != p.MinY() || p.MinY() != -0.2*p.Height {
		t.Errorf("top clamp: y=%g, want %g", p.Y, p.MinY())
	}
	for i := 0; i < 200; i++ {
		p.Update(16, input.Snapshot{Held: input.Down})
	}
	if p.Y != p.MaxY() {
		t.Errorf("bottom clamp: y=%g, want %g", p.Y, p.MaxY())
	}
}

func TestPlayerBoundsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := newFakeWorld()
		p := newTestPlayer(w)
		moves := rapid.SliceOfN(rapid.IntRange(0, 3), 1, 400).Draw(t, "moves")
		for _, m := range moves {
			p.Update(16, input.Snapshot{Held: input.Direction(m)})
			if p.Y < p.MinY() || p.Y > p.MaxY() {
				t.Fatalf("y=%g escaped [%g, %g]", p.Y, p.MinY(), p.MaxY())
			}
		}
	})
}

func TestShootTopConsumesAmmo(t *testing.T) {
	w := newFakeWorld()
	p := newTestPlayer(w)

	for i := 0; i < 20; i++ {
		if !p.ShootTop() {
			t.Fatalf("shot %d did not fire", i+1)
		}
	}
	if w.ammo != 0 || len(p.Projectiles) != 20 {
		t.Fatalf("ammo=%d projectiles=%d, want 0/20", w.ammo, len(p.Projectiles))
	}

	if p.ShootTop() {
		t.Error("21st shot fired with no ammo")
	}
	if len(p.Projectiles) != 20 {
		t.Errorf("projectiles = %d, want 20", len(p.Projectiles))
	}
	if got := w.count(event.ShotFired); got != 21 {
		t.Errorf("shot cue published %d times, want 21 (including the empty shot)", got)
	}
}

func TestShootTopSpawnOffsetAndSpeed(t *testing.T) {
	w := newFakeWorld()
	p := newTestPlayer(w)
	p.ShootTop()

	proj := p.Projectiles[0]
	if proj.X != config.PlayerX+95 || proj.Y != config.PlayerY+70 {
		t.Errorf("projectile at (%g,%g), want (%g,%g)", proj.X, proj.Y, config.PlayerX+95, config.PlayerY+70)
	}
	if proj.Speed < 2.8 || proj.Speed > 3.0 {
		t.Errorf("projectile speed %g outside [2.8, 3.0)", proj.Speed)
	}
}

func TestPlayerDropsExpiredProjectilesInOrder(t *testing.T) {
	w := newFakeWorld()
	p := newTestPlayer(w)
	a := NewProjectile(w, 10, 0, 1, nil)
	b := NewProjectile(w, 900, 0, 1, nil) // past 80% of width
	c := NewProjectile(w, 20, 0, 1, nil)
	p.Projectiles = append(p.Projectiles, a, b, c)

	p.Update(16, input.Snapshot{})

	if len(p.Projectiles) != 2 || p.Projectiles[0] != a || p.Projectiles[1] != c {
		t.Errorf("unexpected projectiles after sweep: %v", p.Projectiles)
	}
}

func TestPlayerDrawsProjectilesAfterItself(t *testing.T) {
	w := newFakeWorld()
	p := newTestPlayer(w)
	p.ShootTop()
	p.ShootTop()

	var rec rendertest.Recorder
	p.Draw(&rec)

	got := rec.Sprites()
	want := []string{"player", "fireball", "fireball"}
	if len(got) != len(want) {
		t.Fatalf("blits = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("blits = %v, want %v", got, want)
		}
	}
}
