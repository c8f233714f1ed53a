package entity

import (
	"testing"

	"go-dragon-shooter/internal/config"
	"go-dragon-shooter/pkg/render"
	"go-dragon-shooter/pkg/render/rendertest"
)

func TestLayerScrollAndWrap(t *testing.T) {
	w := newFakeWorld()
	l := NewLayer(w, sprite("layer"), 1.5)

	l.Update()
	if l.X != -1.5 {
		t.Fatalf("X = %g, want -1.5", l.X)
	}

	l.X = -config.LayerWidth
	l.Update() // reset happens before the step
	if l.X != -1.5 {
		t.Errorf("after wrap X = %g, want -1.5", l.X)
	}
}

func TestLayerDrawsTwoTiles(t *testing.T) {
	w := newFakeWorld()
	l := NewLayer(w, sprite("layer"), 1)
	l.X = -100

	var rec rendertest.Recorder
	l.Draw(&rec)

	if len(rec.Ops) != 2 {
		t.Fatalf("expected 2 blits, got %d", len(rec.Ops))
	}
	if rec.Ops[0].Dst.X != -100 || rec.Ops[1].Dst.X != -100+config.LayerWidth {
		t.Errorf("tiles at %g and %g", rec.Ops[0].Dst.X, rec.Ops[1].Dst.X)
	}
}

func TestBackgroundSplitsForeground(t *testing.T) {
	w := newFakeWorld()
	b := NewBackground(w, []*render.Sprite{sprite("l1"), sprite("l2"), sprite("l3"), sprite("l4")})

	if len(b.Layers) != 3 || b.Foreground == nil {
		t.Fatalf("layers=%d foreground=%v", len(b.Layers), b.Foreground)
	}
	if b.Foreground.SpeedModifier != 1.5 {
		t.Errorf("foreground modifier = %g, want 1.5", b.Foreground.SpeedModifier)
	}

	b.Update()
	if b.Foreground.X != 0 {
		t.Error("Update must not move the foreground layer")
	}
	for i, want := range []float64{-0.1, -0.6, -1} {
		if b.Layers[i].X != want {
			t.Errorf("layer %d X = %g, want %g", i, b.Layers[i].X, want)
		}
	}
	b.UpdateForeground()
	if b.Foreground.X != -1.5 {
		t.Errorf("foreground X = %g, want -1.5", b.Foreground.X)
	}

	var rec rendertest.Recorder
	b.Draw(&rec)
	b.DrawForeground(&rec)
	got := rec.Sprites()
	want := []string{"l1", "l1", "l2", "l2", "l3", "l3", "l4", "l4"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("draw order = %v, want %v", got, want)
		}
	}
}
