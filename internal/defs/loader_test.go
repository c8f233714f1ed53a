package defs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "enemies.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultLibrary(t *testing.T) {
	lib := DefaultLibrary()

	red, gold := lib.Enemies[RedDragon], lib.Enemies[GoldDragon]
	if red.Lives != 5 || red.Score() != 5 {
		t.Errorf("red dragon lives/score = %d/%g, want 5/5", red.Lives, red.Score())
	}
	if gold.Lives != 10 || gold.Score() != 10 {
		t.Errorf("gold dragon lives/score = %d/%g, want 10/10", gold.Lives, gold.Score())
	}
	if red.SpeedMin != -1.2 || red.SpeedMax != -0.2 {
		t.Errorf("unexpected red speed range [%g, %g]", red.SpeedMin, red.SpeedMax)
	}
	if gold.SpeedMin != -4.7 || gold.SpeedMax != -0.5 {
		t.Errorf("unexpected gold speed range [%g, %g]", gold.SpeedMin, gold.SpeedMax)
	}

	total := 0
	for _, e := range lib.Spawns {
		total += e.Weight
	}
	if total != 100 {
		t.Errorf("spawn weights sum to %d, want 100", total)
	}
}

func TestLoadDefinitionsMissingFile(t *testing.T) {
	lib, err := LoadDefinitions(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lib.Enemies) != 2 || len(lib.Spawns) != 3 {
		t.Errorf("expected defaults, got %+v", lib)
	}
}

func TestLoadDefinitionsOverride(t *testing.T) {
	path := writeFile(t, `
enemies:
  - kind: RED_DRAGON
    name: Angry Red
    sprite: red-dragon
    width: 100
    height: 90
    lives: 3
    speed_min: -2
    speed_max: -1
spawn_table:
  - kind: RED_DRAGON
    weight: 1
`)
	lib, err := LoadDefinitions(path)
	if err != nil {
		t.Fatalf("LoadDefinitions returned error: %v", err)
	}
	red := lib.Enemies[RedDragon]
	if red.Name != "Angry Red" || red.Lives != 3 || red.Width != 100 {
		t.Errorf("override not applied: %+v", red)
	}
	if lib.Enemies[GoldDragon].Lives != 10 {
		t.Error("gold dragon should keep its default definition")
	}
	if len(lib.Spawns) != 1 || lib.Spawns[0].Kind != RedDragon {
		t.Errorf("spawn table not replaced: %+v", lib.Spawns)
	}
}

func TestLoadDefinitionsInvalid(t *testing.T) {
	tests := map[string]string{
		"zero lives":    "enemies:\n  - {kind: RED_DRAGON, width: 1, height: 1, lives: 0}\n",
		"inverted":      "enemies:\n  - {kind: RED_DRAGON, width: 1, height: 1, lives: 1, speed_min: -1, speed_max: -2}\n",
		"unknown spawn": "spawn_table:\n  - {kind: BLUE_DRAGON, weight: 5}\n",
		"bad yaml":      "enemies: [\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadDefinitions(writeFile(t, body)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
