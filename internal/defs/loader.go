// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Library объединяет определения врагов и таблицу спавна.
type Library struct {
	Enemies map[EnemyKind]EnemyDefinition
	Spawns  []SpawnEntry
}

// DefaultLibrary returns the built-in definitions.
func DefaultLibrary() Library {
	return Library{
		Enemies: DefaultEnemyLibrary(),
		Spawns:  DefaultSpawnTable(),
	}
}

type libraryFile struct {
	Enemies []EnemyDefinition `yaml:"enemies"`
	Spawns  []SpawnEntry      `yaml:"spawn_table"`
}

// LoadDefinitions reads an enemy definitions file and merges it over the defaults.
// Enemies are replaced per kind; a non-empty spawn_table replaces the default table.
func LoadDefinitions(path string) (Library, error) {
	lib := DefaultLibrary()
	if path == "" {
		return lib, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return lib, nil
	}
	if err != nil {
		return lib, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var file libraryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return lib, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	for _, def := range file.Enemies {
		if err := def.validate(); err != nil {
			return DefaultLibrary(), fmt.Errorf("enemy %q: %w", def.Kind, err)
		}
		lib.Enemies[def.Kind] = def
	}
	if len(file.Spawns) > 0 {
		for _, entry := range file.Spawns {
			if entry.Weight < 0 {
				return DefaultLibrary(), fmt.Errorf("spawn weight for %q must not be negative", entry.Kind)
			}
			if _, ok := lib.Enemies[entry.Kind]; entry.Kind != "" && !ok {
				return DefaultLibrary(), fmt.Errorf("spawn table references unknown enemy %q", entry.Kind)
			}
		}
		lib.Spawns = file.Spawns
	}

	log.Printf("Loaded %d enemy definitions, %d spawn entries", len(lib.Enemies), len(lib.Spawns))
	return lib, nil
}

func (d EnemyDefinition) validate() error {
	switch {
	case d.Kind == "":
		return errors.New("kind is required")
	case d.Width <= 0 || d.Height <= 0:
		return fmt.Errorf("size must be positive, got %gx%g", d.Width, d.Height)
	case d.Lives <= 0:
		return fmt.Errorf("lives must be positive, got %d", d.Lives)
	case d.SpeedMin > d.SpeedMax:
		return fmt.Errorf("speed range is inverted: [%g, %g]", d.SpeedMin, d.SpeedMax)
	}
	return nil
}
