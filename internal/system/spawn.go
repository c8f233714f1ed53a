// internal/system/spawn.go
package system

import (
	"go-dragon-shooter/internal/defs"
	"go-dragon-shooter/internal/utils"
)

// SpawnSystem отсчитывает интервал спавна и выбирает вариант врага по таблице.
type SpawnSystem struct {
	Timer    float64
	Interval float64

	table []defs.SpawnEntry
	rng   *utils.PRNGService
}

func NewSpawnSystem(interval float64, table []defs.SpawnEntry, rng *utils.PRNGService) *SpawnSystem {
	return &SpawnSystem{
		Interval: interval,
		table:    table,
		rng:      rng,
	}
}

// Update возвращает вариант врага, если в этом тике пора спавнить.
// После окончания игры таймер продолжает копиться, но никто не появляется.
// Пустой вариант с ok=true означает, что выпал пропуск.
func (s *SpawnSystem) Update(deltaTime float64, gameOver bool) (kind defs.EnemyKind, ok bool) {
	if s.Timer > s.Interval && !gameOver {
		s.Timer = 0
		return s.rng.ChooseWeighted(s.table), true
	}
	s.Timer += deltaTime
	return "", false
}
