package defs

// SpawnEntry — одна запись в таблице спавна.
// Пустой Kind означает «никого не создавать» в этот раз.
type SpawnEntry struct {
	Kind   EnemyKind `yaml:"kind"`
	Weight int       `yaml:"weight"`
}

// DefaultSpawnTable: 30% золотой, 50% красный, 20% пропуск.
// Порядок важен: выбор идёт по накопленному весу сверху вниз.
func DefaultSpawnTable() []SpawnEntry {
	return []SpawnEntry{
		{Kind: GoldDragon, Weight: 30},
		{Kind: RedDragon, Weight: 50},
		{Kind: "", Weight: 20},
	}
}
