// internal/event/types.go
package event

const (
	ShotFired     EventType = "ShotFired"     // Игрок нажал «огонь», даже без патронов
	PlayerHit     EventType = "PlayerHit"     // Враг врезался в игрока
	EnemyExploded EventType = "EnemyExploded" // У врага кончились жизни; Data — defs.EnemyKind
	EnemySpawned  EventType = "EnemySpawned"  // Data — defs.EnemyKind
	GameOver      EventType = "GameOver"      // Data — Outcome
)

// Outcome — итог забега для события GameOver.
type Outcome struct {
	Won   bool
	Score float64
}
