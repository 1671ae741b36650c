// internal/event/types.go
package event

const (
	SoundRequested EventType = "SoundRequested" // Data: Sound
	PlayerDied     EventType = "PlayerDied"     // Data: PlayerDiedData
	EnemySpawned   EventType = "EnemySpawned"   // Data: EnemyData
	EnemyKilled    EventType = "EnemyKilled"    // Data: EnemyData
	EnemyCulled    EventType = "EnemyCulled"    // Data: EnemyData
	PartAttached   EventType = "PartAttached"   // Data: types.EntityID
	HitApplied     EventType = "HitApplied"     // Data: Hit
)

// Sound — символическое имя звука для уведомителя.
type Sound string

const (
	SoundHit       Sound = "hit"
	SoundZap       Sound = "zap"
	SoundCannon    Sound = "cannon"
	SoundExplosion Sound = "explosion"
	SoundDeath     Sound = "death"
	SoundConnect   Sound = "connect"
)

// EnemyData описывает врага в событиях жизненного цикла.
type EnemyData struct {
	Archetype string
	X, Y      float64
}

// PlayerDiedData — итог партии на момент смерти игрока.
type PlayerDiedData struct {
	Score int
	Kills int
	Size  int
}
