// internal/system/death.go
package system

import (
	"log"
	"math"

	"go-absorb/internal/component"
	"go-absorb/internal/config"
	"go-absorb/internal/defs"
	"go-absorb/internal/entity"
	"go-absorb/internal/event"
	"go-absorb/internal/types"
	"go-absorb/internal/utils"
)

// DeathSystem убирает тела с нулевым здоровьем. Враг оставляет лут,
// игрок разлетается на обломки и завершает партию.
type DeathSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	rng             *utils.PRNGService
	stats           *component.WorldStats
	queues          *event.Queues
	eventDispatcher *event.Dispatcher
}

func NewDeathSystem(ecs *entity.ECS, lib *defs.Library, rng *utils.PRNGService, stats *component.WorldStats, queues *event.Queues, eventDispatcher *event.Dispatcher) *DeathSystem {
	return &DeathSystem{
		ecs:             ecs,
		lib:             lib,
		rng:             rng,
		stats:           stats,
		queues:          queues,
		eventDispatcher: eventDispatcher,
	}
}

func (s *DeathSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Roots) {
		stats, ok := s.ecs.Stats[id]
		if !ok || !stats.IsDead() {
			continue
		}
		if s.ecs.SideOf(id) == component.SidePlayer {
			s.killPlayer(id, stats)
		} else {
			s.killEnemy(id)
		}
	}
}

func (s *DeathSystem) killEnemy(id types.EntityID) {
	x, y, _ := s.ecs.WorldPosition(id)
	archetype := s.ecs.Roots[id].Archetype

	s.ecs.DespawnRecursive(id)
	s.DropLoot(archetype, x, y)
	s.queues.PushKilled(id)

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyData{Archetype: archetype.String(), X: x, Y: y},
	})
	s.eventDispatcher.PlaySound(event.SoundExplosion)
}

// DropLoot выбрасывает часть по роли архетипа и два обломка свободными
// объектами со случайной скоростью разлёта.
func (s *DeathSystem) DropLoot(archetype component.Archetype, x, y float64) {
	role, debris := lootParts(s.ecs, s.lib, archetype, x, y)
	if role != 0 {
		vx, vy, spin := outwardVelocity(s.rng, config.LootSpeed, config.LootSpin)
		spawnFreeObject(s.ecs, role, vx, vy, spin)
	}
	for _, id := range debris {
		vx, vy, spin := outwardVelocity(s.rng, config.LootSpeed/2, config.LootSpin*2)
		spawnFreeObject(s.ecs, id, vx, vy, spin)
	}
}

func (s *DeathSystem) killPlayer(id types.EntityID, stats *component.Stats) {
	x, y, _ := s.ecs.WorldPosition(id)

	// Запоминаем, где были части, до удаления тела
	var parts [][2]float64
	for _, child := range s.ecs.ChildrenOf(id) {
		if len(parts) >= config.ExplosionMaxParts {
			break
		}
		if cx, cy, ok := s.ecs.WorldPosition(child); ok {
			parts = append(parts, [2]float64{cx, cy})
		}
	}

	s.ecs.DespawnRecursive(id)

	for _, p := range parts {
		dx, dy := utils.Normalize(p[0]-x, p[1]-y)
		if dx == 0 && dy == 0 {
			angle := s.rng.Range(0, 2*math.Pi)
			dx, dy = math.Cos(angle), math.Sin(angle)
		}
		speed := config.ExplosionSpeed * s.rng.Range(0.5, 1)
		debris := SpawnDebris(s.ecs, p[0], p[1], s.rng.Range(0, 2*math.Pi))
		spawnFreeObject(s.ecs, debris, dx*speed, dy*speed, s.rng.Symmetric(config.LootSpin*2))
	}

	log.Printf("Player died: score %d, kills %d, size %d", s.stats.Score, s.stats.Kills, stats.Size)
	s.eventDispatcher.PlaySound(event.SoundDeath)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.PlayerDied,
		Data: event.PlayerDiedData{Score: s.stats.Score, Kills: s.stats.Kills, Size: stats.Size},
	})
}
