// internal/system/spawn.go
package system

import (
	"log"

	"go-absorb/internal/component"
	"go-absorb/internal/config"
	"go-absorb/internal/defs"
	"go-absorb/internal/entity"
	"go-absorb/internal/event"
	"go-absorb/internal/utils"
)

// PopulationSystem держит число врагов на уровне kills+1, порождая их
// за краем видимой области.
type PopulationSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	rng             *utils.PRNGService
	stats           *component.WorldStats
	camera          *Camera
	eventDispatcher *event.Dispatcher
}

func NewPopulationSystem(ecs *entity.ECS, lib *defs.Library, rng *utils.PRNGService, stats *component.WorldStats, camera *Camera, eventDispatcher *event.Dispatcher) *PopulationSystem {
	return &PopulationSystem{
		ecs:             ecs,
		lib:             lib,
		rng:             rng,
		stats:           stats,
		camera:          camera,
		eventDispatcher: eventDispatcher,
	}
}

func (s *PopulationSystem) Update(deltaTime float64) {
	if s.stats.EnemiesAlive >= s.stats.Kills+1 {
		return
	}
	_, px, py, ok := playerPosition(s.ecs)
	if !ok {
		return
	}

	archetype, ok := s.chooseArchetype()
	if !ok {
		return
	}
	x, y := s.spawnPoint(px, py)
	if _, err := SpawnEnemy(s.ecs, s.lib, s.rng, archetype, x, y); err != nil {
		log.Printf("PopulationSystem: failed to spawn enemy: %v", err)
		return
	}
	s.stats.EnemiesAlive++

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemyData{Archetype: archetype.String(), X: x, Y: y},
	})
}

func (s *PopulationSystem) chooseArchetype() (component.Archetype, bool) {
	id := s.rng.ChooseWeighted(s.lib.SpawnTable())
	def, ok := s.lib.ArchetypeByID(id)
	if !ok {
		return 0, false
	}
	return def.Archetype()
}

// spawnPoint выбирает случайную точку на одной из сторон прямоугольника
// вокруг игрока, чуть дальше видимой области.
func (s *PopulationSystem) spawnPoint(px, py float64) (float64, float64) {
	hx, hy := s.camera.HalfExtents()
	hx += config.SpawnMargin
	hy += config.SpawnMargin
	switch s.rng.Intn(4) {
	case 0: // сверху
		return px + s.rng.Symmetric(hx), py - hy
	case 1: // снизу
		return px + s.rng.Symmetric(hx), py + hy
	case 2: // слева
		return px - hx, py + s.rng.Symmetric(hy)
	default: // справа
		return px + hx, py + s.rng.Symmetric(hy)
	}
}
