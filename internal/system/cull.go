// internal/system/cull.go
package system

import (
	"go-absorb/internal/component"
	"go-absorb/internal/config"
	"go-absorb/internal/entity"
	"go-absorb/internal/event"
	"go-absorb/internal/utils"
)

// CullSystem периодически удаляет врагов, отставших от игрока.
// Такое удаление не считается убийством.
type CullSystem struct {
	ecs             *entity.ECS
	stats           *component.WorldStats
	eventDispatcher *event.Dispatcher
	timer           float64
}

func NewCullSystem(ecs *entity.ECS, stats *component.WorldStats, eventDispatcher *event.Dispatcher) *CullSystem {
	return &CullSystem{ecs: ecs, stats: stats, eventDispatcher: eventDispatcher}
}

// Reset обнуляет таймер чистки перед новой партией.
func (s *CullSystem) Reset() {
	s.timer = 0
}

func (s *CullSystem) Update(deltaTime float64) {
	s.timer += deltaTime
	if s.timer < config.EnemyCullInterval {
		return
	}
	s.timer = 0

	_, px, py, ok := playerPosition(s.ecs)
	if !ok {
		return
	}
	for _, id := range entity.SortedIDs(s.ecs.Roots) {
		if s.ecs.SideOf(id) != component.SideEnemy {
			continue
		}
		x, y, ok := s.ecs.WorldPosition(id)
		if !ok || utils.Distance(px, py, x, y) <= config.EnemyCullDistance {
			continue
		}
		archetype := s.ecs.Roots[id].Archetype
		s.ecs.DespawnRecursive(id)
		if s.stats.EnemiesAlive > 0 {
			s.stats.EnemiesAlive--
		}
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyCulled,
			Data: event.EnemyData{Archetype: archetype.String(), X: x, Y: y},
		})
	}
}
