// internal/system/damage.go
package system

import (
	"go-absorb/internal/entity"
	"go-absorb/internal/event"
)

// DamageSystem применяет накопленные за тик попадания к корням тел.
type DamageSystem struct {
	ecs             *entity.ECS
	queues          *event.Queues
	eventDispatcher *event.Dispatcher
}

func NewDamageSystem(ecs *entity.ECS, queues *event.Queues, eventDispatcher *event.Dispatcher) *DamageSystem {
	return &DamageSystem{ecs: ecs, queues: queues, eventDispatcher: eventDispatcher}
}

func (s *DamageSystem) Update(deltaTime float64) {
	hits := s.queues.DrainHits()
	if len(hits) == 0 {
		return
	}
	landed := false
	for _, hit := range hits {
		// Цель могла погибнуть раньше в этом же тике
		if ApplyDamage(s.ecs, hit.Target, hit.Damage) {
			landed = true
			s.eventDispatcher.Dispatch(event.Event{Type: event.HitApplied, Data: hit})
		}
	}
	if landed {
		s.eventDispatcher.PlaySound(event.SoundHit)
	}
}
