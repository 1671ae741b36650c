// internal/system/movement.go
package system

import (
	"math"

	"go-absorb/internal/config"
	"go-absorb/internal/entity"
	"go-absorb/internal/utils"
)

// MovementSystem двигает свободные объекты и снаряды.
// Все скорости заданы в единицах в секунду и умножаются на deltaTime.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	// Затухание 0.99 за тик при 60 Гц, пересчитанное на фактический шаг.
	damping := math.Pow(config.VelocityDamping, deltaTime*config.TickRate)

	for id := range s.ecs.FreeObjects {
		if _, hasParent := s.ecs.Parents[id]; hasParent {
			continue
		}
		pos, hasPos := s.ecs.Transforms[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}
		pos.X += vel.X * deltaTime
		pos.Y += vel.Y * deltaTime
		pos.Rotation += vel.Angular * deltaTime

		vel.X *= damping
		vel.Y *= damping
		vel.Angular *= damping
	}

	// Снаряды летят без затухания
	for id := range s.ecs.Projectiles {
		pos, hasPos := s.ecs.Transforms[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}
		pos.X += vel.X * deltaTime
		pos.Y += vel.Y * deltaTime
	}

	s.cullFarObjects()
}

// cullFarObjects удаляет свободные объекты, улетевшие далеко от игрока.
func (s *MovementSystem) cullFarObjects() {
	_, px, py, ok := playerPosition(s.ecs)
	if !ok {
		return
	}
	for _, id := range entity.SortedIDs(s.ecs.FreeObjects) {
		pos, hasPos := s.ecs.Transforms[id]
		if !hasPos {
			continue
		}
		if utils.Distance(px, py, pos.X, pos.Y) > config.ObjectCullDistance {
			s.ecs.DespawnRecursive(id)
		}
	}
}
