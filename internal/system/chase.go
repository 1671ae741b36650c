// internal/system/chase.go
package system

import (
	"go-absorb/internal/config"
	"go-absorb/internal/entity"
	"go-absorb/internal/utils"
)

// ChaseSystem ведёт врагов к игроку, когда тот в зоне преследования.
type ChaseSystem struct {
	ecs *entity.ECS
}

func NewChaseSystem(ecs *entity.ECS) *ChaseSystem {
	return &ChaseSystem{ecs: ecs}
}

func (s *ChaseSystem) Update(deltaTime float64) {
	_, px, py, ok := playerPosition(s.ecs)
	if !ok {
		return
	}
	for id, chaser := range s.ecs.Chasers {
		pos, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		dist := utils.Distance(pos.X, pos.Y, px, py)
		if dist >= config.ChaseRange || dist <= config.ChaseMinDistance {
			continue
		}
		dx, dy := utils.Normalize(px-pos.X, py-pos.Y)
		step := chaser.Speed * deltaTime
		// Не проскакиваем мимо игрока
		if step > dist-config.ChaseMinDistance {
			step = dist - config.ChaseMinDistance
		}
		pos.X += dx * step
		pos.Y += dy * step
	}
}
