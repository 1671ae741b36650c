// internal/system/utils.go
package system

import (
	"go-absorb/internal/component"
	"go-absorb/internal/config"
	"go-absorb/internal/entity"
	"go-absorb/internal/types"
	"go-absorb/internal/utils"
)

// ApplyDamage наносит урон корню тела с насыщением на нуле.
// Возвращает false, если цели уже нет (промах не является ошибкой).
func ApplyDamage(ecs *entity.ECS, rootID types.EntityID, damage int) bool {
	if _, isRoot := ecs.Roots[rootID]; !isRoot {
		return false
	}
	stats, hasStats := ecs.Stats[rootID]
	if !hasStats {
		return false
	}

	if stats.Damage(damage) > 0 {
		// Добавляем или сбрасываем компонент "вспышки"
		ecs.DamageFlashes[rootID] = &component.DamageFlash{
			Timer:    config.DamageFlashDuration,
			Duration: config.DamageFlashDuration,
		}
	}
	return true
}

// isBodyPart — часть тела, чей родитель является корнем. Именно такие
// части турели рассматривают как цели.
func isBodyPart(ecs *entity.ECS, id types.EntityID) (types.EntityID, bool) {
	parent, ok := ecs.ParentOf(id)
	if !ok {
		return 0, false
	}
	if _, isRoot := ecs.Roots[parent]; !isRoot {
		return 0, false
	}
	return parent, true
}

// playerPosition возвращает мировую позицию корня игрока, если он есть.
func playerPosition(ecs *entity.ECS) (types.EntityID, float64, float64, bool) {
	id, ok := ecs.PlayerRoot()
	if !ok {
		return 0, 0, 0, false
	}
	x, y, ok := ecs.WorldPosition(id)
	return id, x, y, ok
}

// spawnFreeObject помечает готовую часть как свободный объект с заданной скоростью.
func spawnFreeObject(ecs *entity.ECS, id types.EntityID, vx, vy, angular float64) {
	ecs.FreeObjects[id] = &component.FreeObject{}
	ecs.Colliders[id] = &component.Collider{}
	ecs.Velocities[id] = &component.Velocity{X: vx, Y: vy, Angular: angular}
}

// outwardVelocity — случайная скорость разлёта для лута и обломков.
func outwardVelocity(rng *utils.PRNGService, speed, spin float64) (float64, float64, float64) {
	return rng.Symmetric(speed), rng.Symmetric(speed), rng.Symmetric(spin)
}
