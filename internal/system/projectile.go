// internal/system/projectile.go
package system

import (
	"go-absorb/internal/component"
	"go-absorb/internal/config"
	"go-absorb/internal/entity"
	"go-absorb/internal/event"
	"go-absorb/internal/types"
	"go-absorb/internal/utils"
)

// ProjectileSystem разрешает столкновения снарядов: сначала с силовыми
// полями, затем с корнями тел противника.
type ProjectileSystem struct {
	ecs             *entity.ECS
	queues          *event.Queues
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, queues *event.Queues, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, queues: queues, eventDispatcher: eventDispatcher}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	_, px, py, hasPlayer := playerPosition(s.ecs)

	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		proj := s.ecs.Projectiles[id]
		pos, hasPos := s.ecs.Transforms[id]
		if !hasPos {
			s.ecs.Despawn(id)
			continue
		}

		// Не более одного столкновения за тик
		if s.hitForcefield(proj, pos.X, pos.Y) || s.hitBody(proj, pos.X, pos.Y) {
			s.ecs.Despawn(id)
			continue
		}

		if hasPlayer && utils.Distance(px, py, pos.X, pos.Y) > config.ProjectileCullDistance {
			s.ecs.Despawn(id)
		}
	}
}

// hitForcefield ищет активное поле противника в радиусе поглощения.
func (s *ProjectileSystem) hitForcefield(proj *component.Projectile, x, y float64) bool {
	for _, fieldID := range entity.SortedIDs(s.ecs.Forcefields) {
		field := s.ecs.Forcefields[fieldID]
		if !field.Active || !proj.Side.Opposes(s.ecs.SideOf(fieldID)) {
			continue
		}
		fx, fy, ok := s.ecs.WorldPosition(fieldID)
		if !ok || utils.Distance(x, y, fx, fy) >= config.ForcefieldRadius {
			continue
		}

		if shield := s.shieldOf(fieldID); shield != nil {
			if shield.Absorb(proj.Damage) {
				field.Active = false
				shield.CooldownTimer = shield.Cooldown
			}
		}
		s.eventDispatcher.PlaySound(event.SoundHit)
		return true
	}
	return false
}

// shieldOf возвращает щит, которому принадлежит поле.
func (s *ProjectileSystem) shieldOf(fieldID types.EntityID) *component.Shield {
	parent, ok := s.ecs.ParentOf(fieldID)
	if !ok {
		return nil
	}
	shield, _ := s.ecs.Weapons[parent].(*component.Shield)
	return shield
}

// hitBody ищет корень противника в радиусе попадания. Части тела
// снаряд не задевают: урон получает только корень.
func (s *ProjectileSystem) hitBody(proj *component.Projectile, x, y float64) bool {
	for _, root := range entity.SortedIDs(s.ecs.Roots) {
		if !proj.Side.Opposes(s.ecs.SideOf(root)) {
			continue
		}
		bx, by, ok := s.ecs.WorldPosition(root)
		if !ok || utils.Distance(x, y, bx, by) >= config.ProjectileHitRadius {
			continue
		}
		s.queues.PushHit(root, proj.Damage)
		return true
	}
	return false
}
