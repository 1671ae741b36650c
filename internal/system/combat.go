// internal/system/combat.go
package system

import (
	"math"

	"go-absorb/internal/component"
	"go-absorb/internal/config"
	"go-absorb/internal/entity"
	"go-absorb/internal/event"
	"go-absorb/internal/types"
	"go-absorb/internal/utils"
)

// TurretSystem управляет перезарядкой и стрельбой зепперов и пушек.
type TurretSystem struct {
	ecs             *entity.ECS
	queues          *event.Queues
	eventDispatcher *event.Dispatcher
}

func NewTurretSystem(ecs *entity.ECS, queues *event.Queues, eventDispatcher *event.Dispatcher) *TurretSystem {
	return &TurretSystem{ecs: ecs, queues: queues, eventDispatcher: eventDispatcher}
}

// target — цель, найденная при сканировании.
type target struct {
	root types.EntityID
	x, y float64
}

func (s *TurretSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Weapons) {
		switch w := s.ecs.Weapons[id].(type) {
		case *component.Zapper:
			if !cooldownReady(&w.CooldownTimer, deltaTime) {
				continue
			}
			if t, x, y, ok := s.acquire(id, w.Range); ok {
				w.CooldownTimer = w.FireRate
				s.fireZapper(x, y, t, w.Damage)
			}
		case *component.Cannon:
			if !cooldownReady(&w.CooldownTimer, deltaTime) {
				continue
			}
			if t, x, y, ok := s.acquire(id, w.Range); ok {
				w.CooldownTimer = w.FireRate
				s.fireCannon(id, x, y, t, w.Damage)
			}
		}
		// Щиты не стреляют
	}
}

// cooldownReady уменьшает таймер и сообщает, готова ли турель к выстрелу.
func cooldownReady(timer *float64, deltaTime float64) bool {
	if *timer > 0 {
		*timer -= deltaTime
	}
	return *timer <= 0
}

// acquire ищет первую цель в радиусе. Кандидаты — части вражеской стороны,
// подвешенные к корню; перебор идёт по возрастанию ID, без сортировки по
// расстоянию.
func (s *TurretSystem) acquire(turretID types.EntityID, rangeRadius float64) (target, float64, float64, bool) {
	side := s.ecs.SideOf(turretID)
	x, y, ok := s.ecs.WorldPosition(turretID)
	if !ok {
		return target{}, 0, 0, false
	}
	for _, id := range entity.SortedIDs(s.ecs.Parents) {
		root, ok := isBodyPart(s.ecs, id)
		if !ok || !side.Opposes(s.ecs.SideOf(id)) {
			continue
		}
		tx, ty, ok := s.ecs.WorldPosition(id)
		if !ok {
			continue
		}
		if utils.Distance(x, y, tx, ty) < rangeRadius {
			return target{root: root, x: tx, y: ty}, x, y, true
		}
	}
	return target{}, 0, 0, false
}

// fireZapper наносит мгновенный урон и рисует трассер вдоль луча.
func (s *TurretSystem) fireZapper(x, y float64, t target, damage int) {
	s.queues.PushHit(t.root, damage)

	dist := utils.Distance(x, y, t.x, t.y)
	segments := int(math.Ceil(dist))
	for i := 0; i <= segments; i++ {
		k := 0.0
		if segments > 0 {
			k = float64(i) / float64(segments)
		}
		id := s.ecs.NewEntity()
		s.ecs.Transforms[id] = component.NewTransform(utils.Lerp(x, t.x, k), utils.Lerp(y, t.y, k), 0)
		s.ecs.Renderables[id] = &component.Renderable{
			Color: config.ZapColor,
			Size:  config.ZapSegmentSize,
			Z:     3,
		}
		s.ecs.ZapEffects[id] = &component.ZapEffect{Timer: config.ZapLifetime}
	}
	s.eventDispatcher.PlaySound(event.SoundZap)
}

// fireCannon выпускает снаряд в сторону цели. Урон наносится позже,
// при столкновении.
func (s *TurretSystem) fireCannon(turretID types.EntityID, x, y float64, t target, damage int) {
	side := s.ecs.SideOf(turretID)
	dx, dy := utils.Normalize(t.x-x, t.y-y)

	projColor := config.PlayerShotColor
	if side == component.SideEnemy {
		projColor = config.EnemyShotColor
	}

	projID := s.ecs.NewEntity()
	s.ecs.Transforms[projID] = component.NewTransform(x, y, math.Atan2(dy, dx))
	s.ecs.Velocities[projID] = &component.Velocity{X: dx * config.ProjectileSpeed, Y: dy * config.ProjectileSpeed}
	s.ecs.Projectiles[projID] = &component.Projectile{Damage: damage, Side: side}
	s.ecs.Renderables[projID] = &component.Renderable{
		Color: projColor,
		Size:  config.ProjectileSize,
		Z:     3,
	}
	s.eventDispatcher.PlaySound(event.SoundCannon)
}
