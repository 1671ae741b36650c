// internal/system/forcefield.go
package system

import (
	"go-absorb/internal/component"
	"go-absorb/internal/entity"
)

// ForcefieldSystem восстанавливает погасшие поля по истечении перезарядки.
type ForcefieldSystem struct {
	ecs *entity.ECS
}

func NewForcefieldSystem(ecs *entity.ECS) *ForcefieldSystem {
	return &ForcefieldSystem{ecs: ecs}
}

func (s *ForcefieldSystem) Update(deltaTime float64) {
	for _, weapon := range s.ecs.Weapons {
		shield, ok := weapon.(*component.Shield)
		if !ok {
			continue
		}
		field, ok := s.ecs.Forcefields[shield.Forcefield]
		if !ok || field.Active {
			continue
		}
		shield.CooldownTimer -= deltaTime
		if shield.CooldownTimer > 0 {
			continue
		}
		// Поле возвращается с полной прочностью
		shield.CooldownTimer = 0
		shield.Health = shield.MaxHealth
		field.Active = true
	}
}
