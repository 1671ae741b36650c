// Package nodes собирает части тел: трансформ, спрайт и, при необходимости,
// полезную нагрузку. Фабрика ничего не знает о правилах игры.
package nodes

import (
	"math"

	"go-absorb/internal/component"
	"go-absorb/internal/entity"
	"go-absorb/internal/types"
)

// Параметры силового поля относительно щита.
const (
	ForcefieldRotation = math.Pi / 4
	ForcefieldScale    = 1.5
	forcefieldZ        = 2
)

// SpawnNode создаёт часть без родителя.
func SpawnNode(ecs *entity.ECS, x, y, rotation float64, sprite string) types.EntityID {
	id := ecs.NewEntity()
	ecs.Transforms[id] = component.NewTransform(x, y, rotation)
	ecs.Renderables[id] = &component.Renderable{Sprite: sprite, Z: 1}
	return id
}

// SpawnWeaponNode — то же, что SpawnNode, плюс оружие.
func SpawnWeaponNode(ecs *entity.ECS, x, y, rotation float64, sprite string, weapon component.Weapon) types.EntityID {
	id := SpawnNode(ecs, x, y, rotation, sprite)
	ecs.Weapons[id] = weapon
	return id
}

// SpawnShieldNode создаёт щит и подвешивает к нему активное силовое поле.
func SpawnShieldNode(ecs *entity.ECS, x, y, rotation float64, sprite, forcefieldSprite string, shield component.Shield) types.EntityID {
	id := SpawnNode(ecs, x, y, rotation, sprite)

	field := ecs.NewEntity()
	ecs.Transforms[field] = &component.Transform{Rotation: ForcefieldRotation, Scale: ForcefieldScale}
	ecs.Renderables[field] = &component.Renderable{Sprite: forcefieldSprite, Z: forcefieldZ}
	ecs.Forcefields[field] = &component.Forcefield{Active: true}
	ecs.AddChild(id, field)

	shield.Forcefield = field
	ecs.Weapons[id] = &shield
	return id
}
