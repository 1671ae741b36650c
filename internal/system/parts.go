// internal/system/parts.go
package system

import (
	"go-absorb/internal/component"
	"go-absorb/internal/config"
	"go-absorb/internal/defs"
	"go-absorb/internal/entity"
	"go-absorb/internal/nodes"
	"go-absorb/internal/types"
)

// Конструкторы полезной нагрузки по определениям.

func NewZapper(def defs.TurretDefinition) *component.Zapper {
	return &component.Zapper{Damage: def.Damage, FireRate: def.FireRate, Range: def.Range}
}

func NewCannon(def defs.TurretDefinition) *component.Cannon {
	return &component.Cannon{Damage: def.Damage, FireRate: def.FireRate, Range: def.Range}
}

func NewShield(def defs.ShieldDefinition) component.Shield {
	return component.Shield{Health: def.Health, MaxHealth: def.Health, Cooldown: def.Cooldown}
}

// SpawnDebris создаёт простую часть-обломок.
func SpawnDebris(ecs *entity.ECS, x, y, rotation float64) types.EntityID {
	return nodes.SpawnNode(ecs, x, y, rotation, config.SpriteDebris)
}

func SpawnZapperPart(ecs *entity.ECS, lib *defs.Library, x, y, rotation float64) types.EntityID {
	return nodes.SpawnWeaponNode(ecs, x, y, rotation, config.SpriteZapper, NewZapper(lib.Zapper))
}

func SpawnCannonPart(ecs *entity.ECS, lib *defs.Library, x, y, rotation float64) types.EntityID {
	return nodes.SpawnWeaponNode(ecs, x, y, rotation, config.SpriteCannon, NewCannon(lib.Cannon))
}

func SpawnShieldPart(ecs *entity.ECS, x, y, rotation float64, def defs.ShieldDefinition) types.EntityID {
	return nodes.SpawnShieldNode(ecs, x, y, rotation, config.SpriteShield, config.SpriteForcefield, NewShield(def))
}

// spawnRoot создаёт корень тела со статами. Корень не рисуется:
// внешний вид тела складывается из его частей.
func spawnRoot(ecs *entity.ECS, x, y float64, archetype component.Archetype, body defs.BodyDefinition) types.EntityID {
	id := ecs.NewEntity()
	ecs.Transforms[id] = component.NewTransform(x, y, 0)
	ecs.Roots[id] = &component.Root{Archetype: archetype}
	ecs.Stats[id] = &component.Stats{Size: body.Size, Health: body.Health}
	ecs.Colliders[id] = &component.Collider{}
	return id
}

// attachAt подвешивает готовую часть к корню как коллайдер.
func attachAt(ecs *entity.ECS, root, part types.EntityID) {
	ecs.Colliders[part] = &component.Collider{}
	ecs.AddChild(root, part)
}
