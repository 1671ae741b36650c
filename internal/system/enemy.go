// internal/system/enemy.go
package system

import (
	"fmt"
	"math"

	"go-absorb/internal/component"
	"go-absorb/internal/config"
	"go-absorb/internal/defs"
	"go-absorb/internal/entity"
	"go-absorb/internal/types"
	"go-absorb/internal/utils"
)

// gridOffsets — ячейки сетки 3×3 с шагом PartSpacing.
var gridOffsets = [3]float64{-config.PartSpacing, 0, config.PartSpacing}

// SpawnEnemy собирает тело врага выбранного архетипа с корнем в (x, y).
func SpawnEnemy(ecs *entity.ECS, lib *defs.Library, rng *utils.PRNGService, archetype component.Archetype, x, y float64) (types.EntityID, error) {
	def, ok := lib.Archetype(archetype)
	if !ok {
		return 0, fmt.Errorf("no definition for archetype %s", archetype)
	}

	root := spawnRoot(ecs, x, y, archetype, def.Body)
	switch archetype {
	case component.ArchetypeShieldBearer:
		buildShieldBearer(ecs, lib, rng, root)
	case component.ArchetypeZapper:
		buildGrid(ecs, rng, root, func(col, row int) types.EntityID {
			// Средний столбец, кроме центра
			if col == 1 && row != 1 {
				return SpawnZapperPart(ecs, lib, gridOffsets[col], gridOffsets[row], 0)
			}
			return 0
		})
	case component.ArchetypeCannon:
		buildGrid(ecs, rng, root, func(col, row int) types.EntityID {
			if col == 1 && row == 1 {
				return SpawnCannonPart(ecs, lib, 0, 0, 0)
			}
			return 0
		})
	default:
		ecs.DespawnRecursive(root)
		return 0, fmt.Errorf("archetype %s is not an enemy", archetype)
	}

	speed := def.Speed
	if speed <= 0 {
		speed = config.EnemySpeed
	}
	ecs.Chasers[root] = &component.Chaser{Speed: speed}
	ecs.SetSide(root, component.SideEnemy)
	return root, nil
}

// buildShieldBearer: четыре обломка-руки по бокам и два щита.
func buildShieldBearer(ecs *entity.ECS, lib *defs.Library, rng *utils.PRNGService, root types.EntityID) {
	for _, x := range []float64{-2 * config.PartSpacing, -config.PartSpacing, config.PartSpacing, 2 * config.PartSpacing} {
		attachAt(ecs, root, SpawnDebris(ecs, x, 0, rng.Range(0, 2*math.Pi)))
	}
	attachAt(ecs, root, SpawnShieldPart(ecs, 2*config.PartSpacing, config.PartSpacing, 0, lib.Shield))
	attachAt(ecs, root, SpawnShieldPart(ecs, -2*config.PartSpacing, -config.PartSpacing, 0, lib.Shield))
}

// buildGrid заполняет сетку 3×3: special возвращает особую часть для
// ячейки или 0, и тогда в ячейку ставится обломок.
func buildGrid(ecs *entity.ECS, rng *utils.PRNGService, root types.EntityID, special func(col, row int) types.EntityID) {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			part := special(col, row)
			if part == 0 {
				part = SpawnDebris(ecs, gridOffsets[col], gridOffsets[row], rng.Range(0, 2*math.Pi))
			}
			attachAt(ecs, root, part)
		}
	}
}

// lootParts возвращает, что выпадает из врага: часть по роли архетипа
// и два обломка.
func lootParts(ecs *entity.ECS, lib *defs.Library, archetype component.Archetype, x, y float64) (role types.EntityID, debris [2]types.EntityID) {
	switch archetype {
	case component.ArchetypeShieldBearer:
		role = SpawnShieldPart(ecs, x, y, 0, lib.LootShield)
	case component.ArchetypeZapper:
		role = SpawnZapperPart(ecs, lib, x, y, 0)
	case component.ArchetypeCannon:
		role = SpawnCannonPart(ecs, lib, x, y, 0)
	}
	debris[0] = SpawnDebris(ecs, x, y, 0)
	debris[1] = SpawnDebris(ecs, x, y, 0)
	return role, debris
}
