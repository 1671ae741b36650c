// internal/defs/enemies.go
package defs

import "go-absorb/internal/component"

// ArchetypeDefinition holds the static data for one enemy template.
type ArchetypeDefinition struct {
	ID     string         `yaml:"id"`
	Body   BodyDefinition `yaml:"body"`
	Weight int            `yaml:"weight"` // Относительный шанс появления
	Speed  float64        `yaml:"speed"`  // Скорость преследования
}

// archetypeIDs сопоставляет идентификаторы в YAML с архетипами тел.
var archetypeIDs = map[string]component.Archetype{
	"shieldy": component.ArchetypeShieldBearer,
	"zappy":   component.ArchetypeZapper,
	"boomy":   component.ArchetypeCannon,
}

// Archetype возвращает архетип тела для определения.
func (d ArchetypeDefinition) Archetype() (component.Archetype, bool) {
	a, ok := archetypeIDs[d.ID]
	return a, ok
}
