// internal/defs/loader.go
package defs

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"

	"go-absorb/internal/component"

	"gopkg.in/yaml.v3"
)

//go:embed archetypes.yaml
var defaultDefinitions []byte

// Library — все статические определения игры.
type Library struct {
	Player     BodyDefinition        `yaml:"player"`
	Zapper     TurretDefinition      `yaml:"zapper"`
	Cannon     TurretDefinition      `yaml:"cannon"`
	Shield     ShieldDefinition      `yaml:"shield"`
	LootShield ShieldDefinition      `yaml:"loot_shield"`
	Archetypes []ArchetypeDefinition `yaml:"archetypes"`
}

// Default возвращает встроенные определения. Встроенный файл проверяется
// тестами, поэтому ошибка здесь означает сломанную сборку.
func Default() *Library {
	lib, err := Parse(defaultDefinitions)
	if err != nil {
		panic(fmt.Sprintf("defs: embedded definitions are invalid: %v", err))
	}
	return lib
}

// Load reads a definitions file. An empty path returns the embedded defaults.
func Load(path string) (*Library, error) {
	if path == "" {
		return Default(), nil
	}
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}
	lib, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load definitions from %s: %w", path, err)
	}
	log.Printf("Loaded %d archetype definitions from %s", len(lib.Archetypes), path)
	return lib, nil
}

// Parse разбирает YAML и проверяет определения.
func Parse(data []byte) (*Library, error) {
	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}
	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return &lib, nil
}

// Validate проверяет, что значения пригодны для симуляции.
func (l *Library) Validate() error {
	var errs []error
	if l.Player.Health <= 0 {
		errs = append(errs, errors.New("player: health must be positive"))
	}
	for name, t := range map[string]TurretDefinition{"zapper": l.Zapper, "cannon": l.Cannon} {
		if t.FireRate <= 0 || t.Range <= 0 || t.Damage < 0 {
			errs = append(errs, fmt.Errorf("%s: fire_rate and range must be positive, damage non-negative", name))
		}
	}
	for name, s := range map[string]ShieldDefinition{"shield": l.Shield, "loot_shield": l.LootShield} {
		if s.Health <= 0 || s.Cooldown < 0 {
			errs = append(errs, fmt.Errorf("%s: health must be positive, cooldown non-negative", name))
		}
	}
	if len(l.Archetypes) == 0 {
		errs = append(errs, errors.New("archetypes: at least one archetype is required"))
	}
	seen := make(map[string]bool)
	for _, def := range l.Archetypes {
		if _, ok := def.Archetype(); !ok {
			errs = append(errs, fmt.Errorf("archetype %q: unknown id", def.ID))
			continue
		}
		if seen[def.ID] {
			errs = append(errs, fmt.Errorf("archetype %q: duplicate", def.ID))
		}
		seen[def.ID] = true
		if def.Body.Health <= 0 || def.Weight < 0 {
			errs = append(errs, fmt.Errorf("archetype %q: health must be positive, weight non-negative", def.ID))
		}
	}
	return errors.Join(errs...)
}

// Archetype ищет определение по архетипу тела.
func (l *Library) Archetype(a component.Archetype) (ArchetypeDefinition, bool) {
	for _, def := range l.Archetypes {
		if got, ok := def.Archetype(); ok && got == a {
			return def, true
		}
	}
	return ArchetypeDefinition{}, false
}

// ArchetypeByID ищет определение по идентификатору.
func (l *Library) ArchetypeByID(id string) (ArchetypeDefinition, bool) {
	for _, def := range l.Archetypes {
		if def.ID == id {
			return def, true
		}
	}
	return ArchetypeDefinition{}, false
}
