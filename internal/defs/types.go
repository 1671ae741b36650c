// internal/defs/types.go
package defs

// BodyDefinition — стартовые агрегированные характеристики тела.
type BodyDefinition struct {
	Size   int `yaml:"size"`
	Health int `yaml:"health"`
}

// TurretDefinition describes a zapper or a cannon.
type TurretDefinition struct {
	Damage   int     `yaml:"damage"`
	FireRate float64 `yaml:"fire_rate"` // Seconds between shots
	Range    float64 `yaml:"range"`
}

// ShieldDefinition describes a shield and its forcefield.
type ShieldDefinition struct {
	Health   int     `yaml:"health"`
	Cooldown float64 `yaml:"cooldown"`
}
