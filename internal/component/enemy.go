package component

// Archetype — шаблон тела. Игрок тоже описывается архетипом,
// чтобы корень любого тела нёс одинаковый компонент.
type Archetype int

const (
	ArchetypePlayer Archetype = iota
	ArchetypeShieldBearer
	ArchetypeZapper
	ArchetypeCannon
)

// EnemyArchetypes — архетипы, которые может породить спавнер.
var EnemyArchetypes = []Archetype{ArchetypeShieldBearer, ArchetypeZapper, ArchetypeCannon}

func (a Archetype) String() string {
	switch a {
	case ArchetypePlayer:
		return "player"
	case ArchetypeShieldBearer:
		return "shieldy"
	case ArchetypeZapper:
		return "zappy"
	case ArchetypeCannon:
		return "boomy"
	default:
		return "unknown"
	}
}

// Chaser — враг преследует игрока, если тот рядом.
type Chaser struct {
	Speed float64
}
