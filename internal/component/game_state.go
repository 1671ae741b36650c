package component

// Phase — глобальная фаза игры
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseInGame
	PhasePaused
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseInGame:
		return "in-game"
	case PhasePaused:
		return "paused"
	case PhaseEnd:
		return "end"
	default:
		return "unknown"
	}
}

// WorldStats — счётчики текущей партии.
type WorldStats struct {
	Score        int
	Kills        int
	EnemiesAlive int
}

// Reset обнуляет счётчики перед новой партией.
func (w *WorldStats) Reset() {
	*w = WorldStats{}
}
