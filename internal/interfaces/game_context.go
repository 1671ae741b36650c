// internal/interfaces/game_context.go
package interfaces

import "go-absorb/internal/component"

// GameContext — глобальная фаза игры, которую симуляция читает
// и меняет. Вынесено в интерфейс, чтобы системы не зависели от app.
type GameContext interface {
	Phase() component.Phase
	SetPhase(phase component.Phase)
}
