// internal/system/state.go
package system

import (
	"go-absorb/internal/component"
	"go-absorb/internal/event"
	"go-absorb/internal/interfaces"
)

// StateSystem переводит игру в финальную фазу, когда погибает игрок.
type StateSystem struct {
	gameContext     interfaces.GameContext // Используем интерфейс из interfaces
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.PlayerDied, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type == event.PlayerDied {
		s.gameContext.SetPhase(component.PhaseEnd)
	}
}
