// internal/state/game_state.go
package state

import (
	game "go-absorb/internal/app"
	"go-absorb/internal/component"
	"go-absorb/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние игры
type GameState struct {
	sm   *StateMachine
	game *game.Game
	hud  *ui.HUD
}

func NewGameState(sm *StateMachine, g *game.Game, hud *ui.HUD) *GameState {
	return &GameState{sm: sm, game: g, hud: hud}
}

// Enter начинает новую партию, если предыдущая не была на паузе.
func (g *GameState) Enter() {
	switch g.game.Phase() {
	case component.PhasePaused:
		g.game.SetPhase(component.PhaseInGame)
	case component.PhaseInGame:
	default:
		g.game.Start()
	}
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.game.Update(deltaTime)

	if g.game.Phase() == component.PhaseEnd {
		g.sm.SetState(NewEndState(g.sm, g.game, g.hud))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.game.Draw(screen)
	health := g.game.PlayerHealth()
	size := g.game.PlayerSize()
	g.hud.Draw(screen, g.game.Stats, health, ui.MaxHealth(g.game.Defs.Player.Health, size), size)
}

func (g *GameState) Exit() {}

// GetGame возвращает игровую логику.
func (g *GameState) GetGame() *game.Game {
	return g.game
}
