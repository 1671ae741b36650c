// internal/state/menu_state.go
package state

import (
	game "go-absorb/internal/app"
	"go-absorb/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — стартовый экран
type MenuState struct {
	sm   *StateMachine
	game *game.Game
	hud  *ui.HUD
}

func NewMenuState(sm *StateMachine, g *game.Game, hud *ui.HUD) *MenuState {
	return &MenuState{sm: sm, game: g, hud: hud}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.game, m.hud))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.game.Draw(screen)
	m.hud.DrawPanel(screen,
		"ABSORB",
		"Move: WASD / arrows   Aim: mouse",
		"Touch loose parts to grow",
		"Press SPACE to start",
	)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
