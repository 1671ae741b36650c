// internal/state/end_state.go
package state

import (
	"fmt"

	game "go-absorb/internal/app"
	"go-absorb/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EndState показывает итог партии. Пробел начинает новую.
type EndState struct {
	sm   *StateMachine
	game *game.Game
	hud  *ui.HUD
}

func NewEndState(sm *StateMachine, g *game.Game, hud *ui.HUD) *EndState {
	return &EndState{sm: sm, game: g, hud: hud}
}

func (e *EndState) Enter() {}

func (e *EndState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		e.sm.SetState(NewGameState(e.sm, e.game, e.hud))
	}
}

func (e *EndState) Draw(screen *ebiten.Image) {
	e.game.Draw(screen)
	e.hud.DrawPanel(screen,
		"GAME OVER",
		fmt.Sprintf("Score: %d", e.game.Stats.Score),
		fmt.Sprintf("Kills: %d", e.game.Stats.Kills),
		fmt.Sprintf("Survived: %.0fs", e.game.GetGameTime()),
		"Press SPACE to play again",
	)
}

func (e *EndState) Exit() {}
