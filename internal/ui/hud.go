// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-absorb/internal/component"
	"go-absorb/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUD собирает виджеты, которые видны во время партии.
type HUD struct {
	fontFace font.Face
	Health   *PlayerHealthIndicator
	Kills    *KillIndicator
	Panel    *InfoPanel
}

// NewHUD создаёт HUD со встроенным моноширинным шрифтом.
func NewHUD() *HUD {
	face := basicfont.Face7x13
	return &HUD{
		fontFace: face,
		Health:   NewPlayerHealthIndicator(20, 20, config.AccentColor),
		Kills:    NewKillIndicator(config.ScreenWidth-120, 32, face, config.ForegroundColor, config.BackgroundColor),
		Panel:    NewInfoPanel(face, config.BackgroundMedium, config.ForegroundColor),
	}
}

// MaxHealth — здоровье полностью целого тела данного размера.
func MaxHealth(baseHealth, size int) int {
	if size < 1 {
		size = 1
	}
	return baseHealth + (size-1)*config.HealthPerPart
}

// Draw рисует здоровье, счёт и число убийств.
func (h *HUD) Draw(screen *ebiten.Image, stats component.WorldStats, health, maxHealth, size int) {
	h.Health.Draw(screen, health, maxHealth)
	line := fmt.Sprintf("HP %d/%d  SIZE %d  SCORE %d", health, maxHealth, size, stats.Score)
	text.Draw(screen, line, h.fontFace, 20, 52, config.ForegroundColor)
	h.Kills.Draw(screen, stats.Kills)
}

// DrawPanel рисует панель с текстом по центру экрана.
func (h *HUD) DrawPanel(screen *ebiten.Image, lines ...string) {
	h.Panel.Draw(screen, lines, config.AccentColor)
}
