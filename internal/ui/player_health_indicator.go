// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"

	"go-absorb/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	HealthBarWidth  = 200.0
	HealthBarHeight = 12.0
	HealthBarStroke = 2.0
)

// PlayerHealthIndicator отображает здоровье игрока полосой.
type PlayerHealthIndicator struct {
	X, Y  float32
	Color color.RGBA
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32, clr color.RGBA) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, Color: clr}
}

// Fill возвращает долю заполнения полосы в [0, 1].
func Fill(health, maxHealth int) float32 {
	if maxHealth <= 0 || health <= 0 {
		return 0
	}
	if health >= maxHealth {
		return 1
	}
	return float32(health) / float32(maxHealth)
}

// Draw рисует полосу здоровья. Пустая часть полосы — затемнённый цвет.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	vector.StrokeRect(screen, i.X-HealthBarStroke, i.Y-HealthBarStroke,
		HealthBarWidth+2*HealthBarStroke, HealthBarHeight+2*HealthBarStroke, HealthBarStroke, i.Color, false)
	vector.DrawFilledRect(screen, i.X, i.Y, HealthBarWidth, HealthBarHeight, render.DarkenColor(i.Color), false)
	vector.DrawFilledRect(screen, i.X, i.Y, HealthBarWidth*Fill(health, maxHealth), HealthBarHeight, i.Color, false)
}
