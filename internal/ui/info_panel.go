// internal/ui/info_panel.go
package ui

import (
	"image/color"

	"go-absorb/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelPadding = 16
	lineHeight   = 20
)

// InfoPanel — панель с несколькими строками текста по центру экрана:
// меню, пауза, итог партии.
type InfoPanel struct {
	fontFace   font.Face
	Background color.RGBA
	TextColor  color.RGBA
}

// NewInfoPanel создает новую панель.
func NewInfoPanel(fontFace font.Face, background, textColor color.RGBA) *InfoPanel {
	return &InfoPanel{fontFace: fontFace, Background: background, TextColor: textColor}
}

// Draw рисует панель со строками lines. Первая строка — заголовок акцентного цвета.
func (p *InfoPanel) Draw(screen *ebiten.Image, lines []string, accent color.RGBA) {
	if len(lines) == 0 {
		return
	}
	width := 0
	for _, line := range lines {
		if w := text.BoundString(p.fontFace, line).Dx(); w > width {
			width = w
		}
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	panelW := width + 2*panelPadding
	panelH := len(lines)*lineHeight + 2*panelPadding
	x := (sw - panelW) / 2
	y := (sh - panelH) / 2

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(panelW), float32(panelH), p.Background, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(panelW), float32(panelH), 2, render.LightenColor(p.Background), false)

	for i, line := range lines {
		clr := p.TextColor
		if i == 0 {
			clr = accent
		}
		lw := text.BoundString(p.fontFace, line).Dx()
		text.Draw(screen, line, p.fontFace, (sw-lw)/2, y+panelPadding+(i+1)*lineHeight-6, clr)
	}
}
