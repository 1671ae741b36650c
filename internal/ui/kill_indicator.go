// internal/ui/kill_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// KillIndicator отображает число убитых врагов римскими цифрами.
type KillIndicator struct {
	X, Y         int
	Color        color.Color
	OutlineColor color.Color
	fontFace     font.Face
}

// NewKillIndicator создает новый индикатор убийств.
func NewKillIndicator(x, y int, fontFace font.Face, clr, outline color.Color) *KillIndicator {
	return &KillIndicator{
		X:            x,
		Y:            y,
		Color:        clr,
		OutlineColor: outline,
		fontFace:     fontFace,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			num -= val[i]
			roman.WriteString(syb[i])
		}
	}
	return roman.String()
}

// Draw рисует индикатор с обводкой в один пиксель.
func (ki *KillIndicator) Draw(screen *ebiten.Image, kills int) {
	label := toRoman(kills)
	if label == "" {
		return
	}
	for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		text.Draw(screen, label, ki.fontFace, ki.X+d[0], ki.Y+d[1], ki.OutlineColor)
	}
	text.Draw(screen, label, ki.fontFace, ki.X, ki.Y, ki.Color)
}
