// internal/assets/sprite_manager.go
package assets

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"go-absorb/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// SpriteManager управляет загрузкой и кэшированием спрайтов.
// Если в каталоге нет PNG для спрайта, он рисуется из встроенного шаблона.
type SpriteManager struct {
	dir     string
	sprites map[string]*ebiten.Image
}

// NewSpriteManager создает новый экземпляр SpriteManager. Пустой dir
// отключает загрузку с диска.
func NewSpriteManager(dir string) *SpriteManager {
	return &SpriteManager{
		dir:     dir,
		sprites: make(map[string]*ebiten.Image),
	}
}

// Sprite возвращает изображение по символическому имени. Неизвестное имя
// даёт nil, и такая часть не рисуется.
func (m *SpriteManager) Sprite(name string) *ebiten.Image {
	if img, ok := m.sprites[name]; ok {
		return img
	}
	img := m.load(name)
	m.sprites[name] = img
	return img
}

func (m *SpriteManager) load(name string) *ebiten.Image {
	if m.dir != "" {
		path := filepath.Join(m.dir, fmt.Sprintf("%s.png", name))
		if _, err := os.Stat(path); err == nil {
			img, _, err := ebitenutil.NewImageFromFile(path)
			if err == nil {
				log.Printf("Loaded sprite %s from %s", name, path)
				return img
			}
			log.Printf("WARNING: Failed to load sprite %s from %s: %v", name, path, err)
		}
	}
	pixels, ok := Pixels(name)
	if !ok {
		log.Printf("WARNING: No sprite named %q", name)
		return nil
	}
	return ebiten.NewImageFromImage(pixels)
}

// Шаблоны 8×8: '.' прозрачный, '#' основной цвет, 'o' полутон, '+' акцент.
var patterns = map[string][config.SpriteSize]string{
	config.SpriteDebris: {
		"........",
		"..oo#...",
		".o####o.",
		".#####o.",
		".o####..",
		"..o##o..",
		"...oo...",
		"........",
	},
	config.SpritePlayer: {
		"..####..",
		".#++++#.",
		"#++##++#",
		"#+####+#",
		"#+####+#",
		"#++##++#",
		".#++++#.",
		"..####..",
	},
	config.SpriteZapper: {
		"...++...",
		"...++...",
		"..####..",
		".#o##o#.",
		".##++##.",
		".#o##o#.",
		"..####..",
		"........",
	},
	config.SpriteCannon: {
		"...##...",
		"...##...",
		"..#oo#..",
		".######.",
		".#o++o#.",
		".######.",
		"..#..#..",
		"........",
	},
	config.SpriteShield: {
		".######.",
		"#oooooo#",
		"#o####o#",
		"#o#++#o#",
		"#o#++#o#",
		"#o####o#",
		"#oooooo#",
		".######.",
	},
	config.SpriteForcefield: {
		"..o##o..",
		".o....o.",
		"o......o",
		"#......#",
		"#......#",
		"o......o",
		".o....o.",
		"..o##o..",
	},
}

// Pixels строит изображение спрайта по шаблону.
func Pixels(name string) (*image.RGBA, bool) {
	rows, ok := patterns[name]
	if !ok {
		return nil, false
	}
	img := image.NewRGBA(image.Rect(0, 0, config.SpriteSize, config.SpriteSize))
	for y, row := range rows {
		for x := 0; x < len(row) && x < config.SpriteSize; x++ {
			if c, opaque := paletteColor(row[x]); opaque {
				img.SetRGBA(x, y, c)
			}
		}
	}
	return img, true
}

func paletteColor(b byte) (color.RGBA, bool) {
	switch b {
	case '#':
		return config.ForegroundColor, true
	case 'o':
		return config.BackgroundLight, true
	case '+':
		return config.AccentColor, true
	default:
		return color.RGBA{}, false
	}
}
