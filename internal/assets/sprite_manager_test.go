package assets

import (
	"testing"

	"go-absorb/internal/config"
)

func TestPixelsForEverySprite(t *testing.T) {
	names := []string{
		config.SpriteDebris,
		config.SpritePlayer,
		config.SpriteZapper,
		config.SpriteCannon,
		config.SpriteShield,
		config.SpriteForcefield,
	}
	for _, name := range names {
		img, ok := Pixels(name)
		if !ok {
			t.Errorf("no pattern for %q", name)
			continue
		}
		if b := img.Bounds(); b.Dx() != config.SpriteSize || b.Dy() != config.SpriteSize {
			t.Errorf("%s bounds = %v", name, b)
		}
		opaque := 0
		for y := 0; y < config.SpriteSize; y++ {
			for x := 0; x < config.SpriteSize; x++ {
				if img.RGBAAt(x, y).A != 0 {
					opaque++
				}
			}
		}
		if opaque == 0 {
			t.Errorf("%s is fully transparent", name)
		}
	}
}

func TestPixelsUnknownSprite(t *testing.T) {
	if _, ok := Pixels("nope"); ok {
		t.Error("unknown sprite produced pixels")
	}
}

func TestPatternRowWidths(t *testing.T) {
	for name, rows := range patterns {
		for i, row := range rows {
			if len(row) != config.SpriteSize {
				t.Errorf("%s row %d has width %d", name, i, len(row))
			}
		}
	}
}
