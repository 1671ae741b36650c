// internal/system/render.go
package system

import (
	"math"
	"sort"

	"go-absorb/internal/config"
	"go-absorb/internal/entity"
	"go-absorb/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpriteProvider сопоставляет символическому имени спрайта изображение.
type SpriteProvider interface {
	Sprite(name string) *ebiten.Image
}

// RenderSystem рисует сущности
type RenderSystem struct {
	ecs     *entity.ECS
	sprites SpriteProvider
}

func NewRenderSystem(ecs *entity.ECS, sprites SpriteProvider) *RenderSystem {
	return &RenderSystem{ecs: ecs, sprites: sprites}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, camera *Camera) {
	screen.Fill(config.BackgroundColor)
	s.drawStars(screen, camera)

	ids := entity.SortedIDs(s.ecs.Renderables)
	sort.SliceStable(ids, func(i, j int) bool {
		return s.ecs.Renderables[ids[i]].Z < s.ecs.Renderables[ids[j]].Z
	})

	for _, id := range ids {
		render := s.ecs.Renderables[id]
		if field, isField := s.ecs.Forcefields[id]; isField && !field.Active {
			continue
		}
		world, ok := s.ecs.WorldTransform(id)
		if !ok {
			continue
		}
		sx, sy := camera.WorldToScreen(world.X, world.Y)

		if render.Sprite == "" {
			size := float32(float64(render.Size) * camera.Zoom)
			vector.DrawFilledRect(screen, float32(sx)-size/2, float32(sy)-size/2, size, size, render.Color, false)
			continue
		}

		img := s.sprites.Sprite(render.Sprite)
		if img == nil {
			continue
		}
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		scale := world.Scale * camera.Zoom * config.SpriteSize / float64(w)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Rotate(world.Rotation)
		op.GeoM.Translate(sx, sy)
		if s.flashing(id) {
			op.ColorScale.ScaleWithColor(config.DamageFlashColor)
		}
		screen.DrawImage(img, op)
	}
}

// flashing — попало ли недавно в тело, которому принадлежит часть.
func (s *RenderSystem) flashing(id types.EntityID) bool {
	root, ok := s.ecs.RootOf(id)
	if !ok {
		return false
	}
	_, ok = s.ecs.DamageFlashes[root]
	return ok
}

// drawStars рисует неподвижный звёздный фон: по одной звезде в ячейке
// сетки, положение внутри ячейки берётся из хеша её координат.
func (s *RenderSystem) drawStars(screen *ebiten.Image, camera *Camera) {
	const cell = 40.0
	hx, hy := camera.HalfExtents()
	x0 := math.Floor((camera.X-hx)/cell) * cell
	y0 := math.Floor((camera.Y-hy)/cell) * cell
	for x := x0; x < camera.X+hx+cell; x += cell {
		for y := y0; y < camera.Y+hy+cell; y += cell {
			h := starHash(int64(x/cell), int64(y/cell))
			ox := float64(h&0xff) / 255 * cell
			oy := float64((h>>8)&0xff) / 255 * cell
			sx, sy := camera.WorldToScreen(x+ox, y+oy)
			vector.DrawFilledRect(screen, float32(sx), float32(sy), 2, 2, config.StarColor, false)
		}
	}
}

func starHash(x, y int64) uint64 {
	h := uint64(x)*0x9E3779B97F4A7C15 ^ uint64(y)*0xC2B2AE3D27D4EB4F
	h ^= h >> 29
	h *= 0xBF58476D1CE4E5B9
	h ^= h >> 32
	return h
}
