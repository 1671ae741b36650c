// internal/system/camera.go
package system

import (
	"math"

	"go-absorb/internal/config"
	"go-absorb/internal/entity"
	"go-absorb/internal/utils"
)

// Camera — центр обзора в мировых координатах и масштаб (пикселей на единицу).
type Camera struct {
	X, Y          float64
	Zoom          float64
	Width, Height float64 // Размер экрана в пикселях
}

func NewCamera(width, height float64) *Camera {
	return &Camera{Zoom: config.BaseZoom, Width: width, Height: height}
}

// WorldToScreen переводит мировые координаты в экранные.
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	return (x-c.X)*c.Zoom + c.Width/2, (y-c.Y)*c.Zoom + c.Height/2
}

// ScreenToWorld — обратное преобразование.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return (sx-c.Width/2)/c.Zoom + c.X, (sy-c.Height/2)/c.Zoom + c.Y
}

// HalfExtents — половина видимой области в мировых единицах.
func (c *Camera) HalfExtents() (float64, float64) {
	return c.Width / (2 * c.Zoom), c.Height / (2 * c.Zoom)
}

// frameLerp пересчитывает коэффициент сглаживания «за тик» на шаг deltaTime.
func frameLerp(factor, deltaTime float64) float64 {
	if factor >= 1 {
		return 1
	}
	return 1 - math.Pow(1-factor, deltaTime*config.TickRate)
}

// CameraSystem ведёт камеру за игроком и отдаляет её по мере роста тела.
type CameraSystem struct {
	ecs    *entity.ECS
	camera *Camera
}

func NewCameraSystem(ecs *entity.ECS, camera *Camera) *CameraSystem {
	return &CameraSystem{ecs: ecs, camera: camera}
}

func (s *CameraSystem) Update(deltaTime float64) {
	id, x, y, ok := playerPosition(s.ecs)
	if !ok {
		return
	}
	k := frameLerp(config.CameraLerp, deltaTime)
	s.camera.X = utils.Lerp(s.camera.X, x, k)
	s.camera.Y = utils.Lerp(s.camera.Y, y, k)

	target := config.BaseZoom
	if stats, ok := s.ecs.Stats[id]; ok {
		target = math.Max(config.MinZoom, config.BaseZoom-config.ZoomPerPart*float64(stats.Size))
	}
	s.camera.Zoom = utils.Lerp(s.camera.Zoom, target, frameLerp(config.ZoomLerp, deltaTime))
}

// Snap мгновенно центрирует камеру на игроке (начало партии).
func (s *CameraSystem) Snap() {
	if _, x, y, ok := playerPosition(s.ecs); ok {
		s.camera.X, s.camera.Y = x, y
	}
	s.camera.Zoom = config.BaseZoom
}
