// internal/system/player.go
package system

import (
	"math"

	"go-absorb/internal/component"
	"go-absorb/internal/config"
	"go-absorb/internal/defs"
	"go-absorb/internal/entity"
	"go-absorb/internal/nodes"
	"go-absorb/internal/types"
	"go-absorb/internal/utils"
)

// Input — источник управления игроком.
type Input interface {
	// Movement возвращает направление движения, компоненты в [-1, 1].
	Movement() (float64, float64)
	// Cursor возвращает положение указателя в экранных координатах.
	Cursor() (float64, float64)
}

// SpawnPlayer создаёт тело игрока: корень и одну часть-ядро в центре.
func SpawnPlayer(ecs *entity.ECS, lib *defs.Library, x, y float64) types.EntityID {
	root := spawnRoot(ecs, x, y, component.ArchetypePlayer, lib.Player)
	ecs.PlayerControl[root] = &component.PlayerControl{Speed: config.PlayerSpeed}
	attachAt(ecs, root, nodes.SpawnNode(ecs, 0, 0, 0, config.SpritePlayer))
	ecs.SetSide(root, component.SidePlayer)
	return root
}

// SpawnStartObjects раскладывает вокруг начала координат стартовые
// турели и обломки.
func SpawnStartObjects(ecs *entity.ECS, lib *defs.Library, rng *utils.PRNGService) {
	spread := config.StartObjectsSpread
	point := func() (float64, float64) { return rng.Symmetric(spread), rng.Symmetric(spread) }

	for i := 0; i < 2; i++ {
		x, y := point()
		spawnFreeObject(ecs, SpawnZapperPart(ecs, lib, x, y, 0), 0, 0, 0)
	}
	x, y := point()
	spawnFreeObject(ecs, SpawnCannonPart(ecs, lib, x, y, 0), 0, 0, 0)
	for i := 0; i < config.StartDebrisCount; i++ {
		x, y := point()
		spawnFreeObject(ecs, SpawnDebris(ecs, x, y, rng.Range(0, 2*math.Pi)), 0, 0, 0)
	}
}

// PlayerSystem двигает тело игрока, поворачивает его к указателю и
// подбрасывает в округу обломки.
type PlayerSystem struct {
	ecs         *entity.ECS
	input       Input
	camera      *Camera
	rng         *utils.PRNGService
	debrisTimer float64
}

func NewPlayerSystem(ecs *entity.ECS, input Input, camera *Camera, rng *utils.PRNGService) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, input: input, camera: camera, rng: rng}
}

func (s *PlayerSystem) Update(deltaTime float64) {
	id := s.ecs.MustPlayerRoot()
	pos := s.ecs.Transforms[id]
	control, ok := s.ecs.PlayerControl[id]
	if !ok {
		return
	}

	mx, my := s.input.Movement()
	if mx != 0 || my != 0 {
		dx, dy := utils.Normalize(mx, my)
		pos.X += dx * control.Speed * deltaTime
		pos.Y += dy * control.Speed * deltaTime
	}

	cx, cy := s.input.Cursor()
	control.AimX, control.AimY = s.camera.ScreenToWorld(cx, cy)
	if control.AimX != pos.X || control.AimY != pos.Y {
		angle := math.Atan2(control.AimY-pos.Y, control.AimX-pos.X)
		pos.Rotation = utils.LerpAngle(pos.Rotation, angle, frameLerp(AimFactor(s.ecs.Stats[id]), deltaTime))
	}

	s.spawnAmbientDebris(deltaTime, pos.X, pos.Y)
}

// AimFactor — насколько быстро тело поворачивается к указателю.
// Чем больше тело, тем медленнее поворот.
func AimFactor(stats *component.Stats) float64 {
	size := 1
	if stats != nil && stats.Size > 1 {
		size = stats.Size
	}
	return math.Min(1, config.AimLerpBase/(float64(size)*0.1))
}

// Reset обнуляет таймер фонового мусора перед новой партией.
func (s *PlayerSystem) Reset() {
	s.debrisTimer = 0
}

func (s *PlayerSystem) spawnAmbientDebris(deltaTime, px, py float64) {
	s.debrisTimer += deltaTime
	if s.debrisTimer < config.AmbientDebrisInterval {
		return
	}
	s.debrisTimer = 0

	hx, hy := s.camera.HalfExtents()
	x := px + s.rng.Symmetric(hx)
	y := py + s.rng.Symmetric(hy)
	angle := s.rng.Range(0, 2*math.Pi)
	id := SpawnDebris(s.ecs, x, y, angle)
	spawnFreeObject(s.ecs, id,
		math.Cos(angle)*config.AmbientDebrisSpeed,
		math.Sin(angle)*config.AmbientDebrisSpeed,
		s.rng.Symmetric(config.LootSpin))
}
