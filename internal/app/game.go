// internal/app/game.go
package app

import (
	"log"
	"time"

	"go-absorb/internal/component"
	"go-absorb/internal/config"
	"go-absorb/internal/defs"
	"go-absorb/internal/entity"
	"go-absorb/internal/event"
	"go-absorb/internal/system"
	"go-absorb/internal/types"
	"go-absorb/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

// TickObserver получает длительность каждого тика и счётчики партии.
type TickObserver interface {
	ObserveTick(duration time.Duration, stats component.WorldStats, playerHealth int)
}

// Game holds the main game state and logic.
type Game struct {
	ECS             *entity.ECS
	Defs            *defs.Library
	EventDispatcher *event.Dispatcher
	Queues          *event.Queues
	Stats           component.WorldStats
	Camera          *system.Camera
	Rng             *utils.PRNGService
	Observer        TickObserver
	PlayerID        types.EntityID // ID корня игрока

	MovementSystem     *system.MovementSystem
	PlayerSystem       *system.PlayerSystem
	AttachmentSystem   *system.AttachmentSystem
	TurretSystem       *system.TurretSystem
	ProjectileSystem   *system.ProjectileSystem
	ForcefieldSystem   *system.ForcefieldSystem
	DamageSystem       *system.DamageSystem
	DeathSystem        *system.DeathSystem
	StatsSystem        *system.StatsSystem
	PopulationSystem   *system.PopulationSystem
	ChaseSystem        *system.ChaseSystem
	CullSystem         *system.CullSystem
	VisualEffectSystem *system.VisualEffectSystem
	CameraSystem       *system.CameraSystem
	StateSystem        *system.StateSystem
	RenderSystem       *system.RenderSystem

	// Game state
	phase    component.Phase
	gameTime float64
}

// NewGame initializes a new game instance. Партия начинается вызовом Start.
func NewGame(lib *defs.Library, input system.Input, sprites system.SpriteProvider, seed int64, eventDispatcher *event.Dispatcher) *Game {
	if lib == nil {
		panic("definitions cannot be nil")
	}

	ecs := entity.NewECS()
	queues := event.NewQueues()
	rng := utils.NewPRNGService(seed)
	camera := system.NewCamera(config.ScreenWidth, config.ScreenHeight)
	g := &Game{
		ECS:             ecs,
		Defs:            lib,
		EventDispatcher: eventDispatcher,
		Queues:          queues,
		Camera:          camera,
		Rng:             rng,
		phase:           component.PhaseMenu,
	}
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.PlayerSystem = system.NewPlayerSystem(ecs, input, camera, rng)
	g.AttachmentSystem = system.NewAttachmentSystem(ecs, queues, eventDispatcher)
	g.TurretSystem = system.NewTurretSystem(ecs, queues, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, queues, eventDispatcher)
	g.ForcefieldSystem = system.NewForcefieldSystem(ecs)
	g.DamageSystem = system.NewDamageSystem(ecs, queues, eventDispatcher)
	g.DeathSystem = system.NewDeathSystem(ecs, lib, rng, &g.Stats, queues, eventDispatcher)
	g.StatsSystem = system.NewStatsSystem(ecs, &g.Stats, queues)
	g.PopulationSystem = system.NewPopulationSystem(ecs, lib, rng, &g.Stats, camera, eventDispatcher)
	g.ChaseSystem = system.NewChaseSystem(ecs)
	g.CullSystem = system.NewCullSystem(ecs, &g.Stats, eventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)
	g.CameraSystem = system.NewCameraSystem(ecs, camera)
	g.StateSystem = system.NewStateSystem(g, eventDispatcher)
	if sprites != nil {
		g.RenderSystem = system.NewRenderSystem(ecs, sprites)
	}

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.EnemySpawned, listener)
	eventDispatcher.Subscribe(event.EnemyCulled, listener)
	eventDispatcher.Subscribe(event.PlayerDied, listener)

	return g
}

// Start сбрасывает арену и начинает новую партию.
func (g *Game) Start() {
	g.ECS.Reset()
	g.Queues.Reset()
	g.Stats.Reset()
	g.StatsSystem.Reset()
	g.CullSystem.Reset()
	g.PlayerSystem.Reset()
	g.gameTime = 0

	g.PlayerID = system.SpawnPlayer(g.ECS, g.Defs, 0, 0)
	system.SpawnStartObjects(g.ECS, g.Defs, g.Rng)
	g.CameraSystem.Snap()
	g.phase = component.PhaseInGame
}

// Update продвигает симуляцию на один тик. Порядок систем фиксирован:
// присоединённая в этом тике часть уже видна сканированию турелей, а
// попадания этого тика применяются до следующего выбора целей.
func (g *Game) Update(deltaTime float64) {
	if g.phase != component.PhaseInGame {
		return
	}
	started := time.Now()
	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime

	g.MovementSystem.Update(deltaTime)
	g.PlayerSystem.Update(deltaTime)
	g.AttachmentSystem.Update(deltaTime)
	g.TurretSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.ForcefieldSystem.Update(deltaTime)
	g.DamageSystem.Update(deltaTime)
	g.DeathSystem.Update(deltaTime)
	g.StatsSystem.Update(deltaTime)

	// Игрок погиб в этом тике: дальше симулировать некого
	if g.phase == component.PhaseInGame {
		g.PopulationSystem.Update(deltaTime)
		g.ChaseSystem.Update(deltaTime)
		g.CullSystem.Update(deltaTime)
		g.CameraSystem.Update(deltaTime)
	}
	g.VisualEffectSystem.Update(deltaTime)

	if g.Observer != nil {
		g.Observer.ObserveTick(time.Since(started), g.Stats, g.PlayerHealth())
	}
}

// Draw рисует мир. HUD рисует состояние поверх.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.RenderSystem != nil {
		g.RenderSystem.Draw(screen, g.Camera)
	}
}

func (g *Game) Phase() component.Phase {
	return g.phase
}

func (g *Game) SetPhase(phase component.Phase) {
	g.phase = phase
}

func (g *Game) GetGameTime() float64 {
	return g.gameTime
}

// PlayerHealth возвращает здоровье игрока или 0, если тела уже нет.
func (g *Game) PlayerHealth() int {
	if stats, ok := g.ECS.Stats[g.PlayerID]; ok {
		return stats.Health
	}
	return 0
}

// PlayerSize возвращает размер тела игрока.
func (g *Game) PlayerSize() int {
	if stats, ok := g.ECS.Stats[g.PlayerID]; ok {
		return stats.Size
	}
	return 0
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemySpawned:
		if data, ok := e.Data.(event.EnemyData); ok {
			log.Printf("Enemy %s spawned at (%.0f, %.0f), alive: %d", data.Archetype, data.X, data.Y, l.game.Stats.EnemiesAlive)
		}
	case event.EnemyCulled:
		if data, ok := e.Data.(event.EnemyData); ok {
			log.Printf("Enemy %s culled at (%.0f, %.0f)", data.Archetype, data.X, data.Y)
		}
	case event.PlayerDied:
		log.Printf("Game over after %.1fs", l.game.gameTime)
	}
}
