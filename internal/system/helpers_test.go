package system

import (
	"math"
	"testing"

	"go-absorb/internal/component"
	"go-absorb/internal/defs"
	"go-absorb/internal/entity"
	"go-absorb/internal/event"
	"go-absorb/internal/types"
	"go-absorb/internal/utils"
)

const tick = 1.0 / 60

type world struct {
	ecs        *entity.ECS
	lib        *defs.Library
	rng        *utils.PRNGService
	queues     *event.Queues
	dispatcher *event.Dispatcher
	stats      *component.WorldStats
	events     []event.Event
}

func newWorld(t *testing.T) *world {
	t.Helper()
	w := &world{
		ecs:        entity.NewECS(),
		lib:        defs.Default(),
		rng:        utils.NewPRNGService(1),
		queues:     event.NewQueues(),
		dispatcher: event.NewDispatcher(),
		stats:      &component.WorldStats{},
	}
	record := event.ListenerFunc(func(e event.Event) { w.events = append(w.events, e) })
	for _, typ := range []event.EventType{event.PlayerDied, event.EnemySpawned, event.EnemyKilled, event.EnemyCulled, event.PartAttached, event.SoundRequested} {
		w.dispatcher.Subscribe(typ, record)
	}
	return w
}

func (w *world) countEvents(typ event.EventType) int {
	n := 0
	for _, e := range w.events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

// spawnBody строит минимальное тело: корень и одна часть в центре.
func (w *world) spawnBody(x, y float64, side component.Side, health int) (root, core types.EntityID) {
	root = spawnRoot(w.ecs, x, y, component.ArchetypeZapper, defs.BodyDefinition{Size: 1, Health: health})
	if side == component.SidePlayer {
		w.ecs.Roots[root].Archetype = component.ArchetypePlayer
	}
	core = SpawnDebris(w.ecs, 0, 0, 0)
	attachAt(w.ecs, root, core)
	w.ecs.SetSide(root, side)
	return root, core
}

func (w *world) freeDebris(x, y float64) types.EntityID {
	id := SpawnDebris(w.ecs, x, y, 0)
	spawnFreeObject(w.ecs, id, 0, 0, 0)
	return id
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

type fakeContext struct {
	phase component.Phase
}

func (f *fakeContext) Phase() component.Phase { return f.phase }
func (f *fakeContext) SetPhase(phase component.Phase) { f.phase = phase }

func shieldDef(health int, cooldown float64) defs.ShieldDefinition {
	return defs.ShieldDefinition{Health: health, Cooldown: cooldown}
}
