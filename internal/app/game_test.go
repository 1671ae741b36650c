package app

import (
	"testing"
	"time"

	"go-absorb/internal/component"
	"go-absorb/internal/defs"
	"go-absorb/internal/event"
)

type stillInput struct{}

func (stillInput) Movement() (float64, float64) { return 0, 0 }
func (stillInput) Cursor() (float64, float64) { return 0, 0 }

type recordingObserver struct {
	ticks int
	last  component.WorldStats
}

func (r *recordingObserver) ObserveTick(_ time.Duration, stats component.WorldStats, _ int) {
	r.ticks++
	r.last = stats
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame(defs.Default(), stillInput{}, nil, 42, event.NewDispatcher())
	g.Start()
	return g
}

func enemyRoots(g *Game) int {
	n := 0
	for id := range g.ECS.Roots {
		if g.ECS.SideOf(id) == component.SideEnemy {
			n++
		}
	}
	return n
}

func TestGameRunsTicks(t *testing.T) {
	g := newTestGame(t)
	observer := &recordingObserver{}
	g.Observer = observer

	for i := 0; i < 600; i++ {
		g.Update(1.0 / 60)
		if g.Phase() != component.PhaseInGame {
			break
		}
		if _, ok := g.ECS.PlayerRoot(); !ok {
			t.Fatal("player root missing while in game")
		}
		if alive := enemyRoots(g); alive != g.Stats.EnemiesAlive {
			t.Fatalf("tick %d: %d enemy roots but EnemiesAlive = %d", i, alive, g.Stats.EnemiesAlive)
		}
	}
	if observer.ticks == 0 {
		t.Error("observer never called")
	}
	if g.Stats.Score == 0 {
		t.Error("no score after ten seconds")
	}
}

func TestGameDoesNotTickOutsideInGame(t *testing.T) {
	g := newTestGame(t)
	g.SetPhase(component.PhasePaused)
	before := g.GetGameTime()
	g.Update(1)
	if g.GetGameTime() != before {
		t.Error("paused game advanced")
	}
}

func TestPlayerDeathEndsGame(t *testing.T) {
	g := newTestGame(t)
	died := 0
	g.EventDispatcher.Subscribe(event.PlayerDied, event.ListenerFunc(func(event.Event) { died++ }))

	g.ECS.Stats[g.PlayerID].Health = 0
	g.Queues.PushHit(g.PlayerID, 1)
	g.Update(1.0 / 60)

	if g.Phase() != component.PhaseEnd {
		t.Fatalf("phase = %s, want end", g.Phase())
	}
	if died != 1 {
		t.Errorf("PlayerDied dispatched %d times", died)
	}
	// После смерти тики ничего не делают и не паникуют
	g.Update(1.0 / 60)
}

func TestRestartResetsWorld(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 120; i++ {
		g.Update(1.0 / 60)
	}
	g.Stats.Kills = 5
	g.Start()

	if g.Stats != (component.WorldStats{}) {
		t.Errorf("stats after restart = %+v", g.Stats)
	}
	if enemyRoots(g) != 0 {
		t.Error("enemies survived restart")
	}
	if g.PlayerHealth() != g.Defs.Player.Health {
		t.Errorf("player health = %d", g.PlayerHealth())
	}
}
