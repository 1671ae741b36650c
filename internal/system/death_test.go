package system

import (
	"testing"

	"go-absorb/internal/component"
	"go-absorb/internal/event"
	"go-absorb/internal/types"
)

func TestHealthSaturates(t *testing.T) {
	w := newWorld(t)
	root, _ := w.spawnBody(0, 0, component.SideEnemy, 25)
	for _, dmg := range []int{10, 10, 10, 10} {
		w.queues.PushHit(root, dmg)
	}
	NewDamageSystem(w.ecs, w.queues, w.dispatcher).Update(tick)

	if hp := w.ecs.Stats[root].Health; hp != 0 {
		t.Errorf("health = %d, want 0", hp)
	}
	if _, ok := w.ecs.DamageFlashes[root]; !ok {
		t.Error("damaged root has no flash")
	}
}

func TestDamageIgnoresMissingTargets(t *testing.T) {
	w := newWorld(t)
	root, core := w.spawnBody(0, 0, component.SideEnemy, 25)
	w.queues.PushHit(999, 10)
	w.queues.PushHit(core, 10) // не корень
	NewDamageSystem(w.ecs, w.queues, w.dispatcher).Update(tick)

	if hp := w.ecs.Stats[root].Health; hp != 25 {
		t.Errorf("health = %d, want 25", hp)
	}
}

func TestDeathDespawnsOnlyOwnSubtree(t *testing.T) {
	w := newWorld(t)
	SpawnPlayer(w.ecs, w.lib, 0, 0)
	doomed, err := SpawnEnemy(w.ecs, w.lib, w.rng, component.ArchetypeShieldBearer, 100, 0)
	if err != nil {
		t.Fatal(err)
	}
	survivor, err := SpawnEnemy(w.ecs, w.lib, w.rng, component.ArchetypeZapper, -100, 0)
	if err != nil {
		t.Fatal(err)
	}

	var doomedParts []types.EntityID
	var walk func(id types.EntityID)
	walk = func(id types.EntityID) {
		doomedParts = append(doomedParts, id)
		for _, c := range w.ecs.ChildrenOf(id) {
			walk(c)
		}
	}
	walk(doomed)
	survivorParts := len(w.ecs.ChildrenOf(survivor))

	w.ecs.Stats[doomed].Health = 0
	NewDeathSystem(w.ecs, w.lib, w.rng, w.stats, w.queues, w.dispatcher).Update(tick)

	for _, id := range doomedParts {
		if w.ecs.Exists(id) {
			t.Errorf("part %d of the dead body survived", id)
		}
	}
	if n := len(w.ecs.ChildrenOf(survivor)); n != survivorParts {
		t.Errorf("survivor has %d parts, want %d", n, survivorParts)
	}
	if !w.ecs.Exists(survivor) {
		t.Error("survivor root despawned")
	}
}

func TestEnemyDeathDropsLoot(t *testing.T) {
	w := newWorld(t)
	SpawnPlayer(w.ecs, w.lib, 0, 0)
	root, err := SpawnEnemy(w.ecs, w.lib, w.rng, component.ArchetypeZapper, 300, 200)
	if err != nil {
		t.Fatal(err)
	}
	w.stats.EnemiesAlive = 1
	freeBefore := len(w.ecs.FreeObjects)

	w.ecs.Stats[root].Health = 0
	NewDeathSystem(w.ecs, w.lib, w.rng, w.stats, w.queues, w.dispatcher).Update(tick)
	NewStatsSystem(w.ecs, w.stats, w.queues).Update(tick)

	if w.ecs.Exists(root) {
		t.Fatal("dead root still exists")
	}
	if got := len(w.ecs.FreeObjects) - freeBefore; got != 3 {
		t.Fatalf("spawned %d free objects, want 3", got)
	}
	zappers := 0
	for id := range w.ecs.FreeObjects {
		pos := w.ecs.Transforms[id]
		if pos.X != 300 || pos.Y != 200 {
			t.Errorf("loot at (%v, %v), want (300, 200)", pos.X, pos.Y)
		}
		if _, ok := w.ecs.Weapons[id].(*component.Zapper); ok {
			zappers++
		}
		if side := w.ecs.SideOf(id); side != component.SideNone {
			t.Errorf("loot side = %s, want none", side)
		}
		if _, ok := w.ecs.Velocities[id]; !ok {
			t.Error("loot has no velocity")
		}
	}
	if zappers != 1 {
		t.Errorf("got %d zapper loot parts, want 1", zappers)
	}
	if w.stats.Kills != 1 || w.stats.EnemiesAlive != 0 {
		t.Errorf("stats = %+v, want 1 kill and 0 alive", *w.stats)
	}
	if w.countEvents(event.EnemyKilled) != 1 {
		t.Error("EnemyKilled not dispatched")
	}
}

func TestShieldBearerDropsStrongShield(t *testing.T) {
	w := newWorld(t)
	SpawnPlayer(w.ecs, w.lib, 0, 0)
	root, _ := SpawnEnemy(w.ecs, w.lib, w.rng, component.ArchetypeShieldBearer, 50, 0)
	w.ecs.Stats[root].Health = 0
	NewDeathSystem(w.ecs, w.lib, w.rng, w.stats, w.queues, w.dispatcher).Update(tick)

	found := false
	for id := range w.ecs.FreeObjects {
		if shield, ok := w.ecs.Weapons[id].(*component.Shield); ok {
			found = true
			if shield.Health != w.lib.LootShield.Health {
				t.Errorf("loot shield health = %d, want %d", shield.Health, w.lib.LootShield.Health)
			}
			if _, ok := w.ecs.Forcefields[shield.Forcefield]; !ok {
				t.Error("loot shield has no forcefield")
			}
		}
	}
	if !found {
		t.Error("no shield dropped")
	}
}

func TestPlayerDeathEndsGame(t *testing.T) {
	w := newWorld(t)
	ctx := &fakeContext{phase: component.PhaseInGame}
	NewStateSystem(ctx, w.dispatcher)
	player := SpawnPlayer(w.ecs, w.lib, 0, 0)
	for i := 0; i < 3; i++ {
		attachAt(w.ecs, player, SpawnDebris(w.ecs, float64(i*8), 0, 0))
	}
	w.ecs.Stats[player].Health = 0

	NewDeathSystem(w.ecs, w.lib, w.rng, w.stats, w.queues, w.dispatcher).Update(tick)

	if _, ok := w.ecs.PlayerRoot(); ok {
		t.Error("player root survived death")
	}
	if ctx.phase != component.PhaseEnd {
		t.Errorf("phase = %s, want end", ctx.phase)
	}
	if w.countEvents(event.PlayerDied) != 1 {
		t.Error("PlayerDied not dispatched")
	}
	if n := len(w.ecs.FreeObjects); n != 4 {
		t.Errorf("explosion left %d debris, want 4", n)
	}
}
