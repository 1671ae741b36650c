package system

import (
	"testing"

	"go-absorb/internal/component"
)

func TestEnemyArchetypes(t *testing.T) {
	tests := []struct {
		archetype component.Archetype
		children  int
		zappers   int
		cannons   int
		shields   int
		size      int
		health    int
	}{
		{component.ArchetypeShieldBearer, 6, 0, 0, 2, 7, 70},
		{component.ArchetypeZapper, 9, 2, 0, 0, 9, 90},
		{component.ArchetypeCannon, 9, 0, 1, 0, 9, 90},
	}
	for _, tt := range tests {
		t.Run(tt.archetype.String(), func(t *testing.T) {
			w := newWorld(t)
			root, err := SpawnEnemy(w.ecs, w.lib, w.rng, tt.archetype, 40, -20)
			if err != nil {
				t.Fatal(err)
			}
			children := w.ecs.ChildrenOf(root)
			if len(children) != tt.children {
				t.Errorf("children = %d, want %d", len(children), tt.children)
			}
			var zappers, cannons, shields int
			for _, id := range children {
				switch weapon := w.ecs.Weapons[id].(type) {
				case *component.Zapper:
					zappers++
					if pos := w.ecs.Transforms[id]; pos.X != 0 || (pos.Y != 8 && pos.Y != -8) {
						t.Errorf("zapper at (%v, %v), want centre column", pos.X, pos.Y)
					}
				case *component.Cannon:
					cannons++
					if pos := w.ecs.Transforms[id]; pos.X != 0 || pos.Y != 0 {
						t.Errorf("cannon at (%v, %v), want centre", pos.X, pos.Y)
					}
				case *component.Shield:
					shields++
					if side := w.ecs.SideOf(weapon.Forcefield); side != component.SideEnemy {
						t.Errorf("forcefield side = %s", side)
					}
				}
				if w.ecs.SideOf(id) != component.SideEnemy {
					t.Errorf("part %d is not enemy side", id)
				}
				if _, ok := w.ecs.Colliders[id]; !ok {
					t.Errorf("part %d has no collider", id)
				}
			}
			if zappers != tt.zappers || cannons != tt.cannons || shields != tt.shields {
				t.Errorf("weapons = %d zappers, %d cannons, %d shields", zappers, cannons, shields)
			}
			stats := w.ecs.Stats[root]
			if stats.Size != tt.size || stats.Health != tt.health {
				t.Errorf("stats = %+v, want size %d health %d", *stats, tt.size, tt.health)
			}
			if _, ok := w.ecs.Chasers[root]; !ok {
				t.Error("enemy root does not chase")
			}
		})
	}
}

func TestSpawnEnemyRejectsPlayerArchetype(t *testing.T) {
	w := newWorld(t)
	if _, err := SpawnEnemy(w.ecs, w.lib, w.rng, component.ArchetypePlayer, 0, 0); err == nil {
		t.Error("expected error for player archetype")
	}
	if n := len(w.ecs.Transforms); n != 0 {
		t.Errorf("failed spawn left %d entities", n)
	}
}
