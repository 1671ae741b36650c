package system

import (
	"math"
	"testing"

	"go-absorb/internal/component"
	"go-absorb/internal/config"
)

type fakeInput struct {
	mx, my float64
	cx, cy float64
}

func (f *fakeInput) Movement() (float64, float64) { return f.mx, f.my }
func (f *fakeInput) Cursor() (float64, float64) { return f.cx, f.cy }

func TestSpawnPlayerBody(t *testing.T) {
	w := newWorld(t)
	root := SpawnPlayer(w.ecs, w.lib, 5, 6)

	if got := w.ecs.MustPlayerRoot(); got != root {
		t.Fatalf("player root = %v, want %v", got, root)
	}
	stats := w.ecs.Stats[root]
	if stats.Size != 1 || stats.Health != 100 {
		t.Errorf("stats = %+v", *stats)
	}
	children := w.ecs.ChildrenOf(root)
	if len(children) != 1 || w.ecs.SideOf(children[0]) != component.SidePlayer {
		t.Errorf("core = %v", children)
	}
}

func TestStartObjects(t *testing.T) {
	w := newWorld(t)
	SpawnStartObjects(w.ecs, w.lib, w.rng)

	var zappers, cannons, debris int
	for id := range w.ecs.FreeObjects {
		pos := w.ecs.Transforms[id]
		if math.Abs(pos.X) > config.StartObjectsSpread || math.Abs(pos.Y) > config.StartObjectsSpread {
			t.Errorf("start object at (%v, %v) outside the spread", pos.X, pos.Y)
		}
		switch w.ecs.Weapons[id].(type) {
		case *component.Zapper:
			zappers++
		case *component.Cannon:
			cannons++
		case nil:
			debris++
		}
	}
	if zappers != 2 || cannons != 1 || debris != config.StartDebrisCount {
		t.Errorf("got %d zappers, %d cannons, %d debris", zappers, cannons, debris)
	}
}

func TestPlayerMovesAndAims(t *testing.T) {
	w := newWorld(t)
	root := SpawnPlayer(w.ecs, w.lib, 0, 0)
	camera := NewCamera(config.ScreenWidth, config.ScreenHeight)
	// Указатель прямо под центром экрана: угол π/2
	input := &fakeInput{mx: 1, cx: config.ScreenWidth / 2, cy: config.ScreenHeight}
	players := NewPlayerSystem(w.ecs, input, camera, w.rng)

	players.Update(1)

	pos := w.ecs.Transforms[root]
	if !near(pos.X, config.PlayerSpeed) || !near(pos.Y, 0) {
		t.Errorf("position = (%v, %v), want (%v, 0)", pos.X, pos.Y, config.PlayerSpeed)
	}
	if pos.Rotation <= 0 || pos.Rotation > math.Pi {
		t.Errorf("rotation = %v, want turned toward the pointer", pos.Rotation)
	}
}

func TestDiagonalMovementNormalized(t *testing.T) {
	w := newWorld(t)
	root := SpawnPlayer(w.ecs, w.lib, 0, 0)
	camera := NewCamera(config.ScreenWidth, config.ScreenHeight)
	input := &fakeInput{mx: 1, my: 1, cx: config.ScreenWidth / 2, cy: config.ScreenHeight / 2}
	NewPlayerSystem(w.ecs, input, camera, w.rng).Update(1)

	pos := w.ecs.Transforms[root]
	if d := math.Hypot(pos.X, pos.Y); !near(d, config.PlayerSpeed) {
		t.Errorf("moved %v units diagonally, want %v", d, config.PlayerSpeed)
	}
}

func TestAimFactorShrinksWithSize(t *testing.T) {
	if got := AimFactor(&component.Stats{Size: 1}); got != 1 {
		t.Errorf("size 1 factor = %v, want 1", got)
	}
	if got := AimFactor(&component.Stats{Size: 10}); !near(got, 0.1) {
		t.Errorf("size 10 factor = %v, want 0.1", got)
	}
}

func TestAmbientDebris(t *testing.T) {
	w := newWorld(t)
	SpawnPlayer(w.ecs, w.lib, 0, 0)
	camera := NewCamera(config.ScreenWidth, config.ScreenHeight)
	players := NewPlayerSystem(w.ecs, &fakeInput{cx: 0, cy: 0}, camera, w.rng)

	players.Update(config.AmbientDebrisInterval)
	if n := len(w.ecs.FreeObjects); n != 1 {
		t.Errorf("got %d ambient debris, want 1", n)
	}
}

func TestAmbientDebrisResetRestartsInterval(t *testing.T) {
	w := newWorld(t)
	SpawnPlayer(w.ecs, w.lib, 0, 0)
	camera := NewCamera(config.ScreenWidth, config.ScreenHeight)
	players := NewPlayerSystem(w.ecs, &fakeInput{cx: 0, cy: 0}, camera, w.rng)

	players.Update(config.AmbientDebrisInterval * 0.9)
	players.Reset()
	players.Update(config.AmbientDebrisInterval * 0.5)
	if n := len(w.ecs.FreeObjects); n != 0 {
		t.Errorf("got %d ambient debris right after Reset, want 0", n)
	}
}
