// internal/entity/ecs.go
package entity

import (
	"fmt"
	"math"
	"sort"

	"go-absorb/internal/component"
	"go-absorb/internal/types"
)

// ECS — арена сущностей. Каждый компонент хранится в отдельной мапе,
// ключ — стабильный EntityID. Иерархия тел задаётся мапами Parents/Children,
// поэтому переподвешивание — это перезапись пары индексов.
type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Transforms    map[types.EntityID]*component.Transform
	Velocities    map[types.EntityID]*component.Velocity
	Parents       map[types.EntityID]*component.Parent
	Children      map[types.EntityID]*component.Children
	Roots         map[types.EntityID]*component.Root
	Stats         map[types.EntityID]*component.Stats
	Sides         map[types.EntityID]component.Side
	Colliders     map[types.EntityID]*component.Collider
	FreeObjects   map[types.EntityID]*component.FreeObject
	Weapons       map[types.EntityID]component.Weapon
	Forcefields   map[types.EntityID]*component.Forcefield
	Projectiles   map[types.EntityID]*component.Projectile
	Renderables   map[types.EntityID]*component.Renderable
	DamageFlashes map[types.EntityID]*component.DamageFlash
	ZapEffects    map[types.EntityID]*component.ZapEffect
	Chasers       map[types.EntityID]*component.Chaser
	PlayerControl map[types.EntityID]*component.PlayerControl
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Transforms:    make(map[types.EntityID]*component.Transform),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Parents:       make(map[types.EntityID]*component.Parent),
		Children:      make(map[types.EntityID]*component.Children),
		Roots:         make(map[types.EntityID]*component.Root),
		Stats:         make(map[types.EntityID]*component.Stats),
		Sides:         make(map[types.EntityID]component.Side),
		Colliders:     make(map[types.EntityID]*component.Collider),
		FreeObjects:   make(map[types.EntityID]*component.FreeObject),
		Weapons:       make(map[types.EntityID]component.Weapon),
		Forcefields:   make(map[types.EntityID]*component.Forcefield),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		ZapEffects:    make(map[types.EntityID]*component.ZapEffect),
		Chasers:       make(map[types.EntityID]*component.Chaser),
		PlayerControl: make(map[types.EntityID]*component.PlayerControl),
	}
}

// Reset очищает арену перед новой партией. Указатель на ECS остаётся
// прежним, поэтому системы не нужно пересоздавать.
func (ecs *ECS) Reset() {
	*ecs = *NewECS()
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Exists — есть ли у сущности трансформ (любая живая часть его имеет).
func (ecs *ECS) Exists(id types.EntityID) bool {
	_, ok := ecs.Transforms[id]
	return ok
}

// AddChild подвешивает child под parent. Если у child уже был родитель,
// связь с ним разрывается, так что часть никогда не принадлежит двум телам.
func (ecs *ECS) AddChild(parent, child types.EntityID) {
	if old, ok := ecs.Parents[child]; ok {
		ecs.removeFromChildren(old.ID, child)
	}
	ecs.Parents[child] = &component.Parent{ID: parent}
	children, ok := ecs.Children[parent]
	if !ok {
		children = &component.Children{}
		ecs.Children[parent] = children
	}
	children.IDs = append(children.IDs, child)
}

func (ecs *ECS) removeFromChildren(parent, child types.EntityID) {
	children, ok := ecs.Children[parent]
	if !ok {
		return
	}
	for i, id := range children.IDs {
		if id == child {
			children.IDs = append(children.IDs[:i], children.IDs[i+1:]...)
			break
		}
	}
	if len(children.IDs) == 0 {
		delete(ecs.Children, parent)
	}
}

// ChildrenOf возвращает прямых потомков (nil, если их нет).
func (ecs *ECS) ChildrenOf(id types.EntityID) []types.EntityID {
	if children, ok := ecs.Children[id]; ok {
		return children.IDs
	}
	return nil
}

// ParentOf возвращает родителя и признак его наличия.
func (ecs *ECS) ParentOf(id types.EntityID) (types.EntityID, bool) {
	if p, ok := ecs.Parents[id]; ok {
		return p.ID, true
	}
	return 0, false
}

// RootOf поднимается по цепочке родителей до корня тела.
func (ecs *ECS) RootOf(id types.EntityID) (types.EntityID, bool) {
	current := id
	for {
		if _, isRoot := ecs.Roots[current]; isRoot {
			return current, true
		}
		parent, ok := ecs.ParentOf(current)
		if !ok {
			return 0, false
		}
		current = parent
	}
}

// SetSide помечает сущность и всех её потомков стороной side.
func (ecs *ECS) SetSide(id types.EntityID, side component.Side) {
	ecs.Sides[id] = side
	for _, child := range ecs.ChildrenOf(id) {
		ecs.SetSide(child, side)
	}
}

// SideOf возвращает сторону сущности (SideNone, если не задана).
func (ecs *ECS) SideOf(id types.EntityID) component.Side {
	return ecs.Sides[id]
}

// WorldTransform собирает мировой трансформ, проходя по цепочке родителей.
func (ecs *ECS) WorldTransform(id types.EntityID) (component.Transform, bool) {
	t, ok := ecs.Transforms[id]
	if !ok {
		return component.Transform{}, false
	}
	world := *t
	parent, hasParent := ecs.ParentOf(id)
	for hasParent {
		pt, ok := ecs.Transforms[parent]
		if !ok {
			break
		}
		sin, cos := math.Sincos(pt.Rotation)
		x := world.X * pt.Scale
		y := world.Y * pt.Scale
		world.X = pt.X + x*cos - y*sin
		world.Y = pt.Y + x*sin + y*cos
		world.Rotation += pt.Rotation
		world.Scale *= pt.Scale
		parent, hasParent = ecs.ParentOf(parent)
	}
	return world, true
}

// WorldPosition — сокращение для WorldTransform, когда нужна только позиция.
func (ecs *ECS) WorldPosition(id types.EntityID) (float64, float64, bool) {
	t, ok := ecs.WorldTransform(id)
	return t.X, t.Y, ok
}

// Despawn удаляет одну сущность из всех хранилищ и отцепляет её от родителя.
// Потомки остаются в арене; для тел используйте DespawnRecursive.
func (ecs *ECS) Despawn(id types.EntityID) {
	if parent, ok := ecs.ParentOf(id); ok {
		ecs.removeFromChildren(parent, id)
	}
	delete(ecs.Transforms, id)
	delete(ecs.Velocities, id)
	delete(ecs.Parents, id)
	delete(ecs.Children, id)
	delete(ecs.Roots, id)
	delete(ecs.Stats, id)
	delete(ecs.Sides, id)
	delete(ecs.Colliders, id)
	delete(ecs.FreeObjects, id)
	delete(ecs.Weapons, id)
	delete(ecs.Forcefields, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Renderables, id)
	delete(ecs.DamageFlashes, id)
	delete(ecs.ZapEffects, id)
	delete(ecs.Chasers, id)
	delete(ecs.PlayerControl, id)
}

// DespawnRecursive удаляет сущность и всё её поддерево.
// Возвращает количество удалённых сущностей.
func (ecs *ECS) DespawnRecursive(id types.EntityID) int {
	removed := 0
	stack := []types.EntityID{id}
	var subtree []types.EntityID
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		subtree = append(subtree, current)
		stack = append(stack, ecs.ChildrenOf(current)...)
	}
	// Сначала потомки, чтобы не трогать уже удалённые списки детей.
	for i := len(subtree) - 1; i >= 0; i-- {
		if ecs.Exists(subtree[i]) {
			removed++
		}
		ecs.Despawn(subtree[i])
	}
	return removed
}

// PlayerRoot ищет корень игрока. Возвращает false, если игрока нет.
// Если корней игрока несколько, это нарушение инварианта, и метод паникует.
func (ecs *ECS) PlayerRoot() (types.EntityID, bool) {
	var found types.EntityID
	count := 0
	for id := range ecs.Roots {
		if ecs.Sides[id] == component.SidePlayer {
			found = id
			count++
		}
	}
	if count > 1 {
		panic(fmt.Sprintf("entity: expected exactly one player root, found %d", count))
	}
	return found, count == 1
}

// MustPlayerRoot — как PlayerRoot, но отсутствие игрока тоже фатально:
// без тела игрока симуляция не имеет смысла.
func (ecs *ECS) MustPlayerRoot() types.EntityID {
	id, ok := ecs.PlayerRoot()
	if !ok {
		panic("entity: expected exactly one player root, found 0")
	}
	return id
}

// SortedIDs возвращает ключи мапы по возрастанию. Системы обходят
// сущности в этом порядке, чтобы результат тика не зависел от порядка мап.
func SortedIDs[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
