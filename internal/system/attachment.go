// internal/system/attachment.go
package system

import (
	"go-absorb/internal/component"
	"go-absorb/internal/config"
	"go-absorb/internal/entity"
	"go-absorb/internal/event"
	"go-absorb/internal/types"
	"go-absorb/internal/utils"
)

// AttachmentSystem присоединяет к телу игрока свободные объекты,
// оказавшиеся достаточно близко к его корню.
type AttachmentSystem struct {
	ecs             *entity.ECS
	queues          *event.Queues
	eventDispatcher *event.Dispatcher
}

func NewAttachmentSystem(ecs *entity.ECS, queues *event.Queues, eventDispatcher *event.Dispatcher) *AttachmentSystem {
	return &AttachmentSystem{ecs: ecs, queues: queues, eventDispatcher: eventDispatcher}
}

// AttachThreshold — расстояние, ближе которого кандидат присоединяется.
// Спрайты больше логического масштаба, поэтому порог домножен на SpriteOverscale.
func AttachThreshold(rootScale, candidateScale float64) float64 {
	return (rootScale + candidateScale) / 2 * config.SpriteOverscale
}

func (s *AttachmentSystem) Update(deltaTime float64) {
	rootID := s.ecs.MustPlayerRoot()
	root, _ := s.ecs.WorldTransform(rootID)

	// Сначала собираем кандидатов, потом присоединяем: присоединённая часть
	// теряет FreeObject и не может быть выбрана повторно в этом тике.
	var attach []types.EntityID
	for _, id := range entity.SortedIDs(s.ecs.FreeObjects) {
		if !s.isCandidate(id) {
			continue
		}
		pos := s.ecs.Transforms[id]
		d := utils.Distance(root.X, root.Y, pos.X, pos.Y)
		if d < AttachThreshold(root.Scale, pos.Scale) {
			attach = append(attach, id)
		}
	}

	for _, id := range attach {
		s.Attach(rootID, root, id)
	}
}

// isCandidate — только свободный объект без родителя и не помеченный
// стороной игрока.
func (s *AttachmentSystem) isCandidate(id types.EntityID) bool {
	if _, hasParent := s.ecs.Parents[id]; hasParent {
		return false
	}
	if _, hasPos := s.ecs.Transforms[id]; !hasPos {
		return false
	}
	return s.ecs.SideOf(id) != component.SidePlayer
}

// Attach переподвешивает кандидата под корень, пересчитывая локальный
// трансформ так, чтобы мировое положение части не изменилось.
func (s *AttachmentSystem) Attach(rootID types.EntityID, root component.Transform, id types.EntityID) {
	pos := s.ecs.Transforms[id]

	dx, dy := utils.Rotate(pos.X-root.X, pos.Y-root.Y, -root.Rotation)
	scale := root.Scale
	if scale == 0 {
		scale = 1
	}
	pos.X = dx / scale
	pos.Y = dy / scale
	pos.Rotation = utils.NormalizeAngle(pos.Rotation - root.Rotation)
	pos.Scale /= scale

	delete(s.ecs.FreeObjects, id)
	delete(s.ecs.Velocities, id)
	s.ecs.Colliders[id] = &component.Collider{}
	s.ecs.AddChild(rootID, id)
	s.ecs.SetSide(id, s.ecs.SideOf(rootID))

	s.queues.PushSizeIncreased(rootID, id)
	s.eventDispatcher.Dispatch(event.Event{Type: event.PartAttached, Data: id})
	s.eventDispatcher.PlaySound(event.SoundConnect)
}
