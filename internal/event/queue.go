package event

import "go-absorb/internal/types"

// Hit — накопленный урон по корню тела.
type Hit struct {
	Target types.EntityID
	Damage int
}

// SizeIncreased — к телу игрока присоединилась часть.
type SizeIncreased struct {
	Root types.EntityID
	Part types.EntityID
}

// Killed — враг погиб в этом тике.
type Killed struct {
	Root types.EntityID
}

// Queues — сообщения между системами одного тика. В отличие от
// Dispatcher, здесь порядок важен: система-источник пишет, система-потребитель
// вычитывает ровно один раз (Drain*), после чего список пуст.
type Queues struct {
	Hits          []Hit
	SizeIncreased []SizeIncreased
	Killed        []Killed
}

func NewQueues() *Queues {
	return &Queues{}
}

func (q *Queues) PushHit(target types.EntityID, damage int) {
	q.Hits = append(q.Hits, Hit{Target: target, Damage: damage})
}

func (q *Queues) PushSizeIncreased(root, part types.EntityID) {
	q.SizeIncreased = append(q.SizeIncreased, SizeIncreased{Root: root, Part: part})
}

func (q *Queues) PushKilled(root types.EntityID) {
	q.Killed = append(q.Killed, Killed{Root: root})
}

// DrainHits отдаёт накопленные попадания и очищает очередь.
func (q *Queues) DrainHits() []Hit {
	hits := q.Hits
	q.Hits = nil
	return hits
}

func (q *Queues) DrainSizeIncreased() []SizeIncreased {
	events := q.SizeIncreased
	q.SizeIncreased = nil
	return events
}

func (q *Queues) DrainKilled() []Killed {
	events := q.Killed
	q.Killed = nil
	return events
}

// Reset очищает все очереди (новая партия).
func (q *Queues) Reset() {
	q.Hits = nil
	q.SizeIncreased = nil
	q.Killed = nil
}
