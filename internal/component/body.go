package component

import "go-absorb/internal/types"

// Side — сторона, к которой принадлежит тело
type Side int

const (
	SideNone Side = iota // Ничейный свободный объект
	SidePlayer
	SideEnemy
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideEnemy:
		return "enemy"
	default:
		return "none"
	}
}

// Opposes сообщает, враждебны ли стороны друг другу.
// Ничейная сторона никому не враждебна.
func (s Side) Opposes(other Side) bool {
	return s != SideNone && other != SideNone && s != other
}

// Root помечает корневую часть тела. В теле ровно один корень.
type Root struct {
	Archetype Archetype
}

// Parent — ссылка на родителя части
type Parent struct {
	ID types.EntityID
}

// Children — прямые потомки сущности
type Children struct {
	IDs []types.EntityID
}

// Collider помечает части, которые участвуют в столкновениях.
type Collider struct{}

// FreeObject помечает свободно летающую часть — кандидата на присоединение.
type FreeObject struct{}
