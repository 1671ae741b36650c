// internal/component/player.go
package component

// PlayerControl хранит параметры управления телом игрока.
type PlayerControl struct {
	Speed      float64 // Единиц в секунду
	AimX, AimY float64 // Точка прицеливания в мировых координатах
}
