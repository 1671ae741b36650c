// component/movement.go
package component

// Transform — положение, поворот и масштаб сущности.
// Для сущности с родителем значения локальные (относительно родителя),
// для сущности без родителя — мировые.
type Transform struct {
	X, Y     float64
	Rotation float64 // Радианы
	Scale    float64
}

// NewTransform создаёт трансформ с единичным масштабом.
func NewTransform(x, y, rotation float64) *Transform {
	return &Transform{X: x, Y: y, Rotation: rotation, Scale: 1}
}

// Velocity — скорость свободного объекта или снаряда (единиц в секунду)
type Velocity struct {
	X, Y    float64
	Angular float64 // Радиан в секунду
}
