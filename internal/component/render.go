// component/render.go
package component

import "image/color"

// Renderable — компонент для отрисовки.
// Если Sprite пуст, рисуется квадрат цвета Color со стороной Size.
type Renderable struct {
	Sprite string
	Color  color.RGBA
	Size   float32 // В мировых единицах
	Z      int     // Порядок отрисовки
}
