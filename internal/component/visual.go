// internal/component/visual.go
package component

// DamageFlash указывает, что тело нужно подсветить цветом урона.
type DamageFlash struct {
	Timer    float64 // Сколько времени эффект ещё активен
	Duration float64 // Общая продолжительность эффекта
}

// ZapEffect — сегмент трассера луча.
type ZapEffect struct {
	Timer float64 // Оставшееся время жизни
}
