package component

// Projectile — летящий снаряд пушки.
type Projectile struct {
	Damage int
	Side   Side // Сторона, которая выстрелила
}
