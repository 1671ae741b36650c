package component

// Zapper — турель с мгновенным попаданием лучом.
type Zapper struct {
	Damage        int
	FireRate      float64 // Секунд между выстрелами
	CooldownTimer float64 // Сколько секунд осталось до готовности
	Range         float64 // В мировых единицах
}

// Cannon — турель, выпускающая летящий снаряд.
type Cannon struct {
	Damage        int
	FireRate      float64
	CooldownTimer float64
	Range         float64
}
