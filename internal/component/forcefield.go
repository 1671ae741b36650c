package component

import "go-absorb/internal/types"

// Shield — щит с запасом прочности. Пока силовое поле активно,
// снаряды противника тратят прочность щита, а не здоровье тела.
type Shield struct {
	Health        int
	MaxHealth     int
	Cooldown      float64 // Секунд до восстановления поля
	CooldownTimer float64
	Forcefield    types.EntityID // Дочерняя часть с полем
}

// Absorb снимает урон с прочности (с насыщением на нуле).
// Возвращает true, если прочность закончилась.
func (s *Shield) Absorb(damage int) bool {
	if damage > 0 {
		if damage >= s.Health {
			s.Health = 0
		} else {
			s.Health -= damage
		}
	}
	return s.Health == 0
}

// Forcefield — видимое силовое поле щита.
type Forcefield struct {
	Active bool
}
