package component

// Stats — агрегированные характеристики тела, хранятся на корне.
type Stats struct {
	Size   int // Количество присоединённых частей
	Health int // Никогда не бывает отрицательным
}

// Damage уменьшает здоровье с насыщением на нуле и возвращает
// фактически снятое количество.
func (s *Stats) Damage(amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount >= s.Health {
		taken := s.Health
		s.Health = 0
		return taken
	}
	s.Health -= amount
	return amount
}

// IsDead — здоровье исчерпано
func (s *Stats) IsDead() bool {
	return s.Health <= 0
}
