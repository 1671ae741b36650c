package component

// Weapon — полезная нагрузка части тела. Закрытое множество вариантов:
// *Zapper, *Cannon, *Shield. Системы разбирают его через type switch
// и пропускают варианты, которые их не касаются.
type Weapon interface {
	weapon()
}

func (*Zapper) weapon() {}
func (*Cannon) weapon() {}
func (*Shield) weapon() {}
