// internal/defs/loot_tables.go
package defs

// LootEntry представляет одну запись в таблице выбора.
// ID - идентификатор архетипа, а Weight - его "вес" или относительный шанс.
type LootEntry struct {
	ID     string
	Weight int
}

// SpawnTable строит таблицу выбора архетипа для спавнера врагов.
func (l *Library) SpawnTable() []LootEntry {
	entries := make([]LootEntry, 0, len(l.Archetypes))
	for _, def := range l.Archetypes {
		entries = append(entries, LootEntry{ID: def.ID, Weight: def.Weight})
	}
	return entries
}
