package system

import (
	"testing"

	"go-absorb/internal/config"
)

func TestStatsGrowthAndKills(t *testing.T) {
	w := newWorld(t)
	player := SpawnPlayer(w.ecs, w.lib, 0, 0)
	w.stats.EnemiesAlive = 1
	w.queues.PushSizeIncreased(player, 99)
	w.queues.PushSizeIncreased(player, 100)
	w.queues.PushKilled(7)
	w.queues.PushKilled(8)

	NewStatsSystem(w.ecs, w.stats, w.queues).Update(0)

	stats := w.ecs.Stats[player]
	if stats.Size != 3 || stats.Health != 100+2*config.HealthPerPart {
		t.Errorf("player stats = %+v, want size 3 health %d", *stats, 100+2*config.HealthPerPart)
	}
	if w.stats.Kills != 2 {
		t.Errorf("kills = %d, want 2", w.stats.Kills)
	}
	if w.stats.EnemiesAlive != 0 {
		t.Errorf("alive = %d, want 0 (saturating)", w.stats.EnemiesAlive)
	}
	if want := 2*config.ScorePerPart + 2*config.ScorePerKill; w.stats.Score != want {
		t.Errorf("score = %d, want %d", w.stats.Score, want)
	}
}

func TestSurvivalBonus(t *testing.T) {
	w := newWorld(t)
	stats := NewStatsSystem(w.ecs, w.stats, w.queues)
	for i := 0; i < 7*60; i++ {
		stats.Update(tick)
	}
	if want := 2 * config.SurvivalBonus; w.stats.Score != want {
		t.Errorf("score after 7s = %d, want %d", w.stats.Score, want)
	}
}
