// internal/system/stats.go
package system

import (
	"go-absorb/internal/component"
	"go-absorb/internal/config"
	"go-absorb/internal/entity"
	"go-absorb/internal/event"
)

// StatsSystem начисляет рост тела и очки по сообщениям тика.
type StatsSystem struct {
	ecs           *entity.ECS
	stats         *component.WorldStats
	queues        *event.Queues
	survivalTimer float64
}

func NewStatsSystem(ecs *entity.ECS, stats *component.WorldStats, queues *event.Queues) *StatsSystem {
	return &StatsSystem{ecs: ecs, stats: stats, queues: queues}
}

func (s *StatsSystem) Update(deltaTime float64) {
	for _, grown := range s.queues.DrainSizeIncreased() {
		if stats, ok := s.ecs.Stats[grown.Root]; ok {
			stats.Size++
			stats.Health += config.HealthPerPart
		}
		s.stats.Score += config.ScorePerPart
	}

	for range s.queues.DrainKilled() {
		s.stats.Kills++
		if s.stats.EnemiesAlive > 0 {
			s.stats.EnemiesAlive--
		}
		s.stats.Score += config.ScorePerKill
	}

	// Бонус за выживание
	s.survivalTimer += deltaTime
	for s.survivalTimer >= config.SurvivalBonusInterval {
		s.survivalTimer -= config.SurvivalBonusInterval
		s.stats.Score += config.SurvivalBonus
	}
}

// Reset сбрасывает таймер бонуса перед новой партией.
func (s *StatsSystem) Reset() {
	s.survivalTimer = 0
}
