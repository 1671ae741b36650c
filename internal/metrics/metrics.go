// internal/metrics/metrics.go
package metrics

import (
	"errors"
	"log"
	"net/http"
	"time"

	"go-absorb/internal/component"
	"go-absorb/internal/event"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics — счётчики симуляции. Метки ограничены архетипами врагов.
type Metrics struct {
	Registry *prometheus.Registry

	tickDuration   prometheus.Histogram
	enemiesSpawned *prometheus.CounterVec
	enemiesKilled  *prometheus.CounterVec
	enemiesCulled  *prometheus.CounterVec
	partsAttached  prometheus.Counter
	hitsApplied    prometheus.Counter
	damageApplied  prometheus.Counter
	playerDeaths   prometheus.Counter

	enemiesAlive prometheus.Gauge
	score        prometheus.Gauge
	playerHealth prometheus.Gauge
}

// New регистрирует метрики в собственном реестре.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		tickDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "absorb_tick_duration_seconds",
			Help:    "Time spent in a simulation tick",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
		}),
		enemiesSpawned: f.NewCounterVec(prometheus.CounterOpts{
			Name: "absorb_enemies_spawned_total",
			Help: "Enemies spawned by the population controller",
		}, []string{"archetype"}),
		enemiesKilled: f.NewCounterVec(prometheus.CounterOpts{
			Name: "absorb_enemies_killed_total",
			Help: "Enemies destroyed by the player",
		}, []string{"archetype"}),
		enemiesCulled: f.NewCounterVec(prometheus.CounterOpts{
			Name: "absorb_enemies_culled_total",
			Help: "Enemies removed for being too far away",
		}, []string{"archetype"}),
		partsAttached: f.NewCounter(prometheus.CounterOpts{
			Name: "absorb_parts_attached_total",
			Help: "Free objects absorbed by the player",
		}),
		hitsApplied: f.NewCounter(prometheus.CounterOpts{
			Name: "absorb_hits_total",
			Help: "Hits applied to bodies",
		}),
		damageApplied: f.NewCounter(prometheus.CounterOpts{
			Name: "absorb_damage_total",
			Help: "Damage applied to bodies",
		}),
		playerDeaths: f.NewCounter(prometheus.CounterOpts{
			Name: "absorb_player_deaths_total",
			Help: "Finished runs",
		}),
		enemiesAlive: f.NewGauge(prometheus.GaugeOpts{
			Name: "absorb_enemies_alive",
			Help: "Enemies currently alive",
		}),
		score: f.NewGauge(prometheus.GaugeOpts{
			Name: "absorb_score",
			Help: "Score of the current run",
		}),
		playerHealth: f.NewGauge(prometheus.GaugeOpts{
			Name: "absorb_player_health",
			Help: "Current player health",
		}),
	}
}

// Subscribe подписывает метрики на события диспетчера.
func (m *Metrics) Subscribe(d *event.Dispatcher) {
	for _, t := range []event.EventType{
		event.EnemySpawned, event.EnemyKilled, event.EnemyCulled,
		event.PartAttached, event.HitApplied, event.PlayerDied,
	} {
		d.Subscribe(t, m)
	}
}

func (m *Metrics) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemySpawned:
		m.enemiesSpawned.WithLabelValues(archetype(e)).Inc()
	case event.EnemyKilled:
		m.enemiesKilled.WithLabelValues(archetype(e)).Inc()
	case event.EnemyCulled:
		m.enemiesCulled.WithLabelValues(archetype(e)).Inc()
	case event.PartAttached:
		m.partsAttached.Inc()
	case event.HitApplied:
		m.hitsApplied.Inc()
		if hit, ok := e.Data.(event.Hit); ok {
			m.damageApplied.Add(float64(hit.Damage))
		}
	case event.PlayerDied:
		m.playerDeaths.Inc()
	}
}

func archetype(e event.Event) string {
	if data, ok := e.Data.(event.EnemyData); ok {
		return data.Archetype
	}
	return "unknown"
}

// ObserveTick обновляет длительность тика и мгновенные показатели.
func (m *Metrics) ObserveTick(duration time.Duration, stats component.WorldStats, playerHealth int) {
	m.tickDuration.Observe(duration.Seconds())
	m.enemiesAlive.Set(float64(stats.EnemiesAlive))
	m.score.Set(float64(stats.Score))
	m.playerHealth.Set(float64(playerHealth))
}

// Handler отдаёт метрики в формате Prometheus.
func (m *Metrics) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	return mux
}

// Serve запускает HTTP-сервер метрик в фоне. Пустой адрес отключает сервер.
func (m *Metrics) Serve(addr string) *http.Server {
	if addr == "" {
		return nil
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           m.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Printf("Метрики: http://%s/metrics", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Сервер метрик остановлен: %v", err)
		}
	}()
	return srv
}
