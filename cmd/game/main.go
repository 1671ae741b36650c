// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	game "go-absorb/internal/app"
	"go-absorb/internal/assets"
	"go-absorb/internal/audio"
	"go-absorb/internal/config"
	"go-absorb/internal/defs"
	"go-absorb/internal/event"
	"go-absorb/internal/metrics"
	"go-absorb/internal/state"
	"go-absorb/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	defsPath := flag.String("defs", "", "YAML-файл с определениями архетипов (по умолчанию встроенный)")
	spritesDir := flag.String("sprites", "", "каталог с PNG-спрайтами")
	seed := flag.Int64("seed", 0, "зерно генератора (0 — текущее время)")
	metricsAddr := flag.String("metrics-addr", "", "адрес для /metrics, например 127.0.0.1:9100")
	mute := flag.Bool("mute", false, "отключить звук")
	flag.Parse()

	lib, err := defs.Load(*defsPath)
	if err != nil {
		log.Fatalf("Не удалось загрузить определения: %v", err)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	dispatcher := event.NewDispatcher()

	notifier := audio.NewNotifier(*mute)
	notifier.Subscribe(dispatcher)
	defer notifier.Close()

	m := metrics.New()
	m.Subscribe(dispatcher)
	m.Serve(*metricsAddr)

	g := game.NewGame(lib, state.KeyboardInput{}, assets.NewSpriteManager(*spritesDir), *seed, dispatcher)
	g.Observer = m

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, g, ui.NewHUD()))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Absorb")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
