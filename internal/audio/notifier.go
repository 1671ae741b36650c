// internal/audio/notifier.go
package audio

import (
	"log"
	"sync"
	"time"

	"go-absorb/internal/config"
	"go-absorb/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"golang.org/x/time/rate"
)

const sampleRate = beep.SampleRate(44100)

// Tones — таблица эффектов по символическим именам звуков.
var Tones = map[event.Sound]Tone{
	event.SoundHit:       {Freq: 220, Duration: 40 * time.Millisecond, Wave: WaveSquare, Volume: 0.15},
	event.SoundZap:       {Freq: 1320, Duration: 60 * time.Millisecond, Wave: WaveSine, Volume: 0.2},
	event.SoundCannon:    {Freq: 110, Duration: 90 * time.Millisecond, Wave: WaveSquare, Volume: 0.25},
	event.SoundExplosion: {Duration: 250 * time.Millisecond, Wave: WaveNoise, Volume: 0.3},
	event.SoundDeath:     {Duration: 600 * time.Millisecond, Wave: WaveNoise, Volume: 0.4},
	event.SoundConnect:   {Freq: 660, Duration: 80 * time.Millisecond, Wave: WaveSine, Volume: 0.25},
}

// Notifier проигрывает звуки по событию SoundRequested.
// Частые запросы отбрасываются лимитером.
type Notifier struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	mixer   *beep.Mixer
	play    func(beep.Streamer)
	now     func() time.Time
	dropped int
}

// NewNotifier инициализирует динамик. При ошибке или mute звук отключается.
func NewNotifier(mute bool) *Notifier {
	n := newNotifier(nil)
	if mute {
		log.Println("Звук отключён флагом")
		return n
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		log.Printf("Звук недоступен: %v", err)
		return n
	}
	speaker.Play(n.mixer)
	n.play = func(s beep.Streamer) {
		speaker.Lock()
		n.mixer.Add(s)
		speaker.Unlock()
	}
	return n
}

func newNotifier(play func(beep.Streamer)) *Notifier {
	interval := time.Duration(config.SoundInterval * float64(time.Second))
	return &Notifier{
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		mixer:   &beep.Mixer{},
		play:    play,
		now:     time.Now,
	}
}

// Subscribe подписывает уведомитель на диспетчер.
func (n *Notifier) Subscribe(d *event.Dispatcher) {
	d.Subscribe(event.SoundRequested, n)
}

func (n *Notifier) OnEvent(e event.Event) {
	sound, ok := e.Data.(event.Sound)
	if !ok {
		return
	}
	n.Play(sound)
}

// Play запускает звук, если лимитер разрешает. Возвращает true, если звук принят.
func (n *Notifier) Play(sound event.Sound) bool {
	tone, ok := Tones[sound]
	if !ok {
		return false
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.limiter.AllowN(n.now(), 1) {
		n.dropped++
		return false
	}
	if n.play != nil {
		n.play(tone.Streamer(sampleRate))
	}
	return true
}

// Dropped — сколько запросов отброшено лимитером.
func (n *Notifier) Dropped() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.dropped
}

// Close останавливает все звуки.
func (n *Notifier) Close() {
	if n.play == nil {
		return
	}
	speaker.Lock()
	n.mixer.Clear()
	speaker.Unlock()
}
