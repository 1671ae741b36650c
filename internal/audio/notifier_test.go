package audio

import (
	"testing"
	"time"

	"go-absorb/internal/event"

	"github.com/gopxl/beep"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestNotifier() (*Notifier, *[]beep.Streamer, *fakeClock) {
	var played []beep.Streamer
	n := newNotifier(func(s beep.Streamer) { played = append(played, s) })
	clock := &fakeClock{t: time.Unix(1000, 0)}
	n.now = clock.now
	return n, &played, clock
}

func TestNotifierThrottlesBursts(t *testing.T) {
	n, played, clock := newTestNotifier()

	if !n.Play(event.SoundHit) {
		t.Fatal("first sound should play")
	}
	if n.Play(event.SoundZap) {
		t.Error("second sound in the same instant should be dropped")
	}

	clock.t = clock.t.Add(100 * time.Millisecond)
	if !n.Play(event.SoundZap) {
		t.Error("sound after the interval should play")
	}

	if len(*played) != 2 {
		t.Errorf("played = %d, want 2", len(*played))
	}
	if n.Dropped() != 1 {
		t.Errorf("dropped = %d, want 1", n.Dropped())
	}
}

func TestNotifierListensOnDispatcher(t *testing.T) {
	n, played, _ := newTestNotifier()
	d := event.NewDispatcher()
	n.Subscribe(d)

	d.PlaySound(event.SoundConnect)
	d.Dispatch(event.Event{Type: event.SoundRequested, Data: "not a sound"})

	if len(*played) != 1 {
		t.Errorf("played = %d, want 1", len(*played))
	}
}

func TestUnknownSoundIgnored(t *testing.T) {
	n, played, _ := newTestNotifier()
	if n.Play(event.Sound("nope")) {
		t.Error("unknown sound should not play")
	}
	if len(*played) != 0 || n.Dropped() != 0 {
		t.Error("unknown sound must not touch the limiter")
	}
}

func TestMutedNotifierIsSilent(t *testing.T) {
	n := NewNotifier(true)
	if !n.Play(event.SoundHit) {
		t.Error("muted notifier still accepts sounds")
	}
	n.Close()
}

func TestToneLength(t *testing.T) {
	for sound, tone := range Tones {
		s := tone.Streamer(sampleRate)
		want := sampleRate.N(tone.Duration)
		got := 0
		buf := make([][2]float64, 512)
		for {
			n, ok := s.Stream(buf)
			got += n
			for _, v := range buf[:n] {
				if v[0] > 1 || v[0] < -1 {
					t.Fatalf("%s: sample %v out of range", sound, v[0])
				}
			}
			if !ok {
				break
			}
		}
		if got != want {
			t.Errorf("%s: samples = %d, want %d", sound, got, want)
		}
	}
}
