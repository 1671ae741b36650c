// internal/audio/tone.go
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave — форма сигнала осциллятора
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// oscillator выдаёт тон заданной частоты, длина ограничена в сэмплах.
type oscillator struct {
	freq     float64
	phase    float64
	position int
	length   int
	wave     Wave
	rate     beep.SampleRate
	rng      *rand.Rand
}

func newOscillator(freq float64, duration time.Duration, wave Wave, sr beep.SampleRate) *oscillator {
	return &oscillator{
		freq:   freq,
		length: sr.N(duration),
		wave:   wave,
		rate:   sr,
		rng:    rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveNoise:
			v = o.rng.Float64()*2 - 1
		}

		// линейное затухание к концу тона
		v *= 1 - float64(o.position)/float64(o.length)
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// Tone описывает короткий звуковой эффект.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
	Volume   float64 // 0..1
}

// Streamer собирает поток эффекта с учётом громкости.
func (t Tone) Streamer(sr beep.SampleRate) beep.Streamer {
	osc := newOscillator(t.Freq, t.Duration, t.Wave, sr)
	if t.Volume <= 0 {
		return &effects.Volume{Streamer: osc, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: osc, Base: 2, Volume: math.Log2(t.Volume)}
}
