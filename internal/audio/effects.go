package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Effect timings
const (
	dropDuration      = 350 * time.Millisecond
	explosionDuration = 900 * time.Millisecond
	sonarDuration     = 700 * time.Millisecond
	hornHighDuration  = 250 * time.Millisecond
	hornLowDuration   = 450 * time.Millisecond
)

// Duration returns how long the effect plays.
func (e Effect) Duration() time.Duration {
	switch e {
	case EffectDrop:
		return dropDuration
	case EffectExplosion:
		return explosionDuration
	case EffectSonar:
		return sonarDuration
	case EffectGameOver:
		return hornHighDuration + hornLowDuration
	default:
		return 0
	}
}

// Stream synthesises the effect at the given sample rate and volume in [0, 1].
// The stream ends after Duration.
func Stream(e Effect, rate beep.SampleRate, vol float64) beep.Streamer {
	var s beep.Streamer
	switch e {
	case EffectDrop:
		// Falling whistle
		s = decay(newSweep(rate, 900, 250, dropDuration), rate, dropDuration, 3)
	case EffectExplosion:
		s = decay(newRumble(rate, explosionDuration, rand.Int63()), rate, explosionDuration, 4)
	case EffectSonar:
		s = decay(tone(generators.SineTone, rate, 1250, sonarDuration), rate, sonarDuration, 6)
	case EffectGameOver:
		s = beep.Seq(
			decay(tone(generators.SquareTone, rate, 220, hornHighDuration), rate, hornHighDuration, 1),
			decay(tone(generators.SquareTone, rate, 165, hornLowDuration), rate, hornLowDuration, 2),
		)
	default:
		return beep.Silence(0)
	}
	return newVolume(s, vol)
}

// tone takes d worth of a generator tone, or silence if the frequency is unusable.
func tone(gen func(beep.SampleRate, float64) (beep.Streamer, error), rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	s, err := gen(rate, freq)
	if err != nil {
		return beep.Silence(rate.N(d))
	}
	return beep.Take(rate.N(d), s)
}

// sweep is a sine whose frequency glides linearly from one value to another.
type sweep struct {
	from, to float64
	phase    float64
	pos      int
	total    int
	rate     beep.SampleRate
}

func newSweep(rate beep.SampleRate, from, to float64, d time.Duration) beep.Streamer {
	return &sweep{from: from, to: to, total: rate.N(d), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		t := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*t

		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// rumble is smoothed white noise, a cheap low-passed boom.
type rumble struct {
	rng   *rand.Rand
	last  float64
	pos   int
	total int
}

func newRumble(rate beep.SampleRate, d time.Duration, seed int64) beep.Streamer {
	return &rumble{rng: rand.New(rand.NewSource(seed)), total: rate.N(d)}
}

func (r *rumble) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if r.pos >= r.total {
			return i, i > 0
		}
		// One-pole low-pass keeps the noise in [-1, 1]
		r.last += 0.15 * ((r.rng.Float64()*2 - 1) - r.last)
		samples[i][0] = r.last
		samples[i][1] = r.last
		r.pos++
	}
	return len(samples), true
}

func (r *rumble) Err() error { return nil }

// decayEnvelope fades a stream out exponentially over its duration.
type decayEnvelope struct {
	streamer beep.Streamer
	pos      int
	total    int
	k        float64
}

// decay applies exp(-k*t) where t runs from 0 to 1 over d.
func decay(s beep.Streamer, rate beep.SampleRate, d time.Duration, k float64) beep.Streamer {
	return &decayEnvelope{streamer: s, total: max(1, rate.N(d)), k: k}
}

func (e *decayEnvelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := math.Exp(-e.k * float64(e.pos) / float64(e.total))
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *decayEnvelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(math.Min(vol, 1)), Silent: false}
}
