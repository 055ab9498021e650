package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator produces a finite tone whose frequency slides linearly from
// freq to endFreq over its duration.
type oscillator struct {
	freq, endFreq float64
	phase         float64
	pos, total    int
	wave          Wave
	rate          beep.SampleRate
	noise         *rand.Rand
}

func newOscillator(wave Wave, freq, endFreq float64, d time.Duration, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:    freq,
		endFreq: endFreq,
		total:   rate.N(d),
		wave:    wave,
		rate:    rate,
		noise:   rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if o.pos >= o.total {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = -1
			if o.phase < 0.5 {
				v = 1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			v = o.noise.Float64()*2 - 1
		}
		samples[i][0], samples[i][1] = v, v

		f := o.freq + (o.endFreq-o.freq)*float64(o.pos)/float64(o.total)
		o.phase += f / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a streamer in over attack and out over release.
type envelope struct {
	s                       beep.Streamer
	pos, attack, release, n int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{s: s, n: rate.N(d), attack: rate.N(attack), release: rate.N(release)}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.attack > 0 && e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		}
		if left := e.n - e.pos; e.release > 0 && left < e.release {
			gain = math.Max(0, float64(left)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// tone is an enveloped oscillator.
func tone(wave Wave, freq, endFreq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	osc := newOscillator(wave, freq, endFreq, d, rate)
	return newEnvelope(osc, d, 5*time.Millisecond, d/2, rate)
}

// gain scales s by a linear factor; zero or less is silent.
func gain(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}
