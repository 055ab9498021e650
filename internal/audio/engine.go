// Package audio plays the short synthesized sound effects of the game.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/cubic-hopper/internal/games/hopper"
)

// DefaultSampleRate is used when the configured rate is not positive.
const DefaultSampleRate = beep.SampleRate(44100)

// Engine mixes sound effects into the speaker. It is safe for concurrent use.
type Engine struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

// NewEngine creates an engine at the given sample rate.
func NewEngine(sampleRate int) *Engine {
	rate := beep.SampleRate(sampleRate)
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	return &Engine{rate: rate, mixer: &beep.Mixer{}}
}

// Initialize opens the audio device. Until it succeeds Play does nothing.
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}
	if err := speaker.Init(e.rate, e.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Initialized reports whether the device is open.
func (e *Engine) Initialized() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initialized
}

// Play queues the effect for event at the given volume in [0, 1].
func (e *Engine) Play(event hopper.SoundEvent, volume float64) {
	if volume <= 0 {
		return
	}
	v := e.Voice(event)
	if v == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return
	}
	speaker.Lock()
	e.mixer.Add(gain(v, volume))
	speaker.Unlock()
}

// Cleanup silences everything still playing.
func (e *Engine) Cleanup() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	e.initialized = false
}

// Voice returns a fresh finite streamer for event, or nil if the event has
// no sound.
func (e *Engine) Voice(event hopper.SoundEvent) beep.Streamer {
	switch event {
	case hopper.SoundJump:
		return gain(tone(WaveSquare, 330, 660, 90*time.Millisecond, e.rate), 0.3)
	case hopper.SoundPortal:
		return beep.Seq(
			gain(tone(WaveSine, 880, 880, 80*time.Millisecond, e.rate), 0.5),
			gain(tone(WaveSine, 1320, 1320, 120*time.Millisecond, e.rate), 0.5),
		)
	case hopper.SoundDeath:
		return beep.Mix(
			gain(tone(WaveSaw, 220, 55, 400*time.Millisecond, e.rate), 0.4),
			gain(tone(WaveNoise, 1, 1, 250*time.Millisecond, e.rate), 0.2),
		)
	default:
		return nil
	}
}

// Duration returns how long the effect for event lasts.
func (e *Engine) Duration(event hopper.SoundEvent) time.Duration {
	switch event {
	case hopper.SoundJump:
		return 90 * time.Millisecond
	case hopper.SoundPortal:
		return 200 * time.Millisecond
	case hopper.SoundDeath:
		return 400 * time.Millisecond
	default:
		return 0
	}
}
