package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/cubic-hopper/internal/games/hopper"
)

// drain streams s to the end and returns the sample count and peak level.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never drained")
	return 0, 0
}

func TestVoiceLengths(t *testing.T) {
	e := NewEngine(44100)

	tests := []struct {
		event hopper.SoundEvent
		exact bool
	}{
		{hopper.SoundJump, true},
		{hopper.SoundPortal, true},
		{hopper.SoundDeath, false}, // mixer output is padded to the buffer
	}

	for _, tc := range tests {
		t.Run(string(tc.event), func(t *testing.T) {
			v := e.Voice(tc.event)
			if v == nil {
				t.Fatal("expected a streamer")
			}

			n, peak := drain(t, v)
			want := e.rate.N(e.Duration(tc.event))
			if tc.exact && n != want {
				t.Errorf("streamed %d samples, expected %d", n, want)
			}
			if !tc.exact && (n < want || n >= want+1024) {
				t.Errorf("streamed %d samples, expected about %d", n, want)
			}
			if peak <= 0 || peak > 1 {
				t.Errorf("peak level %f outside (0, 1]", peak)
			}
			if err := v.Err(); err != nil {
				t.Errorf("unexpected error %v", err)
			}
		})
	}
}

func TestVoiceUnknownEvent(t *testing.T) {
	e := NewEngine(44100)
	if v := e.Voice("applause"); v != nil {
		t.Error("unknown event should have no voice")
	}
	if d := e.Duration("applause"); d != 0 {
		t.Errorf("unknown event duration = %v", d)
	}
}

func TestPlayBeforeInitialize(t *testing.T) {
	e := NewEngine(0)
	if e.rate != DefaultSampleRate {
		t.Errorf("rate = %d, expected default", e.rate)
	}

	e.Play(hopper.SoundJump, 1)
	e.Cleanup()
	if e.Initialized() {
		t.Error("engine should not report initialized")
	}
	if e.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers, expected none", e.mixer.Len())
	}
}

func TestOscillatorShapes(t *testing.T) {
	rate := beep.SampleRate(8000)

	sq := newOscillator(WaveSquare, 100, 100, 100*time.Millisecond, rate)
	buf := make([][2]float64, 80)
	sq.Stream(buf)
	for i, smp := range buf {
		if smp[0] != 1 && smp[0] != -1 {
			t.Fatalf("square sample %d = %f", i, smp[0])
		}
		if smp[0] != smp[1] {
			t.Fatalf("channels differ at %d", i)
		}
	}
	// 100 Hz at 8 kHz is high for the first 40 samples.
	if buf[38][0] != 1 || buf[41][0] != -1 {
		t.Errorf("square edge misplaced: %f %f", buf[38][0], buf[41][0])
	}

	saw := newOscillator(WaveSaw, 100, 100, 100*time.Millisecond, rate)
	saw.Stream(buf)
	if buf[0][0] != -1 {
		t.Errorf("saw should start at -1, got %f", buf[0][0])
	}
}

func TestEnvelopeFades(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	env := newEnvelope(newOscillator(WaveSquare, 1, 1, d, rate), d, 10*time.Millisecond, 20*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("streamed %d samples, expected 100", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("attack should start silent, got %f", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("sustain should be full level, got %f", buf[50][0])
	}
	if math.Abs(buf[99][0]) > 0.06 {
		t.Errorf("release should end near silence, got %f", buf[99][0])
	}
}

func TestGainSilent(t *testing.T) {
	s := gain(newOscillator(WaveSine, 440, 440, 10*time.Millisecond, 8000), 0)
	_, peak := drain(t, s)
	if peak != 0 {
		t.Errorf("zero gain should be silent, peak %f", peak)
	}
}
