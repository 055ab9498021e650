package hopper

import (
	"testing"

	"github.com/vovakirdan/cubic-hopper/internal/config"
	"github.com/vovakirdan/cubic-hopper/internal/core"
)

// layoutSpawner returns a fixed layout on the first call and nothing after.
// It records the difficulty of every call.
type layoutSpawner struct {
	layout       []Entity
	calls        int
	startXs      []int
	difficulties []int
}

func (l *layoutSpawner) GenerateSegment(startX, difficulty int) []Entity {
	l.calls++
	l.startXs = append(l.startXs, startX)
	l.difficulties = append(l.difficulties, difficulty)
	if l.calls > 1 {
		return nil
	}
	out := make([]Entity, len(l.layout))
	copy(out, l.layout)
	return out
}

// scriptedRand replays fixed values; Intn returns its value modulo n.
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRand) Float64() float64 {
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRand) Intn(n int) int {
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

func testCatalog() Catalog {
	cfg := config.DefaultHopperConfig()
	return NewCatalog(cfg.Entities, cfg.Portals)
}

// newTestSession creates a session whose only level content is layout.
func newTestSession(t *testing.T, layout ...Entity) (*Session, *layoutSpawner) {
	t.Helper()
	sp := &layoutSpawner{layout: layout}
	return NewSession(config.DefaultHopperConfig(), nil, sp), sp
}

// startPlaying drives the session from the main menu into Playing.
func startPlaying(t *testing.T, s *Session) {
	t.Helper()
	s.Step(core.NewInputFrame(core.ActionConfirm))
	if s.Mode() != ModeLoading {
		t.Fatalf("expected Loading after Play, got %s", s.Mode())
	}
	for i := 0; i < 100 && s.Mode() == ModeLoading; i++ {
		s.Step(core.NewInputFrame())
	}
	if s.Mode() != ModePlaying {
		t.Fatalf("expected Playing after loading, got %s", s.Mode())
	}
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}
