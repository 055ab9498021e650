package hopper

// SoundEvent names a sound the audio sink should play.
type SoundEvent string

const (
	SoundJump   SoundEvent = "jump"
	SoundDeath  SoundEvent = "death"
	SoundPortal SoundEvent = "portal"
)

// RGB is a 24-bit colour.
type RGB [3]uint8

// Burst colours.
var (
	colorDeath  = RGB{0, 0, 255}
	colorPortal = map[PortalKind]RGB{
		PortalSpeed:   {255, 165, 0},
		PortalGravity: {147, 0, 211},
		PortalSize:    {0, 255, 0},
	}
)

// PortalColor returns the colour a portal of the given kind is drawn in.
func PortalColor(kind PortalKind) RGB {
	return colorPortal[kind]
}

// Burst asks the renderer to emit Count cosmetic particles at (X, Y).
type Burst struct {
	X, Y  float64
	Count int
	Color RGB
}

// Events collects what a single tick emitted.
type Events struct {
	Sounds []SoundEvent
	Bursts []Burst
}

// AddSound records a sound trigger.
func (e *Events) AddSound(s SoundEvent) {
	e.Sounds = append(e.Sounds, s)
}

// AddBurst records a particle burst. Empty bursts are dropped.
func (e *Events) AddBurst(b Burst) {
	if b.Count <= 0 {
		return
	}
	e.Bursts = append(e.Bursts, b)
}

// Has reports whether the sound was triggered.
func (e *Events) Has(s SoundEvent) bool {
	for _, got := range e.Sounds {
		if got == s {
			return true
		}
	}
	return false
}

// Count returns how many times the sound was triggered.
func (e *Events) Count(s SoundEvent) int {
	n := 0
	for _, got := range e.Sounds {
		if got == s {
			n++
		}
	}
	return n
}
