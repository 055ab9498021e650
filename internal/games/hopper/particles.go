package hopper

// Particle is a single cosmetic spark in world units.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int
	Size   float64
	Color  RGB
}

const particleLifetime = 30

// ParticleField animates bursts for the renderer. It never feeds back
// into the simulation.
type ParticleField struct {
	rng       Rand
	particles []Particle
}

// NewParticleField creates an empty field drawing from rng.
func NewParticleField(rng Rand) *ParticleField {
	return &ParticleField{rng: rng}
}

// Emit spawns the particles of a burst.
func (f *ParticleField) Emit(b Burst) {
	for i := 0; i < b.Count; i++ {
		f.particles = append(f.particles, Particle{
			X:     b.X,
			Y:     b.Y,
			VX:    f.rng.Float64()*4 - 2,
			VY:    -1 - f.rng.Float64()*4,
			Life:  particleLifetime,
			Size:  float64(3 + f.rng.Intn(4)),
			Color: b.Color,
		})
	}
}

// Update moves every particle and drops expired ones.
func (f *ParticleField) Update() {
	alive := f.particles[:0]
	for _, p := range f.particles {
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		p.Size = max(0, p.Size-0.1)
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	f.particles = alive
}

// Particles returns the live particles.
func (f *ParticleField) Particles() []Particle {
	return f.particles
}

// Clear removes all particles.
func (f *ParticleField) Clear() {
	f.particles = f.particles[:0]
}
