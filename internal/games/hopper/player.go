package hopper

import (
	"github.com/vovakirdan/cubic-hopper/internal/config"
	"github.com/vovakirdan/cubic-hopper/internal/core"
)

// Player is the cube. Y grows downward; GroundY is the resting top edge.
type Player struct {
	X, Y             float64
	Velocity         float64 // vertical, negative is up
	Rotation         float64 // degrees, cosmetic
	RotationVelocity float64
	Jumping          bool
	Dead             bool
	Distance         float64 // total horizontal travel of this run

	SpeedMultiplier   float64
	GravityMultiplier float64
	SizeMultiplier    float64
	Size              float64 // base size times SizeMultiplier

	cfg     config.PlayerConfig
	groundY float64
}

// NewPlayer creates a grounded player at the configured start position.
func NewPlayer(cfg config.PlayerConfig, groundY float64) *Player {
	return &Player{
		X:                 cfg.StartX,
		Y:                 groundY,
		SpeedMultiplier:   1,
		GravityMultiplier: 1,
		SizeMultiplier:    1,
		Size:              cfg.Size,
		cfg:               cfg,
		groundY:           groundY,
	}
}

// GroundY returns the y coordinate the player lands on.
func (p *Player) GroundY() float64 {
	return p.groundY
}

// Grounded reports whether the player rests on the ground line.
func (p *Player) Grounded() bool {
	return !p.Jumping && p.Y == p.groundY && p.Velocity == 0
}

// Box returns the player's collision box.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Size, p.Size)
}

// Center returns the centre of the player's box.
func (p *Player) Center() (float64, float64) {
	return p.X + p.Size/2, p.Y + p.Size/2
}

// Update advances the player by one tick. Dead players do not move.
func (p *Player) Update() {
	if p.Dead {
		return
	}

	step := p.cfg.Speed * p.SpeedMultiplier
	p.X += step
	p.Distance += step

	if p.Jumping {
		p.RotationVelocity = p.cfg.RotationSpeed * p.SpeedMultiplier
	}
	p.Rotation += p.RotationVelocity

	p.Velocity += p.cfg.Gravity * p.GravityMultiplier
	p.Y += p.Velocity

	if p.Y > p.groundY {
		p.Y = p.groundY
		p.Velocity = 0
		p.Jumping = false
		p.RotationVelocity = 0
	}
}

// Jump launches the player. Without boost it only works when not already
// jumping. Returns whether the jump took effect.
func (p *Player) Jump(boost bool) bool {
	if p.Dead || (p.Jumping && !boost) {
		return false
	}
	p.Velocity = p.cfg.JumpPower
	if boost {
		p.Velocity *= 2
	}
	p.Jumping = true
	return true
}

// Die marks the player dead. Only the first call returns true.
func (p *Player) Die() bool {
	if p.Dead {
		return false
	}
	p.Dead = true
	return true
}

// ApplyPortalEffect changes a multiplier. Speed and size are replaced,
// gravity is multiplied so repeated gravity portals compound.
func (p *Player) ApplyPortalEffect(kind PortalKind, multiplier float64) {
	switch kind {
	case PortalSpeed:
		p.SpeedMultiplier = multiplier
	case PortalGravity:
		p.GravityMultiplier *= multiplier
	case PortalSize:
		p.SizeMultiplier = multiplier
		p.Size = p.cfg.Size * multiplier
	}
}
