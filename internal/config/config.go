// Package config provides YAML-based configuration loading and
// difficulty management for Cubic Hopper.
package config

import (
	"errors"
	"fmt"
	"math"
)

// HopperConfig contains all tunable parameters of the simulation.
// World units are the 800x600 playfield the renderer scales down.
type HopperConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Entities   EntityConfig     `yaml:"entities"`
	Portals    PortalConfig     `yaml:"portals"`
	Camera     CameraConfig     `yaml:"camera"`
	Timing     TimingConfig     `yaml:"timing"`
	Zones      []ZoneConfig     `yaml:"zones"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Audio      AudioConfig      `yaml:"audio"`
}

// ScreenConfig is the logical playfield size in world units.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// WorldConfig defines the ground line and entity motion.
type WorldConfig struct {
	GroundOffset   float64 `yaml:"ground_offset"`   // groundY = height - ground_offset
	ScrollEntities bool    `yaml:"scroll_entities"` // advance entities by their scroll speed every tick
}

// PlayerConfig defines the cube's physics.
type PlayerConfig struct {
	StartX         float64 `yaml:"start_x"`
	Size           float64 `yaml:"size"`
	Speed          float64 `yaml:"speed"`
	Gravity        float64 `yaml:"gravity"`
	JumpPower      float64 `yaml:"jump_power"`
	RotationSpeed  float64 `yaml:"rotation_speed"`
	DeathParticles int     `yaml:"death_particles"`
}

// EntityConfig defines hazard dimensions and generator placement.
type EntityConfig struct {
	BlockSize      float64 `yaml:"block_size"`
	SpikeSize      float64 `yaml:"spike_size"`
	PlatformWidth  float64 `yaml:"platform_width"`
	PlatformHeight float64 `yaml:"platform_height"`
	PadWidth       float64 `yaml:"pad_width"`
	PadHeight      float64 `yaml:"pad_height"`
	ScrollSpeed    float64 `yaml:"scroll_speed"`
	FirstSegmentX  float64 `yaml:"first_segment_x"`
}

// PortalConfig defines portal dimensions and multipliers.
type PortalConfig struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`
	GravityMultiplier float64 `yaml:"gravity_multiplier"`
	SizeMultiplier    float64 `yaml:"size_multiplier"`
	Particles         int     `yaml:"particles"`
}

// CameraConfig defines how the view follows the player.
type CameraConfig struct {
	LeadFraction float64 `yaml:"lead_fraction"`
	Smoothing    float64 `yaml:"smoothing"`
}

// TimingConfig defines tick-based durations.
type TimingConfig struct {
	TickRate        int `yaml:"tick_rate"`
	RespawnDuration int `yaml:"respawn_duration"`
	LoadingStep     int `yaml:"loading_step"`
}

// ZoneConfig describes one biome band of the world.
type ZoneConfig struct {
	Name       string     `yaml:"name"`
	Length     float64    `yaml:"length"`
	Background [3]uint8   `yaml:"background"`
	Palette    [][3]uint8 `yaml:"palette"`
	Tint       string     `yaml:"tint"`
}

// AudioConfig defines the sound sink and the initial volume settings.
type AudioConfig struct {
	Enabled     bool `yaml:"enabled"`
	SampleRate  int  `yaml:"sample_rate"`
	MusicVolume int  `yaml:"music_volume"`
	SFXVolume   int  `yaml:"sfx_volume"`
}

// GroundY returns the y coordinate the player rests on.
func (c HopperConfig) GroundY() float64 {
	return c.Screen.Height - c.World.GroundOffset
}

// Validate reports every setting that would break the simulation.
func (c HopperConfig) Validate() error {
	var errs []error

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: screen must be positive, got %gx%g", c.Screen.Width, c.Screen.Height))
	}
	if c.Player.Size <= 0 {
		errs = append(errs, fmt.Errorf("config: player.size must be positive, got %g", c.Player.Size))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("config: player.speed must be positive, got %g", c.Player.Speed))
	}
	if c.Portals.SpeedMultiplier <= 0 || c.Portals.SizeMultiplier <= 0 {
		errs = append(errs, errors.New("config: portal speed and size multipliers must be positive"))
	}
	if c.Portals.GravityMultiplier == 0 || math.IsNaN(c.Portals.GravityMultiplier) {
		errs = append(errs, errors.New("config: portals.gravity_multiplier must be non-zero"))
	}
	if len(c.Zones) == 0 {
		errs = append(errs, errors.New("config: at least one zone is required"))
	}
	for i, z := range c.Zones {
		if z.Length <= 0 {
			errs = append(errs, fmt.Errorf("config: zone %d (%s) length must be positive", i, z.Name))
		}
		if len(z.Palette) == 0 {
			errs = append(errs, fmt.Errorf("config: zone %d (%s) needs a palette", i, z.Name))
		}
	}
	if c.Timing.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("config: timing.tick_rate must be positive, got %d", c.Timing.TickRate))
	}
	if c.Timing.LoadingStep <= 0 {
		errs = append(errs, fmt.Errorf("config: timing.loading_step must be positive, got %d", c.Timing.LoadingStep))
	}
	if _, err := ParsePreset(c.Difficulty.Preset); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
