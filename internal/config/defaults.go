package config

import (
	_ "embed"
)

//go:embed defaults/hopper.yaml
var defaultHopperYAML []byte

// GetDefaultYAML returns the embedded default configuration file.
func GetDefaultYAML() []byte {
	out := make([]byte, len(defaultHopperYAML))
	copy(out, defaultHopperYAML)
	return out
}

// DefaultHopperConfig returns the default Cubic Hopper configuration.
// It mirrors defaults/hopper.yaml and backs it when the embed cannot be parsed.
func DefaultHopperConfig() HopperConfig {
	return HopperConfig{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
		},
		World: WorldConfig{
			GroundOffset:   150,
			ScrollEntities: false,
		},
		Player: PlayerConfig{
			StartX:         100,
			Size:           40,
			Speed:          5,
			Gravity:        0.8,
			JumpPower:      -15,
			RotationSpeed:  8,
			DeathParticles: 20,
		},
		Entities: EntityConfig{
			BlockSize:      40,
			SpikeSize:      40,
			PlatformWidth:  100,
			PlatformHeight: 20,
			PadWidth:       30,
			PadHeight:      10,
			ScrollSpeed:    5,
			FirstSegmentX:  800,
		},
		Portals: PortalConfig{
			Width:             40,
			Height:            80,
			SpeedMultiplier:   1.5,
			GravityMultiplier: -1,
			SizeMultiplier:    0.7,
			Particles:         10,
		},
		Camera: CameraConfig{
			LeadFraction: 1.0 / 3.0,
			Smoothing:    0.1,
		},
		Timing: TimingConfig{
			TickRate:        60,
			RespawnDuration: 60,
			LoadingStep:     2,
		},
		Zones: []ZoneConfig{
			{
				Name:       "grass",
				Length:     3000,
				Background: [3]uint8{100, 200, 100},
				Palette:    [][3]uint8{{34, 139, 34}, {0, 100, 0}, {50, 205, 50}},
				Tint:       "green",
			},
			{
				Name:       "snow",
				Length:     3000,
				Background: [3]uint8{200, 225, 255},
				Palette:    [][3]uint8{{255, 250, 250}, {240, 248, 255}, {176, 196, 222}},
				Tint:       "bright_white",
			},
			{
				Name:       "lava",
				Length:     3000,
				Background: [3]uint8{150, 50, 0},
				Palette:    [][3]uint8{{255, 69, 0}, {178, 34, 34}, {139, 0, 0}},
				Tint:       "red",
			},
		},
		Difficulty: DifficultyConfig{
			Preset: string(DifficultyNormal),
			Scales: PresetScales{
				Easy:   0.5,
				Normal: 1.0,
				Hard:   1.5,
			},
			FixedLevel: 0,
		},
		Audio: AudioConfig{
			Enabled:     true,
			SampleRate:  44100,
			MusicVolume: 100,
			SFXVolume:   100,
		},
	}
}
