package config

import (
	"fmt"
	"strings"
)

// DifficultyConfig defines how travelled distance turns into generator difficulty.
type DifficultyConfig struct {
	Preset     string       `yaml:"preset"`      // easy, normal, hard or fixed
	Scales     PresetScales `yaml:"scales"`      // distance multiplier per preset
	FixedLevel int          `yaml:"fixed_level"` // difficulty used by the fixed preset
}

// PresetScales maps each progressive preset to a distance multiplier.
type PresetScales struct {
	Easy   float64 `yaml:"easy"`
	Normal float64 `yaml:"normal"`
	Hard   float64 `yaml:"hard"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset parses a preset name case-insensitively. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty preset %q (want easy, normal, hard or fixed)", name)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// DifficultyManager converts distance travelled into the integer
// difficulty the level generator is tuned by.
type DifficultyManager struct {
	cfg    DifficultyConfig
	preset DifficultyPreset
}

// NewDifficultyManager creates a new difficulty manager.
// An unparsable preset falls back to normal; Validate catches it earlier.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	preset, err := ParsePreset(cfg.Preset)
	if err != nil {
		preset = DifficultyNormal
	}
	return &DifficultyManager{cfg: cfg, preset: preset}
}

// Preset returns the active preset.
func (d *DifficultyManager) Preset() DifficultyPreset {
	return d.preset
}

// SetPreset switches the active preset; the next Difficulty call uses it.
func (d *DifficultyManager) SetPreset(preset DifficultyPreset) {
	d.preset = preset
}

// IsEnabled returns whether difficulty grows with distance.
func (d *DifficultyManager) IsEnabled() bool {
	return !IsFixedPreset(d.preset)
}

// Scale returns the distance multiplier of the active preset.
func (d *DifficultyManager) Scale() float64 {
	switch d.preset {
	case DifficultyEasy:
		return d.cfg.Scales.Easy
	case DifficultyHard:
		return d.cfg.Scales.Hard
	case DifficultyFixed:
		return 0
	default:
		return d.cfg.Scales.Normal
	}
}

// Difficulty returns the generator difficulty for a travelled distance.
// The result is never negative.
func (d *DifficultyManager) Difficulty(distance float64) int {
	level := d.cfg.FixedLevel
	if d.IsEnabled() {
		level = int(distance * d.Scale())
	}
	if level < 0 {
		return 0
	}
	return level
}
