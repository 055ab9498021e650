package hopper

import (
	"github.com/vovakirdan/cubic-hopper/internal/config"
	"github.com/vovakirdan/cubic-hopper/internal/core"
)

// SettingsOption is a row of the settings screen.
type SettingsOption int

const (
	OptionMusicVolume SettingsOption = iota
	OptionSFXVolume
	OptionDifficulty
	OptionBack
)

var settingsOptions = [...]SettingsOption{OptionMusicVolume, OptionSFXVolume, OptionDifficulty, OptionBack}

// String returns the label shown for the option.
func (o SettingsOption) String() string {
	switch o {
	case OptionMusicVolume:
		return "Music Volume"
	case OptionSFXVolume:
		return "SFX Volume"
	case OptionDifficulty:
		return "Difficulty"
	case OptionBack:
		return "Back"
	default:
		return "?"
	}
}

// SettingsOptions returns the settings rows in display order.
func SettingsOptions() []SettingsOption {
	return settingsOptions[:]
}

// Difficulty levels selectable from the settings screen, in cycle order.
var difficultyLevels = [...]string{"Easy", "Normal", "Hard"}

var difficultyPresets = [...]config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

const volumeStep = 10

// Settings holds the player-adjustable options.
type Settings struct {
	MusicVolume int // 0..100
	SFXVolume   int // 0..100
	Difficulty  int // index into the difficulty levels
	Selected    int
}

// NewSettings creates settings from the audio config and difficulty preset.
// The fixed preset has no settings row and shows as Normal.
func NewSettings(audio config.AudioConfig, preset config.DifficultyPreset) Settings {
	s := Settings{
		MusicVolume: core.Clamp(audio.MusicVolume, 0, 100),
		SFXVolume:   core.Clamp(audio.SFXVolume, 0, 100),
		Difficulty:  1,
	}
	for i, p := range difficultyPresets {
		if p == preset {
			s.Difficulty = i
		}
	}
	return s
}

// Move shifts the cursor by delta with wrap-around.
func (s *Settings) Move(delta int) {
	s.Selected = wrap(s.Selected+delta, len(settingsOptions))
}

// Current returns the highlighted option.
func (s Settings) Current() SettingsOption {
	return settingsOptions[wrap(s.Selected, len(settingsOptions))]
}

// Adjust changes the highlighted option in direction dir (-1 or +1).
// Volumes move by 10 and clamp; difficulty cycles. Returns whether
// anything changed.
func (s *Settings) Adjust(dir int) bool {
	switch s.Current() {
	case OptionMusicVolume:
		old := s.MusicVolume
		s.MusicVolume = core.Clamp(s.MusicVolume+dir*volumeStep, 0, 100)
		return old != s.MusicVolume
	case OptionSFXVolume:
		old := s.SFXVolume
		s.SFXVolume = core.Clamp(s.SFXVolume+dir*volumeStep, 0, 100)
		return old != s.SFXVolume
	case OptionDifficulty:
		s.Difficulty = wrap(s.Difficulty+dir, len(difficultyLevels))
		return dir != 0
	default:
		return false
	}
}

// DifficultyName returns the label of the selected difficulty.
func (s Settings) DifficultyName() string {
	return difficultyLevels[wrap(s.Difficulty, len(difficultyLevels))]
}

// Preset returns the config preset matching the selected difficulty.
func (s Settings) Preset() config.DifficultyPreset {
	return difficultyPresets[wrap(s.Difficulty, len(difficultyPresets))]
}

// SFXLevel returns the effects volume as a fraction in [0, 1].
func (s Settings) SFXLevel() float64 {
	return float64(s.SFXVolume) / 100
}
