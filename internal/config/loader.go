package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// appName is the directory under the XDG base directories.
const appName = "hopper"

// configFile is the file name searched in every config location.
const configFile = "hopper.yaml"

// LoadHopper loads the Cubic Hopper configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/hopper/hopper.yaml ->
// ./configs/hopper.yaml -> embedded default. Files are decoded over the
// defaults, so a file only needs the keys it changes.
func LoadHopper(customPath string) (HopperConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return HopperConfig{}, "", fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decodeOver(data, baseConfig())
		if err != nil {
			return HopperConfig{}, "", fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, customPath, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decodeOver(data, baseConfig()); err == nil {
				return cfg, userCfgPath, cfg.Validate()
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", configFile)
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := decodeOver(data, baseConfig()); err == nil {
			return cfg, localPath, cfg.Validate()
		}
	}

	return baseConfig(), "embedded", nil
}

// baseConfig decodes the embedded YAML, falling back to the hardcoded defaults.
func baseConfig() HopperConfig {
	cfg, err := decodeOver(defaultHopperYAML, DefaultHopperConfig())
	if err != nil {
		return DefaultHopperConfig()
	}
	return cfg
}

// decodeOver decodes YAML on top of base. Unknown keys are rejected.
func decodeOver(data []byte, base HopperConfig) (HopperConfig, error) {
	cfg := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return HopperConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the XDG config file if one exists, or empty.
func userConfigPath() string {
	path, err := xdg.SearchConfigFile(filepath.Join(appName, configFile))
	if err != nil {
		return ""
	}
	return path
}

// UserConfigTarget returns where a user config file would be written.
func UserConfigTarget() (string, error) {
	path, err := xdg.ConfigFile(filepath.Join(appName, configFile))
	if err != nil {
		return "", fmt.Errorf("config: resolve user config path: %w", err)
	}
	return path, nil
}

// DefaultLogPath returns the XDG state file used for the TUI log.
func DefaultLogPath() (string, error) {
	path, err := xdg.StateFile(filepath.Join(appName, appName+".log"))
	if err != nil {
		return "", fmt.Errorf("config: resolve log path: %w", err)
	}
	return path, nil
}

// ApplyHopperPreset modifies the config based on a difficulty preset.
func ApplyHopperPreset(cfg *HopperConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = string(preset)
}
