package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// ConfigFile is the file name searched for in the config directories.
const ConfigFile = "flappy.yaml"

// Load loads Flappy Bird configuration.
// Search order: customPath -> ~/.flappy/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default
func Load(customPath string) (FlappyConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultFlappyYAML)
	if err != nil {
		return DefaultFlappyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of the defaults and validates the result.
// Keys missing from the document keep their default values.
func Parse(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlappyConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return FlappyConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the simulation cannot run with.
func (c FlappyConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.Bird.Size <= 0 {
		errs = append(errs, fmt.Errorf("bird size must be positive, got %v", c.Bird.Size))
	}
	if c.Pipes.Width <= 0 {
		errs = append(errs, fmt.Errorf("pipe width must be positive, got %v", c.Pipes.Width))
	}
	if c.Pipes.GapCenterRange < 0 {
		errs = append(errs, fmt.Errorf("gap center range must not be negative, got %v", c.Pipes.GapCenterRange))
	}
	if c.Coins.SpawnChance < 0 || c.Coins.SpawnChance > 1 {
		errs = append(errs, fmt.Errorf("coin spawn chance must be within [0, 1], got %v", c.Coins.SpawnChance))
	}
	if c.Coins.Value < 0 {
		errs = append(errs, fmt.Errorf("coin value must not be negative, got %d", c.Coins.Value))
	}
	if c.Scoring.PipeValue < 0 {
		errs = append(errs, fmt.Errorf("pipe value must not be negative, got %d", c.Scoring.PipeValue))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio volume must be within [0, 1], got %v", c.Audio.Volume))
	}

	if len(c.Levels) == 0 {
		errs = append(errs, errors.New("at least one level is required"))
	}
	for i, row := range c.Levels {
		if i == 0 && row.Threshold != 0 {
			errs = append(errs, fmt.Errorf("level 0 threshold must be 0, got %d", row.Threshold))
		}
		if i > 0 && row.Threshold <= c.Levels[i-1].Threshold {
			errs = append(errs, fmt.Errorf("level %d threshold %d must exceed level %d threshold %d",
				i, row.Threshold, i-1, c.Levels[i-1].Threshold))
		}
		if row.PipeSpeed <= 0 {
			errs = append(errs, fmt.Errorf("level %d pipe speed must be positive, got %v", i, row.PipeSpeed))
		}
		if row.PipeGap <= 0 {
			errs = append(errs, fmt.Errorf("level %d pipe gap must be positive, got %v", i, row.PipeGap))
		}
		if _, err := core.ParseHexColor(row.Background); err != nil {
			errs = append(errs, fmt.Errorf("level %d background: %w", i, err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "configs", filename)
}
