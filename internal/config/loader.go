package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.mousedash/configs/dash.yaml ->
// ./configs/dash.yaml -> embedded default.
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("dash.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/dash.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultDashYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// userConfigPath returns the path to the user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mousedash", "configs", filename)
}

// normalize fills gaps a partial user config may leave. A config without
// difficulties is unplayable, so the default list is substituted.
func normalize(cfg Config) Config {
	if len(cfg.Difficulties) == 0 {
		cfg.Difficulties = DefaultConfig().Difficulties
	}
	if cfg.Board.Width <= 0 || cfg.Board.Height <= 0 {
		cfg.Board = DefaultConfig().Board
	}
	if cfg.Player.Speed <= 0 {
		cfg.Player = DefaultConfig().Player
	}
	if cfg.Items.Radius <= 0 {
		cfg.Items = DefaultConfig().Items
	}
	if cfg.Hazards.Size <= 0 {
		cfg.Hazards = DefaultConfig().Hazards
	}
	if cfg.Combo.BasePoints <= 0 {
		cfg.Combo = DefaultConfig().Combo
	}
	if cfg.Spawn.ItemAttemptsPer <= 0 {
		cfg.Spawn = DefaultConfig().Spawn
	}
	if cfg.Effects.CollectParticles <= 0 {
		cfg.Effects = DefaultConfig().Effects
	}
	return cfg
}
