package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source describes where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, SourceCustom, err
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath("snake.yaml"); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, SourceUser, nil
		}
	}

	// Try local configs directory
	if cfg, err := LoadFile(filepath.Join("configs", "snake.yaml")); err == nil {
		return cfg, SourceLocal, nil
	}

	// Use embedded default YAML
	cfg, err := parse(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// LoadFile reads and validates a single YAML file. Keys missing from the
// file keep their built-in defaults.
func LoadFile(path string) (SnakeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultSnakeConfig(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return DefaultSnakeConfig(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// mapOverrides captures the map sections raw, so each entry can be decoded
// over its default instead of a zero value.
type mapOverrides struct {
	Difficulties map[DifficultyPreset]yaml.Node `yaml:"difficulties"`
	PowerUps     struct {
		Kinds map[string]yaml.Node `yaml:"kinds"`
	} `yaml:"powerups"`
}

func parse(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse yaml: %w", err)
	}

	var raw mapOverrides
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := mergeEntries(&cfg, raw); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// mergeEntries redecodes every difficulty and power-up entry named in the
// file on top of its built-in default, so partial entries keep the rest.
func mergeEntries(cfg *SnakeConfig, raw mapOverrides) error {
	def := DefaultSnakeConfig()

	if len(raw.Difficulties) > 0 && cfg.Difficulties == nil {
		cfg.Difficulties = make(map[DifficultyPreset]DifficultyConfig, len(raw.Difficulties))
	}
	for preset, node := range raw.Difficulties {
		entry := def.Difficulties[preset]
		if err := node.Decode(&entry); err != nil {
			return fmt.Errorf("failed to parse difficulty %q: %w", preset, err)
		}
		cfg.Difficulties[preset] = entry
	}

	if len(raw.PowerUps.Kinds) > 0 && cfg.PowerUps.Kinds == nil {
		cfg.PowerUps.Kinds = make(map[string]PowerUpConfig, len(raw.PowerUps.Kinds))
	}
	for kind, node := range raw.PowerUps.Kinds {
		entry := def.PowerUps.Kinds[kind]
		if err := node.Decode(&entry); err != nil {
			return fmt.Errorf("failed to parse powerup %q: %w", kind, err)
		}
		cfg.PowerUps.Kinds[kind] = entry
	}
	return nil
}

// Marshal renders a configuration back to YAML, used by `snake config`.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode yaml: %w", err)
	}
	return out, nil
}

// UserConfigPath returns the path to a user config file, or empty if home is unavailable.
func UserConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}

// ApplyPreset makes preset the difficulty selected when the game starts.
// Unknown presets leave the config untouched.
func ApplyPreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if IsValidPreset(preset) {
		cfg.DefaultDifficulty = preset
	}
}

// File returns the path a configuration from this source was read from,
// or "" for the embedded and built-in defaults.
func (s Source) File(customPath string) string {
	switch s {
	case SourceCustom:
		return customPath
	case SourceUser:
		return UserConfigPath("snake.yaml")
	case SourceLocal:
		return filepath.Join("configs", "snake.yaml")
	default:
		return ""
	}
}
