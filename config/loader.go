package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// UserConfigPath returns ~/.spaceman/config.yaml, or "" when the home
// directory cannot be resolved.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spaceman", "config.yaml")
}

// Load overlays YAML onto the current settings. Sections and fields missing
// from the document keep their values.
func Load(data []byte) error {
	s := Settings{
		Screen:  C,
		Physics: &Physics,
		Player:  &Player,
		Enemy:   &Enemy,
		Item:    &Item,
		Gas:     &Gas,
		Camera:  &Camera,
		Level:   &Level,
		Debug:   &Debug,
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return validate()
}

// LoadFile overlays the YAML file at path onto the current settings.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := Load(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Resolve applies the first config found: customPath, then the user config.
// It returns the path used, or "" when running on defaults.
func Resolve(customPath string) (string, error) {
	if customPath != "" {
		return customPath, LoadFile(customPath)
	}
	userPath := UserConfigPath()
	if userPath == "" {
		return "", nil
	}
	if _, err := os.Stat(userPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to stat config %s: %w", userPath, err)
	}
	return userPath, LoadFile(userPath)
}

func validate() error {
	switch {
	case Physics.TileSize <= 0:
		return fmt.Errorf("physics.tile_size must be positive, got %v", Physics.TileSize)
	case Physics.MaxDeltaTime <= 0:
		return fmt.Errorf("physics.max_delta_time must be positive, got %v", Physics.MaxDeltaTime)
	case Physics.FallingBias <= 0 || Physics.FallingBias > 1:
		return fmt.Errorf("physics.falling_bias must be in (0, 1], got %v", Physics.FallingBias)
	case Physics.TargetFPS <= 0:
		return fmt.Errorf("physics.target_fps must be positive, got %d", Physics.TargetFPS)
	case Player.Mass <= 0:
		return fmt.Errorf("player.mass must be positive, got %v", Player.Mass)
	case Physics.CellSize <= 0:
		return fmt.Errorf("physics.cell_size must be positive, got %d", Physics.CellSize)
	case Camera.Zoom <= 0:
		return fmt.Errorf("camera.zoom must be positive, got %v", Camera.Zoom)
	}
	return nil
}
